package telemetry

import (
	"f1telemetrycompare/pkg/model"
)

// DefaultStep is the resampling step in meters.
const DefaultStep = 10.0

// Aligned holds two speed traces resampled onto one distance grid so
// they can be overlaid sample by sample.
type Aligned struct {
	Distance []float64 `json:"distance"`
	SpeedA   []float64 `json:"speedA"`
	SpeedB   []float64 `json:"speedB"`
}

// Align resamples both series onto a common distance grid by linear
// interpolation. The grid ends at the shorter of the two laps.
func Align(a, b []model.TelemetrySample, step float64) Aligned {
	if step <= 0 {
		step = DefaultStep
	}
	if len(a) == 0 || len(b) == 0 {
		return Aligned{}
	}

	maxDist := a[len(a)-1].Distance
	if d := b[len(b)-1].Distance; d < maxDist {
		maxDist = d
	}

	aligned := Aligned{}
	for dist := 0.0; dist <= maxDist; dist += step {
		aligned.Distance = append(aligned.Distance, dist)
		aligned.SpeedA = append(aligned.SpeedA, SpeedAt(a, dist))
		aligned.SpeedB = append(aligned.SpeedB, SpeedAt(b, dist))
	}
	return aligned
}

// SpeedAt interpolates the speed at a distance along the lap.
func SpeedAt(samples []model.TelemetrySample, dist float64) float64 {
	if len(samples) == 0 {
		return 0
	}
	if dist <= samples[0].Distance {
		return samples[0].Speed
	}
	for i := 1; i < len(samples); i++ {
		if samples[i].Distance < dist {
			continue
		}
		prev, next := samples[i-1], samples[i]
		span := next.Distance - prev.Distance
		if span <= 0 {
			return next.Speed
		}
		f := (dist - prev.Distance) / span
		return prev.Speed + (next.Speed-prev.Speed)*f
	}
	return samples[len(samples)-1].Speed
}
