package telemetry

import (
	"math"

	"f1telemetrycompare/pkg/model"
)

// SectorEnds locates the distances (meters) where sectors 1 and 2 end
// on the given trace: for each cumulative sector time, the distance of
// the sample whose lap-relative time is nearest to it. Sector 3 ends at
// the finish line, so it needs no marker.
func SectorEnds(lap model.Lap, samples []model.TelemetrySample) []float64 {
	if lap.S1 <= 0 || lap.S2 <= 0 || len(samples) == 0 {
		return nil
	}

	base := samples[0].Time
	ends := []float64{}
	for _, t := range []float64{lap.S1, lap.S1 + lap.S2} {
		nearest := samples[0]
		best := math.Inf(1)
		for _, s := range samples {
			diff := math.Abs((s.Time - base) - t)
			if diff < best {
				best = diff
				nearest = s
			}
		}
		ends = append(ends, nearest.Distance)
	}
	return ends
}
