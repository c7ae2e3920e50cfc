package telemetry

import (
	"testing"

	"f1telemetrycompare/pkg/model"
)

func TestSectorEnds(t *testing.T) {
	samples := make([]model.TelemetrySample, 10)
	for i := range samples {
		samples[i] = model.TelemetrySample{
			Time:     float64(i * 10),
			Distance: float64(i * 100),
		}
	}
	lap := model.Lap{S1: 30, S2: 30, S3: 30}

	ends := SectorEnds(lap, samples)

	if len(ends) != 2 {
		t.Fatalf("got %d sector ends, want 2", len(ends))
	}
	if ends[0] != 300 {
		t.Errorf("sector 1 ends at %v, want 300", ends[0])
	}
	if ends[1] != 600 {
		t.Errorf("sector 2 ends at %v, want 600", ends[1])
	}
}

func TestSectorEndsLapRelativeTime(t *testing.T) {
	// sample times do not start at zero; the first sample is the base
	samples := make([]model.TelemetrySample, 10)
	for i := range samples {
		samples[i] = model.TelemetrySample{
			Time:     5 + float64(i*10),
			Distance: float64(i * 100),
		}
	}
	lap := model.Lap{S1: 30, S2: 30}

	ends := SectorEnds(lap, samples)

	if len(ends) != 2 || ends[0] != 300 || ends[1] != 600 {
		t.Errorf("got %v, want [300 600]", ends)
	}
}

func TestSectorEndsMissingData(t *testing.T) {
	samples := []model.TelemetrySample{{Time: 0, Distance: 0}}

	if ends := SectorEnds(model.Lap{S1: 0, S2: 30}, samples); ends != nil {
		t.Errorf("got %v without sector times, want nil", ends)
	}
	if ends := SectorEnds(model.Lap{S1: 30, S2: 30}, nil); ends != nil {
		t.Errorf("got %v without samples, want nil", ends)
	}
}
