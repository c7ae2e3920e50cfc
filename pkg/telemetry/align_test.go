package telemetry

import (
	"testing"

	"f1telemetrycompare/pkg/model"
)

func samplesFrom(points [][2]float64) []model.TelemetrySample {
	samples := make([]model.TelemetrySample, len(points))
	for i, p := range points {
		samples[i] = model.TelemetrySample{Distance: p[0], Speed: p[1]}
	}
	return samples
}

func TestAlign(t *testing.T) {
	a := samplesFrom([][2]float64{{0, 100}, {100, 200}})
	b := samplesFrom([][2]float64{{0, 150}, {100, 150}})

	aligned := Align(a, b, 50)

	wantDist := []float64{0, 50, 100}
	wantA := []float64{100, 150, 200}
	wantB := []float64{150, 150, 150}

	if len(aligned.Distance) != len(wantDist) {
		t.Fatalf("got %d grid points, want %d", len(aligned.Distance), len(wantDist))
	}
	for i := range wantDist {
		if aligned.Distance[i] != wantDist[i] {
			t.Errorf("Distance[%d] = %v, want %v", i, aligned.Distance[i], wantDist[i])
		}
		if aligned.SpeedA[i] != wantA[i] {
			t.Errorf("SpeedA[%d] = %v, want %v", i, aligned.SpeedA[i], wantA[i])
		}
		if aligned.SpeedB[i] != wantB[i] {
			t.Errorf("SpeedB[%d] = %v, want %v", i, aligned.SpeedB[i], wantB[i])
		}
	}
}

func TestAlignEndsAtShorterLap(t *testing.T) {
	a := samplesFrom([][2]float64{{0, 100}, {200, 200}})
	b := samplesFrom([][2]float64{{0, 150}, {80, 150}})

	aligned := Align(a, b, 50)

	if len(aligned.Distance) != 2 {
		t.Fatalf("got %d grid points, want 2", len(aligned.Distance))
	}
	if last := aligned.Distance[len(aligned.Distance)-1]; last > 80 {
		t.Errorf("grid reaches %v, beyond the shorter lap", last)
	}
}

func TestAlignEmptySeries(t *testing.T) {
	aligned := Align(nil, samplesFrom([][2]float64{{0, 100}}), 10)
	if len(aligned.Distance) != 0 {
		t.Errorf("got %d grid points for empty input, want 0", len(aligned.Distance))
	}
}

func TestAlignDefaultStep(t *testing.T) {
	a := samplesFrom([][2]float64{{0, 100}, {20, 100}})
	b := samplesFrom([][2]float64{{0, 100}, {20, 100}})

	aligned := Align(a, b, 0)

	// 0, 10 and 20 meters
	if len(aligned.Distance) != 3 {
		t.Errorf("got %d grid points, want 3", len(aligned.Distance))
	}
}

func TestSpeedAt(t *testing.T) {
	samples := samplesFrom([][2]float64{{100, 100}, {200, 300}})

	tests := []struct {
		dist float64
		want float64
	}{
		{0, 100},   // before the first sample
		{150, 200}, // halfway
		{200, 300},
		{500, 300}, // beyond the last sample
	}

	for _, tt := range tests {
		if got := SpeedAt(samples, tt.dist); got != tt.want {
			t.Errorf("SpeedAt(%v) = %v, want %v", tt.dist, got, tt.want)
		}
	}
}
