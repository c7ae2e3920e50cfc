package helper

import "testing"

func TestSecondsToMinutes(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{83.456, "1:23.456"},
		{92.346, "1:32.346"},
		{143.987, "2:23.987"},
		{61.0, "1:01.000"},
		{0, "-"},
		{-1.5, "-"},
	}

	for _, tt := range tests {
		got := SecondsToMinutes(tt.seconds)
		if got != tt.want {
			t.Errorf("SecondsToMinutes(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestSecondsToDiff(t *testing.T) {
	tests := []struct {
		seconds float64
		want    string
	}{
		{0.123, "+0.123s"},
		{1.5, "+1.500s"},
		{0, "-"},
		{-0.3, "-"},
	}

	for _, tt := range tests {
		got := SecondsToDiff(tt.seconds)
		if got != tt.want {
			t.Errorf("SecondsToDiff(%v) = %q, want %q", tt.seconds, got, tt.want)
		}
	}
}

func TestToSectorTime(t *testing.T) {
	if got := ToSectorTime(28.5); got != "28.500" {
		t.Errorf("ToSectorTime(28.5) = %q, want %q", got, "28.500")
	}
	if got := ToSectorTime(0); got != "-" {
		t.Errorf("ToSectorTime(0) = %q, want %q", got, "-")
	}
}

func TestMetersToKm(t *testing.T) {
	tests := []struct {
		meters float64
		want   string
	}{
		{0, "0"},
		{1000, "1"},
		{1500, "1.5"},
		{2750, "2.75"},
	}

	for _, tt := range tests {
		got := MetersToKm(tt.meters)
		if got != tt.want {
			t.Errorf("MetersToKm(%v) = %q, want %q", tt.meters, got, tt.want)
		}
	}
}

func TestToID(t *testing.T) {
	if ToID("Monza") != ToID("Monza") {
		t.Error("ToID is not deterministic")
	}
	if ToID("Monza") == ToID("Spa") {
		t.Error("ToID collides for different names")
	}
}
