package livetiming

import (
	"testing"

	"f1telemetrycompare/pkg/model"

	"github.com/pkg/errors"
)

func TestFastestLap(t *testing.T) {
	laps := []model.Lap{
		{Driver: "VER", LapNumber: 5, Time: 81.5},
		{Driver: "VER", LapNumber: 9, Time: 80.1, Deleted: true},
		{Driver: "VER", LapNumber: 12, Time: 80.9},
		{Driver: "LEC", LapNumber: 7, Time: 80.5},
		{Driver: "SAI", LapNumber: 2, Time: 0},
	}

	lap, err := FastestLap(laps, "ver")
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if lap.LapNumber != 12 {
		t.Errorf("lap number = %d, want 12", lap.LapNumber)
	}
}

func TestFastestLapNoTimedLap(t *testing.T) {
	laps := []model.Lap{
		{Driver: "SAI", Time: 0},
		{Driver: "SAI", Time: 82.1, Deleted: true},
	}

	for _, driver := range []string{"SAI", "XXX"} {
		_, err := FastestLap(laps, driver)
		if !errors.Is(err, ErrDriverNotFound) {
			t.Errorf("FastestLap(%q) = %v, want ErrDriverNotFound", driver, err)
		}
	}
}
