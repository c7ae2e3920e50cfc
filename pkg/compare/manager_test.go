package compare

import (
	"context"
	"testing"

	"f1telemetrycompare/pkg/livetiming"
	"f1telemetrycompare/pkg/model"

	"github.com/pkg/errors"
)

type fakeProvider struct {
	event model.Event
	laps  map[string]model.DriverLap
	err   error
}

func (f *fakeProvider) FindEvent(ctx context.Context, year int, event string) (model.Event, error) {
	if f.err != nil {
		return model.Event{}, f.err
	}
	return f.event, nil
}

func (f *fakeProvider) FastestLapTelemetry(ctx context.Context, year int, event, session, driver string) (model.DriverLap, error) {
	if f.err != nil {
		return model.DriverLap{}, f.err
	}
	dl, ok := f.laps[driver]
	if !ok {
		return model.DriverLap{}, errors.Wrapf(livetiming.ErrDriverNotFound, "no timed lap for %q", driver)
	}
	return dl, nil
}

func trace(times []float64) []model.TelemetrySample {
	samples := make([]model.TelemetrySample, len(times))
	for i, tm := range times {
		samples[i] = model.TelemetrySample{
			Time:     tm,
			Distance: float64(i * 100),
			Speed:    200,
		}
	}
	return samples
}

func newFakeProvider() *fakeProvider {
	return &fakeProvider{
		event: model.Event{Round: 14, Name: "Italian Grand Prix", Location: "Monza"},
		laps: map[string]model.DriverLap{
			"VER": {
				Driver:    "VER",
				Team:      "Red Bull Racing",
				Lap:       model.Lap{Driver: "VER", Time: 80.5, S1: 20, S2: 30, S3: 30.5},
				Telemetry: trace([]float64{0, 10, 20, 30, 40, 50, 60, 70, 80}),
			},
			"LEC": {
				Driver:    "LEC",
				Team:      "Ferrari",
				Lap:       model.Lap{Driver: "LEC", Time: 81.0, S1: 20.2, S2: 30.1, S3: 30.7},
				Telemetry: trace([]float64{0, 10, 20, 30, 40, 50, 60, 70, 80}),
			},
		},
	}
}

func TestCompare(t *testing.T) {
	m := NewManager(newFakeProvider())

	cmp, err := m.Compare(context.Background(), Request{
		Year: 2023, Event: "Monza", Session: "Q", DriverA: "VER", DriverB: "LEC",
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	if cmp.EventName != "Italian Grand Prix" {
		t.Errorf("event name = %q, want Italian Grand Prix", cmp.EventName)
	}
	if cmp.SessionName != "Qualifying" {
		t.Errorf("session name = %q, want Qualifying", cmp.SessionName)
	}
	if got := cmp.Title(); got != "2023 Italian Grand Prix Qualifying" {
		t.Errorf("title = %q", got)
	}
	if cmp.Slower != "LEC" {
		t.Errorf("slower = %q, want LEC", cmp.Slower)
	}
	if cmp.Delta != 0.5 {
		t.Errorf("delta = %v, want 0.5", cmp.Delta)
	}
	// sector markers come from driver A's trace
	if len(cmp.SectorEnds) != 2 {
		t.Fatalf("got %d sector ends, want 2", len(cmp.SectorEnds))
	}
	if cmp.SectorEnds[0] != 200 || cmp.SectorEnds[1] != 500 {
		t.Errorf("sector ends = %v, want [200 500]", cmp.SectorEnds)
	}
}

func TestCompareSlowerDriverA(t *testing.T) {
	p := newFakeProvider()
	m := NewManager(p)

	cmp, err := m.Compare(context.Background(), Request{
		Year: 2023, Event: "Monza", Session: "Q", DriverA: "LEC", DriverB: "VER",
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cmp.Slower != "LEC" {
		t.Errorf("slower = %q, want LEC", cmp.Slower)
	}
	if cmp.Delta != 0.5 {
		t.Errorf("delta = %v, want 0.5", cmp.Delta)
	}
}

func TestCompareSameDriver(t *testing.T) {
	m := NewManager(newFakeProvider())

	cmp, err := m.Compare(context.Background(), Request{
		Year: 2023, Event: "Monza", Session: "Q", DriverA: "VER", DriverB: "VER",
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	// ties go to driver B
	if cmp.Slower != "VER" || cmp.Delta != 0 {
		t.Errorf("got slower %q delta %v, want VER 0", cmp.Slower, cmp.Delta)
	}
}

func TestCompareErrors(t *testing.T) {
	m := NewManager(newFakeProvider())

	_, err := m.Compare(context.Background(), Request{
		Year: 2023, Event: "Monza", Session: "Q", DriverA: "VER", DriverB: "XXX",
	})
	if !errors.Is(err, livetiming.ErrDriverNotFound) {
		t.Errorf("got %v, want ErrDriverNotFound", err)
	}

	broken := newFakeProvider()
	broken.err = errors.Wrap(livetiming.ErrSessionNotFound, "no schedule for season 1999")
	m = NewManager(broken)

	_, err = m.Compare(context.Background(), Request{
		Year: 1999, Event: "Monza", Session: "Q", DriverA: "VER", DriverB: "LEC",
	})
	if !errors.Is(err, livetiming.ErrSessionNotFound) {
		t.Errorf("got %v, want ErrSessionNotFound", err)
	}
}

func TestAlignComparison(t *testing.T) {
	m := NewManager(newFakeProvider())

	cmp, err := m.Compare(context.Background(), Request{
		Year: 2023, Event: "Monza", Session: "Q", DriverA: "VER", DriverB: "LEC",
	})
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}

	aligned := Align(cmp)
	if len(aligned.Distance) == 0 {
		t.Fatal("no aligned samples")
	}
	if len(aligned.SpeedA) != len(aligned.Distance) || len(aligned.SpeedB) != len(aligned.Distance) {
		t.Errorf("series lengths differ: %d distance, %d speedA, %d speedB",
			len(aligned.Distance), len(aligned.SpeedA), len(aligned.SpeedB))
	}
}
