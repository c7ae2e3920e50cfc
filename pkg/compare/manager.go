package compare

import (
	"context"

	"f1telemetrycompare/pkg/livetiming"
	"f1telemetrycompare/pkg/model"
	"f1telemetrycompare/pkg/telemetry"
)

// Provider is the external telemetry-retrieval contract. All caching
// and data plumbing happens behind it.
type Provider interface {
	FindEvent(ctx context.Context, year int, event string) (model.Event, error)
	FastestLapTelemetry(ctx context.Context, year int, event, session, driver string) (model.DriverLap, error)
}

// Request identifies one comparison: a session selector plus two
// driver codes.
type Request struct {
	Year    int
	Event   string
	Session string
	DriverA string
	DriverB string
}

// Manager runs the fetch-then-assemble cycle for one comparison. It is
// stateless; every interaction is a fresh cycle.
type Manager struct {
	provider Provider
}

func NewManager(provider Provider) *Manager {
	return &Manager{provider: provider}
}

// Compare fetches both drivers' fastest laps and assembles the view
// data. It fails with livetiming.ErrSessionNotFound or
// livetiming.ErrDriverNotFound; neither is retried here.
func (m *Manager) Compare(ctx context.Context, req Request) (model.Comparison, error) {
	ev, err := m.provider.FindEvent(ctx, req.Year, req.Event)
	if err != nil {
		return model.Comparison{}, err
	}

	code, _ := livetiming.SessionCode(req.Session)

	a, err := m.provider.FastestLapTelemetry(ctx, req.Year, req.Event, req.Session, req.DriverA)
	if err != nil {
		return model.Comparison{}, err
	}
	b, err := m.provider.FastestLapTelemetry(ctx, req.Year, req.Event, req.Session, req.DriverB)
	if err != nil {
		return model.Comparison{}, err
	}

	cmp := model.Comparison{
		Year:        req.Year,
		EventName:   ev.Name,
		SessionCode: code,
		SessionName: livetiming.SessionName(code),
		DriverA:     a,
		DriverB:     b,
		SectorEnds:  telemetry.SectorEnds(a.Lap, a.Telemetry),
	}

	// the delta is attributed to the slower driver
	if a.Lap.Time > b.Lap.Time {
		cmp.Delta = a.Lap.Time - b.Lap.Time
		cmp.Slower = a.Driver
	} else {
		cmp.Delta = b.Lap.Time - a.Lap.Time
		cmp.Slower = b.Driver
	}

	return cmp, nil
}

// Align resamples the two traces of a comparison onto one grid.
func Align(cmp model.Comparison) telemetry.Aligned {
	return telemetry.Align(cmp.DriverA.Telemetry, cmp.DriverB.Telemetry, telemetry.DefaultStep)
}
