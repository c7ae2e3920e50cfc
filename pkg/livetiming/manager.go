package livetiming

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"f1telemetrycompare/pkg/model"

	"github.com/pkg/errors"
)

const DefaultDomain = "https://livetiming.f1telemetry.es"

// Manager talks to the timing API. Successful responses go through the
// sqlite cache (when one is configured) so repeating a comparison does
// not hit the network again.
type Manager struct {
	domain    string
	cache     *Cache
	mu        sync.Mutex
	schedules map[int][]model.Event
}

func NewManager(domain string, cache *Cache) *Manager {
	if domain == "" {
		domain = DefaultDomain
	}
	return &Manager{
		domain:    domain,
		cache:     cache,
		schedules: map[int][]model.Event{},
	}
}

// Sync resets the in-memory schedule cache on every tick.
func (m *Manager) Sync(ctx context.Context, ticker *time.Ticker, exitChan chan bool) {
	go func() {
		for {
			select {
			case <-exitChan:
				return
			case t := <-ticker.C:
				fmt.Println("Resetting season schedules at: ", t)
				m.mu.Lock()
				m.schedules = map[int][]model.Event{}
				m.mu.Unlock()
			}
		}
	}()
}

// FastestLapTelemetry is the retrieval contract used by both surfaces:
// given (year, event, session, driver code) it returns the driver's
// fastest lap with its distance-indexed telemetry, or fails with
// ErrSessionNotFound / ErrDriverNotFound.
func (m *Manager) FastestLapTelemetry(ctx context.Context, year int, event, session, driver string) (model.DriverLap, error) {
	ev, err := m.FindEvent(ctx, year, event)
	if err != nil {
		return model.DriverLap{}, err
	}

	code, ok := SessionCode(session)
	if !ok {
		return model.DriverLap{}, errors.Wrapf(ErrSessionNotFound, "unknown session type %q", session)
	}
	if !eventHasSession(ev, code) {
		return model.DriverLap{}, errors.Wrapf(ErrSessionNotFound, "%d %s has no %s session", year, ev.Name, SessionName(code))
	}

	laps, err := m.GetLaps(ctx, year, ev.Round, code)
	if err != nil {
		return model.DriverLap{}, err
	}

	fastest, err := FastestLap(laps, driver)
	if err != nil {
		return model.DriverLap{}, err
	}

	telemetry, err := m.GetTelemetry(ctx, year, ev.Round, code, fastest.Driver, fastest.LapNumber)
	if err != nil {
		return model.DriverLap{}, err
	}

	return model.DriverLap{
		Driver:    fastest.Driver,
		Team:      fastest.Team,
		Lap:       fastest,
		Telemetry: telemetry,
	}, nil
}

func eventHasSession(ev model.Event, code string) bool {
	// older seasons may come without a session list; trust the laps
	// endpoint in that case
	if len(ev.Sessions) == 0 {
		return true
	}
	for _, s := range ev.Sessions {
		if s.Code == code {
			return true
		}
	}
	return false
}

// NormalizeDriver upper-cases and trims a driver code the same way the
// input widgets do.
func NormalizeDriver(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (m *Manager) doGet(ctx context.Context, url string) ([]byte, int, error) {
	if m.cache != nil {
		if body, ok := m.cache.Get(url); ok {
			return body, http.StatusOK, nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, err
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, 0, errors.Wrapf(err, "requesting %s", url)
	}

	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, errors.Wrapf(err, "reading %s", url)
	}

	if resp.StatusCode == http.StatusOK && m.cache != nil {
		if err := m.cache.Put(url, body); err != nil {
			// a broken cache must not break the fetch
			fmt.Println("error caching response: ", err)
		}
	}

	return body, resp.StatusCode, nil
}
