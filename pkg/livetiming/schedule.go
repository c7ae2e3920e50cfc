package livetiming

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"f1telemetrycompare/pkg/model"

	"github.com/pkg/errors"
)

// GetSchedule returns the season schedule, fetching it at most once
// per reset interval.
func (m *Manager) GetSchedule(ctx context.Context, year int) ([]model.Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if events, ok := m.schedules[year]; ok {
		return events, nil
	}

	url := fmt.Sprintf("%s/v1/schedule?year=%d", m.domain, year)
	body, status, err := m.doGet(ctx, url)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, errors.Wrapf(ErrSessionNotFound, "no schedule for season %d", year)
	}
	if status != http.StatusOK {
		return nil, errors.Errorf("schedule request returned status %d", status)
	}

	var events []model.Event
	err = json.Unmarshal(body, &events)
	if err != nil {
		return nil, errors.Wrap(err, "decoding season schedule")
	}

	m.schedules[year] = events
	return events, nil
}

// FindEvent resolves an event by round number or by (partial) name,
// e.g. "14", "Monza" or "Italian Grand Prix".
func (m *Manager) FindEvent(ctx context.Context, year int, event string) (model.Event, error) {
	events, err := m.GetSchedule(ctx, year)
	if err != nil {
		return model.Event{}, err
	}

	needle := strings.ToLower(strings.TrimSpace(event))
	if needle == "" {
		return model.Event{}, errors.Wrapf(ErrSessionNotFound, "empty event for season %d", year)
	}

	if round, err := strconv.Atoi(needle); err == nil {
		for _, ev := range events {
			if ev.Round == round {
				return ev, nil
			}
		}
		return model.Event{}, errors.Wrapf(ErrSessionNotFound, "season %d has no round %d", year, round)
	}

	for _, ev := range events {
		if strings.ToLower(ev.Name) == needle ||
			strings.ToLower(ev.Location) == needle ||
			strings.ToLower(ev.TrackName) == needle {
			return ev, nil
		}
	}
	for _, ev := range events {
		if strings.Contains(strings.ToLower(ev.Name), needle) ||
			strings.Contains(strings.ToLower(ev.Location), needle) ||
			strings.Contains(strings.ToLower(ev.TrackName), needle) {
			return ev, nil
		}
	}

	return model.Event{}, errors.Wrapf(ErrSessionNotFound, "no event matching %q in season %d", event, year)
}
