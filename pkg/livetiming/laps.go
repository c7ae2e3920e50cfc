package livetiming

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"f1telemetrycompare/pkg/model"

	"github.com/pkg/errors"
)

// GetLaps returns every timed lap of a session sorted by lap time.
func (m *Manager) GetLaps(ctx context.Context, year, round int, code string) ([]model.Lap, error) {
	url := fmt.Sprintf("%s/v1/laps?year=%d&round=%d&session=%s", m.domain, year, round, code)
	body, status, err := m.doGet(ctx, url)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, errors.Wrapf(ErrSessionNotFound, "%d round %d session %s", year, round, code)
	}
	if status != http.StatusOK {
		return nil, errors.Errorf("laps request returned status %d", status)
	}

	var laps []model.Lap
	err = json.Unmarshal(body, &laps)
	if err != nil {
		return nil, errors.Wrap(err, "decoding session laps")
	}

	sort.Slice(laps, func(i, j int) bool {
		return laps[i].Time < laps[j].Time
	})

	return laps, nil
}

// FastestLap picks the driver's fastest timed lap. Deleted laps and
// laps without a time do not count.
func FastestLap(laps []model.Lap, driver string) (model.Lap, error) {
	driver = NormalizeDriver(driver)

	fastest := model.Lap{}
	for _, lap := range laps {
		if NormalizeDriver(lap.Driver) != driver {
			continue
		}
		if lap.Deleted || lap.Time <= 0 {
			continue
		}
		if fastest.Time <= 0 || lap.Time < fastest.Time {
			fastest = lap
		}
	}

	if fastest.Time <= 0 {
		return model.Lap{}, errors.Wrapf(ErrDriverNotFound, "no timed lap for %q", driver)
	}
	return fastest, nil
}
