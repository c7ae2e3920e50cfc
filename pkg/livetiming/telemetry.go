package livetiming

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"f1telemetrycompare/pkg/model"

	"github.com/pkg/errors"
)

// GetTelemetry returns the car-data samples of one lap with the
// distance channel filled in.
func (m *Manager) GetTelemetry(ctx context.Context, year, round int, code, driver string, lapNumber int) ([]model.TelemetrySample, error) {
	u := fmt.Sprintf("%s/v1/telemetry?year=%d&round=%d&session=%s&driver=%s&lap=%d",
		m.domain, year, round, code, url.QueryEscape(NormalizeDriver(driver)), lapNumber)
	body, status, err := m.doGet(ctx, u)
	if err != nil {
		return nil, err
	}
	if status == http.StatusNotFound {
		return nil, errors.Wrapf(ErrDriverNotFound, "no telemetry for %s lap %d", driver, lapNumber)
	}
	if status != http.StatusOK {
		return nil, errors.Errorf("telemetry request returned status %d", status)
	}

	var samples []model.TelemetrySample
	err = json.Unmarshal(body, &samples)
	if err != nil {
		return nil, errors.Wrap(err, "decoding lap telemetry")
	}
	if len(samples) == 0 {
		return nil, errors.Wrapf(ErrDriverNotFound, "empty telemetry for %s lap %d", driver, lapNumber)
	}

	addDistance(samples)
	return samples, nil
}

// addDistance integrates speed over the sample timestamps. The API
// reports time-indexed samples only, so the distance channel is always
// rebuilt here, which keeps it non-decreasing within the lap.
func addDistance(samples []model.TelemetrySample) {
	distance := 0.0
	for i := range samples {
		if i > 0 {
			dt := samples[i].Time - samples[i-1].Time
			if dt < 0 {
				dt = 0
			}
			// speed comes in km/h
			distance += samples[i].Speed / 3.6 * dt
		}
		samples[i].Distance = distance
	}
}
