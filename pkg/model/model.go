package model

import "fmt"

// Event struct represents one race weekend in the season schedule.
type Event struct {
	Round     int                `json:"round"`
	Name      string             `json:"name"`
	Location  string             `json:"location"`
	Country   string             `json:"country"`
	TrackName string             `json:"trackName"`
	Sessions  []ScheduledSession `json:"sessions"`
}

// ScheduledSession struct represents one timed segment of a race weekend.
type ScheduledSession struct {
	Code      string `json:"code"` // FP1, FP2, FP3, Q, S, R
	Name      string `json:"name"`
	StartDate string `json:"startDate"` // RFC3339
}

// Lap struct represents one timed lap as reported by the timing API.
type Lap struct {
	Driver    string  `json:"driver"`
	Team      string  `json:"team"`
	LapNumber int     `json:"lapNumber"`
	Time      float64 `json:"time"` // seconds, <= 0 when not timed
	S1        float64 `json:"s1"`
	S2        float64 `json:"s2"`
	S3        float64 `json:"s3"`
	Compound  string  `json:"compound"`
	Deleted   bool    `json:"deleted"`
}

// TelemetrySample is one car-data sample of a lap. The API reports
// time-indexed samples; Distance is filled in by the client and is
// non-decreasing within one lap.
type TelemetrySample struct {
	Time     float64 `json:"time"`     // seconds since lap start
	Distance float64 `json:"distance"` // meters along the lap
	Speed    float64 `json:"speed"`    // km/h
	Throttle float64 `json:"throttle"`
	Brake    bool    `json:"brake"`
	Gear     int     `json:"gear"`
	RPM      float64 `json:"rpm"`
	DRS      bool    `json:"drs"`
}

// DriverLap bundles a driver's fastest lap with its telemetry trace.
type DriverLap struct {
	Driver    string            `json:"driver"`
	Team      string            `json:"team"`
	Lap       Lap               `json:"lap"`
	Telemetry []TelemetrySample `json:"telemetry"`
}

// Comparison is the assembled view data for one fastest-lap comparison.
// It is built per interaction and discarded after rendering.
type Comparison struct {
	Year        int       `json:"year"`
	EventName   string    `json:"eventName"`
	SessionCode string    `json:"sessionCode"`
	SessionName string    `json:"sessionName"`
	DriverA     DriverLap `json:"driverA"`
	DriverB     DriverLap `json:"driverB"`
	// Delta is the positive lap time gap, attributed to Slower.
	Delta  float64 `json:"delta"`
	Slower string  `json:"slower"`
	// SectorEnds are the distances (meters) where sectors 1 and 2 end,
	// located on driver A's trace.
	SectorEnds []float64 `json:"sectorEnds"`
}

func (c Comparison) Title() string {
	return fmt.Sprintf("%d %s %s", c.Year, c.EventName, c.SessionName)
}

// SessionStarted is published when a scheduled session crosses its
// start time.
type SessionStarted struct {
	Year        int    `json:"year"`
	EventName   string `json:"eventName"`
	SessionCode string `json:"sessionCode"`
	SessionName string `json:"sessionName"`
}

func (ss SessionStarted) String() string {
	return fmt.Sprintf("  ▸ Evento: %s\n  ▸ Sesión: %s", ss.EventName, ss.SessionName)
}
