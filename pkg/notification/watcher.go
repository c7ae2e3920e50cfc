package notification

import (
	"context"
	"fmt"
	"log"
	"time"

	"f1telemetrycompare/pkg/model"
	"f1telemetrycompare/pkg/pubsub"
)

// startedWindow keeps a late tick from notifying sessions that started
// long ago (e.g. right after a restart).
const startedWindow = 10 * time.Minute

type ScheduleProvider interface {
	GetSchedule(ctx context.Context, year int) ([]model.Event, error)
}

// Watcher publishes a SessionStarted message when a scheduled session
// of the current season crosses its start time.
type Watcher struct {
	provider ScheduleProvider
	notified map[string]bool
}

func NewWatcher(provider ScheduleProvider) *Watcher {
	return &Watcher{
		provider: provider,
		notified: map[string]bool{},
	}
}

func (w *Watcher) Start(ctx context.Context, ticker *time.Ticker, exitChan <-chan bool) {
	go func() {
		for {
			select {
			case <-exitChan:
				return
			case <-ticker.C:
				w.check(ctx, time.Now())
			}
		}
	}()
}

func (w *Watcher) check(ctx context.Context, now time.Time) {
	events, err := w.provider.GetSchedule(ctx, now.Year())
	if err != nil {
		log.Printf("Error fetching schedule for session watcher: %s", err.Error())
		return
	}

	for _, event := range events {
		for _, session := range event.Sessions {
			start, err := time.Parse(time.RFC3339, session.StartDate)
			if err != nil {
				continue
			}
			if now.Before(start) || now.Sub(start) > startedWindow {
				continue
			}

			key := fmt.Sprintf("%d-%d-%s", now.Year(), event.Round, session.Code)
			if w.notified[key] {
				continue
			}
			w.notified[key] = true

			pubsub.SessionStartedPubSub.Publish(pubsub.PubSubSessionStartedPreffix, model.SessionStarted{
				Year:        now.Year(),
				EventName:   event.Name,
				SessionCode: session.Code,
				SessionName: session.Name,
			})
		}
	}
}
