package notification

import (
	"context"
	"testing"
	"time"

	"f1telemetrycompare/pkg/model"
	"f1telemetrycompare/pkg/pubsub"
)

type fakeScheduleProvider struct {
	events []model.Event
}

func (f fakeScheduleProvider) GetSchedule(ctx context.Context, year int) ([]model.Event, error) {
	return f.events, nil
}

func TestWatcherPublishesOnce(t *testing.T) {
	now := time.Date(2023, 9, 2, 14, 5, 0, 0, time.UTC)
	provider := fakeScheduleProvider{
		events: []model.Event{
			{
				Round: 14,
				Name:  "Italian Grand Prix",
				Sessions: []model.ScheduledSession{
					// started five minutes ago
					{Code: "Q", Name: "Qualifying", StartDate: "2023-09-02T14:00:00Z"},
					// tomorrow
					{Code: "R", Name: "Race", StartDate: "2023-09-03T13:00:00Z"},
					// long gone
					{Code: "FP1", Name: "Practice 1", StartDate: "2023-09-01T11:30:00Z"},
				},
			},
		},
	}

	started := pubsub.SessionStartedPubSub.Subscribe(pubsub.PubSubSessionStartedPreffix)
	received := make(chan model.SessionStarted, 4)
	done := make(chan bool)
	go func() {
		for {
			select {
			case ss := <-started:
				received <- ss
			case <-done:
				return
			}
		}
	}()
	defer close(done)

	w := NewWatcher(provider)
	w.check(context.Background(), now)
	w.check(context.Background(), now.Add(time.Minute))

	select {
	case ss := <-received:
		if ss.SessionCode != "Q" || ss.EventName != "Italian Grand Prix" {
			t.Errorf("got %+v, want the qualifying session", ss)
		}
	case <-time.After(time.Second):
		t.Fatal("no session published")
	}

	select {
	case ss := <-received:
		t.Errorf("session published twice: %+v", ss)
	case <-time.After(50 * time.Millisecond):
	}
}
