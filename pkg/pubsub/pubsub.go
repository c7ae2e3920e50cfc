package pubsub

import (
	"sync"

	"f1telemetrycompare/pkg/model"
)

const PubSubSessionStartedPreffix = "session-started"

// SessionStartedPubSub carries one message per scheduled session that
// crosses its start time.
var SessionStartedPubSub = NewPubSub[model.SessionStarted]()

type PubSub[T any] struct {
	mu   sync.Mutex
	subs map[string][]chan T
}

func NewPubSub[T any]() *PubSub[T] {
	return &PubSub[T]{
		subs: make(map[string][]chan T),
	}
}

func (ps *PubSub[T]) Subscribe(topic string) <-chan T {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	ch := make(chan T)
	ps.subs[topic] = append(ps.subs[topic], ch)
	return ch
}

func (ps *PubSub[T]) Publish(topic string, data T) {
	ps.mu.Lock()
	defer ps.mu.Unlock()
	for _, ch := range ps.subs[topic] {
		ch <- data
	}
}
