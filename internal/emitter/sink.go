package emitter

import (
	"context"
	"sync"
)

// Sink is the bounded channel a run writes events to. The consumer ranges
// over Events until it is closed, or calls Detach to stop the run early.
type Sink struct {
	ch       chan Event
	detached chan struct{}
	once     sync.Once
}

func NewSink(buffer int) *Sink {
	return &Sink{
		ch:       make(chan Event, max(buffer, 0)),
		detached: make(chan struct{}),
	}
}

func (s *Sink) Events() <-chan Event { return s.ch }

// Detach cancels the run feeding this sink. Safe to call more than once.
func (s *Sink) Detach() { s.once.Do(func() { close(s.detached) }) }

// Detached is closed once Detach has been called.
func (s *Sink) Detached() <-chan struct{} { return s.detached }

func (s *Sink) send(ctx context.Context, ev Event) bool {
	select {
	case <-s.detached:
		return false
	case <-ctx.Done():
		return false
	default:
	}
	select {
	case s.ch <- ev:
		return true
	case <-s.detached:
		return false
	case <-ctx.Done():
		return false
	}
}

func (s *Sink) close() { close(s.ch) }
