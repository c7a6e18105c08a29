// Package observable fans countdown snapshots out to the views rendering them.
package observable

import (
	"sync"

	"github.com/cloudposse/countdown/pkg/countdown"
)

// Subject keeps the latest snapshot and delivers it to every subscriber.
// Slow subscribers never block Publish: each one holds at most one pending
// value, and a newer value replaces an unread older one.
type Subject struct {
	mu          sync.Mutex
	subscribers map[int]chan countdown.Remaining
	nextID      int
	latest      countdown.Remaining
	hasLatest   bool
	closed      bool
}

// NewSubject creates an empty Subject.
func NewSubject() *Subject {
	return &Subject{subscribers: make(map[int]chan countdown.Remaining)}
}

// Publish records remaining as the latest snapshot and offers it to all subscribers.
func (s *Subject) Publish(remaining countdown.Remaining) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.latest = remaining
	s.hasLatest = true

	for _, ch := range s.subscribers {
		offer(ch, remaining)
	}
}

// offer replaces whatever is pending in ch with remaining. Callers hold s.mu,
// the only sender, so the second send cannot block.
func offer(ch chan countdown.Remaining, remaining countdown.Remaining) {
	select {
	case ch <- remaining:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	ch <- remaining
}

// Subscribe registers a new subscriber. The channel is primed with the latest
// snapshot when there is one. The cancel func unsubscribes and closes the
// channel; calling it again does nothing.
func (s *Subject) Subscribe() (<-chan countdown.Remaining, func()) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ch := make(chan countdown.Remaining, 1)
	if s.closed {
		close(ch)
		return ch, func() {}
	}

	id := s.nextID
	s.nextID++
	s.subscribers[id] = ch
	if s.hasLatest {
		ch <- s.latest
	}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if c, ok := s.subscribers[id]; ok {
				delete(s.subscribers, id)
				close(c)
			}
		})
	}
	return ch, cancel
}

// Latest returns the most recent snapshot, if any was published.
func (s *Subject) Latest() (countdown.Remaining, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.latest, s.hasLatest
}

// Len returns the number of active subscribers.
func (s *Subject) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subscribers)
}

// Close unsubscribes everyone. Later Publish calls are ignored.
func (s *Subject) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return
	}
	s.closed = true
	for id, ch := range s.subscribers {
		delete(s.subscribers, id)
		close(ch)
	}
}
