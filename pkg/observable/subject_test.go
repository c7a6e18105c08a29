package observable

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cloudposse/countdown/pkg/countdown"
)

func TestSubject_LatestWins(t *testing.T) {
	s := NewSubject()
	ch, cancel := s.Subscribe()
	defer cancel()

	s.Publish(countdown.Remaining{Seconds: 3})
	s.Publish(countdown.Remaining{Seconds: 2})
	s.Publish(countdown.Remaining{Seconds: 1})

	assert.Equal(t, countdown.Remaining{Seconds: 1}, <-ch)
	select {
	case r := <-ch:
		t.Fatalf("stale value queued: %v", r)
	default:
	}
}

func TestSubject_SubscribeReplaysLatest(t *testing.T) {
	s := NewSubject()

	_, ok := s.Latest()
	assert.False(t, ok)

	s.Publish(countdown.Remaining{Days: 2})

	latest, ok := s.Latest()
	require.True(t, ok)
	assert.Equal(t, countdown.Remaining{Days: 2}, latest)

	ch, cancel := s.Subscribe()
	defer cancel()
	assert.Equal(t, countdown.Remaining{Days: 2}, <-ch)
}

func TestSubject_FanOut(t *testing.T) {
	s := NewSubject()
	a, cancelA := s.Subscribe()
	b, cancelB := s.Subscribe()
	defer cancelA()
	defer cancelB()

	assert.Equal(t, 2, s.Len())

	s.Publish(countdown.Remaining{Expired: true})
	assert.Equal(t, countdown.Remaining{Expired: true}, <-a)
	assert.Equal(t, countdown.Remaining{Expired: true}, <-b)
}

func TestSubject_CancelClosesOnce(t *testing.T) {
	s := NewSubject()
	ch, cancel := s.Subscribe()

	cancel()
	assert.NotPanics(t, cancel)
	assert.Zero(t, s.Len())

	_, open := <-ch
	assert.False(t, open)

	// Publishing after unsubscribe must not reach the closed channel.
	assert.NotPanics(t, func() { s.Publish(countdown.Remaining{Seconds: 9}) })
}

func TestSubject_Close(t *testing.T) {
	s := NewSubject()
	ch, cancel := s.Subscribe()

	s.Close()
	s.Close()

	_, open := <-ch
	assert.False(t, open)
	assert.NotPanics(t, cancel)

	s.Publish(countdown.Remaining{Seconds: 5})
	_, ok := s.Latest()
	assert.False(t, ok)

	late, _ := s.Subscribe()
	_, open = <-late
	assert.False(t, open)
}

func TestSubject_ConcurrentPublish(t *testing.T) {
	s := NewSubject()
	ch, cancel := s.Subscribe()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			s.Publish(countdown.Remaining{Seconds: i})
		}(i)
	}
	wg.Wait()

	r := <-ch
	latest, _ := s.Latest()
	assert.Equal(t, latest, r)
	cancel()
}
