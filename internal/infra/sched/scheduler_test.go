package sched_test

import (
	"sync/atomic"
	"testing"
	"time"

	"auction-hall/internal/infra/sched"

	"github.com/stretchr/testify/assert"
)

func TestOnce(t *testing.T) {
	s := sched.NewTimerScheduler()

	t.Run("fires after the delay", func(t *testing.T) {
		fired := make(chan struct{})
		s.Once(10*time.Millisecond, func() { close(fired) })

		select {
		case <-fired:
		case <-time.After(time.Second):
			t.Fatal("timer did not fire")
		}
	})

	t.Run("cancel prevents the callback", func(t *testing.T) {
		var fired atomic.Bool
		h := s.Once(50*time.Millisecond, func() { fired.Store(true) })
		h.Cancel()

		time.Sleep(150 * time.Millisecond)
		assert.False(t, fired.Load())
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		h := s.Once(50*time.Millisecond, func() {})
		h.Cancel()
		h.Cancel()
	})
}

func TestEvery(t *testing.T) {
	s := sched.NewTimerScheduler()

	t.Run("fires repeatedly until cancelled", func(t *testing.T) {
		var ticks atomic.Int32
		h := s.Every(10*time.Millisecond, func() { ticks.Add(1) })

		assert.Eventually(t, func() bool { return ticks.Load() >= 3 },
			time.Second, 5*time.Millisecond)

		h.Cancel()
		settled := ticks.Load()
		time.Sleep(100 * time.Millisecond)
		assert.LessOrEqual(t, ticks.Load(), settled+1, "at most one in-flight tick after cancel")
	})

	t.Run("cancel is idempotent", func(t *testing.T) {
		h := s.Every(10*time.Millisecond, func() {})
		h.Cancel()
		h.Cancel()
	})
}
