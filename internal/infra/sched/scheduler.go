package sched

import (
	"sync"
	"time"

	"auction-hall/internal/usecase"
)

// TimerScheduler delivers callbacks from the Go runtime timer source. Each
// callback runs on its own goroutine; serialization is the coordinator's job.
type TimerScheduler struct{}

func NewTimerScheduler() *TimerScheduler {
	return &TimerScheduler{}
}

func (s *TimerScheduler) Once(d time.Duration, fn func()) usecase.TimerHandle {
	return &onceHandle{timer: time.AfterFunc(d, fn)}
}

func (s *TimerScheduler) Every(interval time.Duration, fn func()) usecase.TimerHandle {
	h := &repeatHandle{done: make(chan struct{})}
	ticker := time.NewTicker(interval)
	go func() {
		defer ticker.Stop()
		for {
			select {
			case <-ticker.C:
				fn()
			case <-h.done:
				return
			}
		}
	}()
	return h
}

type onceHandle struct {
	timer *time.Timer
}

func (h *onceHandle) Cancel() {
	h.timer.Stop()
}

type repeatHandle struct {
	once sync.Once
	done chan struct{}
}

func (h *repeatHandle) Cancel() {
	h.once.Do(func() { close(h.done) })
}
