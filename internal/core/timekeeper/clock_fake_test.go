package timekeeper

import (
	"sync"
	"time"
)

type fakeClock struct {
	mu      sync.Mutex
	now     time.Time
	tickers []*fakeTicker
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, time.March, 1, 9, 0, 0, 0, time.UTC)}
}

func (clock *fakeClock) Now() time.Time {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	return clock.now
}

func (clock *fakeClock) NewTicker(time.Duration) Ticker {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	ticker := &fakeTicker{ch: make(chan time.Time, 1)}
	clock.tickers = append(clock.tickers, ticker)
	return ticker
}

func (clock *fakeClock) Advance(d time.Duration) {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	clock.now = clock.now.Add(d)
}

// Fire delivers one poll signal to every live ticker.
func (clock *fakeClock) Fire() {
	clock.mu.Lock()
	now := clock.now
	tickers := append([]*fakeTicker(nil), clock.tickers...)
	clock.mu.Unlock()
	for _, ticker := range tickers {
		ticker.fire(now)
	}
}

func (clock *fakeClock) ActiveTickers() int {
	clock.mu.Lock()
	defer clock.mu.Unlock()
	active := 0
	for _, ticker := range clock.tickers {
		if !ticker.isStopped() {
			active++
		}
	}
	return active
}

type fakeTicker struct {
	mu      sync.Mutex
	ch      chan time.Time
	stopped bool
}

func (ticker *fakeTicker) C() <-chan time.Time {
	return ticker.ch
}

func (ticker *fakeTicker) Stop() {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	ticker.stopped = true
}

func (ticker *fakeTicker) isStopped() bool {
	ticker.mu.Lock()
	defer ticker.mu.Unlock()
	return ticker.stopped
}

func (ticker *fakeTicker) fire(now time.Time) {
	if ticker.isStopped() {
		return
	}
	select {
	case ticker.ch <- now:
	default:
	}
}
