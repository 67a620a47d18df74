// Package countdown implements a wall-clock sampled countdown.
//
// The engine never counts ticks. When a run starts it records a baseline pair
// (start time, remaining seconds) and every Tick recomputes the remaining time
// from the elapsed wall-clock time, so late or dropped polls cannot cause drift.
package countdown

import "time"

// Engine holds the remaining time of a single countdown.
// It is not safe for concurrent use; callers serialize access.
type Engine struct {
	remaining int
	running   bool

	baselineAt        time.Time
	baselineRemaining int
}

// New returns an engine loaded with seconds.
func New(seconds int) *Engine {
	engine := &Engine{}
	engine.Load(seconds)
	return engine
}

// Load replaces any in-flight countdown with a paused one of the given length.
func (engine *Engine) Load(seconds int) {
	if seconds < 0 {
		seconds = 0
	}
	engine.remaining = seconds
	engine.running = false
	engine.baselineAt = time.Time{}
	engine.baselineRemaining = seconds
}

// Start begins counting down from the current remaining time.
// It reports whether the engine transitioned to running.
func (engine *Engine) Start(now time.Time) bool {
	if engine.running || engine.remaining <= 0 {
		return false
	}
	engine.running = true
	engine.baselineAt = now
	engine.baselineRemaining = engine.remaining
	return true
}

// Stop pauses the countdown and keeps the remaining time.
// It reports whether the engine was running.
func (engine *Engine) Stop() bool {
	if !engine.running {
		return false
	}
	engine.running = false
	return true
}

// Reset stops the countdown and loads seconds.
func (engine *Engine) Reset(seconds int) {
	engine.Stop()
	engine.Load(seconds)
}

// Tick samples the wall clock. It returns true exactly once per run, on the
// tick that brings the remaining time to zero.
func (engine *Engine) Tick(now time.Time) bool {
	if !engine.running {
		return false
	}

	elapsed := now.Sub(engine.baselineAt)
	if elapsed < 0 {
		elapsed = 0
	}
	remaining := engine.baselineRemaining - int(elapsed/time.Second)
	if remaining > engine.remaining {
		// A clock stepping backwards never gives time back.
		remaining = engine.remaining
	}
	if remaining > 0 {
		engine.remaining = remaining
		return false
	}

	engine.remaining = 0
	engine.running = false
	return true
}

// Remaining returns the seconds left in the current countdown.
func (engine *Engine) Remaining() int {
	return engine.remaining
}

// Running reports whether the countdown is active.
func (engine *Engine) Running() bool {
	return engine.running
}
