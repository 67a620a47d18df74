package animation

import (
	"context"
	"math"
	"sync"
	"time"
)

// Config contains pulse timing values.
type Config struct {
	Period     time.Duration
	Frames     int
	MinOpacity float64
}

// Engine fades a status indicator in and out while a countdown runs.
type Engine struct {
	mu      sync.Mutex
	config  Config
	update  func(opacity float64)
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// New creates a new pulse engine. update receives opacities in [MinOpacity, 1].
func New(config Config, update func(opacity float64)) *Engine {
	if config.Frames <= 0 {
		config.Frames = DefaultConfig().Frames
	}
	if config.Period <= 0 {
		config.Period = DefaultConfig().Period
	}
	config.MinOpacity = math.Max(0, math.Min(1, config.MinOpacity))
	return &Engine{
		config: config,
		update: update,
	}
}

// Start begins pulsing. Calling Start while pulsing is a no-op.
func (engine *Engine) Start(ctx context.Context) {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	if engine.running {
		return
	}
	runCtx, cancel := context.WithCancel(ctx)
	engine.cancel = cancel
	engine.done = make(chan struct{})
	engine.running = true

	go engine.run(runCtx, engine.done)
}

// Stop terminates the pulse and leaves the indicator fully opaque.
func (engine *Engine) Stop() {
	engine.mu.Lock()
	if !engine.running {
		engine.mu.Unlock()
		return
	}
	engine.cancel()
	done := engine.done
	engine.cancel = nil
	engine.running = false
	engine.mu.Unlock()

	<-done
	engine.update(1)
}

// Running reports whether the pulse is active.
func (engine *Engine) Running() bool {
	engine.mu.Lock()
	defer engine.mu.Unlock()
	return engine.running
}

func (engine *Engine) run(ctx context.Context, done chan struct{}) {
	defer close(done)
	frameDelay := engine.config.Period / time.Duration(engine.config.Frames)
	for frame := 0; ; frame = (frame + 1) % engine.config.Frames {
		engine.update(engine.Opacity(frame))
		if !sleepWithContext(ctx, frameDelay) {
			return
		}
	}
}

// Opacity returns the opacity of frame within one period: fully opaque at the
// start and end, MinOpacity halfway through.
func (engine *Engine) Opacity(frame int) float64 {
	phase := float64(frame%engine.config.Frames) / float64(engine.config.Frames)
	depth := (1 - math.Cos(2*math.Pi*phase)) / 2
	return 1 - depth*(1-engine.config.MinOpacity)
}

func sleepWithContext(ctx context.Context, duration time.Duration) bool {
	timer := time.NewTimer(duration)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
