package animation

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type opacityRecorder struct {
	mu     sync.Mutex
	values []float64
}

func (recorder *opacityRecorder) record(value float64) {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	recorder.values = append(recorder.values, value)
}

func (recorder *opacityRecorder) snapshot() []float64 {
	recorder.mu.Lock()
	defer recorder.mu.Unlock()
	return append([]float64(nil), recorder.values...)
}

func TestOpacityCurve(t *testing.T) {
	engine := New(Config{Period: time.Second, Frames: 4, MinOpacity: 0.5}, func(float64) {})
	assert.InDelta(t, 1.0, engine.Opacity(0), 1e-9)
	assert.InDelta(t, 0.75, engine.Opacity(1), 1e-9)
	assert.InDelta(t, 0.5, engine.Opacity(2), 1e-9)
	assert.InDelta(t, 0.75, engine.Opacity(3), 1e-9)
	assert.InDelta(t, 1.0, engine.Opacity(4), 1e-9)
}

func TestPulseRunsUntilStopped(t *testing.T) {
	recorder := &opacityRecorder{}
	engine := New(Config{Period: 40 * time.Millisecond, Frames: 4, MinOpacity: 0.2}, recorder.record)

	engine.Start(context.Background())
	engine.Start(context.Background())
	require.True(t, engine.Running())
	require.Eventually(t, func() bool { return len(recorder.snapshot()) >= 5 }, time.Second, 5*time.Millisecond)

	engine.Stop()
	assert.False(t, engine.Running())
	values := recorder.snapshot()
	assert.Equal(t, 1.0, values[len(values)-1])
	for _, value := range values {
		assert.GreaterOrEqual(t, value, 0.2-1e-9)
		assert.LessOrEqual(t, value, 1.0)
	}

	count := len(recorder.snapshot())
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, count, len(recorder.snapshot()), "no updates after Stop")
}

func TestStopWithoutStart(t *testing.T) {
	calls := 0
	engine := New(DefaultConfig(), func(float64) { calls++ })
	engine.Stop()
	assert.Equal(t, 0, calls)
}

func TestParentCancelEndsPulse(t *testing.T) {
	recorder := &opacityRecorder{}
	engine := New(Config{Period: 20 * time.Millisecond, Frames: 2, MinOpacity: 0.5}, recorder.record)
	ctx, cancel := context.WithCancel(context.Background())
	engine.Start(ctx)
	cancel()
	engine.Stop()
	assert.False(t, engine.Running())
}
