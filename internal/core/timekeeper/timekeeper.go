package timekeeper

import (
	"sync"
	"time"

	"pomoboy/internal/core/countdown"
	"pomoboy/internal/core/model"
)

// DefaultPollInterval is how often a running countdown samples the clock.
const DefaultPollInterval = 100 * time.Millisecond

// Options contains runtime options for TimeKeeper.
type Options struct {
	Clock        Clock
	PollInterval time.Duration
}

// TimeKeeper is the pomodoro state machine. It owns the countdown engine, the
// current mode and the session counters, and chains sessions on completion.
type TimeKeeper struct {
	mu             sync.Mutex
	config         model.Config
	options        Options
	mode           model.Mode
	engine         *countdown.Engine
	completedFocus int
	cycle          int
	events         []chan Event
	poller         *poller
	closed         bool
}

type poller struct {
	ticker Ticker
	stopCh chan struct{}
}

// New creates a TimeKeeper in Focus mode with the focus duration loaded.
// An invalid config is replaced by model.DefaultConfig.
func New(config model.Config, options Options) *TimeKeeper {
	if options.Clock == nil {
		options.Clock = SystemClock
	}
	if options.PollInterval <= 0 {
		options.PollInterval = DefaultPollInterval
	}
	if config.Validate() != nil {
		config = model.DefaultConfig()
	}

	return &TimeKeeper{
		config:  config,
		options: options,
		mode:    model.Focus,
		engine:  countdown.New(model.DurationFor(model.Focus, config)),
		cycle:   1,
	}
}

// Subscribe registers a new observer channel.
// Slow observers miss events rather than stall the timer.
func (keeper *TimeKeeper) Subscribe(buffer int) <-chan Event {
	if buffer <= 0 {
		buffer = 1
	}
	ch := make(chan Event, buffer)
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		close(ch)
		return ch
	}
	keeper.events = append(keeper.events, ch)
	return ch
}

// Snapshot returns the current state.
func (keeper *TimeKeeper) Snapshot() State {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	return keeper.snapshotLocked()
}

// Start resumes or begins the countdown for the current mode.
func (keeper *TimeKeeper) Start() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.startLocked(CauseUser)
}

// Stop pauses the countdown, keeping the remaining time.
func (keeper *TimeKeeper) Stop() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.stopLocked(CauseUser)
}

// ToggleRunning starts a paused countdown or pauses a running one.
func (keeper *TimeKeeper) ToggleRunning() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.engine.Running() {
		keeper.stopLocked(CauseUser)
		return
	}
	keeper.startLocked(CauseUser)
}

// Reset stops the countdown and reloads the full duration of the current mode.
func (keeper *TimeKeeper) Reset() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return
	}

	wasRunning := keeper.engine.Running()
	keeper.engine.Reset(model.DurationFor(keeper.mode, keeper.config))
	keeper.stopPollerLocked()
	if wasRunning {
		keeper.emitLocked(EventRunStateChanged, CauseReset, keeper.mode)
	}
	keeper.emitLocked(EventReset, CauseReset, keeper.mode)
}

// SkipNext stops the countdown and moves to the next mode in cyclic order.
// Session counters are left untouched.
func (keeper *TimeKeeper) SkipNext() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.skipLocked(keeper.mode.Next())
}

// SkipPrevious stops the countdown and moves to the previous mode in cyclic order.
// Session counters are left untouched.
func (keeper *TimeKeeper) SkipPrevious() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.skipLocked(keeper.mode.Previous())
}

// ApplyConfig replaces the configuration. An invalid config is rejected and the
// previous one stays in effect. While idle the loaded countdown is resynced to
// the new duration of the current mode; a running countdown is left alone.
// After Close the call has no effect.
func (keeper *TimeKeeper) ApplyConfig(config model.Config) error {
	if err := config.Validate(); err != nil {
		return err
	}

	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	if keeper.closed {
		return nil
	}
	keeper.config = config
	if !keeper.engine.Running() {
		keeper.engine.Load(model.DurationFor(keeper.mode, config))
	}
	keeper.emitLocked(EventConfigChanged, CauseConfig, keeper.mode)
	return nil
}

// Tick samples the clock and advances a running countdown.
// It is called by the internal poller and is safe to call at any time.
func (keeper *TimeKeeper) Tick() {
	keeper.mu.Lock()
	defer keeper.mu.Unlock()
	keeper.tickLocked(keeper.options.Clock.Now())
}

// Close cancels polling and closes every observer channel.
func (keeper *TimeKeeper) Close() {
	keeper.mu.Lock()
	if keeper.closed {
		keeper.mu.Unlock()
		return
	}
	keeper.closed = true
	keeper.engine.Stop()
	keeper.stopPollerLocked()
	events := keeper.events
	keeper.events = nil
	keeper.mu.Unlock()

	for _, ch := range events {
		close(ch)
	}
}

func (keeper *TimeKeeper) startLocked(cause Cause) {
	if keeper.closed {
		return
	}
	if !keeper.engine.Start(keeper.options.Clock.Now()) {
		return
	}
	keeper.startPollerLocked()
	keeper.emitLocked(EventRunStateChanged, cause, keeper.mode)
}

func (keeper *TimeKeeper) stopLocked(cause Cause) {
	if !keeper.engine.Stop() {
		return
	}
	keeper.stopPollerLocked()
	keeper.emitLocked(EventRunStateChanged, cause, keeper.mode)
}

func (keeper *TimeKeeper) skipLocked(target model.Mode) {
	if keeper.closed {
		return
	}
	keeper.stopLocked(CauseSkip)
	keeper.switchModeLocked(target, CauseSkip)
}

// switchModeLocked loads the duration of mode without starting it.
func (keeper *TimeKeeper) switchModeLocked(mode model.Mode, cause Cause) {
	keeper.mode = mode
	keeper.engine.Load(model.DurationFor(mode, keeper.config))
	keeper.emitLocked(EventModeChanged, cause, mode)
}

func (keeper *TimeKeeper) tickLocked(now time.Time) {
	if keeper.closed || !keeper.engine.Running() {
		return
	}

	before := keeper.engine.Remaining()
	if keeper.engine.Tick(now) {
		keeper.stopPollerLocked()
		keeper.completeLocked(now)
		return
	}
	if keeper.engine.Remaining() != before {
		keeper.emitLocked(EventProgress, "", keeper.mode)
	}
}

// completeLocked runs the follow-up of a countdown reaching zero. It finishes
// the whole transition, including any auto-start, before the lock is released.
func (keeper *TimeKeeper) completeLocked(now time.Time) {
	finished := keeper.mode
	var next model.Mode
	if finished == model.Focus {
		keeper.completedFocus++
		next = model.ShortBreak
		if keeper.completedFocus%keeper.config.LongBreakInterval == 0 {
			next = model.LongBreak
		}
	} else {
		next = model.Focus
		keeper.cycle++
	}
	keeper.emitLocked(EventCompleted, CauseCompletion, finished)

	keeper.switchModeLocked(next, CauseCompletion)
	if keeper.config.AutoStarts(next) && keeper.engine.Start(now) {
		keeper.startPollerLocked()
	}
	keeper.emitLocked(EventRunStateChanged, CauseCompletion, next)
}

func (keeper *TimeKeeper) startPollerLocked() {
	if keeper.poller != nil {
		return
	}
	current := &poller{
		ticker: keeper.options.Clock.NewTicker(keeper.options.PollInterval),
		stopCh: make(chan struct{}),
	}
	keeper.poller = current
	go keeper.poll(current)
}

func (keeper *TimeKeeper) stopPollerLocked() {
	if keeper.poller == nil {
		return
	}
	keeper.poller.ticker.Stop()
	close(keeper.poller.stopCh)
	keeper.poller = nil
}

func (keeper *TimeKeeper) poll(current *poller) {
	for {
		select {
		case <-current.stopCh:
			return
		case <-current.ticker.C():
			keeper.mu.Lock()
			if keeper.poller != current {
				keeper.mu.Unlock()
				return
			}
			keeper.tickLocked(keeper.options.Clock.Now())
			keeper.mu.Unlock()
		}
	}
}

func (keeper *TimeKeeper) snapshotLocked() State {
	return State{
		Mode:                   keeper.mode,
		Remaining:              keeper.engine.Remaining(),
		Running:                keeper.engine.Running(),
		CompletedFocusSessions: keeper.completedFocus,
		Cycle:                  keeper.cycle,
		Config:                 keeper.config,
	}
}

func (keeper *TimeKeeper) emitLocked(eventType EventType, cause Cause, mode model.Mode) {
	event := Event{
		Type:  eventType,
		Cause: cause,
		Mode:  mode,
		State: keeper.snapshotLocked(),
		At:    keeper.options.Clock.Now(),
	}
	for _, ch := range keeper.events {
		select {
		case ch <- event:
		default:
		}
	}
}
