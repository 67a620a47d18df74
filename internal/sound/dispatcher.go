package sound

import (
	"context"
	"log"
	"sync/atomic"

	"pomoboy/internal/core/timekeeper"
)

// Dispatcher turns timer events into cues.
type Dispatcher struct {
	player  Player
	enabled atomic.Bool
}

// NewDispatcher creates an enabled dispatcher that plays through player.
func NewDispatcher(player Player) *Dispatcher {
	if player == nil {
		player = Silent{}
	}
	dispatcher := &Dispatcher{player: player}
	dispatcher.enabled.Store(true)
	return dispatcher
}

// SetEnabled mutes or unmutes the dispatcher.
func (dispatcher *Dispatcher) SetEnabled(enabled bool) {
	dispatcher.enabled.Store(enabled)
}

// Enabled reports whether cues are played.
func (dispatcher *Dispatcher) Enabled() bool {
	return dispatcher.enabled.Load()
}

// Run consumes events until ctx is cancelled or the channel is closed.
func (dispatcher *Dispatcher) Run(ctx context.Context, events <-chan timekeeper.Event) {
	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-events:
			if !ok {
				return
			}
			dispatcher.Handle(event)
		}
	}
}

// Handle plays the cues for a single event.
func (dispatcher *Dispatcher) Handle(event timekeeper.Event) {
	if !dispatcher.Enabled() {
		return
	}
	for _, cue := range CuesFor(event) {
		if err := dispatcher.player.Play(cue); err != nil {
			log.Printf("sound: play %s: %v", cue, err)
		}
	}
}

// CuesFor maps a timer event to the cues it should trigger.
func CuesFor(event timekeeper.Event) []Cue {
	switch event.Type {
	case timekeeper.EventCompleted:
		return []Cue{CueComplete}
	case timekeeper.EventModeChanged:
		if event.Cause == timekeeper.CauseSkip {
			return []Cue{CueButton, CueModeChange}
		}
		return []Cue{CueModeChange}
	case timekeeper.EventRunStateChanged:
		if event.Cause != timekeeper.CauseUser {
			return nil
		}
		if event.State.Running {
			return []Cue{CueStart}
		}
		return []Cue{CueStop}
	case timekeeper.EventReset:
		return []Cue{CueReset}
	default:
		return nil
	}
}
