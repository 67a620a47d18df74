package timekeeper

import (
	"time"

	"pomoboy/internal/core/model"
)

// EventType defines the type of TimeKeeper event.
type EventType string

const (
	EventModeChanged     EventType = "mode_changed"
	EventCompleted       EventType = "completed"
	EventRunStateChanged EventType = "run_state_changed"
	EventReset           EventType = "reset"
	EventProgress        EventType = "progress"
	EventConfigChanged   EventType = "config_changed"
)

// Cause records what triggered an event.
type Cause string

const (
	CauseUser       Cause = "user"
	CauseSkip       Cause = "skip"
	CauseReset      Cause = "reset"
	CauseCompletion Cause = "completion"
	CauseConfig     Cause = "config"
)

// State is a point-in-time copy of the timer.
type State struct {
	Mode                   model.Mode
	Remaining              int
	Running                bool
	CompletedFocusSessions int
	Cycle                  int
	Config                 model.Config
}

// Title renders the window title for the state.
func (state State) Title() string {
	return model.Title(state.Remaining, state.Mode)
}

// Event represents a TimeKeeper update for observers.
// Mode is the mode the event is about: the finished mode for EventCompleted,
// the new mode for EventModeChanged and the current mode otherwise.
type Event struct {
	Type  EventType
	Cause Cause
	Mode  model.Mode
	State State
	At    time.Time
}
