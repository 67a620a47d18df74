package model

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates a configuration that the timer refuses to apply.
var ErrInvalidConfig = errors.New("invalid timer configuration")

// Config contains the user-tunable timer settings.
type Config struct {
	PomodoroMinutes    int
	ShortBreakMinutes  int
	LongBreakMinutes   int
	AutoStartBreaks    bool
	AutoStartPomodoros bool
	LongBreakInterval  int
}

// DefaultConfig returns the classic 25/5/15 schedule with a long break every fourth focus session.
func DefaultConfig() Config {
	return Config{
		PomodoroMinutes:    25,
		ShortBreakMinutes:  5,
		LongBreakMinutes:   15,
		AutoStartBreaks:    false,
		AutoStartPomodoros: false,
		LongBreakInterval:  4,
	}
}

// Validate reports the first field that makes the configuration unusable.
func (config Config) Validate() error {
	if config.PomodoroMinutes <= 0 {
		return fmt.Errorf("%w: pomodoro minutes must be positive, got %d", ErrInvalidConfig, config.PomodoroMinutes)
	}
	if config.ShortBreakMinutes <= 0 {
		return fmt.Errorf("%w: short break minutes must be positive, got %d", ErrInvalidConfig, config.ShortBreakMinutes)
	}
	if config.LongBreakMinutes <= 0 {
		return fmt.Errorf("%w: long break minutes must be positive, got %d", ErrInvalidConfig, config.LongBreakMinutes)
	}
	if config.LongBreakInterval < 1 {
		return fmt.Errorf("%w: long break interval must be at least 1, got %d", ErrInvalidConfig, config.LongBreakInterval)
	}
	return nil
}

// Minutes returns the configured length of mode in minutes.
func (config Config) Minutes(mode Mode) int {
	switch mode {
	case ShortBreak:
		return config.ShortBreakMinutes
	case LongBreak:
		return config.LongBreakMinutes
	default:
		return config.PomodoroMinutes
	}
}

// DurationFor returns the nominal countdown length of mode in seconds.
func DurationFor(mode Mode, config Config) int {
	return config.Minutes(mode) * 60
}

// AutoStarts reports whether a countdown entering mode after a completion starts on its own.
func (config Config) AutoStarts(mode Mode) bool {
	if mode == Focus {
		return config.AutoStartPomodoros
	}
	return config.AutoStartBreaks
}
