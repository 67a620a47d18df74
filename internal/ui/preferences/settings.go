package preferences

import (
	"pomoboy/internal/core/model"
)

// Settings defines editable user preferences.
type Settings struct {
	PomodoroMinutes    int
	ShortBreakMinutes  int
	LongBreakMinutes   int
	LongBreakInterval  int
	AutoStartBreaks    bool
	AutoStartPomodoros bool

	SoundEnabled bool
	Volume       float64
}

// DefaultSettings returns default settings for Pomoboy.
func DefaultSettings() Settings {
	return FromConfig(model.DefaultConfig(), Settings{
		SoundEnabled: true,
		Volume:       0.8,
	})
}

// FromConfig copies the timer fields of config over base.
func FromConfig(config model.Config, base Settings) Settings {
	base.PomodoroMinutes = config.PomodoroMinutes
	base.ShortBreakMinutes = config.ShortBreakMinutes
	base.LongBreakMinutes = config.LongBreakMinutes
	base.LongBreakInterval = config.LongBreakInterval
	base.AutoStartBreaks = config.AutoStartBreaks
	base.AutoStartPomodoros = config.AutoStartPomodoros
	return base
}

// Config converts settings to the timer configuration.
func (settings Settings) Config() model.Config {
	return model.Config{
		PomodoroMinutes:    settings.PomodoroMinutes,
		ShortBreakMinutes:  settings.ShortBreakMinutes,
		LongBreakMinutes:   settings.LongBreakMinutes,
		AutoStartBreaks:    settings.AutoStartBreaks,
		AutoStartPomodoros: settings.AutoStartPomodoros,
		LongBreakInterval:  settings.LongBreakInterval,
	}
}
