package model

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDurationForUsesConfiguredMinutes(t *testing.T) {
	configs := []Config{
		DefaultConfig(),
		{PomodoroMinutes: 1, ShortBreakMinutes: 1, LongBreakMinutes: 1, LongBreakInterval: 1},
		{PomodoroMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30, LongBreakInterval: 2},
		{PomodoroMinutes: 120, ShortBreakMinutes: 7, LongBreakMinutes: 45, LongBreakInterval: 6},
	}
	for _, config := range configs {
		assert.Equal(t, config.PomodoroMinutes*60, DurationFor(Focus, config))
		assert.Equal(t, config.ShortBreakMinutes*60, DurationFor(ShortBreak, config))
		assert.Equal(t, config.LongBreakMinutes*60, DurationFor(LongBreak, config))
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "defaults", mutate: func(*Config) {}, ok: true},
		{name: "zero pomodoro", mutate: func(c *Config) { c.PomodoroMinutes = 0 }},
		{name: "negative short break", mutate: func(c *Config) { c.ShortBreakMinutes = -5 }},
		{name: "zero long break", mutate: func(c *Config) { c.LongBreakMinutes = 0 }},
		{name: "zero interval", mutate: func(c *Config) { c.LongBreakInterval = 0 }},
		{name: "interval of one", mutate: func(c *Config) { c.LongBreakInterval = 1 }, ok: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			config := DefaultConfig()
			tc.mutate(&config)
			err := config.Validate()
			if tc.ok {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrInvalidConfig))
		})
	}
}

func TestModeCycling(t *testing.T) {
	assert.Equal(t, ShortBreak, Focus.Next())
	assert.Equal(t, LongBreak, ShortBreak.Next())
	assert.Equal(t, Focus, LongBreak.Next())

	assert.Equal(t, LongBreak, Focus.Previous())
	assert.Equal(t, Focus, ShortBreak.Previous())
	assert.Equal(t, ShortBreak, LongBreak.Previous())

	for _, mode := range Modes() {
		assert.Equal(t, mode, mode.Next().Previous())
		assert.Equal(t, mode, mode.Previous().Next())
	}
}

func TestModeLabels(t *testing.T) {
	assert.Equal(t, "Focus", Focus.Label())
	assert.Equal(t, "Break", ShortBreak.Label())
	assert.Equal(t, "Long Break", LongBreak.Label())
	assert.Equal(t, "LONG BREAK", LongBreak.ScreenLabel())
	assert.Equal(t, "POMO", Focus.IndicatorLabel())
	assert.True(t, LongBreak.IsBreak())
	assert.False(t, Focus.IsBreak())
}

func TestParseMode(t *testing.T) {
	for _, mode := range Modes() {
		parsed, err := ParseMode(mode.String())
		require.NoError(t, err)
		assert.Equal(t, mode, parsed)
	}
	_, err := ParseMode("lunch")
	assert.Error(t, err)
}

func TestAutoStarts(t *testing.T) {
	config := DefaultConfig()
	config.AutoStartBreaks = true
	assert.True(t, config.AutoStarts(ShortBreak))
	assert.True(t, config.AutoStarts(LongBreak))
	assert.False(t, config.AutoStarts(Focus))
}

func TestFormatting(t *testing.T) {
	assert.Equal(t, "25:00", FormatClock(1500))
	assert.Equal(t, "00:09", FormatClock(9))
	assert.Equal(t, "00:00", FormatClock(-3))
	assert.Equal(t, "120:05", FormatClock(7205))
	assert.Equal(t, "04:59 - Break", Title(299, ShortBreak))
	assert.Equal(t, "15:00 - Long Break", Title(900, LongBreak))
}
