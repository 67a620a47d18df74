package preferences

import (
	"errors"
	"testing"

	"pomoboy/internal/core/model"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultSettings(t *testing.T) {
	settings := DefaultSettings()
	assert.Equal(t, model.DefaultConfig(), settings.Config())
	assert.True(t, settings.SoundEnabled)
	assert.Equal(t, 0.8, settings.Volume)
}

func TestFromConfigKeepsSoundFields(t *testing.T) {
	base := Settings{SoundEnabled: false, Volume: 0.3}
	config := model.Config{PomodoroMinutes: 50, ShortBreakMinutes: 10, LongBreakMinutes: 30, LongBreakInterval: 3, AutoStartBreaks: true}

	settings := FromConfig(config, base)
	assert.Equal(t, config, settings.Config())
	assert.False(t, settings.SoundEnabled)
	assert.Equal(t, 0.3, settings.Volume)
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		input string
		want  int
		ok    bool
	}{
		{"25", 25, true},
		{" 7 ", 7, true},
		{"0", 0, false},
		{"-3", 0, false},
		{"abc", 0, false},
		{"", 0, false},
	}
	for _, tt := range tests {
		got, ok := parsePositiveInt(tt.input)
		assert.Equal(t, tt.ok, ok, tt.input)
		assert.Equal(t, tt.want, got, tt.input)
	}
}

func TestWindowSave(t *testing.T) {
	app := test.NewTempApp(t)
	var saved []Settings
	prefs := New(app, DefaultSettings(), func(settings Settings) error {
		saved = append(saved, settings)
		return nil
	})

	prefs.pomodoro.SetText("50")
	prefs.interval.SetText("2")
	prefs.autoBreaks.SetChecked(true)
	prefs.sound.SetChecked(false)
	prefs.handleSave()

	require.Len(t, saved, 1)
	assert.Equal(t, 50, saved[0].PomodoroMinutes)
	assert.Equal(t, 5, saved[0].ShortBreakMinutes)
	assert.Equal(t, 2, saved[0].LongBreakInterval)
	assert.True(t, saved[0].AutoStartBreaks)
	assert.False(t, saved[0].SoundEnabled)
	assert.Equal(t, saved[0], prefs.Settings())
}

func TestWindowRejectsInvalidEntry(t *testing.T) {
	app := test.NewTempApp(t)
	calls := 0
	prefs := New(app, DefaultSettings(), func(Settings) error {
		calls++
		return nil
	})

	prefs.shortBreak.SetText("0")
	_, err := prefs.collect()
	require.ErrorIs(t, err, ErrInvalidField)
	assert.Contains(t, err.Error(), "short break")

	prefs.handleSave()
	assert.Zero(t, calls)
	assert.Equal(t, DefaultSettings(), prefs.Settings())
}

func TestWindowKeepsSettingsWhenSaveFails(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, DefaultSettings(), func(Settings) error {
		return errors.New("disk full")
	})

	prefs.longBreak.SetText("20")
	prefs.handleSave()
	assert.Equal(t, 15, prefs.Settings().LongBreakMinutes)
}

func TestUpdateSettingsFillsForm(t *testing.T) {
	app := test.NewTempApp(t)
	prefs := New(app, DefaultSettings(), nil)

	prefs.UpdateSettings(Settings{
		PomodoroMinutes:   45,
		ShortBreakMinutes: 8,
		LongBreakMinutes:  20,
		LongBreakInterval: 3,
		SoundEnabled:      true,
		Volume:            0.5,
	})
	assert.Equal(t, "45", prefs.pomodoro.Text)
	assert.Equal(t, "8", prefs.shortBreak.Text)
	assert.Equal(t, "20", prefs.longBreak.Text)
	assert.Equal(t, "3", prefs.interval.Text)
	assert.InDelta(t, 0.5, prefs.volume.Value, 1e-9)
}
