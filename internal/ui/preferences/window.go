package preferences

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// ErrInvalidField is returned when a duration or interval entry is not a
// positive whole number.
var ErrInvalidField = errors.New("invalid field")

// Window handles the preferences UI.
type Window struct {
	window        fyne.Window
	settings      Settings
	onSave        func(Settings) error
	pomodoro      *widget.Entry
	shortBreak    *widget.Entry
	longBreak     *widget.Entry
	interval      *widget.Entry
	autoBreaks    *widget.Check
	autoPomodoros *widget.Check
	sound         *widget.Check
	volume        *widget.Slider
}

// New creates a preferences window. onSave may reject the settings, in
// which case the error is shown and the window stays open.
func New(app fyne.App, settings Settings, onSave func(Settings) error) *Window {
	window := app.NewWindow("Pomoboy Settings")

	prefs := &Window{
		window:        window,
		onSave:        onSave,
		pomodoro:      widget.NewEntry(),
		shortBreak:    widget.NewEntry(),
		longBreak:     widget.NewEntry(),
		interval:      widget.NewEntry(),
		autoBreaks:    widget.NewCheck("Auto-start breaks", nil),
		autoPomodoros: widget.NewCheck("Auto-start pomodoros", nil),
		sound:         widget.NewCheck("Sound effects", nil),
		volume:        widget.NewSlider(0, 1),
	}
	prefs.volume.Step = 0.05
	prefs.sound.OnChanged = func(enabled bool) {
		if enabled {
			prefs.volume.Enable()
		} else {
			prefs.volume.Disable()
		}
	}

	form := container.NewVBox(
		widget.NewLabelWithStyle("Timer", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewGridWithColumns(3,
			widget.NewLabel("Pomodoro"), prefs.pomodoro, widget.NewLabel("min"),
			widget.NewLabel("Short break"), prefs.shortBreak, widget.NewLabel("min"),
			widget.NewLabel("Long break"), prefs.longBreak, widget.NewLabel("min"),
			widget.NewLabel("Long break every"), prefs.interval, widget.NewLabel("pomodoros"),
		),
		prefs.autoBreaks,
		prefs.autoPomodoros,
		widget.NewLabelWithStyle("Sound", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		prefs.sound,
		widget.NewLabel("Volume"),
		prefs.volume,
	)

	saveButton := widget.NewButton("Save", prefs.handleSave)
	saveButton.Importance = widget.HighImportance
	cancelButton := widget.NewButton("Cancel", window.Hide)
	buttons := container.NewHBox(cancelButton, layout.NewSpacer(), saveButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 420))
	window.SetCloseIntercept(window.Hide)

	prefs.UpdateSettings(settings)
	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Settings returns the last saved or loaded settings.
func (prefs *Window) Settings() Settings {
	return prefs.settings
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.pomodoro.SetText(strconv.Itoa(settings.PomodoroMinutes))
	prefs.shortBreak.SetText(strconv.Itoa(settings.ShortBreakMinutes))
	prefs.longBreak.SetText(strconv.Itoa(settings.LongBreakMinutes))
	prefs.interval.SetText(strconv.Itoa(settings.LongBreakInterval))
	prefs.autoBreaks.SetChecked(settings.AutoStartBreaks)
	prefs.autoPomodoros.SetChecked(settings.AutoStartPomodoros)
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.volume.SetValue(settings.Volume)
}

func (prefs *Window) handleSave() {
	settings, err := prefs.collect()
	if err == nil && prefs.onSave != nil {
		err = prefs.onSave(settings)
	}
	if err != nil {
		dialog.ShowError(err, prefs.window)
		return
	}
	prefs.settings = settings
	prefs.window.Hide()
}

func (prefs *Window) collect() (Settings, error) {
	settings := prefs.settings

	fields := []struct {
		name   string
		entry  *widget.Entry
		target *int
	}{
		{"pomodoro", prefs.pomodoro, &settings.PomodoroMinutes},
		{"short break", prefs.shortBreak, &settings.ShortBreakMinutes},
		{"long break", prefs.longBreak, &settings.LongBreakMinutes},
		{"long break interval", prefs.interval, &settings.LongBreakInterval},
	}
	for _, field := range fields {
		value, ok := parsePositiveInt(field.entry.Text)
		if !ok {
			return prefs.settings, fmt.Errorf("%w: %s must be a positive whole number", ErrInvalidField, field.name)
		}
		*field.target = value
	}

	settings.AutoStartBreaks = prefs.autoBreaks.Checked
	settings.AutoStartPomodoros = prefs.autoPomodoros.Checked
	settings.SoundEnabled = prefs.sound.Checked
	settings.Volume = prefs.volume.Value
	return settings, nil
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
