package screen

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

// Callbacks contains the handlers behind the handheld buttons.
type Callbacks struct {
	OnPrevious func()
	OnNext     func()
	OnToggle   func()
	OnReset    func()
	OnSettings func()
}

// NewControls builds the button deck under the screen: a D-pad for mode
// cycling, A and B for toggle and reset, SELECT and START below.
func NewControls(callbacks Callbacks) fyne.CanvasObject {
	dpad := container.NewHBox(
		widget.NewButton("◀", func() { invoke(callbacks.OnPrevious) }),
		widget.NewButton("▶", func() { invoke(callbacks.OnNext) }),
	)

	buttonB := widget.NewButton("B", func() { invoke(callbacks.OnReset) })
	buttonA := widget.NewButton("A", func() { invoke(callbacks.OnToggle) })
	buttonA.Importance = widget.HighImportance
	buttonB.Importance = widget.DangerImportance
	actions := container.NewHBox(buttonB, buttonA)

	selectButton := widget.NewButton("SELECT", func() { invoke(callbacks.OnSettings) })
	startButton := widget.NewButton("START", func() { invoke(callbacks.OnToggle) })
	selectButton.Importance = widget.LowImportance
	startButton.Importance = widget.LowImportance

	return container.NewVBox(
		container.NewHBox(dpad, layout.NewSpacer(), actions),
		container.NewCenter(container.NewHBox(selectButton, startButton)),
	)
}

// HandleKey maps a key press to a callback and reports whether it was used.
// Space and Return toggle, R resets, Left and Right cycle modes and S opens
// settings.
func HandleKey(name fyne.KeyName, callbacks Callbacks) bool {
	switch name {
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
		invoke(callbacks.OnToggle)
	case fyne.KeyR:
		invoke(callbacks.OnReset)
	case fyne.KeyLeft:
		invoke(callbacks.OnPrevious)
	case fyne.KeyRight:
		invoke(callbacks.OnNext)
	case fyne.KeyS:
		invoke(callbacks.OnSettings)
	default:
		return false
	}
	return true
}

// BindKeys installs HandleKey on a window canvas.
func BindKeys(target fyne.Canvas, callbacks Callbacks) {
	target.SetOnTypedKey(func(event *fyne.KeyEvent) {
		HandleKey(event.Name, callbacks)
	})
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}
