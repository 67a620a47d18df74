package tray

import (
	"fmt"

	"pomoboy/internal/core/model"
	"pomoboy/internal/core/timekeeper"

	"fyne.io/fyne/v2"
)

// MenuHost is the part of desktop.App the tray needs.
type MenuHost interface {
	SetSystemTrayMenu(menu *fyne.Menu)
}

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow        func()
	OnToggle      func()
	OnReset       func()
	OnNextMode    func()
	OnPrevMode    func()
	OnPreferences func()
	OnQuit        func()
}

// Manager handles system tray state.
type Manager struct {
	host       MenuHost
	callbacks  Callbacks
	statusItem *fyne.MenuItem
	toggleItem *fyne.MenuItem
	menu       *fyne.Menu
	running    bool
}

// New creates a tray manager with the provided callbacks and installs its menu.
func New(host MenuHost, callbacks Callbacks) *Manager {
	manager := &Manager{
		host:      host,
		callbacks: callbacks,
	}

	manager.statusItem = fyne.NewMenuItem("Status: starting...", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem(toggleLabel(false), func() { invoke(manager.callbacks.OnToggle) })

	manager.menu = fyne.NewMenu("Pomoboy",
		manager.statusItem,
		fyne.NewMenuItem("Show", func() { invoke(manager.callbacks.OnShow) }),
		fyne.NewMenuItemSeparator(),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", func() { invoke(manager.callbacks.OnReset) }),
		fyne.NewMenuItem("Next mode", func() { invoke(manager.callbacks.OnNextMode) }),
		fyne.NewMenuItem("Previous mode", func() { invoke(manager.callbacks.OnPrevMode) }),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Preferences", func() { invoke(manager.callbacks.OnPreferences) }),
		fyne.NewMenuItem("Quit", func() { invoke(manager.callbacks.OnQuit) }),
	)
	manager.refreshMenu()
	return manager
}

// Update refreshes the status line and the start/pause item from state.
func (manager *Manager) Update(state timekeeper.State) {
	manager.statusItem.Label = StatusLine(state)
	manager.running = state.Running
	manager.toggleItem.Label = toggleLabel(state.Running)
	manager.refreshMenu()
}

// Running reports the run state last passed to Update.
func (manager *Manager) Running() bool {
	return manager.running
}

// Menu returns the installed tray menu.
func (manager *Manager) Menu() *fyne.Menu {
	return manager.menu
}

// StatusLine formats the disabled status item, e.g. "Focus 24:59 (paused)".
func StatusLine(state timekeeper.State) string {
	status := fmt.Sprintf("%s %s", state.Mode.Label(), model.FormatClock(state.Remaining))
	if !state.Running {
		status += " (paused)"
	}
	return status
}

func toggleLabel(running bool) string {
	if running {
		return "Pause"
	}
	return "Start"
}

func (manager *Manager) refreshMenu() {
	if manager.host == nil {
		return
	}
	manager.host.SetSystemTrayMenu(manager.menu)
}

func invoke(handler func()) {
	if handler != nil {
		handler()
	}
}
