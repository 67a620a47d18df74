// Package tui provides a terminal front end for the timer using Bubbletea.
package tui

import (
	"fmt"
	"strings"
	"time"

	"pomoboy/internal/core/model"
	"pomoboy/internal/core/timekeeper"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	blinkInterval = 500 * time.Millisecond
	screenWidth   = 30
)

// Controller is the set of timer intents the terminal UI issues.
type Controller interface {
	ToggleRunning()
	Reset()
	SkipNext()
	SkipPrevious()
	Snapshot() timekeeper.State
}

// eventMsg carries one timer event into the update loop.
type eventMsg timekeeper.Event

// closedMsg reports that the event stream ended.
type closedMsg struct{}

// blinkMsg flips the run indicator.
type blinkMsg time.Time

// Model is the Bubbletea model for the timer screen.
type Model struct {
	controller Controller
	events     <-chan timekeeper.Event
	state      timekeeper.State
	keys       keyMap
	help       help.Model
	progress   progress.Model
	theme      theme
	muted      bool
	onMute     func(muted bool)
	blinkOff   bool
	width      int
}

// Options configures a Model.
type Options struct {
	Muted  bool
	OnMute func(muted bool)
}

// NewModel creates the model from a controller and its event subscription.
func NewModel(controller Controller, events <-chan timekeeper.Event, options Options) Model {
	bar := progress.New(
		progress.WithGradient(string(colorDim), string(colorPixel)),
		progress.WithoutPercentage(),
	)
	bar.Width = screenWidth
	return Model{
		controller: controller,
		events:     events,
		state:      controller.Snapshot(),
		keys:       defaultKeyMap(),
		help:       help.New(),
		progress:   bar,
		theme:      defaultTheme(),
		muted:      options.Muted,
		onMute:     options.OnMute,
	}
}

// Init starts listening for timer events and the blink clock.
func (m Model) Init() tea.Cmd {
	return tea.Batch(waitForEvent(m.events), blinkCmd())
}

// waitForEvent returns a tea.Cmd that blocks until the next timer event.
func waitForEvent(events <-chan timekeeper.Event) tea.Cmd {
	return func() tea.Msg {
		event, ok := <-events
		if !ok {
			return closedMsg{}
		}
		return eventMsg(event)
	}
}

func blinkCmd() tea.Cmd {
	return tea.Tick(blinkInterval, func(t time.Time) tea.Msg {
		return blinkMsg(t)
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case eventMsg:
		m.state = msg.State
		if !m.state.Running {
			m.blinkOff = false
		}
		return m, waitForEvent(m.events)
	case closedMsg:
		return m, tea.Quit
	case blinkMsg:
		if m.state.Running {
			m.blinkOff = !m.blinkOff
		}
		return m, blinkCmd()
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil
	case progress.FrameMsg:
		next, cmd := m.progress.Update(msg)
		m.progress = next.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Toggle):
		m.controller.ToggleRunning()
	case key.Matches(msg, m.keys.Reset):
		m.controller.Reset()
	case key.Matches(msg, m.keys.Previous):
		m.controller.SkipPrevious()
	case key.Matches(msg, m.keys.Next):
		m.controller.SkipNext()
	case key.Matches(msg, m.keys.Mute):
		m.muted = !m.muted
		if m.onMute != nil {
			m.onMute(m.muted)
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

// State returns the last timer state the model rendered.
func (m Model) State() timekeeper.State {
	return m.state
}

// Muted reports whether sound cues are muted.
func (m Model) Muted() bool {
	return m.muted
}

// View renders the handheld screen, the progress bar and the key help.
func (m Model) View() string {
	header := m.theme.Header.Width(screenWidth).Render(
		spread(m.state.Mode.ScreenLabel(), fmt.Sprintf("#%d", m.state.Cycle), screenWidth),
	)
	clock := m.theme.Clock.Width(screenWidth).Render(model.FormatClock(m.state.Remaining))

	status := statusText(m.state.Running)
	if m.state.Running && m.blinkOff {
		status = strings.Repeat(" ", lipgloss.Width(status))
	}
	statusLine := m.theme.Status.Width(screenWidth).Render(status)

	indicators := make([]string, 0, len(model.Modes()))
	for _, mode := range model.Modes() {
		style := m.theme.Inactive
		if mode == m.state.Mode {
			style = m.theme.Active
		}
		indicators = append(indicators, style.Render(mode.IndicatorLabel()))
	}
	strip := m.theme.Status.Width(screenWidth).Render(lipgloss.JoinHorizontal(lipgloss.Top, indicators...))

	screen := m.theme.Screen.Render(lipgloss.JoinVertical(lipgloss.Left, header, "", clock, statusLine, "", strip))

	footer := m.progress.ViewAs(elapsedFraction(m.state))
	if m.muted {
		footer += "  " + m.theme.Muted.Render("MUTED")
	}

	return m.theme.Container.Render(lipgloss.JoinVertical(lipgloss.Left,
		screen,
		"",
		footer,
		"",
		m.help.View(m.keys),
	))
}

func statusText(running bool) string {
	if running {
		return "► RUNNING"
	}
	return "❚❚ PAUSED"
}

// elapsedFraction reports how much of the current mode's duration has passed.
func elapsedFraction(state timekeeper.State) float64 {
	total := model.DurationFor(state.Mode, state.Config)
	if total <= 0 {
		return 0
	}
	fraction := 1 - float64(state.Remaining)/float64(total)
	if fraction < 0 {
		return 0
	}
	if fraction > 1 {
		return 1
	}
	return fraction
}

func spread(left, right string, width int) string {
	gap := width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	return left + strings.Repeat(" ", gap) + right
}
