package tui

import (
	"strings"
	"testing"

	"pomoboy/internal/core/model"
	"pomoboy/internal/core/timekeeper"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeController struct {
	calls []string
	state timekeeper.State
}

func (controller *fakeController) ToggleRunning() { controller.calls = append(controller.calls, "toggle") }
func (controller *fakeController) Reset()         { controller.calls = append(controller.calls, "reset") }
func (controller *fakeController) SkipNext()      { controller.calls = append(controller.calls, "next") }
func (controller *fakeController) SkipPrevious()  { controller.calls = append(controller.calls, "previous") }
func (controller *fakeController) Snapshot() timekeeper.State {
	return controller.state
}

func keyMsg(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "ctrl+c":
		return tea.KeyMsg{Type: tea.KeyCtrlC}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func focusState() timekeeper.State {
	config := model.DefaultConfig()
	return timekeeper.State{
		Mode:      model.Focus,
		Remaining: model.DurationFor(model.Focus, config),
		Cycle:     1,
		Config:    config,
	}
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		next, _ := m.Update(keyMsg(k))
		m = next.(Model)
	}
	return m
}

func TestKeysIssueIntents(t *testing.T) {
	controller := &fakeController{state: focusState()}
	m := NewModel(controller, make(chan timekeeper.Event), Options{})

	press(t, m, "space", "enter", "r", "left", "right", "h", "l")
	assert.Equal(t, []string{"toggle", "toggle", "reset", "previous", "next", "previous", "next"}, controller.calls)
}

func TestQuitKeys(t *testing.T) {
	for _, k := range []string{"q", "ctrl+c"} {
		m := NewModel(&fakeController{state: focusState()}, make(chan timekeeper.Event), Options{})
		_, cmd := m.Update(keyMsg(k))
		require.NotNil(t, cmd, k)
		assert.IsType(t, tea.QuitMsg{}, cmd(), k)
	}
}

func TestMuteTogglesCallback(t *testing.T) {
	var muted []bool
	m := NewModel(&fakeController{state: focusState()}, make(chan timekeeper.Event), Options{
		OnMute: func(value bool) { muted = append(muted, value) },
	})

	m = press(t, m, "m")
	assert.True(t, m.Muted())
	assert.Contains(t, m.View(), "MUTED")

	m = press(t, m, "m")
	assert.False(t, m.Muted())
	assert.Equal(t, []bool{true, false}, muted)
}

func TestHelpToggle(t *testing.T) {
	m := NewModel(&fakeController{state: focusState()}, make(chan timekeeper.Event), Options{})
	assert.NotContains(t, m.View(), "previous mode")

	m = press(t, m, "?")
	assert.Contains(t, m.View(), "previous mode")
}

func TestEventUpdatesStateAndKeepsListening(t *testing.T) {
	events := make(chan timekeeper.Event, 1)
	m := NewModel(&fakeController{state: focusState()}, events, Options{})

	state := focusState()
	state.Mode = model.ShortBreak
	state.Remaining = 299
	state.Running = true
	state.Cycle = 2

	next, cmd := m.Update(eventMsg(timekeeper.Event{Type: timekeeper.EventProgress, State: state}))
	m = next.(Model)
	assert.Equal(t, state, m.State())
	require.NotNil(t, cmd)

	events <- timekeeper.Event{Type: timekeeper.EventRunStateChanged, State: focusState()}
	msg := cmd()
	assert.Equal(t, timekeeper.EventRunStateChanged, timekeeper.Event(msg.(eventMsg)).Type)
}

func TestClosedStreamQuits(t *testing.T) {
	events := make(chan timekeeper.Event)
	close(events)
	assert.Equal(t, closedMsg{}, waitForEvent(events)())

	m := NewModel(&fakeController{state: focusState()}, events, Options{})
	_, cmd := m.Update(closedMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsScreen(t *testing.T) {
	state := focusState()
	state.Mode = model.LongBreak
	state.Remaining = 754
	state.Cycle = 5
	m := NewModel(&fakeController{state: state}, make(chan timekeeper.Event), Options{})

	view := m.View()
	for _, want := range []string{"LONG BREAK", "#5", "12:34", "❚❚ PAUSED", "POMO", "SHORT", "LONG"} {
		assert.Contains(t, view, want)
	}
}

func TestBlinkHidesStatusOnlyWhileRunning(t *testing.T) {
	state := focusState()
	state.Running = true
	m := NewModel(&fakeController{state: state}, make(chan timekeeper.Event), Options{})
	assert.Contains(t, m.View(), "► RUNNING")

	next, cmd := m.Update(blinkMsg{})
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.NotContains(t, m.View(), "► RUNNING")

	paused := focusState()
	next, _ = m.Update(eventMsg(timekeeper.Event{Type: timekeeper.EventRunStateChanged, State: paused}))
	m = next.(Model)
	next, _ = m.Update(blinkMsg{})
	m = next.(Model)
	assert.Contains(t, m.View(), "❚❚ PAUSED")
}

func TestElapsedFraction(t *testing.T) {
	state := focusState()
	assert.Equal(t, 0.0, elapsedFraction(state))

	state.Remaining = 750
	assert.InDelta(t, 0.5, elapsedFraction(state), 1e-9)

	state.Remaining = 0
	assert.Equal(t, 1.0, elapsedFraction(state))

	assert.Equal(t, 0.0, elapsedFraction(timekeeper.State{}))
}

func TestWithTimeKeeper(t *testing.T) {
	keeper := timekeeper.New(model.DefaultConfig(), timekeeper.Options{})
	defer keeper.Close()
	m := NewModel(keeper, keeper.Subscribe(8), Options{})

	next, _ := m.Update(keyMsg("right"))
	m = next.(Model)
	assert.Equal(t, model.ShortBreak, keeper.Snapshot().Mode)

	msg := waitForEvent(m.events)()
	next, _ = m.Update(msg)
	m = next.(Model)
	assert.Equal(t, model.ShortBreak, m.State().Mode)
	assert.True(t, strings.Contains(m.View(), "05:00"))
}
