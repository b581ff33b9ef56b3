package tui

import (
	"context"
	"io"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/chbrowse/internal/challenges"
	"github.com/msto63/chbrowse/internal/console"
	"github.com/msto63/chbrowse/internal/history"
	"github.com/msto63/chbrowse/internal/shell"

	cblog "github.com/msto63/chbrowse/foundation/core/log"
)

func newModel(t *testing.T, opts Options) Model {
	t.Helper()
	s := challenges.DefaultSettings()
	s.Logger = cblog.Discard()
	reg, err := challenges.New(s)
	require.NoError(t, err)

	d := shell.NewDispatcher(reg, shell.Options{Logger: cblog.Discard()})
	p := console.New(console.Options{Output: io.Discard})
	opts.Logger = cblog.Discard()

	m := New(context.Background(), d, p, opts)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return updated.(Model)
}

// submit types line and presses enter, running the dispatch command
// synchronously the way the bubbletea runtime would
func submit(t *testing.T, m Model, line string) (Model, tea.Cmd) {
	t.Helper()
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(line)})
	m = updated.(Model)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	m = updated.(Model)
	if !m.running {
		return m, cmd
	}

	require.NotNil(t, cmd)
	msg := findDispatched(cmd)
	require.NotNil(t, msg, "enter should schedule a dispatch")

	updated, cmd = m.Update(msg)
	return updated.(Model), cmd
}

func findDispatched(cmd tea.Cmd) tea.Msg {
	if cmd == nil {
		return nil
	}
	switch msg := cmd().(type) {
	case dispatchedMsg:
		return msg
	case tea.BatchMsg:
		for _, c := range msg {
			if c == nil {
				continue
			}
			if found := findDispatchedOne(c); found != nil {
				return found
			}
		}
	}
	return nil
}

func findDispatchedOne(cmd tea.Cmd) tea.Msg {
	if msg, ok := cmd().(dispatchedMsg); ok {
		return msg
	}
	return nil
}

func TestEnterRunsCommand(t *testing.T) {
	m := newModel(t, Options{})

	m, _ = submit(t, m, "factorial 5")

	assert.False(t, m.running)
	assert.Contains(t, m.Transcript(), "factorial 5")
	assert.Contains(t, m.Transcript(), "120")
	assert.Empty(t, m.input.Value())
}

func TestErrorsAreShownInline(t *testing.T) {
	m := newModel(t, Options{})

	m, _ = submit(t, m, "nonexistent 1")
	assert.Contains(t, m.Transcript(), "error: unknown command: nonexistent")
	assert.False(t, m.Quitting())
}

func TestExitWithoutConfirmQuits(t *testing.T) {
	m := newModel(t, Options{})

	m, cmd := submit(t, m, "exit")
	assert.True(t, m.Quitting())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestExitWithConfirm(t *testing.T) {
	m := newModel(t, Options{ConfirmExit: true})

	m, _ = submit(t, m, "q")
	assert.True(t, m.confirming)
	assert.Contains(t, m.Transcript(), shell.ExitPrompt)

	m, _ = submit(t, m, "n")
	assert.False(t, m.confirming)
	assert.False(t, m.Quitting())
	assert.Contains(t, m.Transcript(), "Aborted program exit.")

	m, _ = submit(t, m, "quit")
	m, cmd := submit(t, m, "Y")
	assert.True(t, m.Quitting())
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestCtrlCQuits(t *testing.T) {
	m := newModel(t, Options{})

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	assert.True(t, updated.(Model).Quitting())
	assert.Equal(t, tea.Quit(), cmd())
}

func TestRecordsHistory(t *testing.T) {
	store := history.NewMemoryStore()
	m := newModel(t, Options{Recorder: store, SessionID: "session-1"})

	m, _ = submit(t, m, "factorial 3")
	_, _ = submit(t, m, "nope")

	entries, err := store.Recent(context.Background(), 0)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	for _, e := range entries {
		assert.Equal(t, "session-1", e.Session)
	}
}

func TestViewBeforeAndAfterResize(t *testing.T) {
	s := challenges.DefaultSettings()
	s.Logger = cblog.Discard()
	reg, err := challenges.New(s)
	require.NoError(t, err)
	d := shell.NewDispatcher(reg, shell.Options{Logger: cblog.Discard()})

	m := New(context.Background(), d, console.New(console.Options{Output: io.Discard}), Options{Logger: cblog.Discard()})
	assert.Equal(t, "Loading...", m.View())

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := updated.(Model).View()
	assert.Contains(t, view, "chbrowse")
	assert.Contains(t, view, "Esc/Ctrl+C: Quit")
}
