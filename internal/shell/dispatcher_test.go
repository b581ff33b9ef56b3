package shell

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/msto63/chbrowse/internal/challenges"
	"github.com/msto63/chbrowse/internal/console"
	"github.com/msto63/chbrowse/internal/history"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
	cblog "github.com/msto63/chbrowse/foundation/core/log"
)

func newDispatcher(t *testing.T, lister history.Lister) *Dispatcher {
	t.Helper()
	s := challenges.DefaultSettings()
	s.Logger = cblog.Discard()
	reg, err := challenges.New(s)
	require.NoError(t, err)
	return NewDispatcher(reg, Options{Logger: cblog.Discard(), History: lister})
}

func TestDispatchScenarios(t *testing.T) {
	d := newDispatcher(t, nil)
	ctx := context.Background()

	res, err := d.Dispatch(ctx, "factorial 5")
	require.NoError(t, err)
	assert.Equal(t, ResultOutput, res.Kind)
	assert.Equal(t, "120", res.Output)
	assert.Equal(t, "FactorialFinder", res.Command.Name)

	res, err = d.Dispatch(ctx, "factorial -r 5")
	require.NoError(t, err)
	assert.Equal(t, "120", res.Output)

	_, err = d.Dispatch(ctx, "factorial abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cberror.CodeInvalidNumber))

	_, err = d.Dispatch(ctx, "nonexistent 1")
	require.Error(t, err)
	assert.True(t, errors.Is(err, cberror.CodeUnknownCommand))
}

func TestDispatchMetaCommands(t *testing.T) {
	d := newDispatcher(t, nil)
	ctx := context.Background()

	tests := []struct {
		input string
		want  ResultKind
	}{
		{"", ResultEmpty},
		{"   ", ResultEmpty},
		{"help", ResultHelp},
		{"HELP", ResultHelp},
		{"?", ResultHelp},
		{"/?", ResultHelp},
		{"l", ResultList},
		{"list", ResultList},
		{"--list", ResultList},
		{" Challenges ", ResultList},
		{"e", ResultExit},
		{"exit", ResultExit},
		{"Q", ResultExit},
		{"quit", ResultExit},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			res, err := d.Dispatch(ctx, tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.Kind)
		})
	}
}

func TestDispatchListIncludesCommands(t *testing.T) {
	d := newDispatcher(t, nil)
	res, err := d.Dispatch(context.Background(), "list")
	require.NoError(t, err)
	require.Len(t, res.Commands, 2)
	assert.Equal(t, "FactorialFinder", res.Commands[0].Name)
}

func TestDispatchDescriptionAndUsage(t *testing.T) {
	d := newDispatcher(t, nil)
	ctx := context.Background()

	for _, input := range []string{"factorial -d", "1 --description", "FF -d 5 6 7"} {
		res, err := d.Dispatch(ctx, input)
		require.NoError(t, err, input)
		assert.Equal(t, ResultDescription, res.Kind, input)
		assert.Equal(t, "FactorialFinder", res.Command.Name)
	}

	for _, input := range []string{"st -h", "speed --help", "2 /?"} {
		res, err := d.Dispatch(ctx, input)
		require.NoError(t, err, input)
		assert.Equal(t, ResultUsage, res.Kind, input)
		assert.Equal(t, "SpeedTracker", res.Command.Name)
	}
}

func TestDispatchArgumentCount(t *testing.T) {
	d := newDispatcher(t, nil)

	_, err := d.Dispatch(context.Background(), "factorial")
	assert.True(t, errors.Is(err, cberror.CodeArgumentCount))

	_, err = d.Dispatch(context.Background(), "factorial -r 5 6")
	assert.True(t, errors.Is(err, cberror.CodeArgumentCount))
}

func TestDispatchQuotedArguments(t *testing.T) {
	d := newDispatcher(t, nil)

	res, err := d.Dispatch(context.Background(), `st plate "AB12 CDE"`)
	require.NoError(t, err)
	assert.Equal(t, "valid", res.Output)

	res, err = d.Dispatch(context.Background(), `st plate AB12\ CDE`)
	require.NoError(t, err)
	assert.Equal(t, "valid", res.Output)

	res, err = d.Dispatch(context.Background(), "  st plate AB12\\ CDE  \t")
	require.NoError(t, err)
	assert.Equal(t, "valid", res.Output)

	res, err = d.Dispatch(context.Background(), `st plate AB12\ CDE\ `)
	require.NoError(t, err)
	assert.Equal(t, "invalid", res.Output, "escaped trailing space belongs to the plate")
}

func TestDispatchArgs(t *testing.T) {
	d := newDispatcher(t, nil)

	res, err := d.DispatchArgs(context.Background(), []string{"FindTheFactorial", "--recursive", "6"})
	require.NoError(t, err)
	assert.Equal(t, "720", res.Output)

	res, err = d.DispatchArgs(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, ResultEmpty, res.Kind)
}

func TestDispatchHistory(t *testing.T) {
	ctx := context.Background()

	withoutHistory := newDispatcher(t, nil)
	_, err := withoutHistory.Dispatch(ctx, "history")
	assert.True(t, errors.Is(err, cberror.CodeUnknownCommand))

	store := history.NewMemoryStore()
	require.NoError(t, store.Record(ctx, &history.Entry{Session: "s", Line: "factorial 5"}))

	d := newDispatcher(t, store)
	res, err := d.Dispatch(ctx, "History")
	require.NoError(t, err)
	assert.Equal(t, ResultHistory, res.Kind)
	require.Len(t, res.History, 1)
	assert.Equal(t, "factorial 5", res.History[0].Line)
}

func TestHelpEntries(t *testing.T) {
	assert.Len(t, newDispatcher(t, nil).HelpEntries(), 3)
	assert.Len(t, newDispatcher(t, history.NewMemoryStore()).HelpEntries(), 4)
}

func TestRender(t *testing.T) {
	d := newDispatcher(t, nil)
	p := console.New(console.Options{Output: &nopWriter{}})
	ctx := context.Background()

	res, err := d.Dispatch(ctx, "factorial 5")
	require.NoError(t, err)
	assert.Equal(t, "120", d.Render(p, res))

	res, err = d.Dispatch(ctx, "list")
	require.NoError(t, err)
	assert.Contains(t, d.Render(p, res), "1  : FactorialFinder")

	res, err = d.Dispatch(ctx, "factorial -d")
	require.NoError(t, err)
	assert.Contains(t, d.Render(p, res), "Challenge number 1: FactorialFinder")

	res, err = d.Dispatch(ctx, "exit")
	require.NoError(t, err)
	assert.Empty(t, d.Render(p, res))
}

func TestResultKindString(t *testing.T) {
	assert.Equal(t, "output", ResultOutput.String())
	assert.True(t, ResultExit.IsMeta())
	assert.False(t, ResultOutput.IsMeta())
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }
