package factorial

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
)

func TestFactorialSmallValues(t *testing.T) {
	tests := []struct {
		n    int64
		want uint64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 6},
		{4, 24},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}

	for _, tt := range tests {
		got, err := Iterative(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Iterative(%d)", tt.n)

		got, err = Recursive(tt.n)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got, "Recursive(%d)", tt.n)
	}
}

func TestFactorialNegative(t *testing.T) {
	for _, fn := range []func(int64) (uint64, error){Iterative, Recursive} {
		_, err := fn(-1)
		require.Error(t, err)
		assert.True(t, errors.Is(err, cberror.CodeNegativeInput))
	}
}

func TestFactorialOverflow(t *testing.T) {
	for _, n := range []int64{21, 25, 1 << 40} {
		_, err := Iterative(n)
		assert.True(t, errors.Is(err, cberror.CodeOverflow), "Iterative(%d)", n)

		_, err = Recursive(n)
		assert.True(t, errors.Is(err, cberror.CodeOverflow), "Recursive(%d)", n)
	}
}

func TestRecurseDetectsOverflow(t *testing.T) {
	_, err := recurse(21, 2432902008176640000)
	assert.True(t, errors.Is(err, cberror.CodeOverflow))
}

func TestRun(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
		code cberror.Code
	}{
		{name: "default iterative", args: []string{"5"}, want: "120"},
		{name: "iterative flag", args: []string{"-i", "5"}, want: "120"},
		{name: "long iterative flag", args: []string{"--iterative", "0"}, want: "1"},
		{name: "recursive flag", args: []string{"-r", "5"}, want: "120"},
		{name: "long recursive flag", args: []string{"--recursive", "20"}, want: "2432902008176640000"},
		{name: "not a number", args: []string{"abc"}, code: cberror.CodeInvalidNumber},
		{name: "fractional", args: []string{"2.5"}, code: cberror.CodeInvalidNumber},
		{name: "unknown flag", args: []string{"-x", "5"}, code: cberror.CodeInvalidArgument},
		{name: "negative", args: []string{"-5"}, code: cberror.CodeNegativeInput},
		{name: "overflow", args: []string{"-r", "21"}, code: cberror.CodeOverflow},
		{name: "beyond int64", args: []string{"99999999999999999999"}, code: cberror.CodeOverflow},
		{name: "below int64", args: []string{"-i", "-99999999999999999999"}, code: cberror.CodeNegativeInput},
		{name: "no args", args: nil, code: cberror.CodeArgumentCount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Run(context.Background(), tt.args)
			if tt.code != "" {
				require.Error(t, err)
				assert.True(t, errors.Is(err, tt.code), "got %v", err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
