package speedtrack

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cberror "github.com/msto63/chbrowse/foundation/core/error"
)

func TestAverageSpeed(t *testing.T) {
	first := time.Date(2019, 12, 3, 15, 2, 0, 0, time.UTC)

	tests := []struct {
		hours float64
		want  float64
	}{
		{1, 1},
		{0.5, 2},
		{2, 0.5},
		{10, 0.1},
		{0.4, 2.5},
		{0.0125, 80},
		{0.01, 100},
	}

	for _, tt := range tests {
		second := first.Add(time.Duration(tt.hours * float64(time.Hour)))
		got, err := AverageSpeed(first, second, DefaultCameraDistance)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, 1e-9, "%v hours", tt.hours)
	}
}

func TestAverageSpeedRejectsBadInput(t *testing.T) {
	now := time.Now()

	_, err := AverageSpeed(now, now, 1)
	assert.True(t, errors.Is(err, cberror.CodeInvalidArgument))

	_, err = AverageSpeed(now, now.Add(-time.Minute), 1)
	assert.True(t, errors.Is(err, cberror.CodeInvalidArgument))

	_, err = AverageSpeed(now, now.Add(time.Minute), 0)
	assert.True(t, errors.Is(err, cberror.CodeInvalidArgument))
}

func TestFormatSpeed(t *testing.T) {
	assert.Equal(t, "80", FormatSpeed(79.99999999999999))
	assert.Equal(t, "2.5", FormatSpeed(2.5))
	assert.Equal(t, "33.33", FormatSpeed(100.0/3))
}
