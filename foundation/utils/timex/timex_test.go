// File: timex_test.go
// Title: Time Utilities Tests
// Description: Tests for multi-layout time parsing.
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-19

package timex

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"clock", "12:30:15", time.Date(0, 1, 1, 12, 30, 15, 0, time.UTC)},
		{"clock with fraction", "12:30:15.5", time.Date(0, 1, 1, 12, 30, 15, 500000000, time.UTC)},
		{"rfc3339", "2016-03-01T08:00:00Z", time.Date(2016, 3, 1, 8, 0, 0, 0, time.UTC)},
		{"surrounding space", " 08:00:00 ", time.Date(0, 1, 1, 8, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	for _, input := range []string{"", "   ", "noon", "25:00:00", "2016-03-01"} {
		_, err := Parse(input)
		assert.Error(t, err, "input %q", input)
	}
}

func TestParseWith(t *testing.T) {
	got, err := ParseWith("2016-03-01", "2006-01-02")
	require.NoError(t, err)
	assert.Equal(t, 2016, got.Year())

	_, err = ParseWith("12:00:00", "2006-01-02")
	assert.Error(t, err)
}
