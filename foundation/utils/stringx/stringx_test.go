// File: stringx_test.go
// Title: String Utility Tests
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19

package stringx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBlank(t *testing.T) {
	assert.True(t, IsBlank(""))
	assert.True(t, IsBlank(" \t\n"))
	assert.False(t, IsBlank(" x "))
	assert.True(t, IsNotBlank("x"))
}

func TestFirstNonBlank(t *testing.T) {
	assert.Equal(t, "b", FirstNonBlank("", "  ", "b", "c"))
	assert.Equal(t, "", FirstNonBlank(" "))
}

func TestContainsFold(t *testing.T) {
	list := []string{"help", "?", "/?"}
	assert.True(t, ContainsFold(list, "HELP"))
	assert.True(t, ContainsFold(list, "/?"))
	assert.False(t, ContainsFold(list, "hel"))
	assert.False(t, ContainsFold(nil, "help"))
}

func TestPadRight(t *testing.T) {
	assert.Equal(t, "1 ", PadRight("1", 2, ' '))
	assert.Equal(t, "12", PadRight("12", 2, ' '))
	assert.Equal(t, "äb..", PadRight("äb", 4, '.'))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", Truncate("abc", 5, "..."))
	assert.Equal(t, "ab...", Truncate("abcdefgh", 5, "..."))
	assert.Equal(t, "ab", Truncate("abcdef", 2, "..."))
	assert.Equal(t, "", Truncate("abc", 0, "..."))
}
