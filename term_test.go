package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrintChips(t *testing.T) {
	chips := []Chip{
		newChip("static", 0, "alpha"),
		newChip("static", 1, "beta"),
		newChip("static", 2, "gamma"),
	}

	var buf bytes.Buffer
	require.NoError(t, printChips(&buf, chips, false, 20, 1))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "alpha")
	assert.Contains(t, lines[0], "beta")
	assert.Contains(t, lines[1], "gamma")
	assert.NotContains(t, lines[0], "gamma")
}

func TestPrintChips_NarrowTerminal(t *testing.T) {
	chips := []Chip{
		newChip("static", 0, "a-very-long-chip"),
		newChip("static", 1, "b"),
	}

	var buf bytes.Buffer
	require.NoError(t, printChips(&buf, chips, true, 5, 1))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "a-very-long-chip")
	assert.Contains(t, lines[1], "b")
}
