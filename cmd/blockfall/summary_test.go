package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"

	"github.com/lixenwraith/blockfall/engine"
)

func noColor(t *testing.T) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })
}

func TestPrintSummaryGameOver(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	printSummary(&buf, engine.Result{
		Score:        1234567,
		Level:        12,
		Lines:        42,
		PiecesLocked: 120,
		GameOver:     true,
		PieceCounts:  map[string]int{"T": 20, "I": 17, "O": 19},
	}, 7)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "GAME OVER\n"))
	assert.Contains(t, out, "1,234,567")
	assert.Contains(t, out, "seed    7")
	assert.Contains(t, out, "SPAWNED")

	i, o, tt := strings.Index(out, "  I "), strings.Index(out, "  O "), strings.Index(out, "  T ")
	assert.True(t, i < o && o < tt, "archetypes sorted by name")
}

func TestPrintSummaryQuit(t *testing.T) {
	noColor(t)

	var buf bytes.Buffer
	printSummary(&buf, engine.Result{Level: 1}, 1)

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "SESSION ENDED\n"))
	assert.NotContains(t, out, "SPAWNED")
}
