package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderBoard(t *testing.T) {
	out := RenderBoard([][]rune{
		{'X', ' ', 'O'},
		{' ', 'X', ' '},
		{'O', ' ', 'X'},
	})

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	assert.Len(t, lines, 5)
	assert.Contains(t, lines[0], "X")
	assert.Contains(t, lines[0], "O")
	assert.Contains(t, lines[1], "---+---+---")
}

func TestRenderBoard_Empty(t *testing.T) {
	assert.Empty(t, RenderBoard(nil))
}

func TestRenderBoard_SingleColumn(t *testing.T) {
	out := RenderBoard([][]rune{{'X'}, {'O'}})

	assert.NotContains(t, out, "+")
	assert.Contains(t, out, "---")
}
