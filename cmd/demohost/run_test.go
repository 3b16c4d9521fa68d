package main

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demohost/internal/config"
	"demohost/internal/ui"
)

func fastDemos(t *testing.T) {
	t.Helper()
	t.Setenv("DEMOHOST_DEMOS_COUNTING_DELAY", "0s")
	t.Setenv("DEMOHOST_DEMOS_COUNTING_LIMIT", "3")
	t.Setenv("DEMOHOST_DEMOS_SLEEP_DURATION", "10ms")
	t.Setenv("DEMOHOST_DEMOS_TICTACTOE_DELAY", "0s")
	t.Setenv("DEMOHOST_DEMOS_FAULTY_DELAY", "0s")
	t.Setenv("DEMOHOST_DEMOS_FAULTY_FAIL_AFTER", "1")
}

func TestRun_QuitImmediately(t *testing.T) {
	setup(t)
	fastDemos(t)

	out, err := executeCommand(t, "q\n", "--ui", "line", "--title", "Playground")
	require.NoError(t, err)
	assert.Contains(t, out, "Playground")
	for _, name := range []string{"counting", "faulty", "sleep", "tictactoe", "Help", "Quit"} {
		assert.Contains(t, out, name)
	}
}

func TestRun_ScenarioThenQuit(t *testing.T) {
	setup(t)
	fastDemos(t)

	out, err := executeCommand(t, "1\n\nq\n", "--ui", "line", "--scenario", "counting")
	require.NoError(t, err)
	assert.Contains(t, out, "Counted to 3.")
	assert.Equal(t, 2, strings.Count(out, "Select:"), "menu shown again after the run")
}

func TestRun_FailureIsReportedAndMenuContinues(t *testing.T) {
	setup(t)
	fastDemos(t)

	out, err := executeCommand(t, "1\n\nquit\n", "--ui", "line", "--scenario", "faulty")
	require.NoError(t, err)
	assert.Contains(t, out, "faulty failed")
	assert.Equal(t, 2, strings.Count(out, "Select:"))
}

func TestRun_EndOfInputEndsSession(t *testing.T) {
	setup(t)
	fastDemos(t)

	_, err := executeCommand(t, "", "--ui", "line", "--no-interrupt")
	assert.NoError(t, err)
}

func TestRun_UnknownScenario(t *testing.T) {
	setup(t)
	fastDemos(t)

	_, err := executeCommand(t, "q\n", "--ui", "line", "--scenario", "chess")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "chess")
}

func TestRun_HelpAction(t *testing.T) {
	setup(t)
	fastDemos(t)
	t.Setenv("DEMOHOST_HELP_STYLE", "notty")

	out, err := executeCommand(t, "h\n\nq\n", "--ui", "line")
	require.NoError(t, err)
	assert.Contains(t, out, "Ctrl+C")
}

func TestNewConsole(t *testing.T) {
	var buf bytes.Buffer

	c, err := newConsole(config.UILine, strings.NewReader(""), &buf)
	require.NoError(t, err)
	assert.IsType(t, &ui.LineConsole{}, c)

	c, err = newConsole(config.UIAuto, strings.NewReader(""), &buf)
	require.NoError(t, err)
	assert.IsType(t, &ui.LineConsole{}, c, "non-terminals fall back to the line console")

	_, err = newConsole(config.UIList, strings.NewReader(""), &buf)
	assert.Error(t, err)

	_, err = newConsole("fancy", strings.NewReader(""), &buf)
	assert.Error(t, err)
}

func TestNewConsole_AutoWithFiles(t *testing.T) {
	in, err := os.CreateTemp(t.TempDir(), "in")
	require.NoError(t, err)
	defer in.Close()

	c, err := newConsole(config.UIAuto, in, in)
	require.NoError(t, err)
	assert.IsType(t, &ui.LineConsole{}, c, "regular files are not terminals")
}
