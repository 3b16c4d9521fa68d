package ui

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"demohost/pkg/harness"
)

func TestLineConsole_ReadsSelectionsThenEOF(t *testing.T) {
	var out bytes.Buffer
	c := NewLineConsole(strings.NewReader(" 1 \n\nq\n"), &out)
	ctx := context.Background()

	sel, err := c.ReadSelection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "1", sel)

	require.NoError(t, c.WaitForAck(ctx))

	sel, err = c.ReadSelection(ctx)
	require.NoError(t, err)
	assert.Equal(t, "q", sel)

	_, err = c.ReadSelection(ctx)
	assert.ErrorIs(t, err, io.EOF)
	assert.Contains(t, out.String(), "Select:")
	assert.Contains(t, out.String(), "Press Enter")
}

func TestLineConsole_CancelledWait(t *testing.T) {
	r, w := io.Pipe()
	defer w.Close()
	c := NewLineConsole(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ReadSelection(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLineConsole_LineSurvivesCancelledWait(t *testing.T) {
	r, w := io.Pipe()
	c := NewLineConsole(r, io.Discard)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := c.ReadSelection(ctx)
	require.ErrorIs(t, err, context.Canceled)

	go func() {
		w.Write([]byte("2\n"))
		w.Close()
	}()
	sel, err := c.ReadSelection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "2", sel)
}

func TestLineConsole_CloseReleasesReader(t *testing.T) {
	c := NewLineConsole(strings.NewReader("1\n2\n3\n"), io.Discard)

	sel, err := c.ReadSelection(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "1", sel)

	require.NoError(t, c.Close())
	select {
	case <-c.scanned:
	case <-time.After(2 * time.Second):
		t.Fatal("reader goroutine still blocked after Close")
	}

	_, err = c.ReadSelection(context.Background())
	assert.ErrorIs(t, err, io.EOF)
	assert.NoError(t, c.Close())
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("tty gone") }

func TestLineConsole_ReadError(t *testing.T) {
	c := NewLineConsole(failingReader{}, io.Discard)

	_, err := c.ReadSelection(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tty gone")
}

func TestLineConsole_ShowMenuAndFailure(t *testing.T) {
	var out bytes.Buffer
	c := NewLineConsole(strings.NewReader(""), &out)

	err := c.ShowMenu(harness.MenuView{
		Title: "Demos",
		Entries: []harness.MenuEntry{
			{Key: "1", Label: "counting", Kind: harness.EntryScenario},
			{Key: "h", Label: "Help", Kind: harness.EntryAction},
			{Key: "q", Label: "Quit", Kind: harness.EntryQuit},
		},
	})
	require.NoError(t, err)
	c.ShowFailure("faulty", errors.New("step 3 exploded"))

	text := out.String()
	assert.Contains(t, text, "Demos")
	assert.Contains(t, text, "[1]")
	assert.Contains(t, text, "counting")
	assert.Contains(t, text, "[h]")
	assert.Contains(t, text, "[q] Quit")
	assert.Contains(t, text, "faulty failed: step 3 exploded")
}
