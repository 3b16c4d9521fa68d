package ui

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"demohost/pkg/harness"
)

type lineResult struct {
	text string
	err  error
}

// LineConsole is a cooked-mode console: the menu is printed and selections
// are read one line at a time. Ctrl+C reaches the process as SIGINT.
type LineConsole struct {
	in  io.Reader
	out io.Writer

	once      sync.Once
	closeOnce sync.Once
	lines     chan lineResult
	done      chan struct{}
	scanned   chan struct{}
}

// NewLineConsole creates a console reading from in and writing to out.
func NewLineConsole(in io.Reader, out io.Writer) *LineConsole {
	return &LineConsole{
		in:      in,
		out:     out,
		lines:   make(chan lineResult),
		done:    make(chan struct{}),
		scanned: make(chan struct{}),
	}
}

// Close releases the reader goroutine once its pending read returns. Later
// reads report io.EOF. It does not close the underlying reader.
func (c *LineConsole) Close() error {
	c.closeOnce.Do(func() { close(c.done) })
	return nil
}

func (c *LineConsole) ShowMenu(view harness.MenuView) error {
	_, err := fmt.Fprint(c.out, "\n"+RenderMenu(view))
	return err
}

func (c *LineConsole) ReadSelection(ctx context.Context) (string, error) {
	fmt.Fprint(c.out, promptStyle.Render("Select: "))
	line, err := c.next(ctx)
	return strings.TrimSpace(line), err
}

func (c *LineConsole) ShowFailure(name string, err error) {
	fmt.Fprintln(c.out, RenderFailure(name, err))
}

func (c *LineConsole) WaitForAck(ctx context.Context) error {
	fmt.Fprint(c.out, promptStyle.Render("Press Enter to return to the menu..."))
	_, err := c.next(ctx)
	return err
}

// next returns the next input line. A single goroutine owns the reader so a
// cancelled wait never loses a line to a second reader.
func (c *LineConsole) next(ctx context.Context) (string, error) {
	c.once.Do(func() { go c.scan() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-c.done:
		return "", io.EOF
	case r, ok := <-c.lines:
		if !ok {
			return "", io.EOF
		}
		return r.text, r.err
	}
}

func (c *LineConsole) scan() {
	defer close(c.scanned)
	defer close(c.lines)
	scanner := bufio.NewScanner(c.in)
	for scanner.Scan() {
		if !c.send(lineResult{text: scanner.Text()}) {
			return
		}
	}
	if err := scanner.Err(); err != nil {
		c.send(lineResult{err: fmt.Errorf("read input: %w", err)})
	}
}

func (c *LineConsole) send(r lineResult) bool {
	select {
	case c.lines <- r:
		return true
	case <-c.done:
		return false
	}
}
