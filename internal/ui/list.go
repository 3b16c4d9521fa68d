package ui

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"demohost/pkg/harness"
)

// ListConsole drives the menu with a bubbletea list and waits for
// acknowledgment with a small bubbletea prompt. Both put the terminal in raw
// mode, so Ctrl+C arrives as a key press and is reported as
// harness.ErrInterrupted. Cancelling the context stops the program and
// restores the terminal.
type ListConsole struct {
	in   io.Reader
	out  io.Writer
	view harness.MenuView

	// runProgram is replaced in tests.
	runProgram func(ctx context.Context, m tea.Model) (tea.Model, error)
}

// NewListConsole creates a console on a terminal, usually os.Stdin and
// os.Stdout.
func NewListConsole(in io.Reader, out io.Writer) *ListConsole {
	c := &ListConsole{in: in, out: out}
	c.runProgram = c.run
	return c
}

func (c *ListConsole) ShowMenu(view harness.MenuView) error {
	c.view = view
	return nil
}

func (c *ListConsole) ReadSelection(ctx context.Context) (string, error) {
	final, err := c.runProgram(ctx, NewMenuModel(c.view))
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	if err != nil {
		return "", fmt.Errorf("menu program: %w", err)
	}
	return selectionOf(final)
}

func selectionOf(final tea.Model) (string, error) {
	m, ok := final.(MenuModel)
	if !ok {
		return "", fmt.Errorf("unexpected menu model %T", final)
	}
	if m.Interrupted {
		return "", harness.ErrInterrupted
	}
	if m.Selected == "" {
		return harness.QuitKey, nil
	}
	return m.Selected, nil
}

func (c *ListConsole) ShowFailure(name string, err error) {
	fmt.Fprintln(c.out, RenderFailure(name, err))
}

func (c *ListConsole) WaitForAck(ctx context.Context) error {
	final, err := c.runProgram(ctx, AckModel{})
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err != nil {
		return fmt.Errorf("ack program: %w", err)
	}
	if m, ok := final.(AckModel); ok && m.Interrupted {
		return harness.ErrInterrupted
	}
	return nil
}

func (c *ListConsole) run(ctx context.Context, m tea.Model) (tea.Model, error) {
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
		tea.WithoutSignalHandler(),
	)
	return p.Run()
}

// AckModel waits for enter. Ctrl+C sets Interrupted.
type AckModel struct {
	Done        bool
	Interrupted bool
}

func (m AckModel) Init() tea.Cmd {
	return nil
}

func (m AckModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, menuKeys.Interrupt):
			m.Interrupted = true
			return m, tea.Quit
		case key.Matches(msg, menuKeys.Choose):
			m.Done = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m AckModel) View() string {
	if m.Done || m.Interrupted {
		return ""
	}
	return promptStyle.Render("Press Enter to return to the menu...")
}
