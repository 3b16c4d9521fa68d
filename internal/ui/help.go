package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/termenv"

	"demohost/pkg/harness"
)

const helpMarkdown = `# %s

Pick a scenario by its number, or an action by its letter.

| Key | Effect |
|-----|--------|
| 1..n | run the scenario |
| h | show this help |
| c | clear the screen |
| q | quit |

**Ctrl+C** while a scenario runs stops it and returns here.
**Ctrl+C** at the menu exits the program.
`

// RenderHelp renders the help page with a glamour standard style ("auto",
// "dark", "light", "notty", ...).
func RenderHelp(title, style string) (string, error) {
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(80),
	)
	if err != nil {
		return "", fmt.Errorf("create help renderer: %w", err)
	}
	return r.Render(fmt.Sprintf(helpMarkdown, title))
}

// HelpAction prints the help page. Rendering problems fall back to the raw
// markdown.
func HelpAction(out io.Writer, title, style string) harness.MenuAction {
	return harness.MenuAction{
		Key:   "h",
		Label: "Help",
		Invoke: func() {
			text, err := RenderHelp(title, style)
			if err != nil {
				text = fmt.Sprintf(helpMarkdown, title)
			}
			fmt.Fprint(out, text)
		},
	}
}

// ClearAction clears the terminal.
func ClearAction(out *termenv.Output) harness.MenuAction {
	return harness.MenuAction{
		Key:    "c",
		Label:  "Clear screen",
		Invoke: out.ClearScreen,
	}
}
