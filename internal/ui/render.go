package ui

import (
	"fmt"
	"strings"

	"demohost/pkg/harness"
)

// RenderMenu formats a menu view for line-oriented terminals.
func RenderMenu(view harness.MenuView) string {
	var sb strings.Builder
	sb.WriteString(menuTitleStyle.Render(view.Title))
	sb.WriteString("\n")

	for _, e := range view.Entries {
		line := fmt.Sprintf("  %s %s", menuKeyStyle.Render("["+e.Key+"]"), menuLabelStyle.Render(e.Label))
		if e.Kind == harness.EntryQuit {
			line = menuQuitStyle.Render(fmt.Sprintf("  [%s] %s", e.Key, e.Label))
		}
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderFailure formats a scenario error.
func RenderFailure(name string, err error) string {
	return failureStyle.Render(fmt.Sprintf("✗ %s failed: %v", name, err))
}
