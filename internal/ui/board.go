package ui

import "strings"

// RenderBoard draws a grid of marks. Empty cells are ' '.
func RenderBoard(cells [][]rune) string {
	if len(cells) == 0 {
		return ""
	}

	cols := len(cells[0])
	sep := gridStyle.Render(strings.TrimSuffix(strings.Repeat("---+", cols), "+"))
	bar := gridStyle.Render("|")

	var sb strings.Builder
	for r, row := range cells {
		if r > 0 {
			sb.WriteString(sep)
			sb.WriteString("\n")
		}
		for c, mark := range row {
			if c > 0 {
				sb.WriteString(bar)
			}
			sb.WriteString(" ")
			sb.WriteString(renderMark(mark))
			sb.WriteString(" ")
		}
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderMark(mark rune) string {
	switch mark {
	case 'X':
		return markXStyle.Render("X")
	case 'O':
		return markOStyle.Render("O")
	default:
		return " "
	}
}
