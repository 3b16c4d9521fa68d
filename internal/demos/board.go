package demos

import "fmt"

// Mark is the content of a board cell.
type Mark rune

const (
	Empty Mark = ' '
	X     Mark = 'X'
	O     Mark = 'O'
)

// Other returns the opponent's mark.
func (m Mark) Other() Mark {
	if m == X {
		return O
	}
	return X
}

// Cell addresses a board position, zero based.
type Cell struct {
	Row, Col int
}

// Board is a rows x cols grid where Win marks in a line win.
type Board struct {
	rows, cols, win int
	cells           []Mark
}

var directions = [...]Cell{{0, 1}, {1, 0}, {1, 1}, {1, -1}}

// NewBoard validates the geometry and returns an empty board.
func NewBoard(rows, cols, win int) (*Board, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("board must be at least 1x1, got %dx%d", rows, cols)
	}
	if win < 1 || win > max(rows, cols) {
		return nil, fmt.Errorf("win length must be between 1 and %d, got %d", max(rows, cols), win)
	}

	cells := make([]Mark, rows*cols)
	for i := range cells {
		cells[i] = Empty
	}
	return &Board{rows: rows, cols: cols, win: win, cells: cells}, nil
}

func (b *Board) inside(c Cell) bool {
	return c.Row >= 0 && c.Row < b.rows && c.Col >= 0 && c.Col < b.cols
}

// At returns the mark at c.
func (b *Board) At(c Cell) Mark {
	return b.cells[c.Row*b.cols+c.Col]
}

// Place puts m on an empty cell.
func (b *Board) Place(c Cell, m Mark) error {
	if !b.inside(c) {
		return fmt.Errorf("cell (%d,%d) is outside the board", c.Row, c.Col)
	}
	if b.At(c) != Empty {
		return fmt.Errorf("cell (%d,%d) is taken", c.Row, c.Col)
	}
	b.cells[c.Row*b.cols+c.Col] = m
	return nil
}

// Free lists the empty cells in row-major order.
func (b *Board) Free() []Cell {
	var free []Cell
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.cells[r*b.cols+c] == Empty {
				free = append(free, Cell{r, c})
			}
		}
	}
	return free
}

// Full reports whether no empty cell is left.
func (b *Board) Full() bool {
	return len(b.Free()) == 0
}

// WinsAt reports whether the mark at c completes a winning line.
func (b *Board) WinsAt(c Cell) bool {
	m := b.At(c)
	if m == Empty {
		return false
	}
	for _, d := range directions {
		if 1+b.run(c, d, m)+b.run(c, Cell{-d.Row, -d.Col}, m) >= b.win {
			return true
		}
	}
	return false
}

// run counts consecutive m marks from c (exclusive) along d.
func (b *Board) run(c Cell, d Cell, m Mark) int {
	n := 0
	for next := (Cell{c.Row + d.Row, c.Col + d.Col}); b.inside(next) && b.At(next) == m; next = (Cell{next.Row + d.Row, next.Col + d.Col}) {
		n++
	}
	return n
}

// Winner returns the winning mark, or Empty.
func (b *Board) Winner() Mark {
	for r := 0; r < b.rows; r++ {
		for c := 0; c < b.cols; c++ {
			if b.WinsAt(Cell{r, c}) {
				return b.At(Cell{r, c})
			}
		}
	}
	return Empty
}

// wouldWin reports whether placing m at the empty cell c wins.
func (b *Board) wouldWin(c Cell, m Mark) bool {
	i := c.Row*b.cols + c.Col
	b.cells[i] = m
	defer func() { b.cells[i] = Empty }()
	return b.WinsAt(c)
}

// Rows returns the board as rows of runes for rendering.
func (b *Board) Rows() [][]rune {
	out := make([][]rune, b.rows)
	for r := range out {
		out[r] = make([]rune, b.cols)
		for c := range out[r] {
			out[r][c] = rune(b.cells[r*b.cols+c])
		}
	}
	return out
}
