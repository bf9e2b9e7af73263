package memory

import (
	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

// minColumns is the narrowest row tried when looking for an exact divisor.
const minColumns = 4

// Columns picks the column count for count cards with rows at most
// maxRow wide. A single row when everything fits, otherwise the widest
// exact divisor in [minColumns, maxRow], otherwise a wide ragged grid.
func Columns(count, maxRow int) int {
	if count <= 0 {
		return 1
	}
	if count <= maxRow {
		return count
	}
	for c := maxRow; c >= minColumns; c-- {
		if count%c == 0 {
			return c
		}
	}
	return min(maxRow, core.CeilDiv(count, 3))
}

// Grid is the board arrangement. Cards fill rows left to right.
type Grid struct {
	Count int
	Cols  int
	Rows  int
}

// NewGrid lays out count cards.
func NewGrid(count, maxRow int) Grid {
	cols := Columns(count, maxRow)
	return Grid{Count: count, Cols: cols, Rows: core.CeilDiv(count, cols)}
}

// Position returns the column and row of card i.
func (g Grid) Position(i int) (col, row int) {
	return i % g.Cols, i / g.Cols
}

// Index returns the card at (col, row), or -1 for an empty slot.
func (g Grid) Index(col, row int) int {
	if col < 0 || col >= g.Cols || row < 0 || row >= g.Rows {
		return -1
	}
	i := row*g.Cols + col
	if i >= g.Count {
		return -1
	}
	return i
}

// CardSize returns card width and height in cells for a viewW x viewH
// screen. Fixed sizing ignores the screen.
func (g Grid) CardSize(viewW, viewH int, s config.SizingConfig) (w, h int) {
	if s.Fixed {
		return s.FixedW, s.FixedH
	}

	availW := viewW - s.MarginW
	availH := viewH - s.MarginH
	maxW := availW/g.Cols - s.Gap
	maxH := availH/g.Rows - s.Gap

	w = maxW
	h = w * s.AspectH / s.AspectW
	if h > maxH {
		h = maxH
		w = h * s.AspectW / s.AspectH
	}

	w = max(s.MinW, min(w, s.MaxW))
	h = max(s.MinH, min(h, s.MaxH))
	return w, h
}

// Extent returns the board size in cells for the given card size.
func (g Grid) Extent(cardW, cardH, gap int) (w, h int) {
	return g.Cols*cardW + (g.Cols-1)*gap, g.Rows*cardH + (g.Rows-1)*gap
}

// Rects places every card with the board's top-left corner at origin.
func (g Grid) Rects(origin core.Point, cardW, cardH, gap int) []core.Rect {
	rects := make([]core.Rect, g.Count)
	for i := range rects {
		col, row := g.Position(i)
		rects[i] = core.NewRect(
			origin.X+col*(cardW+gap),
			origin.Y+row*(cardH+gap),
			cardW, cardH,
		)
	}
	return rects
}
