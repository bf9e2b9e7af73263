package memory

import (
	"testing"

	"github.com/vovakirdan/tui-memory/internal/config"
	"github.com/vovakirdan/tui-memory/internal/core"
)

func TestColumns(t *testing.T) {
	tests := []struct {
		count, maxRow, want int
	}{
		{2, 7, 2},
		{6, 7, 6},
		{7, 7, 7},
		{8, 7, 4},
		{10, 7, 5},
		{12, 7, 6},
		{14, 7, 7},
		{22, 7, 7}, // no divisor in 4..7: min(7, ceil(22/3))
		{26, 7, 7},
		{8, 8, 8},
		{16, 8, 8},
		{30, 8, 6},
		{22, 8, 8}, // min(8, 8)
	}

	for _, tc := range tests {
		if got := Columns(tc.count, tc.maxRow); got != tc.want {
			t.Errorf("Columns(%d, %d) = %d, expected %d", tc.count, tc.maxRow, got, tc.want)
		}
	}
}

func TestColumnsPrefersDivisor(t *testing.T) {
	for _, maxRow := range []int{7, 8} {
		for count := 2; count <= 30; count += 2 {
			cols := Columns(count, maxRow)
			g := NewGrid(count, maxRow)

			if g.Cols*g.Rows < count {
				t.Errorf("count=%d W=%d: %dx%d grid too small", count, maxRow, g.Cols, g.Rows)
			}
			if cols > maxRow {
				t.Errorf("count=%d W=%d: %d columns exceeds row width", count, maxRow, cols)
			}

			hasDivisor := count <= maxRow
			for c := maxRow; c >= 4 && !hasDivisor; c-- {
				hasDivisor = count%c == 0
			}
			if hasDivisor && count%cols != 0 {
				t.Errorf("count=%d W=%d: %d columns does not divide evenly", count, maxRow, cols)
			}
		}
	}
}

func TestGridIndex(t *testing.T) {
	g := NewGrid(22, 7) // 7 columns, 4 rows, last row has one card

	if g.Rows != 4 {
		t.Fatalf("Rows = %d, expected 4", g.Rows)
	}
	if i := g.Index(0, 3); i != 21 {
		t.Errorf("Index(0, 3) = %d, expected 21", i)
	}
	if i := g.Index(1, 3); i != -1 {
		t.Errorf("Index(1, 3) = %d, expected -1 (empty slot)", i)
	}
	if i := g.Index(7, 0); i != -1 {
		t.Errorf("Index(7, 0) = %d, expected -1", i)
	}
	if col, row := g.Position(15); col != 1 || row != 2 {
		t.Errorf("Position(15) = %d,%d, expected 1,2", col, row)
	}
}

func TestCardSizeComputed(t *testing.T) {
	sizing := config.DefaultMemoryConfig().Variant(config.VariantClassic).Sizing

	tests := []struct {
		name         string
		count        int
		viewW, viewH int
		wantW, wantH int
	}{
		// maxW = 76/6-1 = 11, h = 11*5/9 = 6
		{"width bound", 12, 80, 24, 11, 6},
		// maxH = 34/5-1 = 5 < 18*5/9, so w = 5*9/5 = 9
		{"height bound", 30, 120, 40, 9, 5},
		// Computes 3x2, clamped up to the minimum
		{"clamped to minimum", 30, 80, 24, 7, 4},
		// Huge screen clamps to the maximum
		{"clamped to maximum", 2, 400, 200, 18, 9},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(tc.count, 7)
			w, h := g.CardSize(tc.viewW, tc.viewH, sizing)
			if w != tc.wantW || h != tc.wantH {
				t.Errorf("CardSize = %dx%d, expected %dx%d", w, h, tc.wantW, tc.wantH)
			}
		})
	}
}

func TestCardSizeFixed(t *testing.T) {
	sizing := config.DefaultMemoryConfig().Variant(config.VariantRanked).Sizing
	g := NewGrid(12, 8)

	for _, view := range [][2]int{{80, 24}, {200, 60}} {
		w, h := g.CardSize(view[0], view[1], sizing)
		if w != 9 || h != 5 {
			t.Errorf("fixed CardSize at %v = %dx%d, expected 9x5", view, w, h)
		}
	}
}

func TestGridRects(t *testing.T) {
	g := NewGrid(5, 7)
	rects := g.Rects(core.Point{X: 2, Y: 3}, 7, 4, 1)

	if len(rects) != 5 {
		t.Fatalf("got %d rects", len(rects))
	}
	if rects[0] != core.NewRect(2, 3, 7, 4) {
		t.Errorf("rects[0] = %+v", rects[0])
	}
	if rects[4] != core.NewRect(2+4*8, 3, 7, 4) {
		t.Errorf("rects[4] = %+v", rects[4])
	}
	if w, h := g.Extent(7, 4, 1); w != 39 || h != 4 {
		t.Errorf("Extent = %dx%d, expected 39x4", w, h)
	}
}
