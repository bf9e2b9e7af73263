package memory

import (
	"fmt"
	"path"
	"strconv"

	"github.com/vovakirdan/tui-memory/internal/core"
)

// Render draws the HUD, the board and the status line.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	g.renderHUD(dst)
	for i := range g.rects {
		g.renderCard(dst, i)
	}

	last := g.rects[len(g.rects)-1]
	statusY := last.Bottom() + 1
	color := core.ColorDefault
	switch g.status {
	case StatusMatch, StatusWin:
		color = core.ColorMatched
	case StatusMismatch:
		color = core.ColorAlert
	}
	dst.DrawTextCentered(statusY, g.status, color)
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorAlert)

	boardW, boardH := g.grid.Extent(g.cardW, g.cardH, g.vcfg.Sizing.Gap)
	hint := fmt.Sprintf("Need %dx%d, have %dx%d", boardW, hudHeight+boardH+2, g.screenW, g.screenH)
	dst.DrawTextCentered(y+1, hint, core.ColorMuted)
}

func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextCentered(0, g.title, core.ColorTitle)

	timer := "Time " + FormatSeconds(g.watch.Elapsed())
	pairs := fmt.Sprintf("Pairs %d/%d", g.session.MatchedPairs(), g.session.Pairs())

	left := g.rects[0].X
	right := g.rects[0].X
	for _, r := range g.rects {
		right = max(right, r.Right())
	}

	dst.DrawTextColor(left, 1, timer, core.ColorTimer)
	dst.DrawTextColor(max(left, right-len(pairs)), 1, pairs, core.ColorMuted)
}

func (g *Game) renderCard(dst *core.Screen, i int) {
	r := g.rects[i]
	c := g.session.Card(i)
	inner := core.NewRect(r.X+1, r.Y+1, r.W-2, r.H-2)

	var color core.Color
	var label string
	switch c.State() {
	case CardHidden:
		color = core.ColorCardBack
		dst.FillRect(inner, '░', color)
		label = "#" + strconv.Itoa(c.BackMotif)
	case CardFlipped:
		color = core.ColorCardFace
		label = path.Base(c.FrontImage)
	case CardMatched:
		color = core.ColorMatched
		label = path.Base(c.FrontImage)
	}

	cursor := i == g.cursor && g.session.Phase() == PhaseActive
	border := color
	if cursor {
		border = core.ColorCursor
	}
	dst.DrawBox(r, border, cursor)

	mid := inner.Y + inner.H/2
	drawLabel(dst, inner, mid, label, color)
	if c.Matched && inner.H > 1 {
		drawLabel(dst, inner, mid+1, "✓", color)
	}
}

// drawLabel centres text on row y inside r, truncating to fit.
func drawLabel(dst *core.Screen, r core.Rect, y int, text string, c core.Color) {
	runes := []rune(text)
	if len(runes) > r.W {
		runes = runes[:r.W]
	}
	x := r.X + (r.W-len(runes))/2
	dst.DrawTextColor(x, y, string(runes), c)
}
