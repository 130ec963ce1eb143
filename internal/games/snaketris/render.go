package snaketris

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/core"
	"github.com/vovakirdan/snaketris/internal/games/snaketris/sim"
)

// Glyph pairs; one world cell spans two screen columns.
var glyphs = map[sim.SpriteKind]string{
	sim.SpriteHead:    "██",
	sim.SpriteSegment: "▓▓",
	sim.SpriteBlock:   "[]",
	sim.SpriteSettled: "▒▒",
	sim.SpriteFood:    "<>",
}

const ghostGlyph = "░░"

// Render draws the match to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.world == nil {
		return
	}

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	frame := g.boardRect(dst)
	dst.DrawBox(frame, core.ColorGray)
	for _, s := range g.world.View() {
		if !s.Visible {
			continue
		}
		x, y, ok := g.cellAt(frame, s.Pos)
		if !ok {
			continue
		}
		glyph := glyphs[s.Kind]
		if s.Alpha < 1 {
			glyph = ghostGlyph
		}
		dst.DrawTextColored(x, y, glyph, core.Color(sim.Hex(s.Color)))
	}

	p := g.world.Player()
	switch {
	case g.world.Paused():
		g.renderOverlay(dst, "Paused", "Press P to continue")
	case p.Phase == sim.Dead && p.Spawned():
		g.renderOverlay(dst, fmt.Sprintf("You died! Score: %d", p.Score), "Space to respawn, R to restart")
	}
}

// boardRect returns the bordered board area, centered below the HUD.
func (g *Game) boardRect(dst *core.Screen) core.Rect {
	b := g.world.Board()
	w := b.ColumnCount()*2 + 2
	h := b.RowCount() + 2
	x := max((dst.Width()-w)/2, 0)
	return core.NewRect(x, hudHeight, w, h)
}

// cellAt maps a world position to the left screen column and row of its cell.
func (g *Game) cellAt(frame core.Rect, pos r2.Vec) (int, int, bool) {
	b := g.world.Board()
	pitch := b.Lattice().Pitch
	col := int(math.Floor((pos.X + b.HalfWidth()) / pitch))
	row := int(math.Floor((b.HalfHeight() - pos.Y) / pitch))
	if col < 0 || col >= b.ColumnCount() || row < 0 || row >= b.RowCount() {
		return 0, 0, false
	}
	return frame.X + 1 + col*2, frame.Y + 1 + row, true
}

// renderHUD draws the status line and separator.
func (g *Game) renderHUD(dst *core.Screen) {
	p := g.world.Player()
	var b strings.Builder
	fmt.Fprintf(&b, " %s  Score: %d  Length: %d", g.Title(), p.Score, p.Len())
	if p.Kind == sim.KindBlock && p.Living() {
		b.WriteString("  [block]")
	}
	if p.Mods.Satiety > 0 {
		fmt.Fprintf(&b, "  Sat:%d", p.Mods.Satiety)
	}
	if p.Mods.Swiftness > 0 {
		fmt.Fprintf(&b, "  Swift:%d", p.Mods.Swiftness)
	}
	if p.Mods.Freeze > 0 {
		fmt.Fprintf(&b, "  Frozen:%d", p.Mods.Freeze)
	}
	if p.Mods.Invulnerable() {
		b.WriteString("  Invincible")
	}
	dst.DrawTextColored(0, 0, b.String(), core.Color(sim.Hex(p.Color)))

	for x := range dst.Width() {
		dst.SetColored(x, 1, '─', core.ColorGray)
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	width := max(len([]rune(line1)), len([]rune(line2))) + 4
	box := core.NewRect((dst.Width()-width)/2, (dst.Height()-5)/2, width, 5)
	for y := box.Y + 1; y < box.Bottom()-1; y++ {
		for x := box.X + 1; x < box.Right()-1; x++ {
			dst.Set(x, y, ' ')
		}
	}
	dst.DrawBox(box, core.ColorWhite)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
