package sim

import (
	"cmp"
	"slices"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"
)

// SpriteKind says what a sprite depicts.
type SpriteKind int

const (
	SpriteHead SpriteKind = iota
	SpriteSegment
	SpriteBlock
	SpriteSettled
	SpriteFood
)

// Sprite is one drawable cell.
type Sprite struct {
	Kind  SpriteKind
	Pos   r2.Vec
	Color colorful.Color
	// Alpha below 1 marks an invincible actor.
	Alpha float64
	// Desaturation is the frozen fade in [0, 1).
	Desaturation float64
	Visible      bool
	Actor        ActorID
	Food         FoodKind
}

// View returns a sprite for every entity on the board: settled cells and
// food first, then actors in reverse id order so the player's head draws last.
func (w *World) View() []Sprite {
	var out []Sprite
	for c, p := range w.placed {
		out = append(out, Sprite{
			Kind: SpriteSettled, Pos: w.lattice.Center(c), Color: p.color,
			Alpha: 1, Visible: true, Actor: p.owner,
		})
	}
	slices.SortFunc(out, func(a, b Sprite) int {
		return cmp.Or(cmp.Compare(a.Pos.Y, b.Pos.Y), cmp.Compare(a.Pos.X, b.Pos.X))
	})
	for _, f := range w.foods {
		out = append(out, Sprite{
			Kind: SpriteFood, Pos: f.Pos, Color: foodColors[f.Kind],
			Alpha: 1, Visible: f.Placed, Actor: NoActor, Food: f.Kind,
		})
	}
	for i := len(w.actors) - 1; i >= 0; i-- {
		out = append(out, w.actorSprites(w.actors[i])...)
	}
	return out
}

func (w *World) actorSprites(a *Actor) []Sprite {
	if a.Phase == Dead {
		return nil
	}
	color, desat := w.tint(a)
	alpha := 1.0
	if a.Mods.Invulnerable() {
		alpha = 0.25
	}
	base := Sprite{Color: color, Alpha: alpha, Desaturation: desat, Visible: true, Actor: a.ID}

	var out []Sprite
	if a.Kind == KindBlock {
		if a.block == nil {
			return nil
		}
		for _, id := range a.block.parts {
			s := base
			s.Kind = SpriteBlock
			s.Pos = w.segmentPos(id)
			out = append(out, s)
		}
		return out
	}

	segs := slices.Collect(a.Body.All())
	for i := len(segs) - 1; i >= 0; i-- {
		s := base
		s.Kind = SpriteSegment
		s.Pos = w.segmentPos(segs[i])
		out = append(out, s)
	}
	head := base
	head.Kind = SpriteHead
	head.Pos = a.Head
	head.Color = Brighten(color, 0.1)
	head.Visible = a.Phase == Alive
	return append(out, head)
}

// tint applies freeze and swiftness to the actor's base color.
func (w *World) tint(a *Actor) (colorful.Color, float64) {
	if a.Mods.Freeze > 0 {
		d := 1 - 1/(float64(a.Mods.Freeze)+2)
		return Desaturate(a.Color, d), d
	}
	return Brighten(a.Color, 0.5*float64(a.Mods.Swiftness)), 0
}

// ScoreEntry is one scoreboard line.
type ScoreEntry struct {
	Actor     ActorID
	Name      string
	Score     int
	Color     colorful.Color
	Phase     Phase
	Kind      Kind
	Player    bool
	Archetype Archetype
}

// Scoreboard returns up to n actors ranked by score, ties broken by id.
// n <= 0 returns everyone.
func (w *World) Scoreboard(n int) []ScoreEntry {
	out := make([]ScoreEntry, 0, len(w.actors))
	for _, a := range w.actors {
		out = append(out, ScoreEntry{
			Actor: a.ID, Name: a.Name, Score: a.Score, Color: a.Color,
			Phase: a.Phase, Kind: a.Kind, Player: a.Player, Archetype: a.Archetype,
		})
	}
	slices.SortStableFunc(out, func(a, b ScoreEntry) int {
		return cmp.Or(cmp.Compare(b.Score, a.Score), cmp.Compare(a.Actor, b.Actor))
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}
