package sim

import (
	"strings"
	"time"

	"github.com/lucasb-eyer/go-colorful"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/vovakirdan/snaketris/internal/games/snaketris/body"
)

// ActorID indexes an actor in its World. IDs are stable for a match.
type ActorID int

// NoActor marks obstacles that belong to nobody, such as settled blocks.
const NoActor ActorID = -1

// Archetype selects what an AI snake chases.
type Archetype int

const (
	ArchetypeNone      Archetype = iota // human player
	ArchetypeEater                      // nearest food of any kind
	ArchetypeKiller                     // nearest rival head or energetic food
	ArchetypeSpeedster                  // nearest energetic food
	ArchetypeGlutton                    // nearest beefy food
)

var archetypeNames = map[Archetype]string{
	ArchetypeNone:      "player",
	ArchetypeEater:     "eater",
	ArchetypeKiller:    "killer",
	ArchetypeSpeedster: "speedster",
	ArchetypeGlutton:   "glutton",
}

func (a Archetype) String() string {
	return archetypeNames[a]
}

// ParseArchetype maps a config name to an AI archetype.
func ParseArchetype(s string) (Archetype, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	for a, name := range archetypeNames {
		if a != ArchetypeNone && name == s {
			return a, true
		}
	}
	return ArchetypeNone, false
}

// Kind is the physical form an actor currently takes.
type Kind int

const (
	KindSnake Kind = iota
	KindBlock
)

// Phase is an actor's lifecycle state.
type Phase int

const (
	Alive Phase = iota
	Dying       // shedding one tail segment per move
	Dead        // off the board, waiting to respawn
)

func (p Phase) String() string {
	switch p {
	case Alive:
		return "alive"
	case Dying:
		return "dying"
	default:
		return "dead"
	}
}

// Modifiers are the timed and stacked effects on a living actor. Zero values
// mean the effect is absent.
type Modifiers struct {
	Satiety    int // multiplies growth
	Swiftness  int // shortens the move cooldown
	Freeze     int // stretches the move cooldown to the freeze duration
	Invincible time.Duration

	Nourishment int // segments still to grow
	Hunger      int // segments still to shed

	freezeLeft time.Duration
	swiftAge   time.Duration
}

// Invulnerable reports whether collisions are ignored.
func (m Modifiers) Invulnerable() bool {
	return m.Invincible > 0
}

// Actor is a snake or a falling block, controlled by the player or an AI.
type Actor struct {
	ID        ActorID
	Name      string
	Player    bool
	Archetype Archetype
	Kind      Kind
	Phase     Phase

	Head     r2.Vec
	Body     *body.Body
	Steering Steering
	Cooldown Cooldown

	Color  colorful.Color
	Speed  float64
	Length int // body segments to spawn with

	Score     int
	Kills     int
	Deaths    int
	Meals     int
	MaxLength int

	Mods Modifiers

	target    r2.Vec
	hasTarget bool
	block     *Block
	fresh     bool // never spawned
	snakify   bool // landed as a block, waiting for room to become a snake again
}

// Len returns the total length including the head, or 0 when not a snake on
// the board.
func (a *Actor) Len() int {
	if a.Kind != KindSnake || a.Phase == Dead {
		return 0
	}
	return a.Body.Len() + 1
}

// Spawned reports whether the actor has ever entered the board.
func (a *Actor) Spawned() bool {
	return !a.fresh
}

// Living reports whether the actor is alive in either form.
func (a *Actor) Living() bool {
	return a.Phase == Alive
}

// Snake reports whether the actor is a living snake.
func (a *Actor) Snake() bool {
	return a.Phase == Alive && a.Kind == KindSnake
}

func (a *Actor) addScore(n int) {
	a.Score = max(a.Score+n, 0)
}
