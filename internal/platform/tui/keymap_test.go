package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snaketris/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestGameKeyMapActions(t *testing.T) {
	keys := DefaultGameKeyMap()
	tests := []struct {
		name string
		msg  tea.KeyMsg
		want core.Action
	}{
		{"arrow up", tea.KeyMsg{Type: tea.KeyUp}, core.ActionUp},
		{"w", runeKey('w'), core.ActionUp},
		{"arrow down", tea.KeyMsg{Type: tea.KeyDown}, core.ActionDown},
		{"a", runeKey('a'), core.ActionLeft},
		{"arrow right", tea.KeyMsg{Type: tea.KeyRight}, core.ActionRight},
		{"space", tea.KeyMsg{Type: tea.KeySpace}, core.ActionRespawn},
		{"p", runeKey('p'), core.ActionPause},
		{"r", runeKey('r'), core.ActionRestart},
		{"esc", tea.KeyMsg{Type: tea.KeyEsc}, core.ActionBack},
		{"grow disabled", runeKey('+'), core.ActionNone},
		{"unbound", runeKey('z'), core.ActionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := keys.Action(tt.msg); got != tt.want {
				t.Errorf("Action(%q) = %v, want %v", tt.msg.String(), got, tt.want)
			}
		})
	}
}

func TestGameKeyMapDebug(t *testing.T) {
	keys := DefaultGameKeyMap()
	keys.EnableDebug()
	if got := keys.Action(runeKey('+')); got != core.ActionGrow {
		t.Errorf("Action(+) = %v, want grow", got)
	}
	if got := keys.Action(runeKey('-')); got != core.ActionShrink {
		t.Errorf("Action(-) = %v, want shrink", got)
	}
}

func TestMenuActions(t *testing.T) {
	cases := map[string]struct {
		msg  tea.KeyMsg
		want MenuAction
	}{
		"down":  {tea.KeyMsg{Type: tea.KeyDown}, MenuActionDown},
		"k":     {runeKey('k'), MenuActionUp},
		"enter": {tea.KeyMsg{Type: tea.KeyEnter}, MenuActionSelect},
		"tab":   {tea.KeyMsg{Type: tea.KeyTab}, MenuActionScoreboard},
		"q":     {runeKey('q'), MenuActionQuit},
	}
	for name, c := range cases {
		if got := MapKeyToMenuAction(c.msg); got != c.want {
			t.Errorf("%s: got %v, want %v", name, got, c.want)
		}
	}
}
