package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/snaketris/internal/core"
	"github.com/vovakirdan/snaketris/internal/games/snaketris"
	"github.com/vovakirdan/snaketris/internal/storage"
)

func newTestModel(t *testing.T, store *storage.Store, width, height int) Model {
	t.Helper()
	cfg := core.RuntimeConfig{ScreenW: width, ScreenH: height, TickRate: 60, Seed: 99}
	m := NewModel(snaketris.New(), store, cfg, Options{Player: "tester"})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return out
}

func TestModelLayoutWithStandings(t *testing.T) {
	m := newTestModel(t, nil, 120, 30)
	if !m.showStandings() {
		t.Fatal("standings panel should fit at width 120")
	}
	if m.config.ScreenW != 120-standingsWidth || m.config.ScreenH != 29 {
		t.Errorf("game screen = %dx%d", m.config.ScreenW, m.config.ScreenH)
	}

	m = update(t, m, TickMsg(time.Now()))
	if view := m.View(); !strings.Contains(view, "Standings") {
		t.Error("view should include the standings panel")
	}

	m = update(t, m, tea.WindowSizeMsg{Width: 80, Height: 24})
	if m.showStandings() {
		t.Error("standings panel should hide at width 80")
	}
	if m.config.ScreenW != 80 {
		t.Errorf("ScreenW = %d, want 80", m.config.ScreenW)
	}
}

func TestModelPauseAndQuit(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	m := newTestModel(t, store, 80, 24)
	for range 5 {
		m = update(t, m, TickMsg(time.Now()))
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = update(t, m, TickMsg(time.Now()))
	if !m.gameState.Paused {
		t.Fatal("expected paused after p")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if !m.IsQuitting() {
		t.Fatal("expected quitting after q")
	}

	matches, err := store.RecentMatches("snaketris", 10)
	if err != nil {
		t.Fatalf("RecentMatches() failed: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("saved matches = %d, want 1", len(matches))
	}
	if matches[0].Player != "tester" || matches[0].Frames != 5 {
		t.Errorf("match = %+v", matches[0])
	}
}

func TestModelBackOnlyWhenPaused(t *testing.T) {
	m := newTestModel(t, nil, 80, 24)
	m = update(t, m, TickMsg(time.Now()))

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("esc during play should not leave the game")
	}

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'p'}})
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("esc while paused should return to the menu")
	}
}
