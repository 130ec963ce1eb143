package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/snaketris/internal/core"
)

// Standings panel layout
const (
	standingsWidth    = 34  // Panel width including border
	minWidthStandings = 100 // Minimum terminal width to show the panel
	maxStandings      = 10
)

// StandingsPanel shows the live ranking of every snake in the match.
type StandingsPanel struct {
	table  table.Model
	height int
}

// NewStandingsPanel creates a panel for a terminal of the given height.
func NewStandingsPanel(height int) StandingsPanel {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 12},
		{Title: "Score", Width: 5},
		{Title: "State", Width: 6},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(min(maxStandings, max(height-6, 1))),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = lipgloss.NewStyle()
	t.SetStyles(s)

	return StandingsPanel{table: t, height: height}
}

// SetStandings replaces the table rows. The player's row is marked with *.
func (p *StandingsPanel) SetStandings(standings []core.Standing) {
	p.table.SetRows(standingRows(standings))
}

func standingRows(standings []core.Standing) []table.Row {
	rows := make([]table.Row, len(standings))
	for i, s := range standings {
		name := s.Name
		if s.Player {
			name = "*" + name
		}
		if len([]rune(name)) > 12 {
			name = string([]rune(name)[:11]) + "."
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", i+1),
			name,
			fmt.Sprintf("%d", s.Score),
			s.Status,
		}
	}
	return rows
}

// View renders the bordered panel.
func (p StandingsPanel) View() string {
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Width(standingsWidth - 2)

	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Bold(true).Render("Standings"))
	b.WriteString("\n")
	b.WriteString(p.table.View())
	return style.Render(b.String())
}
