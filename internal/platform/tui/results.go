package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/microarcade/internal/match"
	"github.com/vovakirdan/microarcade/internal/registry"
)

// ResultsModel shows the rounds of a finished gauntlet in a table.
type ResultsModel struct {
	history []match.RoundResult
	wins    int
	lives   int
	table   table.Model
	width   int
	height  int
}

// NewResultsModel creates a results view for the given history.
func NewResultsModel(history []match.RoundResult, wins, lives, width, height int) ResultsModel {
	m := ResultsModel{
		history: history,
		wins:    wins,
		lives:   lives,
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.table.SetRows(resultRows(history))
	return m
}

// createTable creates the table with columns sized to the window.
func (m *ResultsModel) createTable() table.Model {
	columns := []table.Column{
		{Title: "#", Width: 4},
		{Title: "Game", Width: 14},
		{Title: "Tier", Width: 8},
		{Title: "Speed", Width: 7},
		{Title: "Result", Width: 7},
		{Title: "Ended", Width: 9},
		{Title: "Score", Width: 7},
		{Title: "Time", Width: 7},
	}

	height := m.height - 8 // Leave room for header, help, and margins
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// resultRows formats one table row per round.
func resultRows(history []match.RoundResult) []table.Row {
	titles := make(map[string]string)
	for _, info := range registry.List() {
		titles[info.ID] = info.Title
	}

	rows := make([]table.Row, len(history))
	for i, r := range history {
		title, ok := titles[r.GameID]
		if !ok {
			title = r.GameID
		}
		rows[i] = table.Row{
			fmt.Sprintf("%d", r.Index+1),
			title,
			string(r.Tier),
			fmt.Sprintf("x%.2f", r.Speed),
			r.Outcome.String(),
			r.Reason.String(),
			r.ScoreText(),
			fmt.Sprintf("%.1fs", r.Elapsed.Seconds()),
		}
	}
	return rows
}

// Init initializes the results model.
func (m ResultsModel) Init() tea.Cmd {
	return nil
}

// Update scrolls the table and tracks the window size.
func (m ResultsModel) Update(msg tea.Msg) (ResultsModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		m.table = m.createTable()
		m.table.SetRows(resultRows(m.history))
		return m, nil
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the summary line and the table.
func (m ResultsModel) View() string {
	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229"))

	b.WriteString("\n")
	b.WriteString(centerText(titleStyle.Render("GAME OVER"), m.width))
	b.WriteString("\n\n")

	summary := fmt.Sprintf("Rounds %d  |  Won %d  |  Lives left %d", len(m.history), m.wins, m.lives)
	b.WriteString(centerText(summary, m.width))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)

	if len(m.history) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(1, 4)
		b.WriteString(emptyStyle.Render("No rounds played."))
		return b.String()
	}

	b.WriteString(tableStyle.Render(m.table.View()))
	return b.String()
}

// centerText centers text within given width.
func centerText(text string, width int) string {
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := (width - w) / 2
	return strings.Repeat(" ", padding) + text
}
