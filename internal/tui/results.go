package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/tokitype/internal/stats"
)

func (m *Model) buildResults() {
	m.results = stats.Summarize(m.snap.Session.Snapshot)
	m.resultsSession = m.snap.Session.ID

	columns := []table.Column{
		{Title: "Word", Width: 16},
		{Title: "Typed", Width: 16},
		{Title: "Time", Width: 8},
		{Title: "", Width: 2},
	}
	rows := make([]table.Row, 0, len(m.results.Words))
	for _, w := range m.results.Words {
		mark := "x"
		if w.Exact() {
			mark = "ok"
		}
		rows = append(rows, table.Row{w.Text, w.Input, fmt.Sprintf("%.2fs", w.Duration.Seconds()), mark})
	}
	m.resultsTable = table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithStyles(resultsTableStyles()),
	)
	m.resizeResultsTable()

	m.log.Info().
		Str("session", m.resultsSession).
		Float64("wpm", m.results.WPM).
		Float64("accuracy", m.results.Accuracy).
		Dur("active", m.results.Active).
		Msg("results")
}

func (m *Model) resizeResultsTable() {
	if m.resultsSession == "" {
		return
	}
	if m.height == 0 {
		m.resultsTable.SetHeight(min(len(m.results.Words)+1, 12))
		return
	}
	m.resultsTable.SetHeight(max(min(len(m.results.Words)+1, m.height-8), 2))
}

func resultsTableStyles() table.Styles {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#4A4A4A")).
		BorderBottom(true).
		Bold(false)
	styles.Selected = styles.Selected.
		Foreground(lipgloss.Color("#F0F0F0")).
		Background(lipgloss.Color("#4A4A4A")).
		Bold(false)
	return styles
}

func (m *Model) viewResults() string {
	res := m.results
	help := fmt.Sprintf("%s again · %s quit",
		m.resultsKeys.Again.Help().Key, m.resultsKeys.Quit.Help().Key)
	if len(res.Words) == 0 {
		return m.place(pendingStyle.Render("No words match the selection."), footerStyle.Render(help))
	}
	summary := strings.Join([]string{
		titleStyle.Render("Results"),
		"",
		fmt.Sprintf("WPM %s   Accuracy %s   Active %s",
			valueStyle.Render(fmt.Sprintf("%.1f", res.WPM)),
			valueStyle.Render(fmt.Sprintf("%.1f%%", res.Accuracy*100)),
			valueStyle.Render(fmt.Sprintf("%.1fs", res.Active.Seconds())),
		),
		"",
		m.resultsTable.View(),
	}, "\n")
	return m.place(summary, footerStyle.Render(help))
}
