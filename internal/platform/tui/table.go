package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// RenderTable draws a static table for command output. Numeric columns
// listed in right are right-aligned.
func RenderTable(theme Theme, headers []string, rows [][]string, right ...int) string {
	alignRight := make(map[int]bool, len(right))
	for _, col := range right {
		alignRight[col] = true
	}

	header := theme.Subtitle.Bold(true).Padding(0, 1)
	cell := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := cell
			if row == table.HeaderRow {
				s = header
			}
			if alignRight[col] {
				s = s.Align(lipgloss.Right)
			}
			return s
		})
	return t.String()
}
