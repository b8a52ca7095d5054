package report

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"syllabus-analyzer/internal/analyses"
)

// TableHeaders are the columns of the on-screen table. Placement and TOS row
// share the Suggestions column.
var TableHeaders = []string{"Question", "Topic", "Intended Learning Outcome", "Bloom's Level", "Suggestions"}

const bloomColumn = 3

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	emptyStyle  = lipgloss.NewStyle().Faint(true).Italic(true)
)

// Suggestions joins placement and TOS row the way the results table shows them.
func Suggestions(item analyses.AnalysisResultItem) string {
	return "Placement: " + item.SuggestedItemPlacement + "\nTOS Row: " + item.SuggestedTOSTableRow
}

// RenderTable draws items as a terminal table no wider than width (0 = natural).
func RenderTable(items []analyses.AnalysisResultItem, width int) string {
	if Empty(items) {
		return emptyStyle.Render(EmptyMessage)
	}
	rows := Rows(items)
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		Headers(TableHeaders...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if col == bloomColumn && row >= 0 && row < len(rows) {
				s := rows[row].Style
				return cellStyle.
					Foreground(lipgloss.Color(s.Foreground)).
					Background(lipgloss.Color(s.Background))
			}
			return cellStyle
		})
	for _, r := range rows {
		t.Row(
			r.Item.QuestionNumber,
			r.Item.Topic,
			r.Item.IntendedLearningOutcome,
			string(r.Item.BloomsLevel),
			Suggestions(r.Item),
		)
	}
	if width > 0 {
		t.Width(width)
	}
	return t.Render()
}
