package report

import "syllabus-analyzer/internal/analyses"

// Style is the presentation of one Bloom level. Class is used by the web page,
// Foreground/Background by the terminal renderers.
type Style struct {
	Name       string
	Class      string
	Foreground string
	Background string
}

// NeutralStyle is used for levels outside the taxonomy.
var NeutralStyle = Style{Name: "slate", Class: "bloom-slate", Foreground: "#334155", Background: "#f1f5f9"}

var bloomStyles = map[analyses.BloomLevel]Style{
	analyses.BloomRemembering:   {Name: "blue", Class: "bloom-blue", Foreground: "#1e40af", Background: "#dbeafe"},
	analyses.BloomUnderstanding: {Name: "green", Class: "bloom-green", Foreground: "#166534", Background: "#dcfce7"},
	analyses.BloomApplying:      {Name: "yellow", Class: "bloom-yellow", Foreground: "#854d0e", Background: "#fef9c3"},
	analyses.BloomAnalyzing:     {Name: "purple", Class: "bloom-purple", Foreground: "#6b21a8", Background: "#f3e8ff"},
	analyses.BloomEvaluating:    {Name: "red", Class: "bloom-red", Foreground: "#991b1b", Background: "#fee2e2"},
	analyses.BloomCreating:      {Name: "pink", Class: "bloom-pink", Foreground: "#9d174d", Background: "#fce7f3"},
}

// BloomStyle returns the style for level, falling back to NeutralStyle.
func BloomStyle(level analyses.BloomLevel) Style {
	if s, ok := bloomStyles[level]; ok {
		return s
	}
	return NeutralStyle
}

// Row is one table row ready for rendering.
type Row struct {
	Item  analyses.AnalysisResultItem
	Style Style
}

// Rows maps items to table rows, preserving order.
func Rows(items []analyses.AnalysisResultItem) []Row {
	rows := make([]Row, 0, len(items))
	for _, item := range items {
		rows = append(rows, Row{Item: item, Style: BloomStyle(item.BloomsLevel)})
	}
	return rows
}

// EmptyMessage is shown when there is nothing to display.
const EmptyMessage = "No analysis results to display."

// Empty reports whether the empty state should be shown.
func Empty(items []analyses.AnalysisResultItem) bool {
	return len(items) == 0
}
