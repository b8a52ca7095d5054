package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"syllabus-analyzer/internal/report"
	"syllabus-analyzer/internal/shared/config"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	bannerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#713f12")).Background(lipgloss.Color("#facc15")).Padding(0, 1)
	labelStyle   = lipgloss.NewStyle().Bold(true)
	paneStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	focusedPane  = paneStyle.BorderForeground(lipgloss.Color("63"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#991b1b")).Bold(true)
	noticeStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#166534"))
	helpStyle    = lipgloss.NewStyle().Faint(true)
	buttonStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#475569")).Background(lipgloss.Color("#f1f5f9")).Padding(0, 1)
	disabledHint = lipgloss.NewStyle().Faint(true).Italic(true)
)

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder

	if m.analyzer == nil || !m.analyzer.Enabled() {
		b.WriteString(bannerStyle.Render(config.MissingKeyBanner))
		b.WriteString("\n")
	}
	b.WriteString(titleStyle.Render("Syllabus & Exam Analyzer AI"))
	b.WriteString("\n\n")

	left := m.pane("Syllabus Content", m.syllabus.View(), m.focus == focusSyllabus)
	right := m.pane("Exam Content", m.exam.View(), m.focus == focusExam)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right))
	b.WriteString("\n")

	switch {
	case m.busy:
		b.WriteString(m.spinner.View() + " Analyzing...")
	case m.CanSubmit():
		b.WriteString(buttonStyle.Render("ctrl+s Analyze"))
	default:
		b.WriteString(disabledHint.Render("Analyze (fill both boxes to enable)"))
	}
	b.WriteString("\n")

	if m.errMsg != "" {
		b.WriteString(errorStyle.Render(m.errMsg))
		b.WriteString("\n")
	}

	if !report.Empty(m.items) {
		header := labelStyle.Render("Analysis Results") + "  " +
			buttonStyle.Render("c "+m.CopyLabel()) + " " +
			buttonStyle.Render("x Export as Excel")
		b.WriteString("\n" + header + "\n")
	}
	results := m.results.View()
	if m.focus == focusResults {
		results = focusedPane.Render(results)
	}
	b.WriteString(results)
	b.WriteString("\n")

	if m.notice != "" {
		b.WriteString(noticeStyle.Render(m.notice))
		b.WriteString("\n")
	}
	b.WriteString(helpStyle.Render("tab switch focus • ctrl+s analyze • ctrl+e load sample • c copy • x export • esc quit"))
	return b.String()
}

func (m Model) pane(title, body string, focused bool) string {
	style := paneStyle
	if focused {
		style = focusedPane
	}
	return style.Render(labelStyle.Render(title) + "\n" + body)
}
