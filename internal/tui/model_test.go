package tui

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"syllabus-analyzer/internal/analyses"
	"syllabus-analyzer/internal/report"
	"syllabus-analyzer/internal/shared/config"
)

type stubAnalyzer struct {
	enabled bool
	result  analyses.Result
	err     error
	calls   int
}

func (s *stubAnalyzer) Enabled() bool { return s.enabled }

func (s *stubAnalyzer) Analyze(ctx context.Context, syllabus, exam string) (analyses.Result, error) {
	s.calls++
	return s.result, s.err
}

var oneItem = []analyses.AnalysisResultItem{{
	QuestionNumber:          "3",
	Topic:                   "Genetics",
	IntendedLearningOutcome: "Apply Mendelian genetics",
	BloomsLevel:             analyses.BloomApplying,
	SuggestedItemPlacement:  "Keep as is",
	SuggestedTOSTableRow:    "Genetics: Applying",
}}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "ctrl+s":
		return tea.KeyMsg{Type: tea.KeyCtrlS}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok)
	return out, cmd
}

func TestSubmitDisabledWithoutKey(t *testing.T) {
	analyzer := &stubAnalyzer{enabled: false}
	m := New(analyzer, Options{Syllabus: "s", Exam: "e"})

	require.False(t, m.CanSubmit())
	m, cmd := update(t, m, key("ctrl+s"))
	require.Nil(t, cmd)
	require.False(t, m.busy)
	require.Contains(t, m.View(), config.MissingKeyBanner)
}

func TestSubmitDisabledWithBlankInput(t *testing.T) {
	m := New(&stubAnalyzer{enabled: true}, Options{Syllabus: "s", Exam: "  "})
	require.False(t, m.CanSubmit())
	require.NotContains(t, m.View(), config.MissingKeyBanner)
}

func TestSubmitRunsAnalysis(t *testing.T) {
	analyzer := &stubAnalyzer{enabled: true, result: analyses.Result{ID: "r1", Items: oneItem}}
	m := New(analyzer, Options{Syllabus: "s", Exam: "e"})

	m, cmd := update(t, m, key("ctrl+s"))
	require.NotNil(t, cmd)
	require.True(t, m.busy)
	require.False(t, m.CanSubmit(), "submit must be disabled while in flight")

	done := m.analyzeCmd(m.seq, "s", "e")()
	require.Equal(t, 1, analyzer.calls)

	m, _ = update(t, m, done)
	require.False(t, m.busy)
	require.Equal(t, oneItem, m.Items())
	require.Contains(t, m.View(), "Genetics")
}

func TestAnalysisErrorShowsMessage(t *testing.T) {
	m := New(&stubAnalyzer{enabled: true}, Options{Syllabus: "s", Exam: "e"})
	m.items = oneItem

	m, _ = update(t, m, analysisDoneMsg{seq: 0, err: &analyses.AnalysisError{Kind: analyses.KindMalformedResponse}})
	require.Contains(t, m.View(), analyses.MessageMalformedResponse)
	require.Empty(t, m.Items())
	require.NotContains(t, m.View(), "Apply Mendelian genetics")
}

func TestSubmitClearsPreviousResults(t *testing.T) {
	m := New(&stubAnalyzer{enabled: true}, Options{Syllabus: "s", Exam: "e"})
	m.items = oneItem

	m, cmd := update(t, m, key("ctrl+s"))
	require.NotNil(t, cmd)
	require.Empty(t, m.Items())
}

func TestStaleCompletionStillOverwrites(t *testing.T) {
	m := New(&stubAnalyzer{enabled: true}, Options{})
	m.seq = 2
	m.busy = true

	m, _ = update(t, m, analysisDoneMsg{seq: 1, result: analyses.Result{Items: oneItem}})
	require.Equal(t, oneItem, m.Items())
	require.True(t, m.busy, "only the latest run clears the busy flag")
}

func TestCopyAndReset(t *testing.T) {
	var copied string
	m := New(&stubAnalyzer{enabled: true}, Options{Clipboard: func(s string) error { copied = s; return nil }})
	m.items = oneItem
	for i := 0; i < 2; i++ {
		m, _ = update(t, m, key("tab"))
	}
	require.Equal(t, focusResults, m.focus)

	m, cmd := update(t, m, key("c"))
	require.NotNil(t, cmd)
	require.Equal(t, report.LabelCopied, m.CopyLabel())
	require.True(t, strings.HasPrefix(copied, "[\n  {"))

	timer := m.copyCtl.next
	require.Equal(t, report.DefaultCopyReset, timer.after)
	m, _ = update(t, m, copyResetMsg{timer: timer})
	require.Equal(t, report.LabelCopy, m.CopyLabel())
}

func TestCopyFailure(t *testing.T) {
	m := New(&stubAnalyzer{enabled: true}, Options{Clipboard: func(string) error { return errors.New("no clipboard") }})
	m.items = oneItem
	m.focus = focusResults

	m, _ = update(t, m, key("c"))
	require.Equal(t, report.LabelCopyFailed, m.CopyLabel())
}

func TestNewCopyCancelsPendingReset(t *testing.T) {
	m := New(&stubAnalyzer{enabled: true}, Options{Clipboard: func(string) error { return nil }})
	m.items = oneItem
	m.focus = focusResults

	m, _ = update(t, m, key("c"))
	first := m.copyCtl.next
	m, _ = update(t, m, key("c"))
	require.True(t, first.stopped)

	m, _ = update(t, m, copyResetMsg{timer: first})
	require.Equal(t, report.LabelCopied, m.CopyLabel())
}

func TestExportWritesWorkbook(t *testing.T) {
	var (
		path string
		data []byte
	)
	m := New(&stubAnalyzer{enabled: true}, Options{
		ExportDir: "out",
		WriteFile: func(name string, b []byte) error { path, data = name, b; return nil },
	})
	m.items = oneItem
	m.focus = focusResults

	m, _ = update(t, m, key("x"))
	require.Equal(t, filepath.Join("out", report.XLSXFilename), path)
	require.NotEmpty(t, data)
	require.Contains(t, m.View(), "Saved")
}
