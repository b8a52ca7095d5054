// Package tui is the terminal rendition of the analyzer page.
package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"syllabus-analyzer/internal/analyses"
	"syllabus-analyzer/internal/report"
)

// Analyzer runs one analysis.
type Analyzer interface {
	Enabled() bool
	Analyze(ctx context.Context, syllabus, exam string) (analyses.Result, error)
}

type focusArea int

const (
	focusSyllabus focusArea = iota
	focusExam
	focusResults
)

// Options configures a Model. Zero values use the real clipboard, the current
// directory and os.WriteFile.
type Options struct {
	Context   context.Context
	Syllabus  string
	Exam      string
	ExportDir string

	Clipboard func(string) error
	WriteFile func(name string, data []byte) error
}

type analysisDoneMsg struct {
	seq    int
	result analyses.Result
	err    error
}

type copyResetMsg struct {
	timer *tickTimer
}

// tickTimer lets report.CopyStatus schedule its reset through tea.Tick.
type tickTimer struct {
	fn      func()
	after   time.Duration
	stopped bool
}

func (t *tickTimer) Stop() bool {
	active := !t.stopped
	t.stopped = true
	return active
}

type copyControl struct {
	status *report.CopyStatus
	next   *tickTimer
}

// Model is the bubbletea model.
type Model struct {
	analyzer Analyzer
	ctx      context.Context

	syllabus textarea.Model
	exam     textarea.Model
	results  viewport.Model
	spinner  spinner.Model
	focus    focusArea

	busy    bool
	seq     int
	items   []analyses.AnalysisResultItem
	errMsg  string
	notice  string
	copyCtl *copyControl

	exportDir string
	clipboard func(string) error
	writeFile func(string, []byte) error

	width  int
	height int
}

// New constructs a Model.
func New(analyzer Analyzer, opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	syllabus := newTextarea(analyses.SampleSyllabus())
	syllabus.SetValue(opts.Syllabus)
	syllabus.Focus()
	exam := newTextarea(analyses.SampleExam())
	exam.SetValue(opts.Exam)

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	ctl := &copyControl{}
	ctl.status = &report.CopyStatus{
		AfterFunc: func(d time.Duration, f func()) report.Timer {
			t := &tickTimer{fn: f, after: d}
			ctl.next = t
			return t
		},
	}

	m := Model{
		analyzer:  analyzer,
		ctx:       ctx,
		syllabus:  syllabus,
		exam:      exam,
		results:   viewport.New(80, 12),
		spinner:   sp,
		copyCtl:   ctl,
		exportDir: opts.ExportDir,
		clipboard: opts.Clipboard,
		writeFile: opts.WriteFile,
	}
	if m.clipboard == nil {
		m.clipboard = clipboard.WriteAll
	}
	if m.writeFile == nil {
		m.writeFile = func(name string, data []byte) error { return os.WriteFile(name, data, 0o644) }
	}
	m.refreshResults()
	return m
}

func newTextarea(placeholder string) textarea.Model {
	ta := textarea.New()
	ta.Placeholder = strings.TrimSpace(placeholder)
	ta.CharLimit = 0
	ta.ShowLineNumbers = false
	ta.SetWidth(40)
	ta.SetHeight(10)
	return ta
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textarea.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case analysisDoneMsg:
		if msg.seq == m.seq {
			m.busy = false
		}
		if msg.err != nil {
			m.errMsg = analyses.UserMessage(msg.err)
			m.items = nil
			m.refreshResults()
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.result.Items
		m.refreshResults()
		return m, nil

	case copyResetMsg:
		if !msg.timer.stopped {
			msg.timer.fn()
		}
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "tab":
			return m, m.cycleFocus()
		case "ctrl+s":
			return m.submit()
		case "ctrl+e":
			m.syllabus.SetValue(analyses.SampleSyllabus())
			m.exam.SetValue(analyses.SampleExam())
			return m, nil
		}
		if m.focus == focusResults {
			return m.updateResults(msg)
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case focusSyllabus:
		m.syllabus, cmd = m.syllabus.Update(msg)
	case focusExam:
		m.exam, cmd = m.exam.Update(msg)
	}
	return m, cmd
}

func (m *Model) cycleFocus() tea.Cmd {
	m.focus = (m.focus + 1) % 3
	m.syllabus.Blur()
	m.exam.Blur()
	switch m.focus {
	case focusSyllabus:
		return m.syllabus.Focus()
	case focusExam:
		return m.exam.Focus()
	}
	return nil
}

// CanSubmit mirrors the page's submit button: enabled only with a key, both
// inputs filled and no request in flight.
func (m Model) CanSubmit() bool {
	return m.analyzer != nil && m.analyzer.Enabled() && !m.busy &&
		strings.TrimSpace(m.syllabus.Value()) != "" &&
		strings.TrimSpace(m.exam.Value()) != ""
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	if !m.CanSubmit() {
		return m, nil
	}
	m.busy = true
	m.errMsg = ""
	m.notice = ""
	m.items = nil
	m.refreshResults()
	m.seq++
	return m, tea.Batch(m.spinner.Tick, m.analyzeCmd(m.seq, m.syllabus.Value(), m.exam.Value()))
}

func (m Model) analyzeCmd(seq int, syllabus, exam string) tea.Cmd {
	analyzer := m.analyzer
	ctx := m.ctx
	return func() tea.Msg {
		result, err := analyzer.Analyze(ctx, syllabus, exam)
		return analysisDoneMsg{seq: seq, result: result, err: err}
	}
}

func (m Model) updateResults(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "c":
		if report.Empty(m.items) {
			return m, nil
		}
		return m, m.copyResults()
	case "x":
		m.exportResults()
		return m, nil
	}
	var cmd tea.Cmd
	m.results, cmd = m.results.Update(msg)
	return m, cmd
}

func (m Model) copyResults() tea.Cmd {
	_ = m.copyCtl.status.Copy(func() error {
		text, err := report.CopyText(m.items)
		if err != nil {
			return err
		}
		return m.clipboard(text)
	})
	t := m.copyCtl.next
	if t == nil {
		return nil
	}
	return tea.Tick(t.after, func(time.Time) tea.Msg { return copyResetMsg{timer: t} })
}

func (m *Model) exportResults() {
	data, err := report.XLSX(m.items)
	if err != nil {
		m.notice = "Export failed: " + err.Error()
		return
	}
	path := filepath.Join(m.exportDir, report.XLSXFilename)
	if err := m.writeFile(path, data); err != nil {
		m.notice = "Export failed: " + err.Error()
		return
	}
	m.notice = fmt.Sprintf("Saved %s", path)
}

// CopyLabel is the current copy button label.
func (m Model) CopyLabel() string {
	return m.copyCtl.status.Label()
}

// Items returns the displayed record sequence.
func (m Model) Items() []analyses.AnalysisResultItem {
	return m.items
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	half := (width - 6) / 2
	if half < 20 {
		half = 20
	}
	m.syllabus.SetWidth(half)
	m.exam.SetWidth(half)
	m.results.Width = width
	rest := height - m.syllabus.Height() - 10
	if rest < 5 {
		rest = 5
	}
	m.results.Height = rest
	m.refreshResults()
}

func (m *Model) refreshResults() {
	m.results.SetContent(report.RenderTable(m.items, m.results.Width))
}
