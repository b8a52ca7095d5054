package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"syllabus-analyzer/internal/analyses"
)

// CopyText serializes items as the clipboard payload: JSON indented by two
// spaces, with &, < and > left as typed. A nil or empty sequence yields "[]".
func CopyText(items []analyses.AnalysisResultItem) (string, error) {
	if items == nil {
		items = []analyses.AnalysisResultItem{}
	}
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(items); err != nil {
		return "", fmt.Errorf("marshal copy text: %w", err)
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// CopyState is the state of the copy button.
type CopyState int

const (
	CopyIdle CopyState = iota
	CopyConfirmed
	CopyFailed
)

// Labels shown on the copy button.
const (
	LabelCopy       = "Copy as JSON"
	LabelCopied     = "Copied!"
	LabelCopyFailed = "Failed to copy"
)

func (s CopyState) Label() string {
	switch s {
	case CopyConfirmed:
		return LabelCopied
	case CopyFailed:
		return LabelCopyFailed
	default:
		return LabelCopy
	}
}

func (s CopyState) String() string {
	switch s {
	case CopyConfirmed:
		return "confirmed"
	case CopyFailed:
		return "failed"
	default:
		return "idle"
	}
}

// DefaultCopyReset is how long a confirmation or failure stays visible.
const DefaultCopyReset = 2 * time.Second

// Timer is the part of *time.Timer that CopyStatus needs.
type Timer interface {
	Stop() bool
}

// CopyStatus tracks the copy button. Each Copy schedules a return to idle;
// a later Copy cancels the earlier reset so only the newest one applies.
type CopyStatus struct {
	// ResetAfter defaults to DefaultCopyReset.
	ResetAfter time.Duration
	// AfterFunc defaults to time.AfterFunc.
	AfterFunc func(d time.Duration, f func()) Timer
	// OnChange is called after every transition, outside the lock.
	OnChange func(CopyState)

	mu    sync.Mutex
	state CopyState
	timer Timer
	gen   uint64
}

// State returns the current state.
func (s *CopyStatus) State() CopyState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Label returns the current button label.
func (s *CopyStatus) Label() string {
	return s.State().Label()
}

// Copy runs write and records the outcome. The write error is returned so the
// caller may log it; it never needs to be shown beyond the label.
func (s *CopyStatus) Copy(write func() error) error {
	err := write()
	next := CopyConfirmed
	if err != nil {
		next = CopyFailed
	}

	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.gen++
	gen := s.gen
	s.state = next
	s.timer = s.afterFunc()(s.resetAfter(), func() { s.reset(gen) })
	s.mu.Unlock()

	s.notify(next)
	return err
}

func (s *CopyStatus) reset(gen uint64) {
	s.mu.Lock()
	if gen != s.gen {
		s.mu.Unlock()
		return
	}
	s.state = CopyIdle
	s.timer = nil
	s.mu.Unlock()

	s.notify(CopyIdle)
}

func (s *CopyStatus) notify(state CopyState) {
	if s.OnChange != nil {
		s.OnChange(state)
	}
}

func (s *CopyStatus) resetAfter() time.Duration {
	if s.ResetAfter > 0 {
		return s.ResetAfter
	}
	return DefaultCopyReset
}

func (s *CopyStatus) afterFunc() func(time.Duration, func()) Timer {
	if s.AfterFunc != nil {
		return s.AfterFunc
	}
	return func(d time.Duration, f func()) Timer { return time.AfterFunc(d, f) }
}
