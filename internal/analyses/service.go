package analyses

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"

	"syllabus-analyzer/internal/llm"
	"syllabus-analyzer/internal/shared/metrics"
	"syllabus-analyzer/internal/shared/telemetry"
)

const (
	// Temperature keeps generation close to deterministic.
	Temperature float32 = 0.2
	// ResponseMIMEType asks the provider for JSON output.
	ResponseMIMEType = "application/json"
)

// Service runs syllabus/exam analyses against an LLM provider.
type Service struct {
	LLM      llm.Provider
	Provider string
	Model    string
	// Current receives every successful result. Optional.
	Current *CurrentStore

	now func() time.Time
}

// NewService constructs a Service. A nil provider is allowed and makes every
// Analyze call fail with a configuration error.
func NewService(provider llm.Provider, providerName, model string, current *CurrentStore) *Service {
	return &Service{
		LLM:      provider,
		Provider: providerName,
		Model:    model,
		Current:  current,
	}
}

// Enabled reports whether AI features are available.
func (s *Service) Enabled() bool {
	return s != nil && s.LLM != nil && s.LLM.Configured()
}

// Analyze sends one request to the provider and validates the reply.
//
// There is no retry and no caching: each call issues a fresh request. An empty
// array is a successful result with zero items. The previous result is
// dropped as soon as a new analysis starts, so a failure leaves nothing behind.
func (s *Service) Analyze(ctx context.Context, syllabus, exam string) (Result, error) {
	start := s.clock()
	if s.Current != nil {
		s.Current.Reset()
	}
	if !s.Enabled() {
		return Result{}, s.fail(ctx, start, newError(KindConfiguration, llm.ErrMissingCredential))
	}

	raw, err := s.LLM.Generate(ctx, llm.Request{
		Prompt:      BuildPrompt(syllabus, exam),
		Schema:      ResponseSchema(),
		MIMEType:    ResponseMIMEType,
		Temperature: Temperature,
	})
	if err != nil {
		return Result{}, s.fail(ctx, start, newError(KindProvider, fmt.Errorf("llm generate: %w", err)))
	}

	items, err := ParseItems(raw)
	if err != nil {
		return Result{}, s.fail(ctx, start, err)
	}

	elapsed := s.clock().Sub(start)
	result := Result{
		ID:         uuid.NewString(),
		Items:      items,
		Provider:   s.Provider,
		Model:      s.Model,
		CreatedAt:  start.UTC(),
		DurationMs: durationMs(elapsed),
	}
	if s.Current != nil {
		if err := s.Current.Set(ctx, result); err != nil {
			return Result{}, s.fail(ctx, start, newError(KindProvider, fmt.Errorf("store current result: %w", err)))
		}
	}

	metrics.ObserveAnalysis(metrics.OutcomeSuccess, elapsed)
	metrics.ObserveItems(len(items))
	telemetry.Info("analysis.complete", map[string]any{
		"request_id":  telemetry.RequestID(ctx),
		"analysis_id": result.ID,
		"provider":    s.Provider,
		"model":       s.Model,
		"item_count":  len(items),
		"duration_ms": result.DurationMs,
	})
	return result, nil
}

func (s *Service) fail(ctx context.Context, start time.Time, err error) error {
	elapsed := s.clock().Sub(start)
	kind := KindOf(err)
	metrics.ObserveAnalysis(outcomeFor(kind), elapsed)
	telemetry.Error("analysis.failed", map[string]any{
		"request_id":  telemetry.RequestID(ctx),
		"kind":        string(kind),
		"provider":    s.Provider,
		"model":       s.Model,
		"error":       sanitizeError(err),
		"duration_ms": durationMs(elapsed),
	})
	return err
}

func (s *Service) clock() time.Time {
	if s.now != nil {
		return s.now()
	}
	return time.Now()
}

func outcomeFor(kind Kind) string {
	switch kind {
	case KindConfiguration:
		return metrics.OutcomeConfiguration
	case KindMalformedResponse:
		return metrics.OutcomeMalformedResponse
	case KindUnexpectedFormat:
		return metrics.OutcomeUnexpectedFormat
	default:
		return metrics.OutcomeProvider
	}
}

func durationMs(d time.Duration) float64 {
	return float64(d.Microseconds()) / 1000.0
}

func sanitizeError(err error) string {
	if err == nil {
		return ""
	}
	msg := strings.ReplaceAll(err.Error(), "\n", " ")
	msg = strings.ReplaceAll(msg, "\r", " ")
	msg = strings.TrimSpace(msg)
	const maxLen = 500
	if len(msg) <= maxLen {
		return msg
	}
	cut := maxLen
	for cut > 0 && !utf8.RuneStart(msg[cut]) {
		cut--
	}
	return msg[:cut]
}
