package analyses

import (
	"errors"
	"fmt"
)

// Kind classifies why an analysis failed.
type Kind string

const (
	KindConfiguration     Kind = "configuration_error"
	KindProvider          Kind = "provider_error"
	KindMalformedResponse Kind = "malformed_response"
	KindUnexpectedFormat  Kind = "unexpected_format"
)

// User-facing messages, one per kind.
const (
	MessageConfiguration     = "AI features are unavailable: the API key is not configured."
	MessageProvider          = "Failed to analyze content. The AI model may be temporarily unavailable or the input is invalid."
	MessageMalformedResponse = "The AI failed to generate a valid JSON response. Please try adjusting your input."
	MessageUnexpectedFormat  = "The AI returned data in an unexpected format. Please try again."
)

// AnalysisError is returned by Service.Analyze. Err keeps the underlying cause
// for logs; Message is safe to show to the user.
type AnalysisError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AnalysisError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	}
	return string(e.Kind)
}

func (e *AnalysisError) Unwrap() error {
	return e.Err
}

// Is matches any AnalysisError of the same kind, so callers can use the
// package sentinels with errors.Is.
func (e *AnalysisError) Is(target error) bool {
	t, ok := target.(*AnalysisError)
	return ok && t.Kind == e.Kind
}

var (
	ErrConfiguration     = &AnalysisError{Kind: KindConfiguration, Message: MessageConfiguration}
	ErrProvider          = &AnalysisError{Kind: KindProvider, Message: MessageProvider}
	ErrMalformedResponse = &AnalysisError{Kind: KindMalformedResponse, Message: MessageMalformedResponse}
	ErrUnexpectedFormat  = &AnalysisError{Kind: KindUnexpectedFormat, Message: MessageUnexpectedFormat}
)

func newError(kind Kind, err error) *AnalysisError {
	e := &AnalysisError{Kind: kind, Err: err}
	switch kind {
	case KindConfiguration:
		e.Message = MessageConfiguration
	case KindProvider:
		e.Message = MessageProvider
	case KindMalformedResponse:
		e.Message = MessageMalformedResponse
	case KindUnexpectedFormat:
		e.Message = MessageUnexpectedFormat
	}
	return e
}

// KindOf returns the failure kind of err, or "" when err is not an AnalysisError.
func KindOf(err error) Kind {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Kind
	}
	return ""
}

// UserMessage maps any error to the message shown to the user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ae *AnalysisError
	if errors.As(err, &ae) && ae.Message != "" {
		return ae.Message
	}
	return MessageProvider
}

// ErrNotFound is returned when no analysis result is held yet.
var ErrNotFound = errors.New("not found")
