package analyses

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseItems turns the raw model reply into records.
//
// The declared schema is only a request hint, so the reply is checked here:
// it must be JSON, it must be an array, and its first element (if any) must be
// an object. Later elements are not inspected; one that is not an object
// becomes an empty record. Field values are read leniently; numbers and
// booleans are kept as their text and missing or null fields become empty
// strings.
func ParseItems(raw string) ([]AnalysisResultItem, error) {
	text := strings.TrimSpace(raw)

	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()
	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, newError(KindMalformedResponse, fmt.Errorf("llm output parse: %w", err))
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, newError(KindMalformedResponse, errors.New("llm output parse: trailing data after JSON value"))
	}

	list, ok := parsed.([]any)
	if !ok {
		return nil, newError(KindUnexpectedFormat, fmt.Errorf("llm output is %s, expected array", jsonKind(parsed)))
	}

	if len(list) > 0 {
		if _, ok := list[0].(map[string]any); !ok {
			return nil, newError(KindUnexpectedFormat, fmt.Errorf("llm output element 0 is %s, expected object", jsonKind(list[0])))
		}
	}

	items := make([]AnalysisResultItem, 0, len(list))
	for _, elem := range list {
		obj, _ := elem.(map[string]any)
		items = append(items, AnalysisResultItem{
			QuestionNumber:          stringField(obj, FieldQuestionNumber),
			Topic:                   stringField(obj, FieldTopic),
			IntendedLearningOutcome: stringField(obj, FieldIntendedLearningOutcome),
			BloomsLevel:             BloomLevel(stringField(obj, FieldBloomsLevel)),
			SuggestedItemPlacement:  stringField(obj, FieldSuggestedItemPlacement),
			SuggestedTOSTableRow:    stringField(obj, FieldSuggestedTOSTableRow),
		})
	}
	return items, nil
}

func stringField(obj map[string]any, key string) string {
	switch v := obj[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	default:
		var buf bytes.Buffer
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		if err := enc.Encode(v); err != nil {
			return fmt.Sprint(v)
		}
		return strings.TrimSpace(buf.String())
	}
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case map[string]any:
		return "object"
	case []any:
		return "array"
	case string:
		return "string"
	case json.Number:
		return "number"
	case bool:
		return "boolean"
	default:
		return fmt.Sprintf("%T", v)
	}
}
