package analyses

import "syllabus-analyzer/internal/llm"

// Output field names requested from the model, in display order.
const (
	FieldTopic                   = "topic"
	FieldIntendedLearningOutcome = "intendedLearningOutcome"
	FieldQuestionNumber          = "questionNumber"
	FieldBloomsLevel             = "bloomsLevel"
	FieldSuggestedItemPlacement  = "suggestedItemPlacement"
	FieldSuggestedTOSTableRow    = "suggestedTOS_TableRow"
)

var schemaFields = []string{
	FieldTopic,
	FieldIntendedLearningOutcome,
	FieldQuestionNumber,
	FieldBloomsLevel,
	FieldSuggestedItemPlacement,
	FieldSuggestedTOSTableRow,
}

// ResponseSchema declares the expected output: an array of objects with six
// required string properties. bloomsLevel is a free string on the wire; the
// prompt names the six levels instead of constraining them.
func ResponseSchema() *llm.Schema {
	return &llm.Schema{
		Type: llm.TypeArray,
		Items: &llm.Schema{
			Type: llm.TypeObject,
			Properties: map[string]*llm.Schema{
				FieldTopic: {
					Type:        llm.TypeString,
					Description: "The main topic or subject area from the syllabus (e.g., 'Cellular Biology', 'Genetics').",
				},
				FieldIntendedLearningOutcome: {
					Type:        llm.TypeString,
					Description: "The Intended Learning Outcome (ILO) from the syllabus that the exam question assesses.",
				},
				FieldQuestionNumber: {
					Type:        llm.TypeString,
					Description: "The question number from the exam (e.g., '1', '2', 'Section B, Q3').",
				},
				FieldBloomsLevel: {
					Type:        llm.TypeString,
					Description: "Bloom's Taxonomy level: Remembering, Understanding, Applying, Analyzing, Evaluating, or Creating.",
				},
				FieldSuggestedItemPlacement: {
					Type:        llm.TypeString,
					Description: "A short, actionable suggestion for where the item fits in the test (e.g., 'Keep as is', 'Move to Section B for higher-order skills').",
				},
				FieldSuggestedTOSTableRow: {
					Type:        llm.TypeString,
					Description: "A concise Table of Specifications row combining topic and skill (e.g., 'Genetics: Applying principles').",
				},
			},
			Ordering: append([]string(nil), schemaFields...),
			Required: append([]string(nil), schemaFields...),
		},
	}
}
