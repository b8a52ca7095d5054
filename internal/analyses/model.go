package analyses

import "time"

// BloomLevel is a cognitive-skill level from Bloom's Taxonomy.
//
// Values outside the six known levels are kept as returned by the model so
// the presenter can show them with a neutral style.
type BloomLevel string

const (
	BloomRemembering   BloomLevel = "Remembering"
	BloomUnderstanding BloomLevel = "Understanding"
	BloomApplying      BloomLevel = "Applying"
	BloomAnalyzing     BloomLevel = "Analyzing"
	BloomEvaluating    BloomLevel = "Evaluating"
	BloomCreating      BloomLevel = "Creating"
)

// BloomLevels lists the taxonomy from lowest to highest order.
var BloomLevels = []BloomLevel{
	BloomRemembering,
	BloomUnderstanding,
	BloomApplying,
	BloomAnalyzing,
	BloomEvaluating,
	BloomCreating,
}

// Known reports whether l is one of the six taxonomy levels.
func (l BloomLevel) Known() bool {
	for _, known := range BloomLevels {
		if l == known {
			return true
		}
	}
	return false
}

// AnalysisResultItem is the analysis of one exam question.
type AnalysisResultItem struct {
	QuestionNumber          string     `json:"questionNumber"`
	Topic                   string     `json:"topic"`
	IntendedLearningOutcome string     `json:"intendedLearningOutcome"`
	BloomsLevel             BloomLevel `json:"bloomsLevel"`
	SuggestedItemPlacement  string     `json:"suggestedItemPlacement"`
	SuggestedTOSTableRow    string     `json:"suggestedTOS_TableRow"`
}

// Result is one completed analysis run held in memory.
type Result struct {
	ID         string               `json:"id"`
	Items      []AnalysisResultItem `json:"items"`
	Provider   string               `json:"provider"`
	Model      string               `json:"model"`
	CreatedAt  time.Time            `json:"createdAt"`
	DurationMs float64              `json:"durationMs"`
}
