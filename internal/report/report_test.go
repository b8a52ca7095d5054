package report

import (
	"syllabus-analyzer/internal/analyses"
)

func sampleItems() []analyses.AnalysisResultItem {
	return []analyses.AnalysisResultItem{
		{
			QuestionNumber:          "1",
			Topic:                   "Cell Structure",
			IntendedLearningOutcome: "ILO1: Describe the structure and function of cell organelles.",
			BloomsLevel:             analyses.BloomRemembering,
			SuggestedItemPlacement:  "Part I, Item 1",
			SuggestedTOSTableRow:    "Cell Biology / Remembering",
		},
		{
			QuestionNumber:          "2",
			Topic:                   "Punnett Squares",
			IntendedLearningOutcome: "ILO3: Apply Mendelian genetics to predict inheritance patterns.",
			BloomsLevel:             analyses.BloomApplying,
			SuggestedItemPlacement:  "Part II, Item 4",
			SuggestedTOSTableRow:    "Genetics / Applying",
		},
	}
}
