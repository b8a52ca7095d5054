package analyses

import (
	_ "embed"
	"strings"
)

//go:embed prompts/analysis.txt
var analysisPrompt string

// BuildPrompt fills the analysis template with the syllabus and exam text.
// Both are embedded verbatim; the replacer runs in a single pass so text that
// happens to contain a placeholder is never expanded again.
func BuildPrompt(syllabus, exam string) string {
	replacer := strings.NewReplacer(
		"{{SYLLABUS}}", syllabus,
		"{{EXAM}}", exam,
	)
	return replacer.Replace(analysisPrompt)
}
