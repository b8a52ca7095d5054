package analyses

import (
	_ "embed"
	"strings"
)

var (
	//go:embed samples/syllabus.txt
	sampleSyllabus string
	//go:embed samples/exam.txt
	sampleExam string
)

// SampleSyllabus returns the example syllabus shown as input placeholder.
func SampleSyllabus() string {
	return strings.TrimSpace(sampleSyllabus)
}

// SampleExam returns the example exam shown as input placeholder.
func SampleExam() string {
	return strings.TrimSpace(sampleExam)
}
