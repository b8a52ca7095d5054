package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"syllabus-analyzer/internal/analyses"
	"syllabus-analyzer/internal/extract"
)

// inputFlags are shared by commands that take a syllabus and an exam.
type inputFlags struct {
	syllabus string
	exam     string
	sample   bool
}

// load returns syllabus and exam text. Files may be PDF, DOCX or plain text;
// "-" reads stdin for one of them.
func (f inputFlags) load(ctx context.Context) (string, string, error) {
	if f.sample {
		return analyses.SampleSyllabus(), analyses.SampleExam(), nil
	}
	if strings.TrimSpace(f.syllabus) == "" || strings.TrimSpace(f.exam) == "" {
		return "", "", errors.New("--syllabus and --exam are required (or use --sample)")
	}
	if f.syllabus == "-" && f.exam == "-" {
		return "", "", errors.New("only one of --syllabus and --exam can read stdin")
	}
	syllabus, err := readDocument(ctx, f.syllabus)
	if err != nil {
		return "", "", fmt.Errorf("read syllabus: %w", err)
	}
	exam, err := readDocument(ctx, f.exam)
	if err != nil {
		return "", "", fmt.Errorf("read exam: %w", err)
	}
	return syllabus, exam, nil
}

func readDocument(ctx context.Context, path string) (string, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(io.LimitReader(os.Stdin, extract.MaxUploadBytes+1))
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", err
	}
	if len(data) > extract.MaxUploadBytes {
		return "", fmt.Errorf("%s exceeds 10MB", filepath.Base(path))
	}
	return extract.Text(ctx, data, filepath.Base(path))
}
