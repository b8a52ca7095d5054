package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"syllabus-analyzer/internal/report"
	"syllabus-analyzer/internal/shared/config"
)

func clearKeys(t *testing.T) {
	t.Helper()
	for _, k := range []string{"AI_API_KEY", "API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY", "OPENAI_API_KEY", "LLM_PROVIDER", "LLM_MODEL"} {
		t.Setenv(k, "")
	}
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		analyzeInputs, promptInputs = inputFlags{}, inputFlags{}
		flagProvider, flagModel, flagAPIKey = "", "", ""
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestPromptSample(t *testing.T) {
	clearKeys(t)
	out, err := execute(t, "prompt", "--sample")
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	for _, want := range []string{"Syllabus Content:", "Exam Content:", "Introduction to Biology"} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in prompt output", want)
		}
	}
}

func TestPromptFromFiles(t *testing.T) {
	clearKeys(t)
	dir := t.TempDir()
	syllabus := filepath.Join(dir, "syllabus.md")
	exam := filepath.Join(dir, "exam.txt")
	if err := os.WriteFile(syllabus, []byte("ILO1: Describe photosynthesis."), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(exam, []byte("Q1. Why are plants green?"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "prompt", "--syllabus", syllabus, "--exam", exam)
	if err != nil {
		t.Fatalf("prompt: %v", err)
	}
	if !strings.Contains(out, "ILO1: Describe photosynthesis.") || !strings.Contains(out, "Q1. Why are plants green?") {
		t.Fatalf("inputs missing from prompt:\n%s", out)
	}
}

func TestPromptRequiresInputs(t *testing.T) {
	clearKeys(t)
	if _, err := execute(t, "prompt"); err == nil {
		t.Fatal("expected error without inputs")
	}
}

func TestAnalyzeWithoutKey(t *testing.T) {
	clearKeys(t)
	_, err := execute(t, "analyze", "--sample")
	if err == nil || err.Error() != config.MissingKeyBanner {
		t.Fatalf("expected missing key error, got %v", err)
	}
}

func TestLoadConfigProviderOverride(t *testing.T) {
	clearKeys(t)
	t.Setenv("OPENAI_API_KEY", "sk-test")
	flagProvider = "openai"
	t.Cleanup(func() { flagProvider = "" })

	cfg := loadConfig()
	if cfg.LLMProvider != config.ProviderOpenAI || cfg.LLMModel != "gpt-4o-mini" || cfg.APIKey != "sk-test" {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestXLSXPath(t *testing.T) {
	dir := t.TempDir()
	if got := xlsxPath(dir); got != filepath.Join(dir, report.XLSXFilename) {
		t.Fatalf("unexpected path %q", got)
	}
	if got := xlsxPath("out.xlsx"); got != "out.xlsx" {
		t.Fatalf("unexpected path %q", got)
	}
}

func TestWriteXLSXFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), report.XLSXFilename)
	if err := writeXLSXFile(path, nil); err != nil {
		t.Fatalf("writeXLSXFile: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if !bytes.HasPrefix(data, []byte("PK")) {
		t.Fatalf("expected a zip-based workbook, got %q", data[:min(len(data), 8)])
	}

	if err := writeXLSXFile(filepath.Join(t.TempDir(), "missing", "out.xlsx"), nil); err == nil {
		t.Fatal("expected error for a missing directory")
	}
}
