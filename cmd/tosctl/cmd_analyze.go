package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"syllabus-analyzer/internal/analyses"
	"syllabus-analyzer/internal/bootstrap"
	"syllabus-analyzer/internal/report"
	"syllabus-analyzer/internal/shared/config"
)

var (
	analyzeInputs inputFlags
	analyzeJSON   bool
	analyzeXLSX   string
	analyzeCopy   bool
)

// clipboardWriteAll is replaced in tests.
var clipboardWriteAll = clipboard.WriteAll

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Analyze an exam against a syllabus",
	Long: `Sends the syllabus and exam to the configured AI provider and prints one row
per exam question. Inputs may be PDF, DOCX or plain text files.`,
	RunE: runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeInputs.syllabus, "syllabus", "", "syllabus file (pdf, docx, txt, md; - for stdin)")
	f.StringVar(&analyzeInputs.exam, "exam", "", "exam file (pdf, docx, txt, md; - for stdin)")
	f.BoolVar(&analyzeInputs.sample, "sample", false, "use the built-in biology syllabus and exam")
	f.BoolVar(&analyzeJSON, "json", false, "print the results as indented JSON instead of a table")
	f.StringVar(&analyzeXLSX, "xlsx", "", "also write the results to this spreadsheet path (directory or .xlsx file)")
	f.BoolVar(&analyzeCopy, "copy", false, "copy the JSON results to the clipboard")
}

func runAnalyze(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	if !cfg.AIEnabled() {
		return errors.New(config.MissingKeyBanner)
	}
	syllabus, exam, err := analyzeInputs.load(cmd.Context())
	if err != nil {
		return err
	}

	app, err := bootstrap.BuildService(cfg)
	if err != nil {
		return err
	}
	result, err := app.AnalysesService.Analyze(cmd.Context(), syllabus, exam)
	if err != nil {
		return errors.New(analyses.UserMessage(err))
	}

	out := cmd.OutOrStdout()
	if analyzeJSON {
		text, err := report.CopyText(result.Items)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, text)
	} else {
		fmt.Fprintln(out, report.RenderTable(result.Items, 0))
	}

	if analyzeXLSX != "" {
		path := xlsxPath(analyzeXLSX)
		if err := writeXLSXFile(path, result.Items); err != nil {
			return err
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "Saved %s\n", path)
	}

	if analyzeCopy {
		status := &report.CopyStatus{}
		err := status.Copy(func() error {
			text, err := report.CopyText(result.Items)
			if err != nil {
				return err
			}
			return clipboardWriteAll(text)
		})
		fmt.Fprintln(cmd.ErrOrStderr(), status.Label())
		if err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "clipboard: %v\n", err)
		}
	}
	return nil
}

func writeXLSXFile(path string, items []analyses.AnalysisResultItem) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := report.WriteXLSX(f, items); err != nil {
		_ = f.Close()
		return fmt.Errorf("export xlsx: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// xlsxPath treats an existing directory as the place for the default file name.
func xlsxPath(target string) string {
	if info, err := os.Stat(target); err == nil && info.IsDir() {
		return filepath.Join(target, report.XLSXFilename)
	}
	return target
}
