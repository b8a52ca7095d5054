package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"syllabus-analyzer/internal/bootstrap"
	"syllabus-analyzer/internal/tui"
)

var (
	tuiInputs    inputFlags
	tuiExportDir string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Interactive terminal analyzer",
	RunE:  runTUI,
}

func init() {
	f := tuiCmd.Flags()
	f.StringVar(&tuiInputs.syllabus, "syllabus", "", "prefill the syllabus box from a file")
	f.StringVar(&tuiInputs.exam, "exam", "", "prefill the exam box from a file")
	f.BoolVar(&tuiInputs.sample, "sample", false, "prefill both boxes with the built-in sample")
	f.StringVar(&tuiExportDir, "export-dir", ".", "directory for spreadsheet exports")
}

func runTUI(cmd *cobra.Command, _ []string) error {
	cfg := loadConfig()
	app, err := bootstrap.BuildService(cfg)
	if err != nil {
		return err
	}

	var syllabus, exam string
	if tuiInputs.sample || (tuiInputs.syllabus != "" && tuiInputs.exam != "") {
		syllabus, exam, err = tuiInputs.load(cmd.Context())
		if err != nil {
			return err
		}
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	model := tui.New(app.AnalysesService, tui.Options{
		Context:   ctx,
		Syllabus:  syllabus,
		Exam:      exam,
		ExportDir: tuiExportDir,
	})
	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
