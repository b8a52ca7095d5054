package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"syllabus-analyzer/internal/analyses"
)

var promptInputs inputFlags

var promptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "Print the prompt that would be sent to the AI provider",
	RunE: func(cmd *cobra.Command, _ []string) error {
		syllabus, exam, err := promptInputs.load(cmd.Context())
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), analyses.BuildPrompt(syllabus, exam))
		return nil
	},
}

func init() {
	f := promptCmd.Flags()
	f.StringVar(&promptInputs.syllabus, "syllabus", "", "syllabus file (pdf, docx, txt, md; - for stdin)")
	f.StringVar(&promptInputs.exam, "exam", "", "exam file (pdf, docx, txt, md; - for stdin)")
	f.BoolVar(&promptInputs.sample, "sample", false, "use the built-in biology syllabus and exam")
}
