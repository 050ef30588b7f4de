package main

import (
	"fmt"

	"verse-journal/internal/quiz"

	"github.com/spf13/cobra"
)

func newGradeCmd() *cobra.Command {
	var reference, candidate string
	cmd := &cobra.Command{
		Use:   "grade",
		Short: "Score a recitation against a verse text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			score := quiz.Similarity(candidate, reference)
			tier := quiz.Classify(score)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "similarity: %.3f\n", score)
			fmt.Fprintf(out, "tier:       %s\n", tier)
			fmt.Fprintln(out, tier.Message())
			return nil
		},
	}
	cmd.Flags().StringVar(&reference, "reference", "", "The verse text")
	cmd.Flags().StringVar(&candidate, "candidate", "", "The recitation to grade")
	_ = cmd.MarkFlagRequired("reference")
	return cmd
}
