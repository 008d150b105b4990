package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
	"github.com/spf13/cobra"
)

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <attempts.json>",
		Short: "Score attempts and rank the weakest topics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			topN, _ := cmd.Flags().GetInt("top-n")

			attempts, err := readAttempts(cmd, args[0])
			if err != nil {
				return err
			}

			result, err := analysis.NewDefaultAnalyzer().Analyze(attempts, topN)
			if err != nil {
				return err
			}

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), result)
			}
			return printAnalysis(cmd, result)
		},
	}
	cmd.Flags().Int("top-n", 5, "number of weak topics to list")
	return cmd
}

func printAnalysis(cmd *cobra.Command, result *analysis.Result) error {
	out := cmd.OutOrStdout()
	g := result.GeneralStats

	fmt.Fprintf(out, "Questions: %d  Correct: %d  Wrong: %d  Blank: %d\n",
		g.TotalQuestions, g.CorrectCount, g.WrongCount, g.BlankCount)
	fmt.Fprintf(out, "Net: %.2f  Accuracy: %.1f%%\n\n", g.Net, g.AccuracyRate*100)

	if len(result.WeakTopics) == 0 {
		fmt.Fprintln(out, "No topics to rank.")
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Rank\tTopic\tSubject\tWeakness\tAccuracy\tNet")
	for _, t := range result.WeakTopics {
		fmt.Fprintf(w, "%d\t%s\t%s\t%.3f\t%.1f%%\t%.2f\n",
			t.Rank, t.TopicName, t.Subject, t.WeaknessScore, t.AccuracyRate*100, t.Net)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(result.WeakSubjects) > 0 {
		fmt.Fprintf(out, "\nWeak subjects: %v\n", result.WeakSubjects)
	}
	return nil
}
