package main

import (
	"fmt"
	"strings"

	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
	"github.com/spf13/cobra"
)

func newRoadmapCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roadmap <attempts.json>",
		Short: "Plan weekly study blocks for the weakest topics",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			topN, _ := cmd.Flags().GetInt("top-n")
			perWeek, _ := cmd.Flags().GetInt("per-week")

			attempts, err := readAttempts(cmd, args[0])
			if err != nil {
				return err
			}

			analyzer := analysis.NewDefaultAnalyzer()
			result, err := analyzer.Analyze(attempts, topN)
			if err != nil {
				return err
			}
			roadmap, err := analyzer.GenerateRoadmap(result.WeakTopics, perWeek)
			if err != nil {
				return err
			}

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), roadmap)
			}

			out := cmd.OutOrStdout()
			if roadmap.TotalWeeks == 0 {
				fmt.Fprintln(out, "No weak topics to plan for.")
				return nil
			}
			for _, week := range roadmap.WeeklyPlans {
				fmt.Fprintf(out, "Week %d (%d hours)\n", week.WeekNumber, week.EstimatedStudyHours)
				for _, rec := range week.Recommendations {
					fmt.Fprintf(out, "  - %s\n", rec)
				}
				fmt.Fprintf(out, "  Focus: %s\n", strings.Join(week.FocusAreas, ", "))
			}
			return nil
		},
	}
	cmd.Flags().Int("top-n", 5, "number of weak topics to plan for")
	cmd.Flags().Int("per-week", analysis.DefaultTopicsPerWeek, "topics per week")
	return cmd
}
