package main

import (
	"fmt"
	"sort"
	"text/tabwriter"

	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
	"github.com/spf13/cobra"
)

func newCompareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "compare <previous.json> <current.json>",
		Short: "Report progress between two exams",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}

			previous, err := readAttempts(cmd, args[0])
			if err != nil {
				return err
			}
			current, err := readAttempts(cmd, args[1])
			if err != nil {
				return err
			}

			progress, err := analysis.NewDefaultAnalyzer().Compare(previous, current)
			if err != nil {
				return err
			}

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), progress)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Net change: %+.2f (%s)\n\n", progress.NetChange, progress.OverallProgress)

			topics := make([]string, 0, len(progress.ProgressByTopic))
			for topic := range progress.ProgressByTopic {
				topics = append(topics, topic)
			}
			sort.Strings(topics)

			w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "Topic\tNet change\tChange %\tStatus")
			for _, topic := range topics {
				p := progress.ProgressByTopic[topic]
				fmt.Fprintf(w, "%s\t%+.2f\t%.1f%%\t%s\n", topic, p.NetImprovement, p.ImprovementPercentage, p.Status)
			}
			return w.Flush()
		},
	}
}
