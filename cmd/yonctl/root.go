package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/spf13/cobra"
)

const (
	formatJSON  = "json"
	formatTable = "table"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "yonctl",
		Short:         "Analyze practice exam attempts and plan study offline",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("format", formatTable, "output format: table or json")

	root.AddCommand(
		newAnalyzeCmd(),
		newRoadmapCmd(),
		newCompareCmd(),
		newReviewCmd(),
		newTokenCmd(),
	)
	return root
}

func outputFormat(cmd *cobra.Command) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	switch format {
	case formatJSON, formatTable:
		return format, nil
	default:
		return "", fmt.Errorf("unknown format %q", format)
	}
}

// readAttempts accepts either a bare JSON array of attempts or an object
// with an "attempts" field. A path of "-" reads standard input.
func readAttempts(cmd *cobra.Command, path string) ([]domain.QuestionAttempt, error) {
	raw, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	var attempts []domain.QuestionAttempt
	if err := json.Unmarshal(raw, &attempts); err == nil {
		return attempts, nil
	}

	var wrapped struct {
		Attempts []domain.QuestionAttempt `json:"attempts"`
	}
	if err := json.Unmarshal(raw, &wrapped); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return wrapped.Attempts, nil
}

func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" {
		return nil, fmt.Errorf("an input file is required")
	}
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return raw, nil
}

func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
