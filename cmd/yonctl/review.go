package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/sercanumit/bootcamp-112/internal/domain"
	"github.com/sercanumit/bootcamp-112/internal/domain/srs"
	"github.com/spf13/cobra"
)

// newReviewCmd records a review against a state file. A missing file starts
// a fresh schedule, which requires --topic and --subject.
func newReviewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "review <state.json>",
		Short: "Record a review and write the next schedule back to the state file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := outputFormat(cmd)
			if err != nil {
				return err
			}
			quality, _ := cmd.Flags().GetInt("quality")
			if !cmd.Flags().Changed("quality") {
				return fmt.Errorf("--quality is required")
			}

			path := args[0]
			state, err := loadState(cmd, path)
			if err != nil {
				return err
			}

			now := time.Now().UTC()
			next, err := srs.NewDefaultService().SubmitReview(state, quality, now)
			if err != nil {
				return err
			}

			raw, err := json.MarshalIndent(next, "", "  ")
			if err != nil {
				return fmt.Errorf("encode state: %w", err)
			}
			if err := os.WriteFile(path, append(raw, '\n'), 0o600); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			if format == formatJSON {
				return writeJSON(cmd.OutOrStdout(), next)
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Topic: %s (%s)\n", next.Topic, next.Subject)
			fmt.Fprintf(out, "Repetitions: %d  Interval: %d days  Ease: %.2f  Success: %.1f%%\n",
				next.RepetitionCount, next.IntervalDays, next.EaseFactor, next.SuccessRate)
			if next.NextReview != nil {
				fmt.Fprintf(out, "Next review: %s\n", next.NextReview.Format(time.DateOnly))
			}
			return nil
		},
	}
	cmd.Flags().Int("quality", 0, "recall quality from 0 to 5")
	cmd.Flags().String("topic", "", "topic name for a new state file")
	cmd.Flags().String("subject", "", "subject name for a new state file")
	cmd.Flags().String("user-id", "", "owner of a new state file (random when empty)")
	return cmd
}

func loadState(cmd *cobra.Command, path string) (*domain.SpacedRepetitionState, error) {
	raw, err := os.ReadFile(path)
	if err == nil {
		var state domain.SpacedRepetitionState
		if err := json.Unmarshal(raw, &state); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
		if err := state.Validate(); err != nil {
			return nil, fmt.Errorf("invalid state in %s: %w", path, err)
		}
		return &state, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	topic, _ := cmd.Flags().GetString("topic")
	subject, _ := cmd.Flags().GetString("subject")
	if topic == "" || subject == "" {
		return nil, fmt.Errorf("%s does not exist: --topic and --subject are required for a first review", path)
	}

	userID := uuid.New()
	if raw, _ := cmd.Flags().GetString("user-id"); raw != "" {
		userID, err = uuid.Parse(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid --user-id: %w", err)
		}
	}

	return domain.NewSpacedRepetitionState(userID, topic, subject)
}
