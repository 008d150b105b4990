package performance

import (
	"context"
	"fmt"
	"strings"

	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
)

// StaticCoach builds a narrative from the roadmap alone. It is used when no
// language model is configured and as the fallback when the model fails.
type StaticCoach struct{}

var _ Coach = StaticCoach{}

// Narrate implements Coach. It never fails.
func (c StaticCoach) Narrate(_ context.Context, result *analysis.Result, roadmap *analysis.Roadmap) (string, error) {
	return c.Summarize(result, roadmap), nil
}

// Summarize renders the summary line and one line per planned week.
func (StaticCoach) Summarize(result *analysis.Result, roadmap *analysis.Roadmap) string {
	var sb strings.Builder

	if result != nil {
		g := result.GeneralStats
		fmt.Fprintf(&sb, "Net %.2f over %d questions (%.0f%% accuracy).", g.Net, g.TotalQuestions, g.AccuracyRate*100)
		if len(result.WeakSubjects) > 0 {
			fmt.Fprintf(&sb, " Weakest subjects: %s.", strings.Join(result.WeakSubjects, ", "))
		}
	}

	if roadmap == nil || len(roadmap.WeeklyPlans) == 0 {
		if sb.Len() > 0 {
			sb.WriteString(" ")
		}
		sb.WriteString("No weak topics to plan for.")
		return sb.String()
	}

	for _, week := range roadmap.WeeklyPlans {
		names := make([]string, 0, len(week.Topics))
		for _, t := range week.Topics {
			names = append(names, t.TopicName)
		}
		if sb.Len() > 0 {
			sb.WriteString("\n")
		}
		fmt.Fprintf(&sb, "Week %d (%d hours): %s.", week.WeekNumber, week.EstimatedStudyHours, strings.Join(names, ", "))
	}
	return sb.String()
}
