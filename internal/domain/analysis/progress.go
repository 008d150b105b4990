package analysis

import (
	"fmt"

	"github.com/sercanumit/bootcamp-112/internal/domain"
)

// Compare analyzes both attempt lists and reports the change from previous to
// current. Only topics present in both snapshots appear in ProgressByTopic.
func (a *Analyzer) Compare(previous, current []domain.QuestionAttempt) (*ProgressResult, error) {
	prev, err := a.Analyze(previous, 0)
	if err != nil {
		return nil, fmt.Errorf("previous attempts: %w", err)
	}

	curr, err := a.Analyze(current, 0)
	if err != nil {
		return nil, fmt.Errorf("current attempts: %w", err)
	}

	return CompareResults(prev, curr), nil
}

// CompareResults diffs two existing analyses.
func CompareResults(prev, curr *Result) *ProgressResult {
	netChange := curr.GeneralStats.Net - prev.GeneralStats.Net

	byTopic := make(map[string]TopicProgress)
	for topic, cp := range curr.TopicPerformance {
		pp, ok := prev.TopicPerformance[topic]
		if !ok {
			continue
		}

		improvement := cp.Net - pp.Net

		// A zero or negative base would make the percentage meaningless.
		var percentage float64
		if pp.Net > 0 {
			percentage = improvement / pp.Net * 100
		}

		byTopic[topic] = TopicProgress{
			NetImprovement:        improvement,
			ImprovementPercentage: percentage,
			Status:                statusOf(improvement),
		}
	}

	return &ProgressResult{
		NetChange:        netChange,
		OverallProgress:  statusOf(netChange),
		ProgressByTopic:  byTopic,
		CurrentAnalysis:  curr,
		PreviousAnalysis: prev,
	}
}

func statusOf(change float64) ProgressStatus {
	switch {
	case change > 0:
		return StatusImproved
	case change < 0:
		return StatusDeclined
	default:
		return StatusStable
	}
}
