package analysis

import (
	"github.com/sercanumit/bootcamp-112/internal/domain"
)

// DefaultTopicsPerWeek is the week size used when callers have no preference.
const DefaultTopicsPerWeek = 3

// Recommendation texts, one per accuracy band.
const (
	recommendFundamentals = "review fundamentals, solve 20+ practice questions"
	recommendRepeat       = "repeat the topic, solve 15+ practice questions"
	recommendFillGaps     = "fill remaining gaps, solve 10+ practice questions"
)

// GenerateRoadmap slices the ranked weak topics into consecutive weeks of at
// most maxTopicsPerWeek topics, keeping rank order, so the weakest topics land
// in week 1.
func (a *Analyzer) GenerateRoadmap(weakTopics []WeakTopicEntry, maxTopicsPerWeek int) (*Roadmap, error) {
	if maxTopicsPerWeek < 1 {
		return nil, domain.NewMinRangeError("max_topics_per_week", float64(maxTopicsPerWeek), 1)
	}

	// len+max-1 would overflow for week sizes near math.MaxInt.
	totalWeeks := len(weakTopics) / maxTopicsPerWeek
	if len(weakTopics)%maxTopicsPerWeek != 0 {
		totalWeeks++
	}
	roadmap := &Roadmap{
		TotalWeeks:    totalWeeks,
		TopicsPerWeek: maxTopicsPerWeek,
		WeeklyPlans:   make([]WeeklyPlan, 0, totalWeeks),
	}

	for week, start := 0, 0; week < totalWeeks; week++ {
		end := start + min(maxTopicsPerWeek, len(weakTopics)-start)

		topics := make([]WeakTopicEntry, end-start)
		copy(topics, weakTopics[start:end])

		focus := make([]string, 0, len(topics))
		for _, t := range topics {
			focus = append(focus, t.Subject)
		}

		roadmap.WeeklyPlans = append(roadmap.WeeklyPlans, WeeklyPlan{
			WeekNumber:          week + 1,
			Topics:              topics,
			FocusAreas:          focus,
			EstimatedStudyHours: len(topics) * a.cfg.HoursPerTopic,
			Recommendations:     a.weeklyRecommendations(topics),
		})
		start = end
	}

	return roadmap, nil
}

// Recommendation returns the study advice for a single topic based on its accuracy band.
func (a *Analyzer) Recommendation(topic WeakTopicEntry) string {
	var text string
	switch {
	case topic.AccuracyRate < a.cfg.Bands.Low:
		text = recommendFundamentals
	case topic.AccuracyRate < a.cfg.Bands.High:
		text = recommendRepeat
	default:
		text = recommendFillGaps
	}
	return topic.TopicName + ": " + text
}

func (a *Analyzer) weeklyRecommendations(topics []WeakTopicEntry) []string {
	recs := make([]string, 0, len(topics))
	for _, t := range topics {
		recs = append(recs, a.Recommendation(t))
	}
	return recs
}
