package gemini

import (
	"fmt"
	"strings"
	"text/template"

	"github.com/sercanumit/bootcamp-112/internal/domain/analysis"
)

const systemPrompt = `You are a study coach for students preparing for the YKS university entrance exams.
Write in Turkish. Be concrete and encouraging. Do not invent numbers that are not in the data.`

const promptTemplate = `Exam summary:
- questions: {{.Stats.TotalQuestions}}, correct: {{.Stats.CorrectCount}}, wrong: {{.Stats.WrongCount}}, blank: {{.Stats.BlankCount}}
- net: {{printf "%.2f" .Stats.Net}}, accuracy: {{percent .Stats.AccuracyRate}}
{{- if .WeakSubjects}}
Weak subjects: {{join .WeakSubjects ", "}}
{{- end}}
{{- if .StrongSubjects}}
Strong subjects: {{join .StrongSubjects ", "}}
{{- end}}

Weakest topics:
{{- range .WeakTopics}}
{{.Rank}}. {{.TopicName}} ({{.Subject}}): accuracy {{percent .AccuracyRate}}, net {{printf "%.2f" .Net}}
{{- end}}
{{if .Weeks}}
Study plan:
{{- range .Weeks}}
Week {{.WeekNumber}} ({{.EstimatedStudyHours}} hours): {{topicNames .Topics}}
{{- end}}
{{end}}
Write a short motivating paragraph and then one practical tip for each week of the plan.`

var funcs = template.FuncMap{
	"join": strings.Join,
	"percent": func(rate float64) string {
		return fmt.Sprintf("%.0f%%", rate*100)
	},
	"topicNames": func(topics []analysis.WeakTopicEntry) string {
		names := make([]string, 0, len(topics))
		for _, t := range topics {
			names = append(names, t.TopicName)
		}
		return strings.Join(names, ", ")
	},
}

var prompt = template.Must(template.New("coach").Funcs(funcs).Parse(promptTemplate))

type promptData struct {
	Stats          analysis.GeneralStats
	WeakTopics     []analysis.WeakTopicEntry
	WeakSubjects   []string
	StrongSubjects []string
	Weeks          []analysis.WeeklyPlan
}

// buildPrompt renders the user prompt for one analysis and its roadmap.
// A nil roadmap omits the study plan section.
func buildPrompt(result *analysis.Result, roadmap *analysis.Roadmap) (string, error) {
	if result == nil {
		return "", ErrMissingAnalysis
	}

	data := promptData{
		Stats:          result.GeneralStats,
		WeakTopics:     result.WeakTopics,
		WeakSubjects:   result.WeakSubjects,
		StrongSubjects: result.StrongSubjects,
	}
	if roadmap != nil {
		data.Weeks = roadmap.WeeklyPlans
	}

	var sb strings.Builder
	if err := prompt.Execute(&sb, data); err != nil {
		return "", fmt.Errorf("failed to render prompt: %w", err)
	}
	return sb.String(), nil
}
