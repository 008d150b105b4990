package analysis

import (
	"sort"

	"github.com/sercanumit/bootcamp-112/internal/domain"
)

// Analyzer scores exam attempts, builds study roadmaps and compares progress.
// It holds no mutable state and is safe for concurrent use.
type Analyzer struct {
	cfg Config
}

// NewAnalyzer creates an Analyzer with the given policy. A nil cfg uses
// NewDefaultConfig.
func NewAnalyzer(cfg *Config) (*Analyzer, error) {
	if cfg == nil {
		cfg = NewDefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Analyzer{cfg: *cfg}, nil
}

// NewDefaultAnalyzer creates an Analyzer with the standard policy.
func NewDefaultAnalyzer() *Analyzer {
	return &Analyzer{cfg: *NewDefaultConfig()}
}

// Config returns a copy of the analyzer's policy.
func (a *Analyzer) Config() Config {
	return a.cfg
}

// Net is the exam's negative-marking score: four wrong answers cancel one
// correct answer. It is not clamped and may be negative.
func Net(correct, wrong int) float64 {
	return float64(correct) - float64(wrong)/4.0
}

// Analyze computes aggregate, per-topic and per-subject statistics for the
// attempts and ranks the topN weakest topics. topN <= 0 uses the configured
// default. An empty list yields zeroed statistics; an attempt missing a
// required field fails the whole call with a *domain.ValidationError.
func (a *Analyzer) Analyze(attempts []domain.QuestionAttempt, topN int) (*Result, error) {
	if err := domain.ValidateAttempts(attempts); err != nil {
		return nil, err
	}
	if topN <= 0 {
		topN = a.cfg.TopN
	}

	var general GeneralStats
	general.TotalQuestions = len(attempts)

	topicStats := make(map[string]*TopicStat)
	subjectStats := make(map[string]*SubjectPerformance)

	for _, attempt := range attempts {
		stat, ok := topicStats[attempt.Topic]
		if !ok {
			stat = &TopicStat{Subject: attempt.Subject}
			topicStats[attempt.Topic] = stat
		}
		subj, ok := subjectStats[attempt.Subject]
		if !ok {
			subj = &SubjectPerformance{Subject: attempt.Subject}
			subjectStats[attempt.Subject] = subj
		}

		stat.Total++
		subj.TotalQuestions++

		switch attempt.Status() {
		case domain.AnswerBlank:
			general.BlankCount++
			stat.Blank++
		case domain.AnswerCorrect:
			general.CorrectCount++
			stat.Correct++
			subj.CorrectCount++
		default:
			general.WrongCount++
			stat.Wrong++
		}
	}

	general.Net = Net(general.CorrectCount, general.WrongCount)
	general.AccuracyRate = ratio(general.CorrectCount, general.TotalQuestions)
	general.WrongRate = ratio(general.WrongCount, general.TotalQuestions)
	general.BlankRate = ratio(general.BlankCount, general.TotalQuestions)

	performance := a.topicPerformance(topicStats)
	subjects, weak, strong := a.subjectPerformance(subjectStats)

	return &Result{
		GeneralStats:       general,
		TopicPerformance:   performance,
		WeakTopics:         rankWeakTopics(performance, topN),
		SubjectPerformance: subjects,
		WeakSubjects:       weak,
		StrongSubjects:     strong,
	}, nil
}

// WeaknessScore combines inaccuracy, omission and error rates into a score in
// [0, 1] where higher means weaker.
func (a *Analyzer) WeaknessScore(accuracyRate, blankRate, wrongRate float64) float64 {
	w := a.cfg.Weights
	return w.Accuracy*(1-accuracyRate) + w.Omission*blankRate + w.Error*wrongRate
}

func (a *Analyzer) topicPerformance(stats map[string]*TopicStat) map[string]TopicPerformance {
	performance := make(map[string]TopicPerformance, len(stats))

	for topic, s := range stats {
		accuracy := ratio(s.Correct, s.Total)
		wrongRate := ratio(s.Wrong, s.Total)
		blankRate := ratio(s.Blank, s.Total)

		performance[topic] = TopicPerformance{
			Subject:        s.Subject,
			TotalQuestions: s.Total,
			CorrectCount:   s.Correct,
			WrongCount:     s.Wrong,
			BlankCount:     s.Blank,
			AccuracyRate:   accuracy,
			WrongRate:      wrongRate,
			BlankRate:      blankRate,
			WeaknessScore:  a.WeaknessScore(accuracy, blankRate, wrongRate),
			Net:            Net(s.Correct, s.Wrong),
		}
	}

	return performance
}

// subjectPerformance returns subjects sorted by name plus the weak subjects
// (lowest success first) and strong subjects (by name).
func (a *Analyzer) subjectPerformance(
	stats map[string]*SubjectPerformance,
) ([]SubjectPerformance, []string, []string) {
	subjects := make([]SubjectPerformance, 0, len(stats))
	for _, s := range stats {
		s.SuccessRate = ratio(s.CorrectCount, s.TotalQuestions) * 100
		subjects = append(subjects, *s)
	}
	sort.Slice(subjects, func(i, j int) bool {
		return subjects[i].Subject < subjects[j].Subject
	})

	byRate := make([]SubjectPerformance, len(subjects))
	copy(byRate, subjects)
	sort.SliceStable(byRate, func(i, j int) bool {
		return byRate[i].SuccessRate < byRate[j].SuccessRate
	})

	weak := []string{}
	for _, s := range byRate {
		if s.SuccessRate < a.cfg.WeakSubjectThreshold {
			weak = append(weak, s.Subject)
		}
	}

	strong := []string{}
	for _, s := range subjects {
		if s.SuccessRate >= a.cfg.StrongSubjectThreshold {
			strong = append(strong, s.Subject)
		}
	}

	return subjects, weak, strong
}

// rankWeakTopics sorts topics by weakness descending, breaking ties by
// ascending topic name, and keeps the first topN.
func rankWeakTopics(performance map[string]TopicPerformance, topN int) []WeakTopicEntry {
	names := make([]string, 0, len(performance))
	for name := range performance {
		names = append(names, name)
	}

	sort.Slice(names, func(i, j int) bool {
		si, sj := performance[names[i]].WeaknessScore, performance[names[j]].WeaknessScore
		if si != sj {
			return si > sj
		}
		return names[i] < names[j]
	})

	if len(names) > topN {
		names = names[:topN]
	}

	entries := make([]WeakTopicEntry, 0, len(names))
	for i, name := range names {
		p := performance[name]
		entries = append(entries, WeakTopicEntry{
			Rank:           i + 1,
			TopicName:      name,
			Subject:        p.Subject,
			WeaknessScore:  p.WeaknessScore,
			AccuracyRate:   p.AccuracyRate,
			TotalQuestions: p.TotalQuestions,
			Net:            p.Net,
		})
	}

	return entries
}

func ratio(count, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(count) / float64(total)
}
