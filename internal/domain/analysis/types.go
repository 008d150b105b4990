package analysis

// TopicStat holds the running counts of one topic while attempts are folded.
type TopicStat struct {
	Total   int
	Correct int
	Wrong   int
	Blank   int
	Subject string // subject of the first attempt seen for the topic
}

// GeneralStats are the aggregate counts and rates of one analysis call.
type GeneralStats struct {
	TotalQuestions int     `json:"total_questions"`
	CorrectCount   int     `json:"correct_count"`
	WrongCount     int     `json:"wrong_count"`
	BlankCount     int     `json:"blank_count"`
	Net            float64 `json:"net"`
	AccuracyRate   float64 `json:"accuracy_rate"`
	WrongRate      float64 `json:"wrong_rate"`
	BlankRate      float64 `json:"blank_rate"`
}

// TopicPerformance is a TopicStat with its derived rates and scores.
type TopicPerformance struct {
	Subject        string  `json:"subject"`
	TotalQuestions int     `json:"total_questions"`
	CorrectCount   int     `json:"correct_count"`
	WrongCount     int     `json:"wrong_count"`
	BlankCount     int     `json:"blank_count"`
	AccuracyRate   float64 `json:"accuracy_rate"`
	WrongRate      float64 `json:"wrong_rate"`
	BlankRate      float64 `json:"blank_rate"`
	WeaknessScore  float64 `json:"weakness_score"`
	Net            float64 `json:"net"`
}

// WeakTopicEntry is one ranked row of the weak-topic list.
type WeakTopicEntry struct {
	Rank           int     `json:"rank"`
	TopicName      string  `json:"topic_name"`
	Subject        string  `json:"subject"`
	WeaknessScore  float64 `json:"weakness_score"`
	AccuracyRate   float64 `json:"accuracy_rate"`
	TotalQuestions int     `json:"total_questions"`
	Net            float64 `json:"net"`
}

// SubjectPerformance summarizes all attempts of one subject.
type SubjectPerformance struct {
	Subject        string  `json:"subject"`
	TotalQuestions int     `json:"total_questions"`
	CorrectCount   int     `json:"correct_count"`
	SuccessRate    float64 `json:"success_rate"` // percent
}

// Result is the output of Analyzer.Analyze.
type Result struct {
	GeneralStats       GeneralStats                `json:"general_stats"`
	TopicPerformance   map[string]TopicPerformance `json:"topic_performance"`
	WeakTopics         []WeakTopicEntry            `json:"weak_topics"`
	SubjectPerformance []SubjectPerformance        `json:"subject_performance"`
	WeakSubjects       []string                    `json:"weak_subjects"`
	StrongSubjects     []string                    `json:"strong_subjects"`
}

// WeeklyPlan is one week of a study roadmap.
type WeeklyPlan struct {
	WeekNumber          int              `json:"week_number"`
	Topics              []WeakTopicEntry `json:"topics"`
	FocusAreas          []string         `json:"focus_areas"`
	EstimatedStudyHours int              `json:"estimated_study_hours"`
	Recommendations     []string         `json:"recommendations"`
}

// Roadmap partitions weak topics into weekly study blocks.
type Roadmap struct {
	TotalWeeks    int          `json:"total_weeks"`
	TopicsPerWeek int          `json:"topics_per_week"`
	WeeklyPlans   []WeeklyPlan `json:"weekly_plans"`
}

// ProgressStatus is the direction of change between two analyses.
type ProgressStatus string

// Possible progress statuses
const (
	StatusImproved ProgressStatus = "improved"
	StatusDeclined ProgressStatus = "declined"
	StatusStable   ProgressStatus = "stable"
)

// TopicProgress is the change of one topic present in both analyses.
type TopicProgress struct {
	NetImprovement        float64        `json:"net_improvement"`
	ImprovementPercentage float64        `json:"improvement_percentage"`
	Status                ProgressStatus `json:"status"`
}

// ProgressResult is the output of Analyzer.Compare.
type ProgressResult struct {
	NetChange        float64                  `json:"net_change"`
	OverallProgress  ProgressStatus           `json:"overall_progress"`
	ProgressByTopic  map[string]TopicProgress `json:"progress_by_topic"`
	CurrentAnalysis  *Result                  `json:"current_analysis"`
	PreviousAnalysis *Result                  `json:"previous_analysis"`
}
