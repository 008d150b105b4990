package domain

// ExamType identifies the exam family a record belongs to.
type ExamType string

// Supported exam types
const (
	ExamTypeTYT ExamType = "tyt"
	ExamTypeAYT ExamType = "ayt"
	ExamTypeDil ExamType = "dil"
	ExamTypeMSU ExamType = "msu"
)

// IsValid reports whether t is one of the supported exam types.
func (t ExamType) IsValid() bool {
	switch t {
	case ExamTypeTYT, ExamTypeAYT, ExamTypeDil, ExamTypeMSU:
		return true
	default:
		return false
	}
}

// ExamRecord holds the record-level totals of a practice exam.
type ExamRecord struct {
	ExamName       string   `json:"exam_name"`
	ExamType       ExamType `json:"exam_type"`
	TotalQuestions int      `json:"total_questions"`
	TotalCorrect   int      `json:"total_correct"`
	TotalWrong     int      `json:"total_wrong"`
}

// NetScore applies the four-wrong-cancels-one-correct rule at record level.
// Unlike topic-level net in the analysis package, the result is clamped at 0.
func (r ExamRecord) NetScore() float64 {
	if r.TotalQuestions <= 0 {
		return 0
	}
	net := float64(r.TotalCorrect) - float64(r.TotalWrong)/4.0
	if net < 0 {
		return 0
	}
	return net
}

// ScorePercentage is the clamped net score as a percentage of the question count.
func (r ExamRecord) ScorePercentage() float64 {
	if r.TotalQuestions <= 0 {
		return 0
	}
	return r.NetScore() / float64(r.TotalQuestions) * 100
}
