package domain

import (
	"time"

	"github.com/google/uuid"
)

// AnswerStatus is the classification of a single question attempt.
type AnswerStatus string

// Possible answer statuses
const (
	AnswerCorrect AnswerStatus = "correct"
	AnswerWrong   AnswerStatus = "wrong"
	AnswerBlank   AnswerStatus = "blank"
)

// QuestionAttempt is one answered (or skipped) question of an exam.
// Identity is positional inside the list it was submitted with.
type QuestionAttempt struct {
	QuestionID    string `json:"question_id"`
	Topic         string `json:"topic"`
	Subject       string `json:"subject"`
	UserAnswer    string `json:"user_answer,omitempty"`
	CorrectAnswer string `json:"correct_answer"`
	IsBlank       bool   `json:"is_blank,omitempty"`
}

// Validate checks the required fields of the attempt found at position index.
func (a QuestionAttempt) Validate(index int) error {
	switch {
	case a.Topic == "":
		return &ValidationError{Index: index, Field: "topic", Message: "cannot be empty"}
	case a.Subject == "":
		return &ValidationError{Index: index, Field: "subject", Message: "cannot be empty"}
	case a.CorrectAnswer == "":
		return &ValidationError{Index: index, Field: "correct_answer", Message: "cannot be empty"}
	}
	return nil
}

// Status classifies the attempt. Blank detection takes priority over the
// answer comparison, which is an exact, case-sensitive match.
func (a QuestionAttempt) Status() AnswerStatus {
	if a.IsBlank || a.UserAnswer == "" {
		return AnswerBlank
	}
	if a.UserAnswer == a.CorrectAnswer {
		return AnswerCorrect
	}
	return AnswerWrong
}

// ValidateAttempts validates every attempt and returns the first failure.
func ValidateAttempts(attempts []QuestionAttempt) error {
	for i, a := range attempts {
		if err := a.Validate(i); err != nil {
			return err
		}
	}
	return nil
}

// ExamAttempt is a stored exam sitting with its raw question attempts,
// kept for historical analysis.
type ExamAttempt struct {
	ID        uuid.UUID         `json:"id"`
	UserID    uuid.UUID         `json:"user_id"`
	ExamName  string            `json:"exam_name"`
	ExamType  ExamType          `json:"exam_type"`
	TakenAt   time.Time         `json:"taken_at"`
	Attempts  []QuestionAttempt `json:"attempts"`
	CreatedAt time.Time         `json:"created_at"`
}

// NewExamAttempt creates a new ExamAttempt for the given user and validates it.
func NewExamAttempt(
	userID uuid.UUID,
	name string,
	examType ExamType,
	takenAt time.Time,
	attempts []QuestionAttempt,
) (*ExamAttempt, error) {
	exam := &ExamAttempt{
		ID:        uuid.New(),
		UserID:    userID,
		ExamName:  name,
		ExamType:  examType,
		TakenAt:   takenAt.UTC(),
		Attempts:  attempts,
		CreatedAt: time.Now().UTC(),
	}

	if err := exam.Validate(); err != nil {
		return nil, err
	}

	return exam, nil
}

// Validate checks if the ExamAttempt has valid data.
func (e *ExamAttempt) Validate() error {
	if e.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if e.UserID == uuid.Nil {
		return NewValidationError("user_id", "cannot be empty", ErrInvalidID)
	}
	if e.ExamName == "" {
		return NewValidationError("exam_name", "cannot be empty", nil)
	}
	if !e.ExamType.IsValid() {
		return NewValidationError("exam_type", "must be one of tyt, ayt, dil, msu", nil)
	}
	if len(e.Attempts) == 0 {
		return NewValidationError("attempts", "cannot be empty", nil)
	}
	return ValidateAttempts(e.Attempts)
}

// Record summarizes the exam into record-level counts.
func (e *ExamAttempt) Record() ExamRecord {
	rec := ExamRecord{
		ExamName:       e.ExamName,
		ExamType:       e.ExamType,
		TotalQuestions: len(e.Attempts),
	}
	for _, a := range e.Attempts {
		switch a.Status() {
		case AnswerCorrect:
			rec.TotalCorrect++
		case AnswerWrong:
			rec.TotalWrong++
		}
	}
	return rec
}
