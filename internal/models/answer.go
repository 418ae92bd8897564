package models

import (
	"time"
)

// AnswerOutcome is the recorded result of serving a question in a session
type AnswerOutcome string

const (
	// AnswerOutcomePending indicates the question has not been answered yet
	AnswerOutcomePending AnswerOutcome = "pending"

	// AnswerOutcomeCorrect indicates the answering team was right
	AnswerOutcomeCorrect AnswerOutcome = "correct"

	// AnswerOutcomeIncorrect indicates the answering team was wrong
	AnswerOutcomeIncorrect AnswerOutcome = "incorrect"
)

// AnswerRecord tracks the outcome of one question within one session.
// There is at most one record per (session, question) pair.
type AnswerRecord struct {
	// SessionID is the session the question was served in
	SessionID string

	// QuestionID is the question that was served
	QuestionID string

	// Outcome is pending until the question is answered
	Outcome AnswerOutcome

	// AnsweredAt is when the outcome was determined
	AnsweredAt time.Time
}

// Determined reports whether the record has a final outcome. Questions with
// undetermined records remain selectable.
func (r *AnswerRecord) Determined() bool {
	return r.Outcome == AnswerOutcomeCorrect || r.Outcome == AnswerOutcomeIncorrect
}
