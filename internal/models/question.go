package models

import (
	"errors"
	"fmt"
)

// QuestionKind identifies how a question is asked and how its answer is checked
type QuestionKind string

const (
	// QuestionKindMultipleChoice indicates a question answered by picking one option
	QuestionKindMultipleChoice QuestionKind = "multiple_choice"

	// QuestionKindFillInBlank indicates a question answered by typing the blank text
	QuestionKindFillInBlank QuestionKind = "fill_in_blank"

	// QuestionKindOpenEnded indicates a question judged by the facilitator
	QuestionKindOpenEnded QuestionKind = "open_ended"
)

// DefaultQuestionPoints is awarded when a question does not specify a point value
const DefaultQuestionPoints = 10

// Validation errors
var (
	ErrEmptyPrompt        = errors.New("question prompt cannot be empty")
	ErrMissingOptions     = errors.New("multiple choice question must have options")
	ErrNoCorrectOption    = errors.New("multiple choice question must have exactly one correct option")
	ErrUnexpectedOptions  = errors.New("only multiple choice questions carry options")
	ErrMissingBlankAnswer = errors.New("fill in the blank question must have a blank answer")
	ErrUnexpectedBlank    = errors.New("only fill in the blank questions carry a blank answer")
)

// Option is a single selectable answer for a multiple choice question
type Option struct {
	// ID is the unique identifier for the option
	ID string

	// QuestionID is the question this option belongs to
	QuestionID string

	// Text is the answer text shown to players
	Text string

	// IsCorrect marks the winning option
	IsCorrect bool
}

// Question is one entry in a group's question pool
type Question struct {
	// ID is the unique identifier for the question
	ID string

	// GroupID is the group this question belongs to
	GroupID string

	// Prompt is the question text shown to players
	Prompt string

	// Points awarded for a correct answer
	Points int

	// Category is an optional label for display purposes
	Category string

	// Kind determines which answer fields are meaningful
	Kind QuestionKind

	// BlankAnswer is the expected text, set only when Kind is fill_in_blank
	BlankAnswer string

	// Options is populated only when Kind is multiple_choice
	Options []*Option
}

// Validate checks that the question's fields are consistent with its kind.
// Multiple choice questions must carry exactly one correct option.
func (q *Question) Validate() error {
	if q.Prompt == "" {
		return ErrEmptyPrompt
	}

	switch q.Kind {
	case QuestionKindMultipleChoice:
		if q.BlankAnswer != "" {
			return ErrUnexpectedBlank
		}
		if len(q.Options) == 0 {
			return ErrMissingOptions
		}
		correct := 0
		for _, opt := range q.Options {
			if opt.IsCorrect {
				correct++
			}
		}
		if correct != 1 {
			return ErrNoCorrectOption
		}
	case QuestionKindFillInBlank:
		if len(q.Options) > 0 {
			return ErrUnexpectedOptions
		}
		if q.BlankAnswer == "" {
			return ErrMissingBlankAnswer
		}
	case QuestionKindOpenEnded:
		if len(q.Options) > 0 {
			return ErrUnexpectedOptions
		}
		if q.BlankAnswer != "" {
			return ErrUnexpectedBlank
		}
	default:
		return fmt.Errorf("unknown question kind: %q", q.Kind)
	}

	return nil
}

// CorrectOption returns the option marked correct, or nil for non multiple
// choice questions
func (q *Question) CorrectOption() *Option {
	for _, opt := range q.Options {
		if opt.IsCorrect {
			return opt
		}
	}
	return nil
}
