// Package answer implements the kind-specific answer checking policy.
// Open ended questions have no machine-checkable answer; the facilitator's
// judgment is passed straight to the engine.
package answer

import (
	"errors"
	"strings"

	"github.com/KirkDiggler/clynboozle/internal/models"
)

var (
	// ErrWrongKind is returned when a check does not apply to the question's kind
	ErrWrongKind = errors.New("check does not apply to this question kind")

	// ErrUnknownOption is returned when the chosen option does not belong to the question
	ErrUnknownOption = errors.New("option does not belong to this question")
)

// CheckOption reports whether the chosen option is the correct one for a
// multiple choice question
func CheckOption(q *models.Question, optionID string) (bool, error) {
	if q.Kind != models.QuestionKindMultipleChoice {
		return false, ErrWrongKind
	}

	for _, opt := range q.Options {
		if opt.ID == optionID {
			return opt.IsCorrect, nil
		}
	}

	return false, ErrUnknownOption
}

// CheckBlank reports whether the submitted text matches a fill in the blank
// question's stored answer. Matching is case-insensitive and ignores
// surrounding whitespace.
func CheckBlank(q *models.Question, submitted string) (bool, error) {
	if q.Kind != models.QuestionKindFillInBlank {
		return false, ErrWrongKind
	}

	want := strings.ToLower(strings.TrimSpace(q.BlankAnswer))
	got := strings.ToLower(strings.TrimSpace(submitted))
	return want == got, nil
}
