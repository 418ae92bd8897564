package answer

import (
	"testing"

	"github.com/KirkDiggler/clynboozle/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func multipleChoiceQuestion() *models.Question {
	return &models.Question{
		ID:     "q-1",
		Prompt: "What is the capital of France?",
		Points: 10,
		Kind:   models.QuestionKindMultipleChoice,
		Options: []*models.Option{
			{ID: "opt-1", QuestionID: "q-1", Text: "Paris", IsCorrect: true},
			{ID: "opt-2", QuestionID: "q-1", Text: "Lyon"},
			{ID: "opt-3", QuestionID: "q-1", Text: "Marseille"},
		},
	}
}

func TestCheckOption(t *testing.T) {
	q := multipleChoiceQuestion()

	correct, err := CheckOption(q, "opt-1")
	require.NoError(t, err)
	assert.True(t, correct)

	correct, err = CheckOption(q, "opt-2")
	require.NoError(t, err)
	assert.False(t, correct)
}

func TestCheckOptionUnknownOption(t *testing.T) {
	q := multipleChoiceQuestion()

	_, err := CheckOption(q, "opt-99")
	assert.ErrorIs(t, err, ErrUnknownOption)
}

func TestCheckOptionWrongKind(t *testing.T) {
	q := &models.Question{
		ID:          "q-2",
		Prompt:      "The answer to everything?",
		Kind:        models.QuestionKindFillInBlank,
		BlankAnswer: "42",
	}

	_, err := CheckOption(q, "opt-1")
	assert.ErrorIs(t, err, ErrWrongKind)
}

func TestCheckBlank(t *testing.T) {
	q := &models.Question{
		ID:          "q-2",
		Prompt:      "The answer to everything?",
		Kind:        models.QuestionKindFillInBlank,
		BlankAnswer: "42",
	}

	tests := []struct {
		name      string
		submitted string
		want      bool
	}{
		{"exact match", "42", true},
		{"surrounding whitespace", "  42  ", true},
		{"wrong answer", "41", false},
		{"empty submission", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CheckBlank(q, tt.submitted)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckBlankCaseInsensitive(t *testing.T) {
	q := &models.Question{
		ID:          "q-3",
		Prompt:      "Largest planet in the solar system?",
		Kind:        models.QuestionKindFillInBlank,
		BlankAnswer: "Jupiter",
	}

	got, err := CheckBlank(q, "jUpItEr")
	require.NoError(t, err)
	assert.True(t, got)
}

func TestCheckBlankWrongKind(t *testing.T) {
	q := multipleChoiceQuestion()

	_, err := CheckBlank(q, "Paris")
	assert.ErrorIs(t, err, ErrWrongKind)
}
