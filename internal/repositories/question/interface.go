package question

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/clynboozle/internal/repositories/question Repository

import (
	"context"

	"github.com/KirkDiggler/clynboozle/internal/models"
)

// Repository defines the interface for question catalog persistence
type Repository interface {
	// CreateGroup creates a new question group
	CreateGroup(ctx context.Context, input *CreateGroupInput) (*CreateGroupOutput, error)

	// GetGroup retrieves a group by ID
	GetGroup(ctx context.Context, input *GetGroupInput) (*models.QuestionGroup, error)

	// ListGroups retrieves all groups
	ListGroups(ctx context.Context, input *ListGroupsInput) (*ListGroupsOutput, error)

	// DeleteGroup removes a group, its questions and their options
	DeleteGroup(ctx context.Context, input *DeleteGroupInput) error

	// CreateQuestion creates a question and its options
	CreateQuestion(ctx context.Context, input *CreateQuestionInput) (*CreateQuestionOutput, error)

	// GetQuestion retrieves a question with its options
	GetQuestion(ctx context.Context, input *GetQuestionInput) (*models.Question, error)

	// UpdateQuestion replaces a question's fields and options wholesale
	UpdateQuestion(ctx context.Context, input *UpdateQuestionInput) error

	// DeleteQuestion removes a question and its options
	DeleteQuestion(ctx context.Context, input *DeleteQuestionInput) error

	// ListQuestions retrieves id/prompt summaries for a group
	ListQuestions(ctx context.Context, input *ListQuestionsInput) (*ListQuestionsOutput, error)

	// PickRandomQuestion selects uniformly at random among the group's
	// questions whose IDs are not excluded. Returns nil when none remain.
	PickRandomQuestion(ctx context.Context, input *PickRandomQuestionInput) (*models.Question, error)

	// CountRemaining returns how many questions in the group are not excluded
	CountRemaining(ctx context.Context, input *CountRemainingInput) (int, error)
}
