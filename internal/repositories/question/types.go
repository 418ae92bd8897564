package question

import "github.com/KirkDiggler/clynboozle/internal/models"

type CreateGroupInput struct {
	Name string
}

type CreateGroupOutput struct {
	Group *models.QuestionGroup
}

type GetGroupInput struct {
	GroupID string
}

type ListGroupsInput struct {
}

type ListGroupsOutput struct {
	Groups []*models.QuestionGroup
}

type DeleteGroupInput struct {
	GroupID string
}

type CreateQuestionInput struct {
	Question *models.Question
}

type CreateQuestionOutput struct {
	Question *models.Question
}

type GetQuestionInput struct {
	QuestionID string
}

type UpdateQuestionInput struct {
	Question *models.Question
}

type DeleteQuestionInput struct {
	QuestionID string
}

type ListQuestionsInput struct {
	GroupID string
}

// QuestionSummary is the id/prompt listing used by pickers and admin views
type QuestionSummary struct {
	ID     string
	Prompt string
}

type ListQuestionsOutput struct {
	Questions []QuestionSummary
}

type PickRandomQuestionInput struct {
	GroupID string

	// ExcludeIDs are questions already answered in the current session
	ExcludeIDs []string
}

type CountRemainingInput struct {
	GroupID    string
	ExcludeIDs []string
}
