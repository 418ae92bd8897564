package question

import (
	"context"
	"database/sql"
	"testing"

	"github.com/KirkDiggler/clynboozle/internal/models"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	db      *sql.DB
	repo    Repository
	groupID string
}

func (s *SQLiteRepositoryTestSuite) SetupTest() {
	// Fresh in-memory database per test; a single connection keeps the
	// :memory: database alive for the test's duration
	db, err := sql.Open("sqlite3", ":memory:")
	s.Require().NoError(err)
	db.SetMaxOpenConns(1)
	s.db = db

	repo, err := NewSQLite(&Config{DB: db})
	s.Require().NoError(err)
	s.repo = repo

	groupOutput, err := s.repo.CreateGroup(context.Background(), &CreateGroupInput{
		Name: "Test Trivia",
	})
	s.Require().NoError(err)
	s.groupID = groupOutput.Group.ID
}

func (s *SQLiteRepositoryTestSuite) TearDownTest() {
	s.db.Close()
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}

func (s *SQLiteRepositoryTestSuite) multipleChoiceQuestion() *models.Question {
	return &models.Question{
		GroupID:  s.groupID,
		Prompt:   "What is the capital of France?",
		Points:   10,
		Category: "Geography",
		Kind:     models.QuestionKindMultipleChoice,
		Options: []*models.Option{
			{Text: "Paris", IsCorrect: true},
			{Text: "Lyon"},
			{Text: "Marseille"},
			{Text: "Nice"},
		},
	}
}

func (s *SQLiteRepositoryTestSuite) TestCreateAndGetMultipleChoice() {
	created, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: s.multipleChoiceQuestion(),
	})
	s.Require().NoError(err)
	s.Require().NotEmpty(created.Question.ID)

	retrieved, err := s.repo.GetQuestion(context.Background(), &GetQuestionInput{
		QuestionID: created.Question.ID,
	})
	s.Require().NoError(err)

	s.Equal(created.Question.ID, retrieved.ID)
	s.Equal(s.groupID, retrieved.GroupID)
	s.Equal("What is the capital of France?", retrieved.Prompt)
	s.Equal(10, retrieved.Points)
	s.Equal("Geography", retrieved.Category)
	s.Equal(models.QuestionKindMultipleChoice, retrieved.Kind)
	s.Require().Len(retrieved.Options, 4)

	correct := retrieved.CorrectOption()
	s.Require().NotNil(correct)
	s.Equal("Paris", correct.Text)
}

func (s *SQLiteRepositoryTestSuite) TestCreateAndGetFillInBlank() {
	created, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: &models.Question{
			GroupID:     s.groupID,
			Prompt:      "The answer to everything is ____.",
			Points:      5,
			Kind:        models.QuestionKindFillInBlank,
			BlankAnswer: "42",
		},
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetQuestion(context.Background(), &GetQuestionInput{
		QuestionID: created.Question.ID,
	})
	s.Require().NoError(err)
	s.Equal(models.QuestionKindFillInBlank, retrieved.Kind)
	s.Equal("42", retrieved.BlankAnswer)
	s.Empty(retrieved.Options)
}

func (s *SQLiteRepositoryTestSuite) TestCreateAndGetOpenEnded() {
	created, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: &models.Question{
			GroupID: s.groupID,
			Prompt:  "Describe your best holiday.",
			Points:  15,
			Kind:    models.QuestionKindOpenEnded,
		},
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetQuestion(context.Background(), &GetQuestionInput{
		QuestionID: created.Question.ID,
	})
	s.Require().NoError(err)
	s.Equal(models.QuestionKindOpenEnded, retrieved.Kind)
	s.Empty(retrieved.BlankAnswer)
	s.Empty(retrieved.Options)
}

func (s *SQLiteRepositoryTestSuite) TestCreateQuestionDefaultsPoints() {
	created, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: &models.Question{
			GroupID: s.groupID,
			Prompt:  "Open question with no points set.",
			Kind:    models.QuestionKindOpenEnded,
		},
	})
	s.Require().NoError(err)
	s.Equal(models.DefaultQuestionPoints, created.Question.Points)
}

func (s *SQLiteRepositoryTestSuite) TestCreateQuestionRejectsNoCorrectOption() {
	q := s.multipleChoiceQuestion()
	for _, opt := range q.Options {
		opt.IsCorrect = false
	}

	_, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{Question: q})
	s.Require().ErrorIs(err, models.ErrNoCorrectOption)
}

func (s *SQLiteRepositoryTestSuite) TestCreateQuestionRejectsTwoCorrectOptions() {
	q := s.multipleChoiceQuestion()
	q.Options[1].IsCorrect = true

	_, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{Question: q})
	s.Require().ErrorIs(err, models.ErrNoCorrectOption)
}

func (s *SQLiteRepositoryTestSuite) TestGetQuestionNotFound() {
	_, err := s.repo.GetQuestion(context.Background(), &GetQuestionInput{
		QuestionID: "non-existent-question",
	})
	s.Require().ErrorIs(err, ErrQuestionNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestUpdateQuestionKindChangePurgesOptions() {
	created, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: s.multipleChoiceQuestion(),
	})
	s.Require().NoError(err)

	// Change kind from multiple choice to fill in the blank; the old
	// options must be gone afterwards
	err = s.repo.UpdateQuestion(context.Background(), &UpdateQuestionInput{
		Question: &models.Question{
			ID:          created.Question.ID,
			GroupID:     s.groupID,
			Prompt:      "The capital of France is ____.",
			Points:      10,
			Kind:        models.QuestionKindFillInBlank,
			BlankAnswer: "Paris",
		},
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetQuestion(context.Background(), &GetQuestionInput{
		QuestionID: created.Question.ID,
	})
	s.Require().NoError(err)
	s.Equal(models.QuestionKindFillInBlank, retrieved.Kind)
	s.Equal("Paris", retrieved.BlankAnswer)
	s.Empty(retrieved.Options)

	// No orphan option rows either
	var count int
	err = s.db.QueryRow("SELECT COUNT(*) FROM options WHERE question_id = ?", created.Question.ID).Scan(&count)
	s.Require().NoError(err)
	s.Equal(0, count)
}

func (s *SQLiteRepositoryTestSuite) TestUpdateQuestionReplacesOptions() {
	created, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: s.multipleChoiceQuestion(),
	})
	s.Require().NoError(err)

	err = s.repo.UpdateQuestion(context.Background(), &UpdateQuestionInput{
		Question: &models.Question{
			ID:      created.Question.ID,
			GroupID: s.groupID,
			Prompt:  "What is the capital of Spain?",
			Points:  20,
			Kind:    models.QuestionKindMultipleChoice,
			Options: []*models.Option{
				{Text: "Madrid", IsCorrect: true},
				{Text: "Barcelona"},
			},
		},
	})
	s.Require().NoError(err)

	retrieved, err := s.repo.GetQuestion(context.Background(), &GetQuestionInput{
		QuestionID: created.Question.ID,
	})
	s.Require().NoError(err)
	s.Equal("What is the capital of Spain?", retrieved.Prompt)
	s.Equal(20, retrieved.Points)
	s.Require().Len(retrieved.Options, 2)
	s.Equal("Madrid", retrieved.CorrectOption().Text)
}

func (s *SQLiteRepositoryTestSuite) TestUpdateQuestionNotFound() {
	err := s.repo.UpdateQuestion(context.Background(), &UpdateQuestionInput{
		Question: &models.Question{
			ID:     "non-existent-question",
			Prompt: "Anything",
			Points: 10,
			Kind:   models.QuestionKindOpenEnded,
		},
	})
	s.Require().ErrorIs(err, ErrQuestionNotFound)
}

func (s *SQLiteRepositoryTestSuite) TestDeleteQuestionCascades() {
	created, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: s.multipleChoiceQuestion(),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteQuestion(context.Background(), &DeleteQuestionInput{
		QuestionID: created.Question.ID,
	})
	s.Require().NoError(err)

	_, err = s.repo.GetQuestion(context.Background(), &GetQuestionInput{
		QuestionID: created.Question.ID,
	})
	s.Require().ErrorIs(err, ErrQuestionNotFound)

	var count int
	err = s.db.QueryRow("SELECT COUNT(*) FROM options WHERE question_id = ?", created.Question.ID).Scan(&count)
	s.Require().NoError(err)
	s.Equal(0, count)
}

func (s *SQLiteRepositoryTestSuite) TestDeleteGroupCascades() {
	created, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: s.multipleChoiceQuestion(),
	})
	s.Require().NoError(err)

	err = s.repo.DeleteGroup(context.Background(), &DeleteGroupInput{
		GroupID: s.groupID,
	})
	s.Require().NoError(err)

	_, err = s.repo.GetGroup(context.Background(), &GetGroupInput{GroupID: s.groupID})
	s.Require().ErrorIs(err, ErrGroupNotFound)

	_, err = s.repo.GetQuestion(context.Background(), &GetQuestionInput{
		QuestionID: created.Question.ID,
	})
	s.Require().ErrorIs(err, ErrQuestionNotFound)

	var count int
	err = s.db.QueryRow("SELECT COUNT(*) FROM options").Scan(&count)
	s.Require().NoError(err)
	s.Equal(0, count)
}

func (s *SQLiteRepositoryTestSuite) TestListQuestions() {
	first, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: s.multipleChoiceQuestion(),
	})
	s.Require().NoError(err)

	second, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: &models.Question{
			GroupID:     s.groupID,
			Prompt:      "The answer to everything is ____.",
			Points:      5,
			Kind:        models.QuestionKindFillInBlank,
			BlankAnswer: "42",
		},
	})
	s.Require().NoError(err)

	output, err := s.repo.ListQuestions(context.Background(), &ListQuestionsInput{
		GroupID: s.groupID,
	})
	s.Require().NoError(err)
	s.Require().Len(output.Questions, 2)
	s.Equal(first.Question.ID, output.Questions[0].ID)
	s.Equal(second.Question.ID, output.Questions[1].ID)
}

func (s *SQLiteRepositoryTestSuite) TestPickRandomQuestionExcludes() {
	first, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: s.multipleChoiceQuestion(),
	})
	s.Require().NoError(err)

	second, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: &models.Question{
			GroupID:     s.groupID,
			Prompt:      "The answer to everything is ____.",
			Points:      5,
			Kind:        models.QuestionKindFillInBlank,
			BlankAnswer: "42",
		},
	})
	s.Require().NoError(err)

	// With the first question excluded, only the second can come back
	picked, err := s.repo.PickRandomQuestion(context.Background(), &PickRandomQuestionInput{
		GroupID:    s.groupID,
		ExcludeIDs: []string{first.Question.ID},
	})
	s.Require().NoError(err)
	s.Require().NotNil(picked)
	s.Equal(second.Question.ID, picked.ID)

	// With both excluded the pool is exhausted
	picked, err = s.repo.PickRandomQuestion(context.Background(), &PickRandomQuestionInput{
		GroupID:    s.groupID,
		ExcludeIDs: []string{first.Question.ID, second.Question.ID},
	})
	s.Require().NoError(err)
	s.Nil(picked)
}

func (s *SQLiteRepositoryTestSuite) TestPickRandomQuestionEmptyGroup() {
	picked, err := s.repo.PickRandomQuestion(context.Background(), &PickRandomQuestionInput{
		GroupID: "group-with-no-questions",
	})
	s.Require().NoError(err)
	s.Nil(picked)
}

func (s *SQLiteRepositoryTestSuite) TestCountRemaining() {
	first, err := s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: s.multipleChoiceQuestion(),
	})
	s.Require().NoError(err)

	_, err = s.repo.CreateQuestion(context.Background(), &CreateQuestionInput{
		Question: &models.Question{
			GroupID:     s.groupID,
			Prompt:      "The answer to everything is ____.",
			Points:      5,
			Kind:        models.QuestionKindFillInBlank,
			BlankAnswer: "42",
		},
	})
	s.Require().NoError(err)

	count, err := s.repo.CountRemaining(context.Background(), &CountRemainingInput{
		GroupID: s.groupID,
	})
	s.Require().NoError(err)
	s.Equal(2, count)

	count, err = s.repo.CountRemaining(context.Background(), &CountRemainingInput{
		GroupID:    s.groupID,
		ExcludeIDs: []string{first.Question.ID},
	})
	s.Require().NoError(err)
	s.Equal(1, count)
}
