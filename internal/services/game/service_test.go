package game

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/KirkDiggler/clynboozle/internal/common/clock/mocks"
	uuidMocks "github.com/KirkDiggler/clynboozle/internal/common/uuid/mocks"
	"github.com/KirkDiggler/clynboozle/internal/models"
	questionRepo "github.com/KirkDiggler/clynboozle/internal/repositories/question"
	questionMocks "github.com/KirkDiggler/clynboozle/internal/repositories/question/mocks"
	sessionRepo "github.com/KirkDiggler/clynboozle/internal/repositories/session"
	sessionMocks "github.com/KirkDiggler/clynboozle/internal/repositories/session/mocks"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type GameServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockQuestionRepo *questionMocks.MockRepository
	mockSessionRepo  *sessionMocks.MockRepository
	mockClock        *mocks.MockClock
	mockUUID         *uuidMocks.MockUUID
	gameService      *service
	ctx              context.Context

	// Test data
	testTime      time.Time
	testSessionID string
	testGroupID   string

	// Reusable test fixtures
	expectedSession *models.Session
	expectedGroup   *models.QuestionGroup
	teamAlpha       *models.Team
	teamBravo       *models.Team
}

func (s *GameServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockQuestionRepo = questionMocks.NewMockRepository(s.mockCtrl)
	s.mockSessionRepo = sessionMocks.NewMockRepository(s.mockCtrl)
	s.mockClock = mocks.NewMockClock(s.mockCtrl)
	s.mockUUID = uuidMocks.NewMockUUID(s.mockCtrl)

	s.ctx = context.Background()

	// Initialize test data
	s.testTime = time.Date(2025, 6, 14, 19, 30, 0, 0, time.UTC)
	s.testSessionID = "test-session-id"
	s.testGroupID = "test-group-id"

	// Set up the clock mock to return our test time
	s.mockClock.EXPECT().Now().Return(s.testTime).AnyTimes()

	// Initialize reusable test fixtures
	s.expectedGroup = &models.QuestionGroup{
		ID:   s.testGroupID,
		Name: "General Knowledge",
	}

	s.expectedSession = &models.Session{
		ID:              s.testSessionID,
		CreatedAt:       s.testTime,
		Active:          true,
		TimePerQuestion: 30,
		GroupID:         s.testGroupID,
	}

	s.teamAlpha = &models.Team{
		ID:        "team-alpha",
		SessionID: s.testSessionID,
		Name:      "Alpha",
		CreatedAt: s.testTime,
		Players:   []*models.Player{},
	}

	s.teamBravo = &models.Team{
		ID:        "team-bravo",
		SessionID: s.testSessionID,
		Name:      "Bravo",
		CreatedAt: s.testTime,
		Players:   []*models.Player{},
	}

	svc, err := New(&Config{
		QuestionRepo:  s.mockQuestionRepo,
		SessionRepo:   s.mockSessionRepo,
		Clock:         s.mockClock,
		UUIDGenerator: s.mockUUID,
	})
	s.Require().NoError(err)
	s.gameService = svc
}

func (s *GameServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestGameServiceTestSuite(t *testing.T) {
	suite.Run(t, new(GameServiceTestSuite))
}

func (s *GameServiceTestSuite) TestNewRequiresConfig() {
	_, err := New(nil)
	s.Require().Error(err)

	_, err = New(&Config{SessionRepo: s.mockSessionRepo})
	s.Require().Error(err)

	_, err = New(&Config{QuestionRepo: s.mockQuestionRepo})
	s.Require().Error(err)
}

func (s *GameServiceTestSuite) TestStartSession() {
	s.mockQuestionRepo.EXPECT().
		GetGroup(s.ctx, &questionRepo.GetGroupInput{GroupID: s.testGroupID}).
		Return(s.expectedGroup, nil)

	s.mockQuestionRepo.EXPECT().
		ListQuestions(s.ctx, &questionRepo.ListQuestionsInput{GroupID: s.testGroupID}).
		Return(&questionRepo.ListQuestionsOutput{
			Questions: []questionRepo.QuestionSummary{
				{ID: "question-1", Prompt: "First?"},
				{ID: "question-2", Prompt: "Second?"},
			},
		}, nil)

	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)

	s.mockSessionRepo.EXPECT().
		CreateSession(s.ctx, &sessionRepo.CreateSessionInput{
			Session:     s.expectedSession,
			QuestionIDs: []string{"question-1", "question-2"},
		}).
		Return(nil)

	output, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		TimePerQuestion: 30,
		GroupID:         s.testGroupID,
	})
	s.Require().NoError(err)
	s.Equal(s.testSessionID, output.SessionID)
	s.Equal(s.testSessionID, s.gameService.currentSessionID)
}

func (s *GameServiceTestSuite) TestStartSessionGroupNotFound() {
	s.mockQuestionRepo.EXPECT().
		GetGroup(s.ctx, &questionRepo.GetGroupInput{GroupID: "missing-group"}).
		Return(nil, questionRepo.ErrGroupNotFound)

	_, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		TimePerQuestion: 30,
		GroupID:         "missing-group",
	})
	s.Require().ErrorIs(err, ErrGroupNotFound)
	s.Empty(s.gameService.currentSessionID)
}

func (s *GameServiceTestSuite) TestStartSessionEndsDanglingSession() {
	s.gameService.currentSessionID = "old-session-id"

	// The open session gets closed before the new one starts
	s.mockSessionRepo.EXPECT().
		SetActive(s.ctx, &sessionRepo.SetActiveInput{
			SessionID: "old-session-id",
			Active:    false,
		}).
		Return(nil)
	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: "old-session-id"}).
		Return(&sessionRepo.GetStateOutput{Scores: map[string]int{}}, nil)
	s.mockSessionRepo.EXPECT().
		ListTeams(s.ctx, &sessionRepo.ListTeamsInput{SessionID: "old-session-id"}).
		Return(&sessionRepo.ListTeamsOutput{}, nil)

	s.mockQuestionRepo.EXPECT().
		GetGroup(s.ctx, &questionRepo.GetGroupInput{GroupID: s.testGroupID}).
		Return(s.expectedGroup, nil)
	s.mockQuestionRepo.EXPECT().
		ListQuestions(s.ctx, &questionRepo.ListQuestionsInput{GroupID: s.testGroupID}).
		Return(&questionRepo.ListQuestionsOutput{}, nil)
	s.mockUUID.EXPECT().NewUUID().Return(s.testSessionID)
	s.mockSessionRepo.EXPECT().
		CreateSession(s.ctx, &sessionRepo.CreateSessionInput{
			Session:     s.expectedSession,
			QuestionIDs: []string{},
		}).
		Return(nil)

	output, err := s.gameService.StartSession(s.ctx, &StartSessionInput{
		TimePerQuestion: 30,
		GroupID:         s.testGroupID,
	})
	s.Require().NoError(err)
	s.Equal(s.testSessionID, output.SessionID)
}

func (s *GameServiceTestSuite) TestLoadSession() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.expectedSession, nil)
	s.mockSessionRepo.EXPECT().
		ListTeams(s.ctx, &sessionRepo.ListTeamsInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.ListTeamsOutput{Teams: []*models.Team{s.teamAlpha}}, nil)
	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetStateOutput{
			CurrentTurnTeamID: "team-alpha",
			TeamOrder:         []string{"team-alpha"},
			Scores:            map[string]int{"team-alpha": 20},
		}, nil)

	output, err := s.gameService.LoadSession(s.ctx, &LoadSessionInput{SessionID: s.testSessionID})
	s.Require().NoError(err)
	s.Equal(s.expectedSession, output.Session)
	s.Equal(20, output.Scores["team-alpha"])
	s.Equal("team-alpha", output.CurrentTurnTeamID)
	s.Equal(s.testSessionID, s.gameService.currentSessionID)
}

func (s *GameServiceTestSuite) TestLoadSessionNotFound() {
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: "missing-session"}).
		Return(nil, sessionRepo.ErrSessionNotFound)

	_, err := s.gameService.LoadSession(s.ctx, &LoadSessionInput{SessionID: "missing-session"})
	s.Require().ErrorIs(err, ErrSessionNotFound)
	s.Empty(s.gameService.currentSessionID)
}

func (s *GameServiceTestSuite) TestRegisterTeamsSetsOpeningTurn() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockUUID.EXPECT().NewUUID().Return("team-alpha")
	s.mockSessionRepo.EXPECT().
		AddTeam(s.ctx, &sessionRepo.AddTeamInput{Team: s.teamAlpha}).
		Return(nil)

	s.mockUUID.EXPECT().NewUUID().Return("team-bravo")
	s.mockSessionRepo.EXPECT().
		AddTeam(s.ctx, &sessionRepo.AddTeamInput{Team: s.teamBravo}).
		Return(nil)

	s.mockSessionRepo.EXPECT().
		ListTeams(s.ctx, &sessionRepo.ListTeamsInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.ListTeamsOutput{Teams: []*models.Team{s.teamAlpha, s.teamBravo}}, nil)

	s.mockSessionRepo.EXPECT().
		InitScores(s.ctx, &sessionRepo.InitScoresInput{
			SessionID: s.testSessionID,
			TeamIDs:   []string{"team-alpha", "team-bravo"},
		}).
		Return(nil)

	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetStateOutput{
			TeamOrder: []string{"team-alpha", "team-bravo"},
			Scores:    map[string]int{"team-alpha": 0, "team-bravo": 0},
		}, nil)

	// First registered team opens the game
	s.mockSessionRepo.EXPECT().
		SetCurrentTurn(s.ctx, &sessionRepo.SetCurrentTurnInput{
			SessionID: s.testSessionID,
			TeamID:    "team-alpha",
		}).
		Return(nil)

	output, err := s.gameService.RegisterTeams(s.ctx, &RegisterTeamsInput{
		TeamNames: []string{"Alpha", "Bravo"},
	})
	s.Require().NoError(err)
	s.Len(output.Teams, 2)
}

func (s *GameServiceTestSuite) TestRegisterTeamsKeepsExistingTurn() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockUUID.EXPECT().NewUUID().Return("team-bravo")
	s.mockSessionRepo.EXPECT().
		AddTeam(s.ctx, &sessionRepo.AddTeamInput{Team: s.teamBravo}).
		Return(nil)

	s.mockSessionRepo.EXPECT().
		ListTeams(s.ctx, &sessionRepo.ListTeamsInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.ListTeamsOutput{Teams: []*models.Team{s.teamAlpha, s.teamBravo}}, nil)

	s.mockSessionRepo.EXPECT().
		InitScores(s.ctx, &sessionRepo.InitScoresInput{
			SessionID: s.testSessionID,
			TeamIDs:   []string{"team-alpha", "team-bravo"},
		}).
		Return(nil)

	// The turn already belongs to alpha, so no SetCurrentTurn call
	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetStateOutput{
			CurrentTurnTeamID: "team-alpha",
			TeamOrder:         []string{"team-alpha", "team-bravo"},
			Scores:            map[string]int{"team-alpha": 10, "team-bravo": 0},
		}, nil)

	_, err := s.gameService.RegisterTeams(s.ctx, &RegisterTeamsInput{
		TeamNames: []string{"Bravo"},
	})
	s.Require().NoError(err)
}

func (s *GameServiceTestSuite) TestRegisterTeamsRequiresOpenSession() {
	_, err := s.gameService.RegisterTeams(s.ctx, &RegisterTeamsInput{
		TeamNames: []string{"Alpha"},
	})
	s.Require().ErrorIs(err, ErrNoOpenSession)
}

func (s *GameServiceTestSuite) TestAddPlayer() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockUUID.EXPECT().NewUUID().Return("player-1")
	s.mockSessionRepo.EXPECT().
		AddPlayer(s.ctx, &sessionRepo.AddPlayerInput{
			TeamID: "team-alpha",
			Player: &models.Player{
				ID:     "player-1",
				TeamID: "team-alpha",
				Name:   "Alice",
			},
		}).
		Return(nil)

	output, err := s.gameService.AddPlayer(s.ctx, &AddPlayerInput{
		TeamID:     "team-alpha",
		PlayerName: "Alice",
	})
	s.Require().NoError(err)
	s.Equal("player-1", output.PlayerID)
}

func (s *GameServiceTestSuite) TestAddPlayerTeamNotFound() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockUUID.EXPECT().NewUUID().Return("player-1")
	s.mockSessionRepo.EXPECT().
		AddPlayer(s.ctx, gomock.Any()).
		Return(sessionRepo.ErrTeamNotFound)

	_, err := s.gameService.AddPlayer(s.ctx, &AddPlayerInput{
		TeamID:     "missing-team",
		PlayerName: "Alice",
	})
	s.Require().ErrorIs(err, ErrTeamNotFound)
}

func (s *GameServiceTestSuite) TestNextQuestionSkipsDeterminedOutcomes() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.expectedSession, nil)

	// question-1 was answered, question-2 was presented but never resolved
	s.mockSessionRepo.EXPECT().
		GetAnswerRecords(s.ctx, &sessionRepo.GetAnswerRecordsInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetAnswerRecordsOutput{
			Records: []*models.AnswerRecord{
				{SessionID: s.testSessionID, QuestionID: "question-1", Outcome: models.AnswerOutcomeCorrect},
				{SessionID: s.testSessionID, QuestionID: "question-2", Outcome: models.AnswerOutcomePending},
			},
		}, nil)

	picked := &models.Question{
		ID:      "question-2",
		GroupID: s.testGroupID,
		Prompt:  "Still in the pool?",
		Points:  10,
		Kind:    models.QuestionKindOpenEnded,
	}

	// Only the determined outcome is excluded
	s.mockQuestionRepo.EXPECT().
		PickRandomQuestion(s.ctx, &questionRepo.PickRandomQuestionInput{
			GroupID:    s.testGroupID,
			ExcludeIDs: []string{"question-1"},
		}).
		Return(picked, nil)

	output, err := s.gameService.NextQuestion(s.ctx, &NextQuestionInput{})
	s.Require().NoError(err)
	s.Equal(picked, output.Question)
	s.Equal(30, output.TimePerQuestion)
}

func (s *GameServiceTestSuite) TestNextQuestionNoOpenSession() {
	output, err := s.gameService.NextQuestion(s.ctx, &NextQuestionInput{})
	s.Require().NoError(err)
	s.Nil(output.Question)
}

func (s *GameServiceTestSuite) TestNextQuestionInactiveSession() {
	s.gameService.currentSessionID = s.testSessionID

	inactive := &models.Session{
		ID:      s.testSessionID,
		GroupID: s.testGroupID,
		Active:  false,
	}
	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(inactive, nil)

	output, err := s.gameService.NextQuestion(s.ctx, &NextQuestionInput{})
	s.Require().NoError(err)
	s.Nil(output.Question)
}

func (s *GameServiceTestSuite) TestNextQuestionPoolExhausted() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.expectedSession, nil)
	s.mockSessionRepo.EXPECT().
		GetAnswerRecords(s.ctx, &sessionRepo.GetAnswerRecordsInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetAnswerRecordsOutput{
			Records: []*models.AnswerRecord{
				{SessionID: s.testSessionID, QuestionID: "question-1", Outcome: models.AnswerOutcomeIncorrect},
			},
		}, nil)
	s.mockQuestionRepo.EXPECT().
		PickRandomQuestion(s.ctx, &questionRepo.PickRandomQuestionInput{
			GroupID:    s.testGroupID,
			ExcludeIDs: []string{"question-1"},
		}).
		Return(nil, nil)

	output, err := s.gameService.NextQuestion(s.ctx, &NextQuestionInput{})
	s.Require().NoError(err)
	s.Nil(output.Question)
}

func (s *GameServiceTestSuite) TestHasQuestionsRemaining() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockSessionRepo.EXPECT().
		GetSession(s.ctx, &sessionRepo.GetSessionInput{SessionID: s.testSessionID}).
		Return(s.expectedSession, nil)
	s.mockSessionRepo.EXPECT().
		GetAnswerRecords(s.ctx, &sessionRepo.GetAnswerRecordsInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetAnswerRecordsOutput{}, nil)
	s.mockQuestionRepo.EXPECT().
		CountRemaining(s.ctx, &questionRepo.CountRemainingInput{
			GroupID: s.testGroupID,
		}).
		Return(3, nil)

	output, err := s.gameService.HasQuestionsRemaining(s.ctx, &HasQuestionsRemainingInput{})
	s.Require().NoError(err)
	s.Equal(3, output.Remaining)
	s.True(output.HasMore)
}

func (s *GameServiceTestSuite) TestResolveAnswerCorrectScoresAndRotates() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockSessionRepo.EXPECT().
		RecordAnswer(s.ctx, &sessionRepo.RecordAnswerInput{
			SessionID:  s.testSessionID,
			QuestionID: "question-1",
			WasCorrect: true,
			AnsweredAt: s.testTime,
		}).
		Return(nil)

	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetStateOutput{
			CurrentTurnTeamID: "team-alpha",
			TeamOrder:         []string{"team-alpha", "team-bravo"},
			Scores:            map[string]int{"team-alpha": 10, "team-bravo": 20},
		}, nil)

	// The stored score is the team's new total, not a delta
	s.mockSessionRepo.EXPECT().
		SetScore(s.ctx, &sessionRepo.SetScoreInput{
			SessionID: s.testSessionID,
			TeamID:    "team-alpha",
			Score:     25,
		}).
		Return(nil)

	s.mockSessionRepo.EXPECT().
		SetCurrentTurn(s.ctx, &sessionRepo.SetCurrentTurnInput{
			SessionID: s.testSessionID,
			TeamID:    "team-bravo",
		}).
		Return(nil)

	output, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{
		QuestionID: "question-1",
		WasCorrect: true,
		Points:     15,
	})
	s.Require().NoError(err)
	s.Equal("team-alpha", output.TeamID)
	s.Equal(25, output.NewScore)
	s.Equal("team-bravo", output.NextTeamID)
}

func (s *GameServiceTestSuite) TestResolveAnswerIncorrectAwardsNothing() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockSessionRepo.EXPECT().
		RecordAnswer(s.ctx, &sessionRepo.RecordAnswerInput{
			SessionID:  s.testSessionID,
			QuestionID: "question-1",
			WasCorrect: false,
			AnsweredAt: s.testTime,
		}).
		Return(nil)

	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetStateOutput{
			CurrentTurnTeamID: "team-bravo",
			TeamOrder:         []string{"team-alpha", "team-bravo"},
			Scores:            map[string]int{"team-alpha": 10, "team-bravo": 20},
		}, nil)

	// Score is rewritten unchanged, never decremented
	s.mockSessionRepo.EXPECT().
		SetScore(s.ctx, &sessionRepo.SetScoreInput{
			SessionID: s.testSessionID,
			TeamID:    "team-bravo",
			Score:     20,
		}).
		Return(nil)

	// Rotation wraps from the last team back to the first
	s.mockSessionRepo.EXPECT().
		SetCurrentTurn(s.ctx, &sessionRepo.SetCurrentTurnInput{
			SessionID: s.testSessionID,
			TeamID:    "team-alpha",
		}).
		Return(nil)

	output, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{
		QuestionID: "question-1",
		WasCorrect: false,
		Points:     15,
	})
	s.Require().NoError(err)
	s.Equal(20, output.NewScore)
	s.Equal("team-alpha", output.NextTeamID)
}

func (s *GameServiceTestSuite) TestResolveAnswerSingleTeamKeepsTurn() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockSessionRepo.EXPECT().
		RecordAnswer(s.ctx, gomock.Any()).
		Return(nil)
	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetStateOutput{
			CurrentTurnTeamID: "team-alpha",
			TeamOrder:         []string{"team-alpha"},
			Scores:            map[string]int{"team-alpha": 0},
		}, nil)
	s.mockSessionRepo.EXPECT().
		SetScore(s.ctx, &sessionRepo.SetScoreInput{
			SessionID: s.testSessionID,
			TeamID:    "team-alpha",
			Score:     10,
		}).
		Return(nil)

	// No SetCurrentTurn expectation: with one team the turn never moves
	output, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{
		QuestionID: "question-1",
		WasCorrect: true,
		Points:     10,
	})
	s.Require().NoError(err)
	s.Equal("team-alpha", output.NextTeamID)
}

func (s *GameServiceTestSuite) TestResolveAnswerWithNoTeams() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockSessionRepo.EXPECT().
		RecordAnswer(s.ctx, gomock.Any()).
		Return(nil)
	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetStateOutput{Scores: map[string]int{}}, nil)

	output, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{
		QuestionID: "question-1",
		WasCorrect: true,
		Points:     10,
	})
	s.Require().NoError(err)
	s.Empty(output.TeamID)
	s.Zero(output.NewScore)
}

func (s *GameServiceTestSuite) TestResolveAnswerRequiresOpenSession() {
	_, err := s.gameService.ResolveAnswer(s.ctx, &ResolveAnswerInput{
		QuestionID: "question-1",
		WasCorrect: true,
		Points:     10,
	})
	s.Require().ErrorIs(err, ErrNoOpenSession)
}

func (s *GameServiceTestSuite) TestGetScores() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetStateOutput{
			Scores: map[string]int{"team-alpha": 30, "team-bravo": 20},
		}, nil)

	output, err := s.gameService.GetScores(s.ctx, &GetScoresInput{})
	s.Require().NoError(err)
	s.Equal(30, output.Scores["team-alpha"])
	s.Equal(20, output.Scores["team-bravo"])
}

func (s *GameServiceTestSuite) TestGetCurrentTurn() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetStateOutput{CurrentTurnTeamID: "team-bravo"}, nil)

	output, err := s.gameService.GetCurrentTurn(s.ctx, &GetCurrentTurnInput{})
	s.Require().NoError(err)
	s.Equal("team-bravo", output.TeamID)
}

func (s *GameServiceTestSuite) TestEndSessionReportsWinners() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockSessionRepo.EXPECT().
		SetActive(s.ctx, &sessionRepo.SetActiveInput{
			SessionID: s.testSessionID,
			Active:    false,
		}).
		Return(nil)
	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetStateOutput{
			TeamOrder: []string{"team-alpha", "team-bravo"},
			Scores:    map[string]int{"team-alpha": 10, "team-bravo": 40},
		}, nil)
	s.mockSessionRepo.EXPECT().
		ListTeams(s.ctx, &sessionRepo.ListTeamsInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.ListTeamsOutput{Teams: []*models.Team{s.teamAlpha, s.teamBravo}}, nil)

	output, err := s.gameService.EndSession(s.ctx, &EndSessionInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Winners, 1)
	s.Equal("team-bravo", output.Winners[0].TeamID)
	s.Equal("Bravo", output.Winners[0].Name)
	s.Equal(40, output.Winners[0].Score)
	s.Equal(40, output.HighScore)
	s.Empty(s.gameService.currentSessionID)
}

func (s *GameServiceTestSuite) TestEndSessionTieProducesMultipleWinners() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockSessionRepo.EXPECT().
		SetActive(s.ctx, gomock.Any()).
		Return(nil)
	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetStateOutput{
			TeamOrder: []string{"team-alpha", "team-bravo"},
			Scores:    map[string]int{"team-alpha": 30, "team-bravo": 30},
		}, nil)
	s.mockSessionRepo.EXPECT().
		ListTeams(s.ctx, &sessionRepo.ListTeamsInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.ListTeamsOutput{Teams: []*models.Team{s.teamAlpha, s.teamBravo}}, nil)

	output, err := s.gameService.EndSession(s.ctx, &EndSessionInput{})
	s.Require().NoError(err)
	s.Require().Len(output.Winners, 2)

	// Registration order keeps ties stable
	s.Equal("team-alpha", output.Winners[0].TeamID)
	s.Equal("team-bravo", output.Winners[1].TeamID)
}

func (s *GameServiceTestSuite) TestEndSessionWithNoTeams() {
	s.gameService.currentSessionID = s.testSessionID

	s.mockSessionRepo.EXPECT().
		SetActive(s.ctx, gomock.Any()).
		Return(nil)
	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, &sessionRepo.GetStateInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.GetStateOutput{Scores: map[string]int{}}, nil)
	s.mockSessionRepo.EXPECT().
		ListTeams(s.ctx, &sessionRepo.ListTeamsInput{SessionID: s.testSessionID}).
		Return(&sessionRepo.ListTeamsOutput{}, nil)

	output, err := s.gameService.EndSession(s.ctx, &EndSessionInput{})
	s.Require().NoError(err)
	s.Empty(output.Winners)
	s.Zero(output.HighScore)
}

func (s *GameServiceTestSuite) TestEndSessionWithNothingOpen() {
	output, err := s.gameService.EndSession(s.ctx, &EndSessionInput{})
	s.Require().NoError(err)
	s.Empty(output.Winners)
}

func (s *GameServiceTestSuite) TestRepositoryErrorsPropagate() {
	s.gameService.currentSessionID = s.testSessionID

	repoErr := errors.New("redis connection lost")
	s.mockSessionRepo.EXPECT().
		GetState(s.ctx, gomock.Any()).
		Return(nil, repoErr)

	_, err := s.gameService.GetScores(s.ctx, &GetScoresInput{})
	s.Require().ErrorIs(err, repoErr)
}
