package game

import (
	"context"
	"errors"

	"github.com/KirkDiggler/clynboozle/internal/common/clock"
	"github.com/KirkDiggler/clynboozle/internal/common/uuid"
	"github.com/KirkDiggler/clynboozle/internal/models"
	questionRepo "github.com/KirkDiggler/clynboozle/internal/repositories/question"
	sessionRepo "github.com/KirkDiggler/clynboozle/internal/repositories/session"
)

// service implements the Service interface. One service instance drives one
// session at a time; currentSessionID is the only state it holds in memory,
// everything else is read back from the stores.
type service struct {
	questionRepo questionRepo.Repository
	sessionRepo  sessionRepo.Repository
	clock        clock.Clock
	uuider       uuid.UUID

	currentSessionID string
}

// New creates a new session engine
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.QuestionRepo == nil {
		return nil, errors.New("question repository cannot be nil")
	}

	if cfg.SessionRepo == nil {
		return nil, errors.New("session repository cannot be nil")
	}

	svc := &service{
		questionRepo: cfg.QuestionRepo,
		sessionRepo:  cfg.SessionRepo,
		clock:        cfg.Clock,
		uuider:       cfg.UUIDGenerator,
	}

	if svc.clock == nil {
		svc.clock = &clock.DefaultClock{}
	}

	if svc.uuider == nil {
		svc.uuider = uuid.New()
	}

	return svc, nil
}

// StartSession opens a new session bound to a question group. If a session is
// already open on this engine it is ended first, so an abandoned session
// never stays marked active.
func (s *service) StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error) {
	if s.currentSessionID != "" {
		if _, err := s.EndSession(ctx, &EndSessionInput{}); err != nil {
			return nil, err
		}
	}

	// The group must exist; its questions become the session's pool
	if _, err := s.questionRepo.GetGroup(ctx, &questionRepo.GetGroupInput{GroupID: input.GroupID}); err != nil {
		if errors.Is(err, questionRepo.ErrGroupNotFound) {
			return nil, ErrGroupNotFound
		}
		return nil, err
	}

	listOutput, err := s.questionRepo.ListQuestions(ctx, &questionRepo.ListQuestionsInput{
		GroupID: input.GroupID,
	})
	if err != nil {
		return nil, err
	}

	questionIDs := make([]string, 0, len(listOutput.Questions))
	for _, summary := range listOutput.Questions {
		questionIDs = append(questionIDs, summary.ID)
	}

	session := &models.Session{
		ID:              s.uuider.NewUUID(),
		CreatedAt:       s.clock.Now(),
		Active:          true,
		TimePerQuestion: input.TimePerQuestion,
		GroupID:         input.GroupID,
	}

	err = s.sessionRepo.CreateSession(ctx, &sessionRepo.CreateSessionInput{
		Session:     session,
		QuestionIDs: questionIDs,
	})
	if err != nil {
		return nil, err
	}

	s.currentSessionID = session.ID

	return &StartSessionOutput{
		SessionID: session.ID,
	}, nil
}

// LoadSession rehydrates the engine's view of an existing session
func (s *service) LoadSession(ctx context.Context, input *LoadSessionInput) (*LoadSessionOutput, error) {
	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: input.SessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return nil, ErrSessionNotFound
		}
		return nil, err
	}

	teamsOutput, err := s.sessionRepo.ListTeams(ctx, &sessionRepo.ListTeamsInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, err
	}

	state, err := s.sessionRepo.GetState(ctx, &sessionRepo.GetStateInput{
		SessionID: session.ID,
	})
	if err != nil {
		return nil, err
	}

	s.currentSessionID = session.ID

	return &LoadSessionOutput{
		Session:           session,
		Teams:             teamsOutput.Teams,
		Scores:            state.Scores,
		CurrentTurnTeamID: state.CurrentTurnTeamID,
	}, nil
}

// RegisterTeams creates a team per name, then initializes a zero score for
// every team on the session. Score init is idempotent per team, so calling
// this again after a partial registration never resets an earned score. The
// first registered team gets the opening turn.
func (s *service) RegisterTeams(ctx context.Context, input *RegisterTeamsInput) (*RegisterTeamsOutput, error) {
	if s.currentSessionID == "" {
		return nil, ErrNoOpenSession
	}

	for _, name := range input.TeamNames {
		team := &models.Team{
			ID:        s.uuider.NewUUID(),
			SessionID: s.currentSessionID,
			Name:      name,
			CreatedAt: s.clock.Now(),
			Players:   []*models.Player{},
		}

		err := s.sessionRepo.AddTeam(ctx, &sessionRepo.AddTeamInput{Team: team})
		if err != nil {
			return nil, err
		}
	}

	teamsOutput, err := s.sessionRepo.ListTeams(ctx, &sessionRepo.ListTeamsInput{
		SessionID: s.currentSessionID,
	})
	if err != nil {
		return nil, err
	}

	// Init scores for every team currently on the session, not just the
	// ones added above
	teamIDs := make([]string, 0, len(teamsOutput.Teams))
	for _, team := range teamsOutput.Teams {
		teamIDs = append(teamIDs, team.ID)
	}

	err = s.sessionRepo.InitScores(ctx, &sessionRepo.InitScoresInput{
		SessionID: s.currentSessionID,
		TeamIDs:   teamIDs,
	})
	if err != nil {
		return nil, err
	}

	state, err := s.sessionRepo.GetState(ctx, &sessionRepo.GetStateInput{
		SessionID: s.currentSessionID,
	})
	if err != nil {
		return nil, err
	}

	if state.CurrentTurnTeamID == "" && len(state.TeamOrder) > 0 {
		err = s.sessionRepo.SetCurrentTurn(ctx, &sessionRepo.SetCurrentTurnInput{
			SessionID: s.currentSessionID,
			TeamID:    state.TeamOrder[0],
		})
		if err != nil {
			return nil, err
		}
	}

	return &RegisterTeamsOutput{
		Teams: teamsOutput.Teams,
	}, nil
}

// AddPlayer adds a player to a team. Players are informational only and do
// not affect scoring.
func (s *service) AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error) {
	if s.currentSessionID == "" {
		return nil, ErrNoOpenSession
	}

	player := &models.Player{
		ID:     s.uuider.NewUUID(),
		TeamID: input.TeamID,
		Name:   input.PlayerName,
	}

	err := s.sessionRepo.AddPlayer(ctx, &sessionRepo.AddPlayerInput{
		TeamID: input.TeamID,
		Player: player,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrTeamNotFound) {
			return nil, ErrTeamNotFound
		}
		return nil, err
	}

	return &AddPlayerOutput{
		PlayerID: player.ID,
	}, nil
}

// ListTeams returns the open session's teams with players
func (s *service) ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error) {
	if s.currentSessionID == "" {
		return nil, ErrNoOpenSession
	}

	teamsOutput, err := s.sessionRepo.ListTeams(ctx, &sessionRepo.ListTeamsInput{
		SessionID: s.currentSessionID,
	})
	if err != nil {
		return nil, err
	}

	return &ListTeamsOutput{
		Teams: teamsOutput.Teams,
	}, nil
}

// NextQuestion selects uniformly at random among the session's unanswered
// questions. A question that was presented but never resolved stays
// selectable; only a determined outcome takes it out of the pool. Returns an
// empty output when no session is open, the session is inactive, or the pool
// is exhausted, so callers can treat all three the same way.
func (s *service) NextQuestion(ctx context.Context, input *NextQuestionInput) (*NextQuestionOutput, error) {
	if s.currentSessionID == "" {
		return &NextQuestionOutput{}, nil
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: s.currentSessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return &NextQuestionOutput{}, nil
		}
		return nil, err
	}

	if !session.Active {
		return &NextQuestionOutput{}, nil
	}

	answeredIDs, err := s.answeredQuestionIDs(ctx)
	if err != nil {
		return nil, err
	}

	question, err := s.questionRepo.PickRandomQuestion(ctx, &questionRepo.PickRandomQuestionInput{
		GroupID:    session.GroupID,
		ExcludeIDs: answeredIDs,
	})
	if err != nil {
		return nil, err
	}

	return &NextQuestionOutput{
		Question:        question,
		TimePerQuestion: session.TimePerQuestion,
	}, nil
}

// HasQuestionsRemaining reports how many questions are still unanswered
func (s *service) HasQuestionsRemaining(ctx context.Context, input *HasQuestionsRemainingInput) (*HasQuestionsRemainingOutput, error) {
	if s.currentSessionID == "" {
		return &HasQuestionsRemainingOutput{}, nil
	}

	session, err := s.sessionRepo.GetSession(ctx, &sessionRepo.GetSessionInput{
		SessionID: s.currentSessionID,
	})
	if err != nil {
		if errors.Is(err, sessionRepo.ErrSessionNotFound) {
			return &HasQuestionsRemainingOutput{}, nil
		}
		return nil, err
	}

	answeredIDs, err := s.answeredQuestionIDs(ctx)
	if err != nil {
		return nil, err
	}

	remaining, err := s.questionRepo.CountRemaining(ctx, &questionRepo.CountRemainingInput{
		GroupID:    session.GroupID,
		ExcludeIDs: answeredIDs,
	})
	if err != nil {
		return nil, err
	}

	return &HasQuestionsRemainingOutput{
		Remaining: remaining,
		HasMore:   remaining > 0,
	}, nil
}

// answeredQuestionIDs returns the IDs of questions with a determined outcome
// in the open session
func (s *service) answeredQuestionIDs(ctx context.Context) ([]string, error) {
	recordsOutput, err := s.sessionRepo.GetAnswerRecords(ctx, &sessionRepo.GetAnswerRecordsInput{
		SessionID: s.currentSessionID,
	})
	if err != nil {
		return nil, err
	}

	var answeredIDs []string
	for _, record := range recordsOutput.Records {
		if record.Determined() {
			answeredIDs = append(answeredIDs, record.QuestionID)
		}
	}

	return answeredIDs, nil
}

// ResolveAnswer records the outcome, overwrites the answering team's score
// with its new total, then rotates the turn. The caller sees these as one
// step: the next NextQuestion call always observes all three.
func (s *service) ResolveAnswer(ctx context.Context, input *ResolveAnswerInput) (*ResolveAnswerOutput, error) {
	if s.currentSessionID == "" {
		return nil, ErrNoOpenSession
	}

	// Upsert keyed by (session, question), so a retried answer cannot
	// create a second record
	err := s.sessionRepo.RecordAnswer(ctx, &sessionRepo.RecordAnswerInput{
		SessionID:  s.currentSessionID,
		QuestionID: input.QuestionID,
		WasCorrect: input.WasCorrect,
		AnsweredAt: s.clock.Now(),
	})
	if err != nil {
		return nil, err
	}

	state, err := s.sessionRepo.GetState(ctx, &sessionRepo.GetStateInput{
		SessionID: s.currentSessionID,
	})
	if err != nil {
		return nil, err
	}

	teamID := state.CurrentTurnTeamID
	if teamID == "" {
		// No teams registered yet; the outcome is recorded but there is
		// nothing to score or rotate
		return &ResolveAnswerOutput{}, nil
	}

	// An incorrect answer awards exactly 0, never a penalty
	newScore := state.Scores[teamID]
	if input.WasCorrect {
		newScore += input.Points
	}

	err = s.sessionRepo.SetScore(ctx, &sessionRepo.SetScoreInput{
		SessionID: s.currentSessionID,
		TeamID:    teamID,
		Score:     newScore,
	})
	if err != nil {
		return nil, err
	}

	// Rotate through teams in registration order, wrapping from last to
	// first. With a single team the turn never moves.
	nextTeamID := teamID
	if len(state.TeamOrder) > 1 {
		for i, id := range state.TeamOrder {
			if id == teamID {
				nextTeamID = state.TeamOrder[(i+1)%len(state.TeamOrder)]
				break
			}
		}

		err = s.sessionRepo.SetCurrentTurn(ctx, &sessionRepo.SetCurrentTurnInput{
			SessionID: s.currentSessionID,
			TeamID:    nextTeamID,
		})
		if err != nil {
			return nil, err
		}
	}

	return &ResolveAnswerOutput{
		TeamID:     teamID,
		NewScore:   newScore,
		NextTeamID: nextTeamID,
	}, nil
}

// GetScores returns the per-team scores for the open session
func (s *service) GetScores(ctx context.Context, input *GetScoresInput) (*GetScoresOutput, error) {
	if s.currentSessionID == "" {
		return nil, ErrNoOpenSession
	}

	state, err := s.sessionRepo.GetState(ctx, &sessionRepo.GetStateInput{
		SessionID: s.currentSessionID,
	})
	if err != nil {
		return nil, err
	}

	return &GetScoresOutput{
		Scores: state.Scores,
	}, nil
}

// GetCurrentTurn returns the team whose turn it is
func (s *service) GetCurrentTurn(ctx context.Context, input *GetCurrentTurnInput) (*GetCurrentTurnOutput, error) {
	if s.currentSessionID == "" {
		return nil, ErrNoOpenSession
	}

	state, err := s.sessionRepo.GetState(ctx, &sessionRepo.GetStateInput{
		SessionID: s.currentSessionID,
	})
	if err != nil {
		return nil, err
	}

	return &GetCurrentTurnOutput{
		TeamID: state.CurrentTurnTeamID,
	}, nil
}

// EndSession marks the open session inactive and reports the winners: every
// team whose score equals the maximum. The session's teams, scores and
// answer records are kept as history. Safe to call when nothing is open.
func (s *service) EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error) {
	if s.currentSessionID == "" {
		return &EndSessionOutput{}, nil
	}

	err := s.sessionRepo.SetActive(ctx, &sessionRepo.SetActiveInput{
		SessionID: s.currentSessionID,
		Active:    false,
	})
	if err != nil {
		return nil, err
	}

	state, err := s.sessionRepo.GetState(ctx, &sessionRepo.GetStateInput{
		SessionID: s.currentSessionID,
	})
	if err != nil {
		return nil, err
	}

	teamsOutput, err := s.sessionRepo.ListTeams(ctx, &sessionRepo.ListTeamsInput{
		SessionID: s.currentSessionID,
	})
	if err != nil {
		return nil, err
	}

	teamNames := make(map[string]string, len(teamsOutput.Teams))
	for _, team := range teamsOutput.Teams {
		teamNames[team.ID] = team.Name
	}

	output := &EndSessionOutput{}

	if len(state.TeamOrder) > 0 {
		highScore := 0
		for _, score := range state.Scores {
			if score > highScore {
				highScore = score
			}
		}

		// Walk the registration order so tied winners come back in a
		// stable order
		for _, teamID := range state.TeamOrder {
			if state.Scores[teamID] == highScore {
				output.Winners = append(output.Winners, Winner{
					TeamID: teamID,
					Name:   teamNames[teamID],
					Score:  highScore,
				})
			}
		}

		output.HighScore = highScore
	}

	s.currentSessionID = ""

	return output, nil
}
