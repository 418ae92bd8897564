package game

import "context"

// Service defines the interface for session engine operations
type Service interface {
	// StartSession opens a new session bound to a question group. Any
	// session already open on this engine is ended first.
	StartSession(ctx context.Context, input *StartSessionInput) (*StartSessionOutput, error)

	// LoadSession rehydrates an existing session by ID
	LoadSession(ctx context.Context, input *LoadSessionInput) (*LoadSessionOutput, error)

	// RegisterTeams creates teams on the open session and initializes scores
	RegisterTeams(ctx context.Context, input *RegisterTeamsInput) (*RegisterTeamsOutput, error)

	// AddPlayer adds a player to a team on the open session
	AddPlayer(ctx context.Context, input *AddPlayerInput) (*AddPlayerOutput, error)

	// ListTeams returns the open session's teams with players
	ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error)

	// NextQuestion picks a random unanswered question, or none when the
	// session is closed, inactive or exhausted
	NextQuestion(ctx context.Context, input *NextQuestionInput) (*NextQuestionOutput, error)

	// HasQuestionsRemaining reports how many questions are still unanswered
	HasQuestionsRemaining(ctx context.Context, input *HasQuestionsRemainingInput) (*HasQuestionsRemainingOutput, error)

	// ResolveAnswer records an answer outcome, applies scoring and rotates the turn
	ResolveAnswer(ctx context.Context, input *ResolveAnswerInput) (*ResolveAnswerOutput, error)

	// GetScores returns the per-team scores for the open session
	GetScores(ctx context.Context, input *GetScoresInput) (*GetScoresOutput, error)

	// GetCurrentTurn returns the team whose turn it is
	GetCurrentTurn(ctx context.Context, input *GetCurrentTurnInput) (*GetCurrentTurnOutput, error)

	// EndSession marks the open session inactive and reports the winners
	EndSession(ctx context.Context, input *EndSessionInput) (*EndSessionOutput, error)
}
