package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/clynboozle/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/clynboozle/internal/models"
)

// Repository defines the interface for live session state persistence
type Repository interface {
	// CreateSession persists a new session and pre-populates one pending
	// answer record per question in its group
	CreateSession(ctx context.Context, input *CreateSessionInput) error

	// GetSession retrieves a session by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.Session, error)

	// SetActive flips the session's active flag
	SetActive(ctx context.Context, input *SetActiveInput) error

	// AddTeam registers a team on a session, preserving registration order
	AddTeam(ctx context.Context, input *AddTeamInput) error

	// AddPlayer adds a player to a team
	AddPlayer(ctx context.Context, input *AddPlayerInput) error

	// ListTeams retrieves a session's teams with players, in registration order
	ListTeams(ctx context.Context, input *ListTeamsInput) (*ListTeamsOutput, error)

	// InitScores creates a zero score per team, skipping teams that already
	// have one
	InitScores(ctx context.Context, input *InitScoresInput) error

	// GetState retrieves the current turn, team order and scores
	GetState(ctx context.Context, input *GetStateInput) (*GetStateOutput, error)

	// SetScore overwrites a team's score with a new absolute total
	SetScore(ctx context.Context, input *SetScoreInput) error

	// SetCurrentTurn sets which team answers next
	SetCurrentTurn(ctx context.Context, input *SetCurrentTurnInput) error

	// RecordAnswer upserts the outcome for a (session, question) pair
	RecordAnswer(ctx context.Context, input *RecordAnswerInput) error

	// GetAnswerRecords retrieves all answer records for a session
	GetAnswerRecords(ctx context.Context, input *GetAnswerRecordsInput) (*GetAnswerRecordsOutput, error)
}
