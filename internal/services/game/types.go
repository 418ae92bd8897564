package game

import (
	"github.com/KirkDiggler/clynboozle/internal/common/clock"
	"github.com/KirkDiggler/clynboozle/internal/common/uuid"
	"github.com/KirkDiggler/clynboozle/internal/models"
	questionRepo "github.com/KirkDiggler/clynboozle/internal/repositories/question"
	sessionRepo "github.com/KirkDiggler/clynboozle/internal/repositories/session"
)

// Config holds configuration for the session engine
type Config struct {
	// Repository dependencies
	QuestionRepo questionRepo.Repository
	SessionRepo  sessionRepo.Repository

	// Service dependencies
	Clock         clock.Clock
	UUIDGenerator uuid.UUID
}

// StartSessionInput contains parameters for opening a new session
type StartSessionInput struct {
	// TimePerQuestion is the configured seconds per question, display only
	TimePerQuestion int

	// GroupID is the question group the session plays through
	GroupID string
}

// StartSessionOutput contains the result of opening a new session
type StartSessionOutput struct {
	// SessionID is the unique identifier for the created session
	SessionID string
}

// LoadSessionInput contains parameters for rehydrating a session
type LoadSessionInput struct {
	SessionID string
}

// LoadSessionOutput contains the rehydrated session view
type LoadSessionOutput struct {
	Session *models.Session

	// Teams in registration order, with players
	Teams []*models.Team

	// Scores keyed by team ID
	Scores map[string]int

	// CurrentTurnTeamID is the team whose turn it is, empty if no teams yet
	CurrentTurnTeamID string
}

// RegisterTeamsInput contains the team names to register, in turn order
type RegisterTeamsInput struct {
	TeamNames []string
}

// RegisterTeamsOutput contains all teams on the session after registration
type RegisterTeamsOutput struct {
	Teams []*models.Team
}

// AddPlayerInput contains parameters for adding a player to a team
type AddPlayerInput struct {
	TeamID     string
	PlayerName string
}

// AddPlayerOutput contains the created player
type AddPlayerOutput struct {
	PlayerID string
}

type ListTeamsInput struct {
}

type ListTeamsOutput struct {
	Teams []*models.Team
}

type NextQuestionInput struct {
}

// NextQuestionOutput carries the selected question. Question is nil when no
// session is open, the session is inactive, or the pool is exhausted.
type NextQuestionOutput struct {
	Question *models.Question

	// TimePerQuestion echoes the session's configured limit for display
	TimePerQuestion int
}

type HasQuestionsRemainingInput struct {
}

type HasQuestionsRemainingOutput struct {
	Remaining int
	HasMore   bool
}

// ResolveAnswerInput contains the answer outcome to apply
type ResolveAnswerInput struct {
	QuestionID string

	// WasCorrect is the caller's verdict: option check, blank match, or
	// the facilitator's judgment for open ended questions
	WasCorrect bool

	// Points is the question's configured value, awarded in full or not at all
	Points int
}

// ResolveAnswerOutput reports the scoring and rotation that was applied
type ResolveAnswerOutput struct {
	// TeamID is the team the answer was scored for
	TeamID string

	// NewScore is the team's total after the answer
	NewScore int

	// NextTeamID is the team whose turn is next
	NextTeamID string
}

type GetScoresInput struct {
}

type GetScoresOutput struct {
	// Scores keyed by team ID
	Scores map[string]int
}

type GetCurrentTurnInput struct {
}

type GetCurrentTurnOutput struct {
	TeamID string
}

type EndSessionInput struct {
}

// Winner is a team that finished with the maximum score
type Winner struct {
	TeamID string
	Name   string
	Score  int
}

// EndSessionOutput reports the final standings. Ties produce multiple
// winners; a session with no teams has none.
type EndSessionOutput struct {
	Winners   []Winner
	HighScore int
}
