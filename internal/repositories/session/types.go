package session

import (
	"time"

	"github.com/KirkDiggler/clynboozle/internal/models"
)

type CreateSessionInput struct {
	Session *models.Session

	// QuestionIDs is the group's question pool at creation time
	QuestionIDs []string
}

type GetSessionInput struct {
	SessionID string
}

type SetActiveInput struct {
	SessionID string
	Active    bool
}

type AddTeamInput struct {
	Team *models.Team
}

type AddPlayerInput struct {
	TeamID string
	Player *models.Player
}

type ListTeamsInput struct {
	SessionID string
}

type ListTeamsOutput struct {
	Teams []*models.Team
}

type InitScoresInput struct {
	SessionID string
	TeamIDs   []string
}

type GetStateInput struct {
	SessionID string
}

type GetStateOutput struct {
	CurrentTurnTeamID string

	// TeamOrder lists team IDs in registration order; turn rotation follows it
	TeamOrder []string

	Scores map[string]int
}

type SetScoreInput struct {
	SessionID string
	TeamID    string
	Score     int
}

type SetCurrentTurnInput struct {
	SessionID string
	TeamID    string
}

type RecordAnswerInput struct {
	SessionID  string
	QuestionID string
	WasCorrect bool
	AnsweredAt time.Time
}

type GetAnswerRecordsInput struct {
	SessionID string
}

type GetAnswerRecordsOutput struct {
	Records []*models.AnswerRecord
}
