package models

import (
	"time"
)

// Session represents one playthrough of a question group
type Session struct {
	// ID is the unique identifier for this session
	ID string

	// CreatedAt is when the session was created
	CreatedAt time.Time

	// Active indicates if this session is still being played
	Active bool

	// TimePerQuestion is the configured seconds per question. It is
	// informational only; the engine never enforces it.
	TimePerQuestion int

	// GroupID is the question group this session plays through
	GroupID string

	// CurrentTurnTeamID is the team whose turn it is, empty until teams exist
	CurrentTurnTeamID string
}
