package models

import (
	"time"
)

// Team is a group of players competing in a session
type Team struct {
	// ID is the unique identifier for the team
	ID string

	// SessionID is the session this team belongs to
	SessionID string

	// Name is the display name for the team
	Name string

	// CreatedAt is when the team was registered
	CreatedAt time.Time

	// Players on this team, informational only
	Players []*Player
}

// Player is a member of a team. Players do not affect scoring.
type Player struct {
	// ID is the unique identifier for the player
	ID string

	// TeamID is the team this player belongs to
	TeamID string

	// Name is the display name for the player
	Name string
}
