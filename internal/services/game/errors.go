package game

import "errors"

// Define errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrGroupNotFound   = errors.New("question group not found")
	ErrNoOpenSession   = errors.New("no session is currently open")
	ErrTeamNotFound    = errors.New("team not found")
)
