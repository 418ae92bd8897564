package models

// QuestionGroup is a named pool of questions that a session plays through
type QuestionGroup struct {
	// ID is the unique identifier for the group
	ID string

	// Name is the display name for the group
	Name string
}
