// Package domain defines the business logic for the school activities service.
package domain

import "errors"

var (
	// ErrActivityNotFound is returned when no activity matches the requested name.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrAlreadySignedUp indicates the student is already on the activity roster.
	ErrAlreadySignedUp = errors.New("student already signed up for this activity")
	// ErrNotSignedUp indicates the student is not on the activity roster.
	ErrNotSignedUp = errors.New("student not signed up for this activity")
)

// Activity is a named extracurricular offering. Name is the unique key and is
// immutable after construction; only Participants changes over the process
// lifetime. Participants preserves signup order for display.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}
