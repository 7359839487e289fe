// Package entities contains core business entities and errors.
package entities

import "errors"

var (
	// ErrActivityNotFound is returned when an activity does not exist.
	ErrActivityNotFound = errors.New("activity not found")
	// ErrInvalidArgument signals failed input validation.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrAlreadySignedUp signals a duplicate signup for the same activity.
	ErrAlreadySignedUp = errors.New("already signed up")
	// ErrActivityFull signals the roster reached max_participants.
	ErrActivityFull = errors.New("activity full")
	// ErrNotSignedUp signals unregistering an email that is not on the roster.
	ErrNotSignedUp = errors.New("not signed up")
)
