package services

import "errors"

var (
	// ErrValidation marks missing or malformed form input.
	ErrValidation = errors.New("invalid input")
	// ErrUsernameTaken is returned when registering an existing username.
	ErrUsernameTaken = errors.New("username already taken")
	// ErrInvalidCredentials covers both unknown username and wrong
	// password, so a caller cannot tell which one failed.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrGoalExists is returned when creating a second goal for an account.
	ErrGoalExists = errors.New("goal already exists")
	// ErrNotFound is returned when a looked-up record does not exist.
	ErrNotFound = errors.New("record not found")
)
