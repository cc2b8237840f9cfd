package models

import "errors"

// Sentinel errors for handlers to map to HTTP status.
var (
	ErrMissingFields      = errors.New("please fill all fields")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrProjectNotFound    = errors.New("project not found")
	ErrProjectLimit       = errors.New("maximum 4 projects allowed per user")
	ErrForbidden          = errors.New("access denied")
	ErrTaskNotFound       = errors.New("task not found")
	ErrInvalidStatus      = errors.New("invalid task status")
	ErrInvalidID          = errors.New("invalid id format")
)
