package domain

import "errors"

// Domain errors surfaced by repositories and services. Handlers translate
// these into HTTP responses; nothing else inspects error strings.
var (
	ErrDuplicateUsername  = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrDuplicateToken     = errors.New("token already exists for user")
	ErrTaskNotFound       = errors.New("task not found")
)
