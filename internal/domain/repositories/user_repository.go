package repositories

import (
	"github.com/google/uuid"

	"task-service/internal/domain/entities"
)

type UserRepository interface {
	// Create persists the user and returns the stored record. A username
	// unique-index violation is returned as domain.ErrDuplicateUsername.
	Create(user *entities.ValidatedUser) (*entities.User, error)
	FindById(id uuid.UUID) (*entities.User, error)
	// FindByUsername returns (nil, nil) when no such user exists.
	FindByUsername(username string) (*entities.User, error)
}
