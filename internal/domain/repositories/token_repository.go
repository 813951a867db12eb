package repositories

import (
	"github.com/google/uuid"

	"task-service/internal/domain/entities"
)

type TokenRepository interface {
	// Create persists the token. A duplicate-owner unique-index violation
	// is returned as domain.ErrDuplicateToken.
	Create(token *entities.Token) error
	// FindByUser returns (nil, nil) when the user holds no token.
	FindByUser(userId uuid.UUID) (*entities.Token, error)
	// FindByValue returns (nil, nil) when no token record matches.
	FindByValue(value string) (*entities.Token, error)
}
