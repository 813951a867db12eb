package interfaces

import (
	"context"

	"github.com/google/uuid"

	"task-service/internal/domain/entities"
)

type TokenService interface {
	// Issue mints and persists a fresh token for the user.
	Issue(ctx context.Context, userId uuid.UUID) (*entities.Token, error)
	// GetOrIssue returns the user's existing token, minting one only if
	// none exists. Repeated calls return the same token.
	GetOrIssue(ctx context.Context, userId uuid.UUID) (*entities.Token, error)
	// Resolve maps a bearer value to its owner, or domain.ErrInvalidToken.
	Resolve(ctx context.Context, value string) (uuid.UUID, error)
}
