package entities

import (
	"time"

	"github.com/google/uuid"
)

// Token is an opaque bearer credential bound to one user. The value is
// random, not derived from anything; possession of it is the whole proof.
type Token struct {
	Value     string
	UserId    uuid.UUID
	CreatedAt time.Time
}

func NewToken(value string, userId uuid.UUID) *Token {
	return &Token{
		Value:     value,
		UserId:    userId,
		CreatedAt: time.Now(),
	}
}
