package postgres

import (
	"time"

	"github.com/google/uuid"
)

type UserModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string `gorm:"uniqueIndex;not null"`
	Password  string `gorm:"not null"`
}

func (UserModel) TableName() string {
	return "users"
}

type TaskModel struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;index;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string `gorm:"not null"`
	Memo      string
	Completed bool `gorm:"not null;default:false"`
}

func (TaskModel) TableName() string {
	return "tasks"
}

// TokenModel enforces the one-live-token-per-user invariant through the
// unique index on UserId, not application logic.
type TokenModel struct {
	Value     string    `gorm:"primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	CreatedAt time.Time
}

func (TokenModel) TableName() string {
	return "tokens"
}
