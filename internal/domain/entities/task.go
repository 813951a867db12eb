package entities

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
)

type Task struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
	Title     string
	Memo      string
	Completed bool
}

func NewTask(userId uuid.UUID, title, memo string) *Task {
	return &Task{
		Id:        uuid.New(),
		UserId:    userId,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
		Title:     title,
		Memo:      memo,
		Completed: false,
	}
}

func (t *Task) validate() error {
	if strings.TrimSpace(t.Title) == "" {
		return errors.New("title must not be empty")
	}
	if t.UserId == uuid.Nil {
		return errors.New("task must have an owner")
	}
	return nil
}

func (t *Task) UpdateDetails(title, memo string) error {
	t.Title = title
	t.Memo = memo
	t.UpdatedAt = time.Now()
	return t.validate()
}
