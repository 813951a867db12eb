package common

import (
	"time"

	"github.com/google/uuid"
)

// TaskResult is the wire representation of a task. "created" keeps the
// field name clients already depend on.
type TaskResult struct {
	Id        uuid.UUID `json:"id"`
	Title     string    `json:"title"`
	Memo      string    `json:"memo"`
	Completed bool      `json:"completed"`
	Created   time.Time `json:"created"`
}
