package repositories

import (
	"github.com/google/uuid"

	"task-service/internal/domain/entities"
)

// TaskRepository is owner-scoped throughout: every lookup and mutation
// filters by the owning user id, so a task belonging to someone else is
// indistinguishable from a task that does not exist.
type TaskRepository interface {
	Create(task *entities.ValidatedTask) (*entities.Task, error)
	// FindByOwner returns the user's tasks newest-first.
	FindByOwner(userId uuid.UUID) ([]*entities.Task, error)
	// FindOwned returns (nil, nil) when the task is absent or foreign.
	FindOwned(userId, taskId uuid.UUID) (*entities.Task, error)
	// Update rewrites title and memo; (nil, nil) when absent or foreign.
	Update(userId, taskId uuid.UUID, title, memo string) (*entities.Task, error)
	// ToggleComplete flips the completed flag in a single statement so
	// concurrent toggles never lose an update; (nil, nil) when absent.
	ToggleComplete(userId, taskId uuid.UUID) (*entities.Task, error)
	// Delete reports whether a row was removed.
	Delete(userId, taskId uuid.UUID) (bool, error)
}
