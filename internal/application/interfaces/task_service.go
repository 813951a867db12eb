package interfaces

import (
	"github.com/google/uuid"

	"task-service/internal/application/command"
	"task-service/internal/application/query"
)

type TaskService interface {
	CreateTask(createCommand *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error)
	ListTasks(userId uuid.UUID) (*query.TaskQueryListResult, error)
	GetTask(userId, taskId uuid.UUID) (*query.TaskQueryResult, error)
	UpdateTask(updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error)
	ToggleTask(userId, taskId uuid.UUID) (*query.TaskQueryResult, error)
	DeleteTask(userId, taskId uuid.UUID) error
}
