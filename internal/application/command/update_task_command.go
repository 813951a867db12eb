package command

import (
	"github.com/google/uuid"

	"task-service/internal/application/common"
)

type UpdateTaskCommand struct {
	UserId uuid.UUID `json:"-"`
	TaskId uuid.UUID `json:"-"`
	Title  string    `json:"title"`
	Memo   string    `json:"memo"`
}

type UpdateTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
}
