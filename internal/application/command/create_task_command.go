package command

import (
	"github.com/google/uuid"

	"task-service/internal/application/common"
)

type CreateTaskCommand struct {
	UserId uuid.UUID `json:"-"`
	Title  string    `json:"title"`
	Memo   string    `json:"memo"`
}

type CreateTaskCommandResult struct {
	Result *common.TaskResult `json:"result"`
}
