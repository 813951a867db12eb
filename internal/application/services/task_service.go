package services

import (
	"github.com/google/uuid"

	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
	"task-service/internal/application/mapper"
	"task-service/internal/application/query"
	"task-service/internal/domain"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

type TaskService struct {
	taskRepo repositories.TaskRepository
}

func NewTaskService(taskRepo repositories.TaskRepository) interfaces.TaskService {
	return &TaskService{taskRepo: taskRepo}
}

func (s *TaskService) CreateTask(createCommand *command.CreateTaskCommand) (*command.CreateTaskCommandResult, error) {
	newTask := entities.NewTask(createCommand.UserId, createCommand.Title, createCommand.Memo)
	validatedTask, err := entities.NewValidatedTask(newTask)
	if err != nil {
		return nil, err
	}

	createdTask, err := s.taskRepo.Create(validatedTask)
	if err != nil {
		return nil, err
	}

	return &command.CreateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(createdTask),
	}, nil
}

func (s *TaskService) ListTasks(userId uuid.UUID) (*query.TaskQueryListResult, error) {
	tasks, err := s.taskRepo.FindByOwner(userId)
	if err != nil {
		return nil, err
	}

	return &query.TaskQueryListResult{
		Result: mapper.NewTaskResultsFromEntities(tasks),
	}, nil
}

func (s *TaskService) GetTask(userId, taskId uuid.UUID) (*query.TaskQueryResult, error) {
	task, err := s.taskRepo.FindOwned(userId, taskId)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	return &query.TaskQueryResult{
		Result: mapper.NewTaskResultFromEntity(task),
	}, nil
}

func (s *TaskService) UpdateTask(updateCommand *command.UpdateTaskCommand) (*command.UpdateTaskCommandResult, error) {
	task, err := s.taskRepo.Update(
		updateCommand.UserId,
		updateCommand.TaskId,
		updateCommand.Title,
		updateCommand.Memo,
	)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	return &command.UpdateTaskCommandResult{
		Result: mapper.NewTaskResultFromEntity(task),
	}, nil
}

func (s *TaskService) ToggleTask(userId, taskId uuid.UUID) (*query.TaskQueryResult, error) {
	task, err := s.taskRepo.ToggleComplete(userId, taskId)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domain.ErrTaskNotFound
	}

	return &query.TaskQueryResult{
		Result: mapper.NewTaskResultFromEntity(task),
	}, nil
}

func (s *TaskService) DeleteTask(userId, taskId uuid.UUID) error {
	deleted, err := s.taskRepo.Delete(userId, taskId)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTaskNotFound
	}
	return nil
}
