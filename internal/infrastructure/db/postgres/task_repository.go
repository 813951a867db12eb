package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

type TaskRepository struct {
	db *gorm.DB
}

func NewTaskRepository(db *gorm.DB) repositories.TaskRepository {
	return &TaskRepository{db: db}
}

func (r *TaskRepository) Create(task *entities.ValidatedTask) (*entities.Task, error) {
	taskEntity := task.GetTask()

	taskModel := TaskModel{
		Id:        taskEntity.Id,
		UserId:    taskEntity.UserId,
		CreatedAt: taskEntity.CreatedAt,
		UpdatedAt: taskEntity.UpdatedAt,
		Title:     taskEntity.Title,
		Memo:      taskEntity.Memo,
		Completed: taskEntity.Completed,
	}

	if err := r.db.Create(&taskModel).Error; err != nil {
		return nil, err
	}

	return r.FindOwned(taskEntity.UserId, taskEntity.Id)
}

func (r *TaskRepository) FindByOwner(userId uuid.UUID) ([]*entities.Task, error) {
	var taskModels []TaskModel
	err := r.db.Where("user_id = ?", userId).Order("created_at DESC").Find(&taskModels).Error
	if err != nil {
		return nil, err
	}

	tasks := make([]*entities.Task, 0, len(taskModels))
	for i := range taskModels {
		tasks = append(tasks, r.mapToEntity(&taskModels[i]))
	}
	return tasks, nil
}

func (r *TaskRepository) FindOwned(userId, taskId uuid.UUID) (*entities.Task, error) {
	var taskModel TaskModel
	err := r.db.Where("id = ? AND user_id = ?", taskId, userId).First(&taskModel).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&taskModel), nil
}

func (r *TaskRepository) Update(userId, taskId uuid.UUID, title, memo string) (*entities.Task, error) {
	result := r.db.Model(&TaskModel{}).
		Where("id = ? AND user_id = ?", taskId, userId).
		Updates(map[string]interface{}{"title": title, "memo": memo})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindOwned(userId, taskId)
}

func (r *TaskRepository) ToggleComplete(userId, taskId uuid.UUID) (*entities.Task, error) {
	// Single-statement flip: no read-modify-write window, so concurrent
	// toggles on the same task each apply exactly once.
	result := r.db.Model(&TaskModel{}).
		Where("id = ? AND user_id = ?", taskId, userId).
		Update("completed", gorm.Expr("NOT completed"))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}

	return r.FindOwned(userId, taskId)
}

func (r *TaskRepository) Delete(userId, taskId uuid.UUID) (bool, error) {
	result := r.db.Where("id = ? AND user_id = ?", taskId, userId).Delete(&TaskModel{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (r *TaskRepository) mapToEntity(taskModel *TaskModel) *entities.Task {
	return &entities.Task{
		Id:        taskModel.Id,
		UserId:    taskModel.UserId,
		CreatedAt: taskModel.CreatedAt,
		UpdatedAt: taskModel.UpdatedAt,
		Title:     taskModel.Title,
		Memo:      taskModel.Memo,
		Completed: taskModel.Completed,
	}
}
