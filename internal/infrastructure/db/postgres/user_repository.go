package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-service/internal/domain"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) repositories.UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(user *entities.ValidatedUser) (*entities.User, error) {
	userEntity := user.GetUser()

	// Hash password before saving
	if err := userEntity.HashPassword(); err != nil {
		return nil, err
	}

	userModel := UserModel{
		Id:        userEntity.Id,
		CreatedAt: userEntity.CreatedAt,
		UpdatedAt: userEntity.UpdatedAt,
		Username:  userEntity.Username,
		Password:  userEntity.Password,
	}

	if err := r.db.Create(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrDuplicateUsername
		}
		return nil, err
	}

	return r.FindById(userEntity.Id)
}

func (r *UserRepository) FindById(id uuid.UUID) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("id = ?", id).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) FindByUsername(username string) (*entities.User, error) {
	var userModel UserModel
	if err := r.db.Where("username = ?", username).First(&userModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&userModel), nil
}

func (r *UserRepository) mapToEntity(userModel *UserModel) *entities.User {
	return &entities.User{
		Id:        userModel.Id,
		CreatedAt: userModel.CreatedAt,
		UpdatedAt: userModel.UpdatedAt,
		Username:  userModel.Username,
		Password:  userModel.Password,
	}
}
