package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"task-service/internal/domain"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
)

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) repositories.TokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) Create(token *entities.Token) error {
	tokenModel := TokenModel{
		Value:     token.Value,
		UserId:    token.UserId,
		CreatedAt: token.CreatedAt,
	}

	if err := r.db.Create(&tokenModel).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return domain.ErrDuplicateToken
		}
		return err
	}
	return nil
}

func (r *TokenRepository) FindByUser(userId uuid.UUID) (*entities.Token, error) {
	var tokenModel TokenModel
	if err := r.db.Where("user_id = ?", userId).First(&tokenModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&tokenModel), nil
}

func (r *TokenRepository) FindByValue(value string) (*entities.Token, error) {
	var tokenModel TokenModel
	if err := r.db.Where("value = ?", value).First(&tokenModel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return r.mapToEntity(&tokenModel), nil
}

func (r *TokenRepository) mapToEntity(tokenModel *TokenModel) *entities.Token {
	return &entities.Token{
		Value:     tokenModel.Value,
		UserId:    tokenModel.UserId,
		CreatedAt: tokenModel.CreatedAt,
	}
}
