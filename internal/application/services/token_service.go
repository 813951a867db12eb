package services

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"

	"task-service/internal/application/interfaces"
	"task-service/internal/domain"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure"
)

// tokenCacheTTL bounds the cache entry only; the store record never expires.
const tokenCacheTTL = 24 * time.Hour

type TokenService struct {
	tokenRepo repositories.TokenRepository
	cache     *infrastructure.TokenCache
}

func NewTokenService(tokenRepo repositories.TokenRepository, cache *infrastructure.TokenCache) interfaces.TokenService {
	return &TokenService{
		tokenRepo: tokenRepo,
		cache:     cache,
	}
}

func (s *TokenService) Issue(ctx context.Context, userId uuid.UUID) (*entities.Token, error) {
	value, err := infrastructure.GenerateTokenValue()
	if err != nil {
		return nil, err
	}

	token := entities.NewToken(value, userId)
	if err := s.tokenRepo.Create(token); err != nil {
		return nil, err
	}

	if err := s.cache.Set(ctx, token.Value, userId.String(), tokenCacheTTL); err != nil {
		log.Printf("Failed to cache token: %v", err)
	}

	return token, nil
}

func (s *TokenService) GetOrIssue(ctx context.Context, userId uuid.UUID) (*entities.Token, error) {
	existing, err := s.tokenRepo.FindByUser(userId)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	token, err := s.Issue(ctx, userId)
	if errors.Is(err, domain.ErrDuplicateToken) {
		// Lost the insert race against a concurrent login; the winner's
		// token is the user's token.
		winner, findErr := s.tokenRepo.FindByUser(userId)
		if findErr != nil {
			return nil, findErr
		}
		if winner == nil {
			return nil, domain.ErrDuplicateToken
		}
		return winner, nil
	}
	if err != nil {
		return nil, err
	}

	return token, nil
}

func (s *TokenService) Resolve(ctx context.Context, value string) (uuid.UUID, error) {
	if value == "" {
		return uuid.Nil, domain.ErrInvalidToken
	}

	cached, err := s.cache.Get(ctx, value)
	if err == nil {
		if userId, parseErr := uuid.Parse(cached); parseErr == nil {
			return userId, nil
		}
	} else if !errors.Is(err, redis.Nil) {
		log.Printf("Token cache lookup failed: %v", err)
	}

	token, err := s.tokenRepo.FindByValue(value)
	if err != nil {
		return uuid.Nil, err
	}
	if token == nil {
		return uuid.Nil, domain.ErrInvalidToken
	}

	if err := s.cache.Set(ctx, token.Value, token.UserId.String(), tokenCacheTTL); err != nil {
		log.Printf("Failed to cache token: %v", err)
	}

	return token.UserId, nil
}
