package services

import (
	"context"
	"errors"

	"task-service/internal/application/command"
	"task-service/internal/application/interfaces"
	"task-service/internal/domain"
	"task-service/internal/domain/entities"
	"task-service/internal/domain/repositories"
	"task-service/internal/infrastructure"
)

type AuthService struct {
	userRepo     repositories.UserRepository
	tokenService interfaces.TokenService
	rateLimiter  *infrastructure.RateLimiter
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokenService interfaces.TokenService,
	rateLimiter *infrastructure.RateLimiter,
) interfaces.AuthService {
	return &AuthService{
		userRepo:     userRepo,
		tokenService: tokenService,
		rateLimiter:  rateLimiter,
	}
}

func (s *AuthService) Signup(signupCommand *command.SignupCommand) (*command.SignupCommandResult, error) {
	newUser := entities.NewUser(signupCommand.Username, signupCommand.Password)
	validatedUser, err := entities.NewValidatedUser(newUser)
	if err != nil {
		return nil, err
	}

	// No existence pre-check: the username unique index decides, which
	// closes the race between check and insert.
	createdUser, err := s.userRepo.Create(validatedUser)
	if err != nil {
		return nil, err
	}

	// Signup always mints a fresh token.
	token, err := s.tokenService.Issue(context.Background(), createdUser.Id)
	if err != nil {
		return nil, err
	}

	return &command.SignupCommandResult{Token: token.Value}, nil
}

func (s *AuthService) Login(loginCommand *command.LoginCommand) (*command.LoginCommandResult, error) {
	if !s.rateLimiter.Allow(loginCommand.Username) {
		return nil, errors.New("too many login attempts, please try again later")
	}

	user, err := s.userRepo.FindByUsername(loginCommand.Username)
	if err != nil {
		return nil, err
	}
	// Unknown username and wrong password collapse into the same error so
	// a caller cannot probe which one it was.
	if user == nil {
		return nil, domain.ErrInvalidCredentials
	}
	if err := user.CheckPassword(loginCommand.Password); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	// Repeat logins reuse the existing token.
	token, err := s.tokenService.GetOrIssue(context.Background(), user.Id)
	if err != nil {
		return nil, err
	}

	return &command.LoginCommandResult{Token: token.Value}, nil
}
