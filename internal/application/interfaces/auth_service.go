package interfaces

import "task-service/internal/application/command"

type AuthService interface {
	Signup(signupCommand *command.SignupCommand) (*command.SignupCommandResult, error)
	Login(loginCommand *command.LoginCommand) (*command.LoginCommandResult, error)
}
