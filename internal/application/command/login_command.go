package command

type LoginCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginCommandResult struct {
	Token string `json:"token"`
}
