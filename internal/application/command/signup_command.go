package command

type SignupCommand struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type SignupCommandResult struct {
	Token string `json:"token"`
}
