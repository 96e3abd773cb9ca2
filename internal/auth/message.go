package auth

const (
	MsgRegistered = "Registration successful."
	MsgLoggedIn   = "Logged in."
	MsgUserExists = "User already exists."
	MsgNoLoginID  = "Username or email is required."
)
