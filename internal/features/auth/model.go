package auth

import "github.com/mobidrive/carapi/internal/features/users"

// LoginRequest carries the sign-in credentials.
type LoginRequest struct {
	Login    string `json:"login" example:"alice"`
	Password string `json:"password" example:"s3cret"`
}

// SigninResponse is returned after a successful sign-in.
type SigninResponse struct {
	User  *users.User `json:"user"`
	Token string      `json:"token"`
}
