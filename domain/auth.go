package domain

import (
	"context"
	"luxefurnish/utils"
)

type AuthUseCase interface {
	GetAccessTokenManager() *utils.JWTManager
	Signup(ctx context.Context, name, email, password string) (*User, error)
	Signin(ctx context.Context, email, password string) (*AuthResult, error)
}

type AuthResult struct {
	User  *User
	Token string
}
