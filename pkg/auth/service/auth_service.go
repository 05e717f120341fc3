package service

import (
	"context"
	"errors"

	"gardenbook/entities"
)

var (
	ErrBadCredentials = errors.New("invalid email or password")
	ErrEmailTaken     = errors.New("email already registered")
)

type AuthService interface {
	Register(ctx context.Context, email, password, displayName string) (*entities.User, error)
	// Login checks the password and returns a signed bearer token.
	Login(ctx context.Context, email, password string) (token string, user *entities.User, err error)
}
