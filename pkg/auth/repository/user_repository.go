package repository

import (
	"context"

	"gardenbook/entities"
)

type UserRepository interface {
	Create(ctx context.Context, u *entities.User) error
	FindByEmail(ctx context.Context, email string) (*entities.User, error)
	FindByUID(ctx context.Context, uid string) (*entities.User, error)
}
