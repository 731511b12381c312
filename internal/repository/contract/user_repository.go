package contract

import (
	"context"

	"cloud-console-be/internal/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	SearchByEmail(ctx context.Context, fragment string) ([]*entity.User, error) // Case-insensitive substring
}
