package contract

import (
	"context"

	"cloud-console-be/internal/entity"

	"github.com/google/uuid"
)

type AIFunctionRepository interface {
	Create(ctx context.Context, fn *entity.AIFunction) error
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.AIFunction, error) // Newest first
	CountByUser(ctx context.Context, userId uuid.UUID) (int64, error)
	FindByUserAndId(ctx context.Context, userId, functionId uuid.UUID) (*entity.AIFunction, error)
}
