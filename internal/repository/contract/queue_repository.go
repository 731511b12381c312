package contract

import (
	"context"

	"cloud-console-be/internal/entity"

	"github.com/google/uuid"
)

type QueueRepository interface {
	Create(ctx context.Context, queue *entity.Queue) error
	FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.Queue, error)
	FindByUserIdAndQueueName(ctx context.Context, userId uuid.UUID, queueName string) (*entity.Queue, error)
	ExistsByUserIdAndQueueName(ctx context.Context, userId uuid.UUID, queueName string) (bool, error)
	FindByIdAndUserId(ctx context.Context, id, userId uuid.UUID) (*entity.Queue, error)
}
