package contract

import (
	"context"

	"cloud-console-be/internal/entity"
)

type BucketRepository interface {
	Create(ctx context.Context, bucket *entity.Bucket) error
	FindAllByOwnerEmail(ctx context.Context, email string) ([]*entity.Bucket, error)
	FindByName(ctx context.Context, name string) (*entity.Bucket, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
}

type ContainerRepository interface {
	Create(ctx context.Context, container *entity.Container) error
	FindAllByOwnerEmail(ctx context.Context, email string) ([]*entity.Container, error)
	FindByInstanceId(ctx context.Context, instanceId string) (*entity.Container, error)
	FindAllByOwnerEmailAndStatus(ctx context.Context, email string, status entity.ContainerStatus) ([]*entity.Container, error)
	ExistsByInstanceId(ctx context.Context, instanceId string) (bool, error)
}
