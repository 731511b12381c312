package implementation

import (
	"context"

	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/mapper"
	"cloud-console-be/internal/model"
	"cloud-console-be/internal/repository/contract"
	"cloud-console-be/internal/repository/guard"
	"cloud-console-be/internal/repository/repoerr"
	"cloud-console-be/internal/repository/scope"
	"cloud-console-be/internal/repository/specification"

	"gorm.io/gorm"
)

var containerStatuses = []entity.ContainerStatus{
	entity.ContainerStatusPending,
	entity.ContainerStatusRunning,
	entity.ContainerStatusStopped,
	entity.ContainerStatusTerminated,
}

type BucketRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StorageMapper
}

func NewBucketRepository(db *gorm.DB) contract.BucketRepository {
	return &BucketRepositoryImpl{
		db:     db,
		mapper: mapper.NewStorageMapper(),
	}
}

func (r *BucketRepositoryImpl) Create(ctx context.Context, bucket *entity.Bucket) error {
	const op = "BucketRepository.Create"
	if bucket == nil {
		return repoerr.InvalidArgument(op, "bucket is nil")
	}
	if err := guard.First(guard.Email(op, bucket.OwnerEmail), guard.Key(op, "name", bucket.Name)); err != nil {
		return err
	}
	m := r.mapper.BucketToModel(bucket)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return repoerr.FromStorage(op, err)
	}
	*bucket = *r.mapper.BucketToEntity(m)
	return nil
}

func (r *BucketRepositoryImpl) FindAllByOwnerEmail(ctx context.Context, email string) ([]*entity.Bucket, error) {
	const op = "BucketRepository.FindAllByOwnerEmail"
	if err := guard.Email(op, email); err != nil {
		return nil, err
	}
	models, err := findAll[model.Bucket](ctx, r.db, op, scope.OrderByCreatedAsc, specification.OwnedByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	return r.mapper.BucketsToEntities(models), nil
}

func (r *BucketRepositoryImpl) FindByName(ctx context.Context, name string) (*entity.Bucket, error) {
	const op = "BucketRepository.FindByName"
	if err := guard.Key(op, "name", name); err != nil {
		return nil, err
	}
	m, err := findUnique[model.Bucket](ctx, r.db, op, specification.ByName{Name: name})
	if err != nil {
		return nil, err
	}
	return r.mapper.BucketToEntity(m), nil
}

func (r *BucketRepositoryImpl) ExistsByName(ctx context.Context, name string) (bool, error) {
	const op = "BucketRepository.ExistsByName"
	if err := guard.Key(op, "name", name); err != nil {
		return false, err
	}
	return exists[model.Bucket](ctx, r.db, op, specification.ByName{Name: name})
}

type ContainerRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.StorageMapper
}

func NewContainerRepository(db *gorm.DB) contract.ContainerRepository {
	return &ContainerRepositoryImpl{
		db:     db,
		mapper: mapper.NewStorageMapper(),
	}
}

func (r *ContainerRepositoryImpl) Create(ctx context.Context, container *entity.Container) error {
	const op = "ContainerRepository.Create"
	if container == nil {
		return repoerr.InvalidArgument(op, "container is nil")
	}
	if err := guard.First(
		guard.Email(op, container.OwnerEmail),
		guard.Key(op, "instanceId", container.InstanceId),
	); err != nil {
		return err
	}
	if container.Status != "" {
		if err := guard.OneOf(op, "status", container.Status, containerStatuses...); err != nil {
			return err
		}
	}
	m := r.mapper.ContainerToModel(container)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return repoerr.FromStorage(op, err)
	}
	*container = *r.mapper.ContainerToEntity(m)
	return nil
}

func (r *ContainerRepositoryImpl) FindAllByOwnerEmail(ctx context.Context, email string) ([]*entity.Container, error) {
	const op = "ContainerRepository.FindAllByOwnerEmail"
	if err := guard.Email(op, email); err != nil {
		return nil, err
	}
	models, err := findAll[model.Container](ctx, r.db, op, scope.OrderByCreatedAsc, specification.OwnedByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	return r.mapper.ContainersToEntities(models), nil
}

func (r *ContainerRepositoryImpl) FindByInstanceId(ctx context.Context, instanceId string) (*entity.Container, error) {
	const op = "ContainerRepository.FindByInstanceId"
	if err := guard.Key(op, "instanceId", instanceId); err != nil {
		return nil, err
	}
	m, err := findUnique[model.Container](ctx, r.db, op, specification.ByInstanceID{InstanceID: instanceId})
	if err != nil {
		return nil, err
	}
	return r.mapper.ContainerToEntity(m), nil
}

func (r *ContainerRepositoryImpl) FindAllByOwnerEmailAndStatus(ctx context.Context, email string, status entity.ContainerStatus) ([]*entity.Container, error) {
	const op = "ContainerRepository.FindAllByOwnerEmailAndStatus"
	if err := guard.First(guard.Email(op, email), guard.OneOf(op, "status", status, containerStatuses...)); err != nil {
		return nil, err
	}
	models, err := findAll[model.Container](ctx, r.db, op, scope.OrderByCreatedAsc,
		specification.OwnedByEmail{Email: email},
		specification.ByStatus{Status: string(status)},
	)
	if err != nil {
		return nil, err
	}
	return r.mapper.ContainersToEntities(models), nil
}

func (r *ContainerRepositoryImpl) ExistsByInstanceId(ctx context.Context, instanceId string) (bool, error) {
	const op = "ContainerRepository.ExistsByInstanceId"
	if err := guard.Key(op, "instanceId", instanceId); err != nil {
		return false, err
	}
	return exists[model.Container](ctx, r.db, op, specification.ByInstanceID{InstanceID: instanceId})
}
