package memory

import (
	"context"
	"time"

	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/mapper"
	"cloud-console-be/internal/model"
	"cloud-console-be/internal/repository/guard"
	"cloud-console-be/internal/repository/repoerr"

	"github.com/google/uuid"
)

var containerStatuses = []entity.ContainerStatus{
	entity.ContainerStatusPending,
	entity.ContainerStatusRunning,
	entity.ContainerStatusStopped,
	entity.ContainerStatusTerminated,
}

type BucketRepository struct {
	store  *Store
	mapper mapper.StorageMapper
}

func (r *BucketRepository) Create(_ context.Context, bucket *entity.Bucket) error {
	const op = "BucketRepository.Create"
	if bucket == nil {
		return repoerr.InvalidArgument(op, "bucket is nil")
	}
	if err := guard.First(guard.Email(op, bucket.OwnerEmail), guard.Key(op, "name", bucket.Name)); err != nil {
		return err
	}
	m := r.mapper.BucketToModel(bucket)
	m.Id = newID(m.Id)
	r.store.stamp(&m.CreatedAt)
	if key, ok := r.store.insert(r.store.buckets, m.Id, *m, uniqueKey("buckets.name", m.Name)); !ok {
		return repoerr.IntegrityViolation(op, "duplicate key %s", key)
	}
	*bucket = *r.mapper.BucketToEntity(m)
	return nil
}

func (r *BucketRepository) FindAllByOwnerEmail(_ context.Context, email string) ([]*entity.Bucket, error) {
	const op = "BucketRepository.FindAllByOwnerEmail"
	if err := guard.Email(op, email); err != nil {
		return nil, err
	}
	rows := selectRows(r.store.buckets, func(b *model.Bucket) bool { return b.OwnerEmail == email })
	sortByTime(rows, func(b *model.Bucket) (time.Time, uuid.UUID) { return b.CreatedAt, b.Id }, false)
	return r.mapper.BucketsToEntities(rows), nil
}

func (r *BucketRepository) FindByName(_ context.Context, name string) (*entity.Bucket, error) {
	const op = "BucketRepository.FindByName"
	if err := guard.Key(op, "name", name); err != nil {
		return nil, err
	}
	rows := selectRows(r.store.buckets, func(b *model.Bucket) bool { return b.Name == name })
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return r.mapper.BucketToEntity(rows[0]), nil
	}
	return nil, repoerr.IntegrityViolation(op, "unique key matched more than one row")
}

func (r *BucketRepository) ExistsByName(_ context.Context, name string) (bool, error) {
	const op = "BucketRepository.ExistsByName"
	if err := guard.Key(op, "name", name); err != nil {
		return false, err
	}
	rows := selectRows(r.store.buckets, func(b *model.Bucket) bool { return b.Name == name })
	return len(rows) > 0, nil
}

type ContainerRepository struct {
	store  *Store
	mapper mapper.StorageMapper
}

func (r *ContainerRepository) Create(_ context.Context, container *entity.Container) error {
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
	m.Id = newID(m.Id)
	r.store.stamp(&m.CreatedAt)
	r.store.stamp(&m.UpdatedAt)
	if key, ok := r.store.insert(r.store.containers, m.Id, *m, uniqueKey("containers.instance_id", m.InstanceId)); !ok {
		return repoerr.IntegrityViolation(op, "duplicate key %s", key)
	}
	*container = *r.mapper.ContainerToEntity(m)
	return nil
}

func (r *ContainerRepository) FindAllByOwnerEmail(_ context.Context, email string) ([]*entity.Container, error) {
	const op = "ContainerRepository.FindAllByOwnerEmail"
	if err := guard.Email(op, email); err != nil {
		return nil, err
	}
	return r.filter(func(c *model.Container) bool { return c.OwnerEmail == email }), nil
}

func (r *ContainerRepository) FindByInstanceId(_ context.Context, instanceId string) (*entity.Container, error) {
	const op = "ContainerRepository.FindByInstanceId"
	if err := guard.Key(op, "instanceId", instanceId); err != nil {
		return nil, err
	}
	rows := r.filter(func(c *model.Container) bool { return c.InstanceId == instanceId })
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return rows[0], nil
	}
	return nil, repoerr.IntegrityViolation(op, "unique key matched more than one row")
}

func (r *ContainerRepository) FindAllByOwnerEmailAndStatus(_ context.Context, email string, status entity.ContainerStatus) ([]*entity.Container, error) {
	const op = "ContainerRepository.FindAllByOwnerEmailAndStatus"
	if err := guard.First(guard.Email(op, email), guard.OneOf(op, "status", status, containerStatuses...)); err != nil {
		return nil, err
	}
	return r.filter(func(c *model.Container) bool {
		return c.OwnerEmail == email && c.Status == string(status)
	}), nil
}

func (r *ContainerRepository) ExistsByInstanceId(_ context.Context, instanceId string) (bool, error) {
	const op = "ContainerRepository.ExistsByInstanceId"
	if err := guard.Key(op, "instanceId", instanceId); err != nil {
		return false, err
	}
	return len(r.filter(func(c *model.Container) bool { return c.InstanceId == instanceId })) > 0, nil
}

func (r *ContainerRepository) filter(keep func(*model.Container) bool) []*entity.Container {
	rows := selectRows(r.store.containers, keep)
	sortByTime(rows, func(c *model.Container) (time.Time, uuid.UUID) { return c.CreatedAt, c.Id }, false)
	return r.mapper.ContainersToEntities(rows)
}
