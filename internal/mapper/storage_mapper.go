package mapper

import (
	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/model"
)

type StorageMapper struct{}

func NewStorageMapper() *StorageMapper {
	return &StorageMapper{}
}

func (m *StorageMapper) BucketToEntity(b *model.Bucket) *entity.Bucket {
	if b == nil {
		return nil
	}
	return &entity.Bucket{
		Id:         b.Id,
		OwnerEmail: b.OwnerEmail,
		Name:       b.Name,
		Region:     b.Region,
		IsPublic:   b.IsPublic,
		CreatedAt:  b.CreatedAt,
	}
}

func (m *StorageMapper) BucketToModel(b *entity.Bucket) *model.Bucket {
	if b == nil {
		return nil
	}
	return &model.Bucket{
		Id:         b.Id,
		OwnerEmail: b.OwnerEmail,
		Name:       b.Name,
		Region:     b.Region,
		IsPublic:   b.IsPublic,
		CreatedAt:  b.CreatedAt,
	}
}

func (m *StorageMapper) BucketsToEntities(buckets []*model.Bucket) []*entity.Bucket {
	entities := make([]*entity.Bucket, len(buckets))
	for i, b := range buckets {
		entities[i] = m.BucketToEntity(b)
	}
	return entities
}

func (m *StorageMapper) ContainerToEntity(c *model.Container) *entity.Container {
	if c == nil {
		return nil
	}
	return &entity.Container{
		Id:         c.Id,
		OwnerEmail: c.OwnerEmail,
		InstanceId: c.InstanceId,
		Image:      c.Image,
		Status:     entity.ContainerStatus(c.Status),
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *StorageMapper) ContainerToModel(c *entity.Container) *model.Container {
	if c == nil {
		return nil
	}
	status := string(c.Status)
	if status == "" {
		status = string(entity.ContainerStatusPending)
	}
	return &model.Container{
		Id:         c.Id,
		OwnerEmail: c.OwnerEmail,
		InstanceId: c.InstanceId,
		Image:      c.Image,
		Status:     status,
		CreatedAt:  c.CreatedAt,
		UpdatedAt:  c.UpdatedAt,
	}
}

func (m *StorageMapper) ContainersToEntities(containers []*model.Container) []*entity.Container {
	entities := make([]*entity.Container, len(containers))
	for i, c := range containers {
		entities[i] = m.ContainerToEntity(c)
	}
	return entities
}
