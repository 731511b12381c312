package mapper

import (
	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/model"
)

const DefaultVisibilityTimeoutSeconds = 30

type QueueMapper struct{}

func NewQueueMapper() *QueueMapper {
	return &QueueMapper{}
}

func (m *QueueMapper) ToEntity(q *model.Queue) *entity.Queue {
	if q == nil {
		return nil
	}
	return &entity.Queue{
		Id:                       q.Id,
		UserId:                   q.UserId,
		QueueName:                q.QueueName,
		VisibilityTimeoutSeconds: q.VisibilityTimeoutSeconds,
		CreatedAt:                q.CreatedAt,
	}
}

func (m *QueueMapper) ToModel(q *entity.Queue) *model.Queue {
	if q == nil {
		return nil
	}
	visibility := q.VisibilityTimeoutSeconds
	if visibility == 0 {
		visibility = DefaultVisibilityTimeoutSeconds
	}
	return &model.Queue{
		Id:                       q.Id,
		UserId:                   q.UserId,
		QueueName:                q.QueueName,
		VisibilityTimeoutSeconds: visibility,
		CreatedAt:                q.CreatedAt,
	}
}

func (m *QueueMapper) ToEntities(queues []*model.Queue) []*entity.Queue {
	entities := make([]*entity.Queue, len(queues))
	for i, q := range queues {
		entities[i] = m.ToEntity(q)
	}
	return entities
}
