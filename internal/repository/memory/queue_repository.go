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

type QueueRepository struct {
	store  *Store
	mapper mapper.QueueMapper
}

func (r *QueueRepository) Create(_ context.Context, queue *entity.Queue) error {
	const op = "QueueRepository.Create"
	if queue == nil {
		return repoerr.InvalidArgument(op, "queue is nil")
	}
	if err := guard.First(guard.ID(op, "userId", queue.UserId), guard.Key(op, "queueName", queue.QueueName)); err != nil {
		return err
	}
	m := r.mapper.ToModel(queue)
	m.Id = newID(m.Id)
	r.store.stamp(&m.CreatedAt)
	key := uniqueKey("queues.user_queue_name", m.UserId.String(), m.QueueName)
	if dup, ok := r.store.insert(r.store.queues, m.Id, *m, key); !ok {
		return repoerr.IntegrityViolation(op, "duplicate key %s", dup)
	}
	*queue = *r.mapper.ToEntity(m)
	return nil
}

func (r *QueueRepository) FindAllByUserId(_ context.Context, userId uuid.UUID) ([]*entity.Queue, error) {
	const op = "QueueRepository.FindAllByUserId"
	if err := guard.ID(op, "userId", userId); err != nil {
		return nil, err
	}
	rows := selectRows(r.store.queues, func(q *model.Queue) bool { return q.UserId == userId })
	sortByTime(rows, func(q *model.Queue) (time.Time, uuid.UUID) { return q.CreatedAt, q.Id }, false)
	return r.mapper.ToEntities(rows), nil
}

func (r *QueueRepository) FindByUserIdAndQueueName(_ context.Context, userId uuid.UUID, queueName string) (*entity.Queue, error) {
	const op = "QueueRepository.FindByUserIdAndQueueName"
	if err := guard.First(guard.ID(op, "userId", userId), guard.Key(op, "queueName", queueName)); err != nil {
		return nil, err
	}
	rows := r.byUserAndName(userId, queueName)
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return r.mapper.ToEntity(rows[0]), nil
	}
	return nil, repoerr.IntegrityViolation(op, "unique key matched more than one row")
}

func (r *QueueRepository) ExistsByUserIdAndQueueName(_ context.Context, userId uuid.UUID, queueName string) (bool, error) {
	const op = "QueueRepository.ExistsByUserIdAndQueueName"
	if err := guard.First(guard.ID(op, "userId", userId), guard.Key(op, "queueName", queueName)); err != nil {
		return false, err
	}
	return len(r.byUserAndName(userId, queueName)) > 0, nil
}

func (r *QueueRepository) FindByIdAndUserId(_ context.Context, id, userId uuid.UUID) (*entity.Queue, error) {
	const op = "QueueRepository.FindByIdAndUserId"
	if err := guard.First(guard.ID(op, "id", id), guard.ID(op, "userId", userId)); err != nil {
		return nil, err
	}
	m, found := getRow(r.store.queues, id, func(q *model.Queue) bool { return q.UserId == userId })
	if !found {
		return nil, nil
	}
	return r.mapper.ToEntity(m), nil
}

func (r *QueueRepository) byUserAndName(userId uuid.UUID, queueName string) []*model.Queue {
	return selectRows(r.store.queues, func(q *model.Queue) bool {
		return q.UserId == userId && q.QueueName == queueName
	})
}
