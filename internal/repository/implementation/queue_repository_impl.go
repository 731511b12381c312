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

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type QueueRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.QueueMapper
}

func NewQueueRepository(db *gorm.DB) contract.QueueRepository {
	return &QueueRepositoryImpl{
		db:     db,
		mapper: mapper.NewQueueMapper(),
	}
}

func (r *QueueRepositoryImpl) Create(ctx context.Context, queue *entity.Queue) error {
	const op = "QueueRepository.Create"
	if queue == nil {
		return repoerr.InvalidArgument(op, "queue is nil")
	}
	if err := guard.First(guard.ID(op, "userId", queue.UserId), guard.Key(op, "queueName", queue.QueueName)); err != nil {
		return err
	}
	m := r.mapper.ToModel(queue)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return repoerr.FromStorage(op, err)
	}
	*queue = *r.mapper.ToEntity(m)
	return nil
}

func (r *QueueRepositoryImpl) FindAllByUserId(ctx context.Context, userId uuid.UUID) ([]*entity.Queue, error) {
	const op = "QueueRepository.FindAllByUserId"
	if err := guard.ID(op, "userId", userId); err != nil {
		return nil, err
	}
	models, err := findAll[model.Queue](ctx, r.db, op, scope.OrderByCreatedAsc, specification.OwnedByUser{UserID: userId})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *QueueRepositoryImpl) FindByUserIdAndQueueName(ctx context.Context, userId uuid.UUID, queueName string) (*entity.Queue, error) {
	const op = "QueueRepository.FindByUserIdAndQueueName"
	if err := guard.First(guard.ID(op, "userId", userId), guard.Key(op, "queueName", queueName)); err != nil {
		return nil, err
	}
	m, err := findUnique[model.Queue](ctx, r.db, op,
		specification.OwnedByUser{UserID: userId},
		specification.ByQueueName{QueueName: queueName},
	)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *QueueRepositoryImpl) ExistsByUserIdAndQueueName(ctx context.Context, userId uuid.UUID, queueName string) (bool, error) {
	const op = "QueueRepository.ExistsByUserIdAndQueueName"
	if err := guard.First(guard.ID(op, "userId", userId), guard.Key(op, "queueName", queueName)); err != nil {
		return false, err
	}
	return exists[model.Queue](ctx, r.db, op,
		specification.OwnedByUser{UserID: userId},
		specification.ByQueueName{QueueName: queueName},
	)
}

func (r *QueueRepositoryImpl) FindByIdAndUserId(ctx context.Context, id, userId uuid.UUID) (*entity.Queue, error) {
	const op = "QueueRepository.FindByIdAndUserId"
	if err := guard.First(guard.ID(op, "id", id), guard.ID(op, "userId", userId)); err != nil {
		return nil, err
	}
	m, err := findOne[model.Queue](ctx, r.db, op,
		specification.ByID{ID: id},
		specification.OwnedByUser{UserID: userId},
	)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}
