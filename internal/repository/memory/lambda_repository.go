package memory

import (
	"bytes"
	"context"
	"time"

	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/mapper"
	"cloud-console-be/internal/model"
	"cloud-console-be/internal/repository/guard"
	"cloud-console-be/internal/repository/repoerr"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type LambdaRepository struct {
	store  *Store
	mapper mapper.LambdaMapper
}

func (r *LambdaRepository) Create(_ context.Context, lambda *entity.Lambda) error {
	const op = "LambdaRepository.Create"
	if lambda == nil {
		return repoerr.InvalidArgument(op, "lambda is nil")
	}
	if err := guard.First(
		guard.ID(op, "userId", lambda.UserId),
		guard.Key(op, "name", lambda.Name),
		guard.Key(op, "runtime", lambda.Runtime),
	); err != nil {
		return err
	}
	m := r.mapper.ToModel(lambda)
	m.Id = newID(m.Id)
	r.store.stamp(&m.CreatedAt)
	r.store.stamp(&m.UpdatedAt)
	if key, ok := r.store.insert(r.store.lambdas, m.Id, *m); !ok {
		return repoerr.IntegrityViolation(op, "duplicate key %s", key)
	}
	*lambda = *r.mapper.ToEntity(m)
	return nil
}

func (r *LambdaRepository) FindAllByUser(_ context.Context, userId uuid.UUID) ([]*entity.Lambda, error) {
	const op = "LambdaRepository.FindAllByUser"
	if err := guard.ID(op, "userId", userId); err != nil {
		return nil, err
	}
	rows := selectRows(r.store.lambdas, func(l *model.Lambda) bool { return l.UserId == userId })
	sortByTime(rows, func(l *model.Lambda) (time.Time, uuid.UUID) { return l.CreatedAt, l.Id }, false)
	return r.mapper.ToEntities(rows), nil
}

func (r *LambdaRepository) FindByUserAndId(_ context.Context, userId, id uuid.UUID) (*entity.Lambda, error) {
	const op = "LambdaRepository.FindByUserAndId"
	if err := guard.First(guard.ID(op, "userId", userId), guard.ID(op, "id", id)); err != nil {
		return nil, err
	}
	m, found := getRow(r.store.lambdas, id, func(l *model.Lambda) bool { return l.UserId == userId })
	if !found {
		return nil, nil
	}
	return r.mapper.ToEntity(m), nil
}

// DeleteByUserAndId checks ownership and removes the row under the same lock,
// taking the lambda's executions with it.
func (r *LambdaRepository) DeleteByUserAndId(_ context.Context, userId, id uuid.UUID) error {
	const op = "LambdaRepository.DeleteByUserAndId"
	if err := guard.First(guard.ID(op, "userId", userId), guard.ID(op, "id", id)); err != nil {
		return err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, found := getRow(r.store.lambdas, id, func(l *model.Lambda) bool { return l.UserId == userId }); !found {
		return nil
	}
	r.store.lambdas.Delete(id.String())
	for key, item := range r.store.executions.Items() {
		if item.Object.(model.LambdaExecution).LambdaId == id {
			r.store.executions.Delete(key)
		}
	}
	return nil
}

type LambdaExecutionRepository struct {
	store  *Store
	mapper mapper.LambdaMapper
}

func (r *LambdaExecutionRepository) Create(_ context.Context, execution *entity.LambdaExecution) error {
	const op = "LambdaExecutionRepository.Create"
	if execution == nil {
		return repoerr.InvalidArgument(op, "execution is nil")
	}
	if err := guard.First(
		guard.ID(op, "lambdaId", execution.LambdaId),
		guard.OneOf(op, "status", execution.Status,
			entity.ExecutionStatusSuccess, entity.ExecutionStatusError, entity.ExecutionStatusTimeout),
	); err != nil {
		return err
	}
	m := r.mapper.ExecutionToModel(execution)
	m.Id = newID(m.Id)
	r.store.stamp(&m.Timestamp)
	row := *m
	row.Input = cloneJSON(m.Input)
	row.Output = cloneJSON(m.Output)
	if key, ok := r.store.insert(r.store.executions, m.Id, row); !ok {
		return repoerr.IntegrityViolation(op, "duplicate key %s", key)
	}
	*execution = *r.mapper.ExecutionToEntity(m)
	return nil
}

func (r *LambdaExecutionRepository) FindAllByLambda(_ context.Context, lambdaId uuid.UUID) ([]*entity.LambdaExecution, error) {
	return r.findAllByLambda("LambdaExecutionRepository.FindAllByLambda", lambdaId, false)
}

func (r *LambdaExecutionRepository) FindAllByLambdaOrderByTimestampDesc(_ context.Context, lambdaId uuid.UUID) ([]*entity.LambdaExecution, error) {
	return r.findAllByLambda("LambdaExecutionRepository.FindAllByLambdaOrderByTimestampDesc", lambdaId, true)
}

func (r *LambdaExecutionRepository) findAllByLambda(op string, lambdaId uuid.UUID, desc bool) ([]*entity.LambdaExecution, error) {
	if err := guard.ID(op, "lambdaId", lambdaId); err != nil {
		return nil, err
	}
	rows := selectRows(r.store.executions, func(e *model.LambdaExecution) bool { return e.LambdaId == lambdaId })
	sortByTime(rows, func(e *model.LambdaExecution) (time.Time, uuid.UUID) { return e.Timestamp, e.Id }, desc)
	for _, row := range rows {
		row.Input = cloneJSON(row.Input)
		row.Output = cloneJSON(row.Output)
	}
	return r.mapper.ExecutionsToEntities(rows), nil
}

func cloneJSON(j datatypes.JSON) datatypes.JSON {
	if j == nil {
		return nil
	}
	return datatypes.JSON(bytes.Clone(j))
}
