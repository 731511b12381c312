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

type AIFunctionRepository struct {
	store  *Store
	mapper mapper.AIFunctionMapper
}

func (r *AIFunctionRepository) Create(_ context.Context, fn *entity.AIFunction) error {
	const op = "AIFunctionRepository.Create"
	if fn == nil {
		return repoerr.InvalidArgument(op, "function is nil")
	}
	if err := guard.First(guard.ID(op, "userId", fn.UserId), guard.Key(op, "name", fn.Name)); err != nil {
		return err
	}
	m := r.mapper.ToModel(fn)
	m.Id = newID(m.Id)
	r.store.stamp(&m.CreatedAt)
	r.store.stamp(&m.UpdatedAt)
	if key, ok := r.store.insert(r.store.functions, m.Id, *m); !ok {
		return repoerr.IntegrityViolation(op, "duplicate key %s", key)
	}
	*fn = *r.mapper.ToEntity(m)
	return nil
}

func (r *AIFunctionRepository) FindAllByUser(_ context.Context, userId uuid.UUID) ([]*entity.AIFunction, error) {
	const op = "AIFunctionRepository.FindAllByUser"
	if err := guard.ID(op, "userId", userId); err != nil {
		return nil, err
	}
	rows := selectRows(r.store.functions, func(f *model.AIFunction) bool { return f.UserId == userId })
	sortByTime(rows, func(f *model.AIFunction) (time.Time, uuid.UUID) { return f.CreatedAt, f.Id }, true)
	return r.mapper.ToEntities(rows), nil
}

func (r *AIFunctionRepository) CountByUser(_ context.Context, userId uuid.UUID) (int64, error) {
	const op = "AIFunctionRepository.CountByUser"
	if err := guard.ID(op, "userId", userId); err != nil {
		return 0, err
	}
	rows := selectRows(r.store.functions, func(f *model.AIFunction) bool { return f.UserId == userId })
	return int64(len(rows)), nil
}

func (r *AIFunctionRepository) FindByUserAndId(_ context.Context, userId, functionId uuid.UUID) (*entity.AIFunction, error) {
	const op = "AIFunctionRepository.FindByUserAndId"
	if err := guard.First(guard.ID(op, "userId", userId), guard.ID(op, "functionId", functionId)); err != nil {
		return nil, err
	}
	m, found := getRow(r.store.functions, functionId, func(f *model.AIFunction) bool { return f.UserId == userId })
	if !found {
		return nil, nil
	}
	return r.mapper.ToEntity(m), nil
}
