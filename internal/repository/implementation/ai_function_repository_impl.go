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

type AIFunctionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.AIFunctionMapper
}

func NewAIFunctionRepository(db *gorm.DB) contract.AIFunctionRepository {
	return &AIFunctionRepositoryImpl{
		db:     db,
		mapper: mapper.NewAIFunctionMapper(),
	}
}

func (r *AIFunctionRepositoryImpl) Create(ctx context.Context, fn *entity.AIFunction) error {
	const op = "AIFunctionRepository.Create"
	if fn == nil {
		return repoerr.InvalidArgument(op, "function is nil")
	}
	if err := guard.First(guard.ID(op, "userId", fn.UserId), guard.Key(op, "name", fn.Name)); err != nil {
		return err
	}
	m := r.mapper.ToModel(fn)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return repoerr.FromStorage(op, err)
	}
	*fn = *r.mapper.ToEntity(m)
	return nil
}

func (r *AIFunctionRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.AIFunction, error) {
	const op = "AIFunctionRepository.FindAllByUser"
	if err := guard.ID(op, "userId", userId); err != nil {
		return nil, err
	}
	models, err := findAll[model.AIFunction](ctx, r.db, op, scope.OrderByCreatedDesc, specification.OwnedByUser{UserID: userId})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *AIFunctionRepositoryImpl) CountByUser(ctx context.Context, userId uuid.UUID) (int64, error) {
	const op = "AIFunctionRepository.CountByUser"
	if err := guard.ID(op, "userId", userId); err != nil {
		return 0, err
	}
	return count[model.AIFunction](ctx, r.db, op, specification.OwnedByUser{UserID: userId})
}

func (r *AIFunctionRepositoryImpl) FindByUserAndId(ctx context.Context, userId, functionId uuid.UUID) (*entity.AIFunction, error) {
	const op = "AIFunctionRepository.FindByUserAndId"
	if err := guard.First(guard.ID(op, "userId", userId), guard.ID(op, "functionId", functionId)); err != nil {
		return nil, err
	}
	m, err := findOne[model.AIFunction](ctx, r.db, op,
		specification.OwnedByUser{UserID: userId},
		specification.ByID{ID: functionId},
	)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}
