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

type LambdaRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LambdaMapper
}

func NewLambdaRepository(db *gorm.DB) contract.LambdaRepository {
	return &LambdaRepositoryImpl{
		db:     db,
		mapper: mapper.NewLambdaMapper(),
	}
}

func (r *LambdaRepositoryImpl) Create(ctx context.Context, lambda *entity.Lambda) error {
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
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return repoerr.FromStorage(op, err)
	}
	*lambda = *r.mapper.ToEntity(m)
	return nil
}

func (r *LambdaRepositoryImpl) FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Lambda, error) {
	const op = "LambdaRepository.FindAllByUser"
	if err := guard.ID(op, "userId", userId); err != nil {
		return nil, err
	}
	models, err := findAll[model.Lambda](ctx, r.db, op, scope.OrderByCreatedAsc, specification.OwnedByUser{UserID: userId})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *LambdaRepositoryImpl) FindByUserAndId(ctx context.Context, userId, id uuid.UUID) (*entity.Lambda, error) {
	const op = "LambdaRepository.FindByUserAndId"
	if err := guard.First(guard.ID(op, "userId", userId), guard.ID(op, "id", id)); err != nil {
		return nil, err
	}
	m, err := findOne[model.Lambda](ctx, r.db, op,
		specification.OwnedByUser{UserID: userId},
		specification.ByID{ID: id},
	)
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *LambdaRepositoryImpl) DeleteByUserAndId(ctx context.Context, userId, id uuid.UUID) error {
	const op = "LambdaRepository.DeleteByUserAndId"
	if err := guard.First(guard.ID(op, "userId", userId), guard.ID(op, "id", id)); err != nil {
		return err
	}
	query := applySpecifications(r.db.WithContext(ctx),
		specification.OwnedByUser{UserID: userId},
		specification.ByID{ID: id},
	)
	if err := query.Delete(&model.Lambda{}).Error; err != nil {
		return repoerr.FromStorage(op, err)
	}
	return nil
}
