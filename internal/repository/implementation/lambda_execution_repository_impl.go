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

type LambdaExecutionRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.LambdaMapper
}

func NewLambdaExecutionRepository(db *gorm.DB) contract.LambdaExecutionRepository {
	return &LambdaExecutionRepositoryImpl{
		db:     db,
		mapper: mapper.NewLambdaMapper(),
	}
}

func (r *LambdaExecutionRepositoryImpl) Create(ctx context.Context, execution *entity.LambdaExecution) error {
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
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return repoerr.FromStorage(op, err)
	}
	*execution = *r.mapper.ExecutionToEntity(m)
	return nil
}

func (r *LambdaExecutionRepositoryImpl) FindAllByLambda(ctx context.Context, lambdaId uuid.UUID) ([]*entity.LambdaExecution, error) {
	const op = "LambdaExecutionRepository.FindAllByLambda"
	return r.findAllByLambda(ctx, op, lambdaId, scope.OrderByExecutedAsc)
}

func (r *LambdaExecutionRepositoryImpl) FindAllByLambdaOrderByTimestampDesc(ctx context.Context, lambdaId uuid.UUID) ([]*entity.LambdaExecution, error) {
	const op = "LambdaExecutionRepository.FindAllByLambdaOrderByTimestampDesc"
	return r.findAllByLambda(ctx, op, lambdaId, scope.OrderByExecutedDesc)
}

func (r *LambdaExecutionRepositoryImpl) findAllByLambda(ctx context.Context, op string, lambdaId uuid.UUID, order func(*gorm.DB) *gorm.DB) ([]*entity.LambdaExecution, error) {
	if err := guard.ID(op, "lambdaId", lambdaId); err != nil {
		return nil, err
	}
	models, err := findAll[model.LambdaExecution](ctx, r.db, op, order, specification.ByLambdaID{LambdaID: lambdaId})
	if err != nil {
		return nil, err
	}
	return r.mapper.ExecutionsToEntities(models), nil
}
