package contract

import (
	"context"

	"cloud-console-be/internal/entity"

	"github.com/google/uuid"
)

type LambdaRepository interface {
	Create(ctx context.Context, lambda *entity.Lambda) error
	FindAllByUser(ctx context.Context, userId uuid.UUID) ([]*entity.Lambda, error)
	FindByUserAndId(ctx context.Context, userId, id uuid.UUID) (*entity.Lambda, error)

	// DeleteByUserAndId removes the lambda only when userId owns it. Anything
	// else, including an id owned by someone else, is a silent no-op.
	DeleteByUserAndId(ctx context.Context, userId, id uuid.UUID) error
}

// LambdaExecutionRepository has no update path; executions are immutable.
type LambdaExecutionRepository interface {
	Create(ctx context.Context, execution *entity.LambdaExecution) error
	FindAllByLambda(ctx context.Context, lambdaId uuid.UUID) ([]*entity.LambdaExecution, error)
	FindAllByLambdaOrderByTimestampDesc(ctx context.Context, lambdaId uuid.UUID) ([]*entity.LambdaExecution, error)
}
