package unitofwork

import (
	"context"

	"cloud-console-be/internal/repository/contract"
)

// RepositorySet hands out one repository per entity, all bound to the same storage handle.
type RepositorySet interface {
	UserRepository() contract.UserRepository
	AIFunctionRepository() contract.AIFunctionRepository
	LambdaRepository() contract.LambdaRepository
	LambdaExecutionRepository() contract.LambdaExecutionRepository
	QueueRepository() contract.QueueRepository
	BucketRepository() contract.BucketRepository
	ContainerRepository() contract.ContainerRepository
}

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	RepositorySet
}
