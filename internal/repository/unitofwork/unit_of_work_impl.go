package unitofwork

import (
	"context"
	"errors"

	"cloud-console-be/internal/repository/contract"
	"cloud-console-be/internal/repository/implementation"
	"cloud-console-be/internal/repository/repoerr"

	"gorm.io/gorm"
)

var (
	ErrTransactionStarted = errors.New("transaction already started")
	ErrNoTransaction      = errors.New("no active transaction")
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

// getDB returns the active transaction, or the pool when none is open.
// Repositories fetched before Begin stay bound to the pool.
func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return ErrTransactionStarted
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return repoerr.FromStorage("UnitOfWork.Begin", tx.Error)
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return repoerr.FromStorage("UnitOfWork.Commit", err)
}

func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return ErrNoTransaction
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return repoerr.FromStorage("UnitOfWork.Rollback", err)
}

// Repository Accessors

func (u *UnitOfWorkImpl) UserRepository() contract.UserRepository {
	return implementation.NewUserRepository(u.getDB())
}

func (u *UnitOfWorkImpl) AIFunctionRepository() contract.AIFunctionRepository {
	return implementation.NewAIFunctionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LambdaRepository() contract.LambdaRepository {
	return implementation.NewLambdaRepository(u.getDB())
}

func (u *UnitOfWorkImpl) LambdaExecutionRepository() contract.LambdaExecutionRepository {
	return implementation.NewLambdaExecutionRepository(u.getDB())
}

func (u *UnitOfWorkImpl) QueueRepository() contract.QueueRepository {
	return implementation.NewQueueRepository(u.getDB())
}

func (u *UnitOfWorkImpl) BucketRepository() contract.BucketRepository {
	return implementation.NewBucketRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ContainerRepository() contract.ContainerRepository {
	return implementation.NewContainerRepository(u.getDB())
}
