package implementation_test

import (
	"context"
	"os"
	"testing"

	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/repository/contracttest"
	"cloud-console-be/internal/repository/implementation"
	"cloud-console-be/internal/repository/unitofwork"
	"cloud-console-be/pkg/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := os.Getenv("DB_CONNECTION_STRING")
	if dsn == "" {
		t.Skip("Skipping Postgres tests: DB_CONNECTION_STRING not set")
	}

	db, err := database.NewGormDBFromDSN(dsn, database.Options{
		MaxIdleConns: 2,
		MaxOpenConns: 10,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestPostgresContract(t *testing.T) {
	db := setupDB(t)
	factory := unitofwork.NewRepositoryFactory(db)

	contracttest.Run(t, func(t *testing.T) unitofwork.RepositorySet {
		return factory.NewUnitOfWork(context.Background())
	})
}

func TestUnitOfWorkRollbackDiscardsWrites(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	email := "rollback-" + uuid.NewString()[:8] + "@example.com"

	uow := unitofwork.NewUnitOfWork(db)
	require.NoError(t, uow.Begin(ctx))
	require.NoError(t, uow.UserRepository().Create(ctx, &entity.User{Email: email, FullName: "Rollback"}))
	require.NoError(t, uow.Rollback())

	got, err := implementation.NewUserRepository(db).FindByEmail(ctx, email)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestUnitOfWorkCommitPersistsWrites(t *testing.T) {
	db := setupDB(t)
	ctx := context.Background()
	email := "commit-" + uuid.NewString()[:8] + "@example.com"

	uow := unitofwork.NewUnitOfWork(db)
	require.NoError(t, uow.Begin(ctx))
	user := &entity.User{Email: email, FullName: "Commit"}
	require.NoError(t, uow.UserRepository().Create(ctx, user))
	require.NoError(t, uow.QueueRepository().Create(ctx, &entity.Queue{UserId: user.Id, QueueName: "jobs"}))
	require.NoError(t, uow.Commit())

	exists, err := implementation.NewQueueRepository(db).ExistsByUserIdAndQueueName(ctx, user.Id, "jobs")
	require.NoError(t, err)
	assert.True(t, exists)

	assert.ErrorIs(t, uow.Commit(), unitofwork.ErrNoTransaction)
}
