package unitofwork

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestCommitAndRollbackRequireBegin(t *testing.T) {
	db, err := gorm.Open(postgres.Open("host=localhost user=test dbname=test sslmode=disable"), &gorm.Config{
		DisableAutomaticPing: true,
	})
	require.NoError(t, err)

	uow := NewRepositoryFactory(db).NewUnitOfWork(context.Background())

	assert.ErrorIs(t, uow.Commit(), ErrNoTransaction)
	assert.ErrorIs(t, uow.Rollback(), ErrNoTransaction)
	assert.NotNil(t, uow.UserRepository())
	assert.NotNil(t, uow.ContainerRepository())
}
