package main

import (
	"context"
	"testing"
	"time"

	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/repository/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestSeedCreatesDemoTenants(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()
	now := time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC)

	s, err := Seed(ctx, store, "s3cret", now)
	require.NoError(t, err)

	assert.Equal(t, Summary{
		Users: 2, Functions: 2, Lambdas: 2, Executions: 6, Queues: 4, Buckets: 2, Containers: 4,
	}, s)

	admin, err := store.UserRepository().FindByEmail(ctx, "admin@cloud-console.local")
	require.NoError(t, err)
	require.NotNil(t, admin)
	assert.Equal(t, entity.UserRoleAdmin, admin.Role)
	require.NotNil(t, admin.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*admin.PasswordHash), []byte("s3cret")))

	lambdas, err := store.LambdaRepository().FindAllByUser(ctx, admin.Id)
	require.NoError(t, err)
	require.Len(t, lambdas, 1)
	assert.Equal(t, "640", lambdas[0].Environment["MAX_WIDTH"])

	executions, err := store.LambdaExecutionRepository().FindAllByLambdaOrderByTimestampDesc(ctx, lambdas[0].Id)
	require.NoError(t, err)
	require.Len(t, executions, 3)
	assert.Equal(t, entity.ExecutionStatusTimeout, executions[0].Status)

	running, err := store.ContainerRepository().FindAllByOwnerEmailAndStatus(ctx, admin.Email, entity.ContainerStatusRunning)
	require.NoError(t, err)
	assert.Len(t, running, 1)
}

func TestSeedSkipsExistingUsers(t *testing.T) {
	ctx := context.Background()
	store := memory.NewStore()

	_, err := Seed(ctx, store, "s3cret", time.Now())
	require.NoError(t, err)

	s, err := Seed(ctx, store, "s3cret", time.Now())
	require.NoError(t, err)
	assert.Equal(t, Summary{Skipped: 2}, s)
}
