package memory

import (
	"context"
	"testing"
	"time"

	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/model"
	"cloud-console-be/internal/repository/contracttest"
	"cloud-console-be/internal/repository/repoerr"
	"cloud-console-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreContract(t *testing.T) {
	contracttest.Run(t, func(t *testing.T) unitofwork.RepositorySet {
		return NewStore()
	})
}

func TestStoreStampsCreationTime(t *testing.T) {
	fixed := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewStore()
	store.now = func() time.Time { return fixed }

	user := &entity.User{Email: "clock@example.com", FullName: "Clock"}
	require.NoError(t, store.UserRepository().Create(context.Background(), user))
	assert.Equal(t, fixed, user.CreatedAt)
	assert.Equal(t, fixed, user.UpdatedAt)
}

func TestStoreStampsAtMicrosecondPrecision(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	store.now = func() time.Time { return time.Date(2024, 3, 1, 12, 0, 0, 123456789, time.UTC) }

	user := &entity.User{Email: "micro@example.com", FullName: "Micro"}
	require.NoError(t, store.UserRepository().Create(ctx, user))
	assert.Equal(t, 123456000, user.CreatedAt.Nanosecond())

	supplied := time.Date(2024, 3, 2, 8, 0, 0, 999999999, time.UTC)
	bucket := &entity.Bucket{OwnerEmail: user.Email, Name: "micro-logs", Region: "eu-west-1", CreatedAt: supplied}
	require.NoError(t, store.BucketRepository().Create(ctx, bucket))
	assert.Equal(t, supplied.Truncate(time.Microsecond), bucket.CreatedAt)

	got, err := store.BucketRepository().FindByName(ctx, "micro-logs")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, bucket.CreatedAt, got.CreatedAt)
}

// Rows written straight into a table skip the unique-key claim, leaving two
// rows under one natural key.
func TestUniqueLookupsReportDuplicateRows(t *testing.T) {
	ctx := context.Background()
	userId := uuid.New()

	tests := []struct {
		name   string
		seed   func(s *Store)
		lookup func(s *Store) (any, error)
	}{
		{
			name: "bucket name",
			seed: func(s *Store) {
				for range 2 {
					id := uuid.New()
					s.buckets.Set(id.String(), model.Bucket{Id: id, OwnerEmail: "dup@example.com", Name: "shared", Region: "us-east-1"}, cache.NoExpiration)
				}
			},
			lookup: func(s *Store) (any, error) { return s.BucketRepository().FindByName(ctx, "shared") },
		},
		{
			name: "container instance id",
			seed: func(s *Store) {
				for range 2 {
					id := uuid.New()
					s.containers.Set(id.String(), model.Container{Id: id, OwnerEmail: "dup@example.com", InstanceId: "i-dup", Image: "nginx", Status: "running"}, cache.NoExpiration)
				}
			},
			lookup: func(s *Store) (any, error) { return s.ContainerRepository().FindByInstanceId(ctx, "i-dup") },
		},
		{
			name: "user email",
			seed: func(s *Store) {
				for range 2 {
					id := uuid.New()
					s.users.Set(id.String(), model.User{Id: id, Email: "dup@example.com", FullName: "Dup", Role: "user"}, cache.NoExpiration)
				}
			},
			lookup: func(s *Store) (any, error) { return s.UserRepository().FindByEmail(ctx, "dup@example.com") },
		},
		{
			name: "queue name per user",
			seed: func(s *Store) {
				for range 2 {
					id := uuid.New()
					s.queues.Set(id.String(), model.Queue{Id: id, UserId: userId, QueueName: "jobs", VisibilityTimeoutSeconds: 30}, cache.NoExpiration)
				}
			},
			lookup: func(s *Store) (any, error) { return s.QueueRepository().FindByUserIdAndQueueName(ctx, userId, "jobs") },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := NewStore()
			tt.seed(store)

			_, err := tt.lookup(store)
			require.Error(t, err)
			assert.True(t, repoerr.IsIntegrityViolation(err))
		})
	}
}

func TestGetRowAppliesPredicateWithID(t *testing.T) {
	store := NewStore()
	owner, stranger := uuid.New(), uuid.New()
	id := uuid.New()
	store.queues.Set(id.String(), model.Queue{Id: id, UserId: owner, QueueName: "jobs"}, cache.NoExpiration)

	ownedBy := func(userId uuid.UUID) func(*model.Queue) bool {
		return func(q *model.Queue) bool { return q.UserId == userId }
	}

	got, found := getRow(store.queues, id, ownedBy(owner))
	require.True(t, found)
	assert.Equal(t, "jobs", got.QueueName)

	_, found = getRow(store.queues, id, ownedBy(stranger))
	assert.False(t, found)

	_, found = getRow(store.queues, uuid.New(), ownedBy(owner))
	assert.False(t, found)
}

func TestReturnedEntitiesDoNotAliasStoredRows(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	user := &entity.User{Email: "alias@example.com", FullName: "Alias"}
	require.NoError(t, store.UserRepository().Create(ctx, user))

	lambda := &entity.Lambda{
		UserId:      user.Id,
		Name:        "thumbnail",
		Runtime:     "go1.x",
		Handler:     "main",
		Environment: map[string]string{"STAGE": "dev"},
	}
	require.NoError(t, store.LambdaRepository().Create(ctx, lambda))

	got, err := store.LambdaRepository().FindByUserAndId(ctx, user.Id, lambda.Id)
	require.NoError(t, err)
	got.Name = "changed"
	got.Environment["STAGE"] = "prod"

	again, err := store.LambdaRepository().FindByUserAndId(ctx, user.Id, lambda.Id)
	require.NoError(t, err)
	assert.Equal(t, "thumbnail", again.Name)
	assert.Equal(t, "dev", again.Environment["STAGE"])

	execution := &entity.LambdaExecution{LambdaId: lambda.Id, Status: entity.ExecutionStatusSuccess, Input: []byte(`{"a":1}`)}
	require.NoError(t, store.LambdaExecutionRepository().Create(ctx, execution))
	execution.Input[2] = 'b'

	list, err := store.LambdaExecutionRepository().FindAllByLambda(ctx, lambda.Id)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.JSONEq(t, `{"a":1}`, string(list[0].Input))
}

func TestFailedInsertReleasesUniqueKeys(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	owner := &entity.User{Email: "keys@example.com", FullName: "Keys"}
	require.NoError(t, store.UserRepository().Create(ctx, owner))

	queue := &entity.Queue{UserId: owner.Id, QueueName: "jobs"}
	require.NoError(t, store.QueueRepository().Create(ctx, queue))

	// the id collides, so the new name must stay free
	clash := &entity.Queue{Id: queue.Id, UserId: owner.Id, QueueName: "other"}
	require.Error(t, store.QueueRepository().Create(ctx, clash))

	require.NoError(t, store.QueueRepository().Create(ctx, &entity.Queue{UserId: owner.Id, QueueName: "other"}))
}
