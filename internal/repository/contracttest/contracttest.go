// Package contracttest holds the behavioural suite every RepositorySet
// implementation must pass. Rows are created with random suffixes so the
// suite can share one Postgres database across runs.
package contracttest

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/repository/repoerr"
	"cloud-console-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type SetFactory func(t *testing.T) unitofwork.RepositorySet

func Run(t *testing.T, newSet SetFactory) {
	t.Run("AIFunction", func(t *testing.T) { testAIFunctions(t, newSet(t)) })
	t.Run("Bucket", func(t *testing.T) { testBuckets(t, newSet(t)) })
	t.Run("Container", func(t *testing.T) { testContainers(t, newSet(t)) })
	t.Run("Lambda", func(t *testing.T) { testLambdas(t, newSet(t)) })
	t.Run("LambdaExecution", func(t *testing.T) { testLambdaExecutions(t, newSet(t)) })
	t.Run("Queue", func(t *testing.T) { testQueues(t, newSet(t)) })
	t.Run("User", func(t *testing.T) { testUsers(t, newSet(t)) })
	t.Run("InvalidArgument", func(t *testing.T) { testInvalidArguments(t, newSet(t)) })
}

func suffix() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

func baseTime() time.Time {
	return time.Now().UTC().Truncate(time.Second)
}

func newUser(t *testing.T, set unitofwork.RepositorySet) *entity.User {
	t.Helper()
	user := &entity.User{
		Email:    fmt.Sprintf("user-%s@example.com", suffix()),
		FullName: "Contract User",
	}
	require.NoError(t, set.UserRepository().Create(context.Background(), user))
	require.NotEqual(t, uuid.Nil, user.Id)
	return user
}

func newLambda(t *testing.T, set unitofwork.RepositorySet, owner *entity.User) *entity.Lambda {
	t.Helper()
	lambda := &entity.Lambda{
		UserId:         owner.Id,
		Name:           "resize-" + suffix(),
		Runtime:        "go1.x",
		Handler:        "main",
		Environment:    map[string]string{"STAGE": "test"},
		MemoryMB:       128,
		TimeoutSeconds: 30,
	}
	require.NoError(t, set.LambdaRepository().Create(context.Background(), lambda))
	return lambda
}

func ids[T any](rows []*T, id func(*T) uuid.UUID) []uuid.UUID {
	out := make([]uuid.UUID, len(rows))
	for i, r := range rows {
		out[i] = id(r)
	}
	return out
}

func testAIFunctions(t *testing.T, set unitofwork.RepositorySet) {
	ctx := context.Background()
	repo := set.AIFunctionRepository()
	owner := newUser(t, set)
	other := newUser(t, set)
	base := baseTime()

	create := func(user *entity.User, createdAt time.Time) *entity.AIFunction {
		fn := &entity.AIFunction{
			UserId:    user.Id,
			Name:      "summarize-" + suffix(),
			Model:     "llama3",
			Prompt:    "Summarize the input",
			CreatedAt: createdAt,
		}
		require.NoError(t, repo.Create(ctx, fn))
		return fn
	}

	oldest := create(owner, base)
	newest := create(owner, base.Add(2*time.Second))
	middle := create(owner, base.Add(time.Second))
	foreign := create(other, base.Add(3*time.Second))

	t.Run("lists newest first", func(t *testing.T) {
		list, err := repo.FindAllByUser(ctx, owner.Id)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{newest.Id, middle.Id, oldest.Id},
			ids(list, func(f *entity.AIFunction) uuid.UUID { return f.Id }))
		for i := 1; i < len(list); i++ {
			assert.False(t, list[i-1].CreatedAt.Before(list[i].CreatedAt))
		}
	})

	t.Run("ties on createdAt are deterministic", func(t *testing.T) {
		user := newUser(t, set)
		a := create(user, base)
		b := create(user, base)
		first, err := repo.FindAllByUser(ctx, user.Id)
		require.NoError(t, err)
		second, err := repo.FindAllByUser(ctx, user.Id)
		require.NoError(t, err)
		got := ids(first, func(f *entity.AIFunction) uuid.UUID { return f.Id })
		assert.ElementsMatch(t, []uuid.UUID{a.Id, b.Id}, got)
		assert.Equal(t, got, ids(second, func(f *entity.AIFunction) uuid.UUID { return f.Id }))
	})

	t.Run("count matches list length", func(t *testing.T) {
		for _, user := range []*entity.User{owner, other, newUser(t, set)} {
			list, err := repo.FindAllByUser(ctx, user.Id)
			require.NoError(t, err)
			n, err := repo.CountByUser(ctx, user.Id)
			require.NoError(t, err)
			assert.Equal(t, int64(len(list)), n)
		}
	})

	t.Run("empty list is not nil", func(t *testing.T) {
		list, err := repo.FindAllByUser(ctx, newUser(t, set).Id)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("lookup is owner scoped", func(t *testing.T) {
		got, err := repo.FindByUserAndId(ctx, owner.Id, foreign.Id)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.FindByUserAndId(ctx, other.Id, foreign.Id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, foreign.Name, got.Name)
	})
}

func testBuckets(t *testing.T, set unitofwork.RepositorySet) {
	ctx := context.Background()
	repo := set.BucketRepository()
	owner := newUser(t, set)
	name := "logs-" + suffix()

	bucket := &entity.Bucket{OwnerEmail: owner.Email, Name: name, Region: "eu-west-1"}
	require.NoError(t, repo.Create(ctx, bucket))

	t.Run("find by name", func(t *testing.T) {
		got, err := repo.FindByName(ctx, name)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, bucket.Id, got.Id)
		assert.Equal(t, owner.Email, got.OwnerEmail)
	})

	t.Run("exists iff found", func(t *testing.T) {
		for _, n := range []string{name, "missing-" + suffix()} {
			exists, err := repo.ExistsByName(ctx, n)
			require.NoError(t, err)
			found, err := repo.FindByName(ctx, n)
			require.NoError(t, err)
			assert.Equal(t, exists, found != nil, n)
		}
	})

	t.Run("duplicate name is an integrity violation", func(t *testing.T) {
		other := newUser(t, set)
		err := repo.Create(ctx, &entity.Bucket{OwnerEmail: other.Email, Name: name, Region: "us-east-1"})
		require.Error(t, err)
		assert.True(t, repoerr.IsIntegrityViolation(err), err)

		list, err := repo.FindAllByOwnerEmail(ctx, other.Email)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("concurrent creates admit one winner", func(t *testing.T) {
		contested := "race-" + suffix()
		var (
			wg       sync.WaitGroup
			mu       sync.Mutex
			success  int
			failures []error
		)
		for i := 0; i < 8; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				err := repo.Create(ctx, &entity.Bucket{OwnerEmail: owner.Email, Name: contested, Region: "eu-west-1"})
				mu.Lock()
				defer mu.Unlock()
				if err == nil {
					success++
					return
				}
				failures = append(failures, err)
			}()
		}
		wg.Wait()
		assert.Equal(t, 1, success)
		for _, err := range failures {
			assert.True(t, repoerr.IsIntegrityViolation(err), err)
		}
	})

	t.Run("lists by owner in insertion order", func(t *testing.T) {
		user := newUser(t, set)
		base := baseTime()
		first := &entity.Bucket{OwnerEmail: user.Email, Name: "a-" + suffix(), Region: "eu-west-1", CreatedAt: base}
		second := &entity.Bucket{OwnerEmail: user.Email, Name: "b-" + suffix(), Region: "eu-west-1", CreatedAt: base.Add(time.Second)}
		require.NoError(t, repo.Create(ctx, first))
		require.NoError(t, repo.Create(ctx, second))

		list, err := repo.FindAllByOwnerEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{first.Id, second.Id},
			ids(list, func(b *entity.Bucket) uuid.UUID { return b.Id }))
	})
}

func testContainers(t *testing.T, set unitofwork.RepositorySet) {
	ctx := context.Background()
	repo := set.ContainerRepository()
	owner := newUser(t, set)
	other := newUser(t, set)
	base := baseTime()

	create := func(user *entity.User, status entity.ContainerStatus, offset time.Duration) *entity.Container {
		c := &entity.Container{
			OwnerEmail: user.Email,
			InstanceId: "i-" + suffix(),
			Image:      "nginx:1.27",
			Status:     status,
			CreatedAt:  base.Add(offset),
		}
		require.NoError(t, repo.Create(ctx, c))
		return c
	}

	running1 := create(owner, entity.ContainerStatusRunning, 0)
	stopped := create(owner, entity.ContainerStatusStopped, time.Second)
	running2 := create(owner, entity.ContainerStatusRunning, 2*time.Second)
	create(other, entity.ContainerStatusRunning, 3*time.Second)

	t.Run("filters by owner and status", func(t *testing.T) {
		list, err := repo.FindAllByOwnerEmailAndStatus(ctx, owner.Email, entity.ContainerStatusRunning)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{running1.Id, running2.Id},
			ids(list, func(c *entity.Container) uuid.UUID { return c.Id }))

		list, err = repo.FindAllByOwnerEmailAndStatus(ctx, owner.Email, entity.ContainerStatusTerminated)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("lists all for owner", func(t *testing.T) {
		list, err := repo.FindAllByOwnerEmail(ctx, owner.Email)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{running1.Id, stopped.Id, running2.Id},
			ids(list, func(c *entity.Container) uuid.UUID { return c.Id }))
	})

	t.Run("instance id lookup", func(t *testing.T) {
		got, err := repo.FindByInstanceId(ctx, stopped.InstanceId)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, entity.ContainerStatusStopped, got.Status)

		exists, err := repo.ExistsByInstanceId(ctx, stopped.InstanceId)
		require.NoError(t, err)
		assert.True(t, exists)

		got, err = repo.FindByInstanceId(ctx, "i-missing-"+suffix())
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("status defaults to pending", func(t *testing.T) {
		c := create(owner, "", 4*time.Second)
		assert.Equal(t, entity.ContainerStatusPending, c.Status)
	})

	t.Run("duplicate instance id is an integrity violation", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Container{OwnerEmail: other.Email, InstanceId: running1.InstanceId, Image: "redis:7"})
		assert.True(t, repoerr.IsIntegrityViolation(err), err)
	})
}

func testLambdas(t *testing.T, set unitofwork.RepositorySet) {
	ctx := context.Background()
	repo := set.LambdaRepository()
	owner := newUser(t, set)
	intruder := newUser(t, set)

	t.Run("lookup is owner scoped", func(t *testing.T) {
		lambda := newLambda(t, set, owner)

		got, err := repo.FindByUserAndId(ctx, intruder.Id, lambda.Id)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.FindByUserAndId(ctx, owner.Id, lambda.Id)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, map[string]string{"STAGE": "test"}, got.Environment)
	})

	t.Run("delete by another user is a no-op", func(t *testing.T) {
		lambda := newLambda(t, set, owner)

		require.NoError(t, repo.DeleteByUserAndId(ctx, intruder.Id, lambda.Id))

		got, err := repo.FindByUserAndId(ctx, owner.Id, lambda.Id)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("delete by owner removes exactly one row and is idempotent", func(t *testing.T) {
		user := newUser(t, set)
		doomed := newLambda(t, set, user)
		kept := newLambda(t, set, user)

		require.NoError(t, repo.DeleteByUserAndId(ctx, user.Id, doomed.Id))
		require.NoError(t, repo.DeleteByUserAndId(ctx, user.Id, doomed.Id))

		list, err := repo.FindAllByUser(ctx, user.Id)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{kept.Id}, ids(list, func(l *entity.Lambda) uuid.UUID { return l.Id }))
	})

	t.Run("delete removes the lambda's executions", func(t *testing.T) {
		lambda := newLambda(t, set, owner)
		executions := set.LambdaExecutionRepository()
		require.NoError(t, executions.Create(ctx, &entity.LambdaExecution{
			LambdaId: lambda.Id,
			Status:   entity.ExecutionStatusSuccess,
		}))

		require.NoError(t, repo.DeleteByUserAndId(ctx, owner.Id, lambda.Id))

		list, err := executions.FindAllByLambda(ctx, lambda.Id)
		require.NoError(t, err)
		assert.Empty(t, list)
	})
}

func testLambdaExecutions(t *testing.T, set unitofwork.RepositorySet) {
	ctx := context.Background()
	repo := set.LambdaExecutionRepository()
	lambda := newLambda(t, set, newUser(t, set))
	base := baseTime()

	create := func(offset time.Duration, status entity.ExecutionStatus) *entity.LambdaExecution {
		e := &entity.LambdaExecution{
			LambdaId:   lambda.Id,
			Status:     status,
			Input:      json.RawMessage(`{"width":640}`),
			DurationMs: 42,
			Timestamp:  base.Add(offset),
		}
		require.NoError(t, repo.Create(ctx, e))
		return e
	}

	first := create(0, entity.ExecutionStatusSuccess)
	third := create(2*time.Second, entity.ExecutionStatusError)
	second := create(time.Second, entity.ExecutionStatusTimeout)

	t.Run("newest first", func(t *testing.T) {
		list, err := repo.FindAllByLambdaOrderByTimestampDesc(ctx, lambda.Id)
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{third.Id, second.Id, first.Id},
			ids(list, func(e *entity.LambdaExecution) uuid.UUID { return e.Id }))
		assert.JSONEq(t, `{"width":640}`, string(list[0].Input))
	})

	t.Run("unordered listing returns every execution", func(t *testing.T) {
		list, err := repo.FindAllByLambda(ctx, lambda.Id)
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{first.Id, second.Id, third.Id},
			ids(list, func(e *entity.LambdaExecution) uuid.UUID { return e.Id }))
	})

	t.Run("equal timestamps keep a stable order", func(t *testing.T) {
		other := newLambda(t, set, newUser(t, set))
		for i := 0; i < 3; i++ {
			require.NoError(t, repo.Create(ctx, &entity.LambdaExecution{
				LambdaId:  other.Id,
				Status:    entity.ExecutionStatusSuccess,
				Timestamp: base,
			}))
		}
		a, err := repo.FindAllByLambdaOrderByTimestampDesc(ctx, other.Id)
		require.NoError(t, err)
		b, err := repo.FindAllByLambdaOrderByTimestampDesc(ctx, other.Id)
		require.NoError(t, err)
		idOf := func(e *entity.LambdaExecution) uuid.UUID { return e.Id }
		assert.Len(t, a, 3)
		assert.Equal(t, ids(a, idOf), ids(b, idOf))
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		err := repo.Create(ctx, &entity.LambdaExecution{LambdaId: lambda.Id, Status: "exploded"})
		assert.True(t, repoerr.IsInvalidArgument(err), err)
	})
}

func testQueues(t *testing.T, set unitofwork.RepositorySet) {
	ctx := context.Background()
	repo := set.QueueRepository()
	user1 := newUser(t, set)
	user2 := newUser(t, set)

	orders := &entity.Queue{UserId: user1.Id, QueueName: "orders", VisibilityTimeoutSeconds: 30}
	require.NoError(t, repo.Create(ctx, orders))

	t.Run("existence is scoped to the owner", func(t *testing.T) {
		exists, err := repo.ExistsByUserIdAndQueueName(ctx, user1.Id, "orders")
		require.NoError(t, err)
		assert.True(t, exists)

		exists, err = repo.ExistsByUserIdAndQueueName(ctx, user2.Id, "orders")
		require.NoError(t, err)
		assert.False(t, exists)
	})

	t.Run("find by owner and name", func(t *testing.T) {
		got, err := repo.FindByUserIdAndQueueName(ctx, user1.Id, "orders")
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, orders.Id, got.Id)

		got, err = repo.FindByUserIdAndQueueName(ctx, user2.Id, "orders")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("primary key lookup requires the owner", func(t *testing.T) {
		got, err := repo.FindByIdAndUserId(ctx, orders.Id, user2.Id)
		require.NoError(t, err)
		assert.Nil(t, got)

		got, err = repo.FindByIdAndUserId(ctx, orders.Id, user1.Id)
		require.NoError(t, err)
		assert.NotNil(t, got)
	})

	t.Run("names are unique per owner only", func(t *testing.T) {
		err := repo.Create(ctx, &entity.Queue{UserId: user1.Id, QueueName: "orders"})
		assert.True(t, repoerr.IsIntegrityViolation(err), err)

		require.NoError(t, repo.Create(ctx, &entity.Queue{UserId: user2.Id, QueueName: "orders"}))

		list, err := repo.FindAllByUserId(ctx, user2.Id)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})
}

func testUsers(t *testing.T, set unitofwork.RepositorySet) {
	ctx := context.Background()
	repo := set.UserRepository()
	tag := suffix()

	alice := &entity.User{Email: "alice." + tag + "@example.com", FullName: "Alice"}
	bob := &entity.User{Email: "bob." + tag + "@example.org", FullName: "Bob"}
	require.NoError(t, repo.Create(ctx, alice))
	require.NoError(t, repo.Create(ctx, bob))

	t.Run("find by email", func(t *testing.T) {
		got, err := repo.FindByEmail(ctx, alice.Email)
		require.NoError(t, err)
		require.NotNil(t, got)
		assert.Equal(t, alice.Id, got.Id)
		assert.Equal(t, entity.UserRoleUser, got.Role)

		got, err = repo.FindByEmail(ctx, "nobody."+tag+"@example.com")
		require.NoError(t, err)
		assert.Nil(t, got)
	})

	t.Run("search is case-insensitive substring", func(t *testing.T) {
		list, err := repo.SearchByEmail(ctx, strings.ToUpper(tag))
		require.NoError(t, err)
		assert.ElementsMatch(t, []uuid.UUID{alice.Id, bob.Id},
			ids(list, func(u *entity.User) uuid.UUID { return u.Id }))

		list, err = repo.SearchByEmail(ctx, "ALICE."+tag)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("wildcards in the fragment are literal", func(t *testing.T) {
		list, err := repo.SearchByEmail(ctx, tag+"%")
		require.NoError(t, err)
		assert.Empty(t, list)

		list, err = repo.SearchByEmail(ctx, "_"+tag)
		require.NoError(t, err)
		assert.Empty(t, list)
	})

	t.Run("duplicate email is an integrity violation", func(t *testing.T) {
		err := repo.Create(ctx, &entity.User{Email: alice.Email, FullName: "Impostor"})
		assert.True(t, repoerr.IsIntegrityViolation(err), err)
	})
}

func testInvalidArguments(t *testing.T, set unitofwork.RepositorySet) {
	ctx := context.Background()
	id := uuid.New()

	cases := []struct {
		name string
		call func() error
	}{
		{"nil user id on function list", func() error {
			_, err := set.AIFunctionRepository().FindAllByUser(ctx, uuid.Nil)
			return err
		}},
		{"nil function id", func() error {
			_, err := set.AIFunctionRepository().FindByUserAndId(ctx, id, uuid.Nil)
			return err
		}},
		{"empty bucket name", func() error {
			_, err := set.BucketRepository().FindByName(ctx, "")
			return err
		}},
		{"blank instance id", func() error {
			_, err := set.ContainerRepository().ExistsByInstanceId(ctx, "   ")
			return err
		}},
		{"malformed owner email", func() error {
			_, err := set.ContainerRepository().FindAllByOwnerEmail(ctx, "not-an-email")
			return err
		}},
		{"unknown container status", func() error {
			_, err := set.ContainerRepository().FindAllByOwnerEmailAndStatus(ctx, "a@example.com", "melting")
			return err
		}},
		{"nil lambda id on delete", func() error {
			return set.LambdaRepository().DeleteByUserAndId(ctx, id, uuid.Nil)
		}},
		{"nil lambda id on executions", func() error {
			_, err := set.LambdaExecutionRepository().FindAllByLambda(ctx, uuid.Nil)
			return err
		}},
		{"empty queue name", func() error {
			_, err := set.QueueRepository().ExistsByUserIdAndQueueName(ctx, id, "")
			return err
		}},
		{"nil queue owner", func() error {
			_, err := set.QueueRepository().FindByIdAndUserId(ctx, id, uuid.Nil)
			return err
		}},
		{"empty search fragment", func() error {
			_, err := set.UserRepository().SearchByEmail(ctx, "")
			return err
		}},
		{"nil entity on create", func() error {
			return set.BucketRepository().Create(ctx, nil)
		}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.call()
			require.Error(t, err)
			assert.True(t, repoerr.IsInvalidArgument(err), err)
		})
	}
}
