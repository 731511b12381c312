package memory

import (
	"slices"
	"strings"
	"sync"
	"time"

	"cloud-console-be/internal/repository/contract"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

// Store keeps every table in process. Rows are held as model values, so a
// caller mutating a returned entity never changes stored state. Unique
// indexes are go-cache keys claimed with Add, which fails when the key exists.
type Store struct {
	mu sync.Mutex

	users      *cache.Cache
	functions  *cache.Cache
	lambdas    *cache.Cache
	executions *cache.Cache
	queues     *cache.Cache
	buckets    *cache.Cache
	containers *cache.Cache
	unique     *cache.Cache

	now func() time.Time
}

func NewStore() *Store {
	newTable := func() *cache.Cache { return cache.New(cache.NoExpiration, 0) }
	return &Store{
		users:      newTable(),
		functions:  newTable(),
		lambdas:    newTable(),
		executions: newTable(),
		queues:     newTable(),
		buckets:    newTable(),
		containers: newTable(),
		unique:     newTable(),
		now:        time.Now,
	}
}

func (s *Store) UserRepository() contract.UserRepository {
	return &UserRepository{store: s}
}

func (s *Store) AIFunctionRepository() contract.AIFunctionRepository {
	return &AIFunctionRepository{store: s}
}

func (s *Store) LambdaRepository() contract.LambdaRepository {
	return &LambdaRepository{store: s}
}

func (s *Store) LambdaExecutionRepository() contract.LambdaExecutionRepository {
	return &LambdaExecutionRepository{store: s}
}

func (s *Store) QueueRepository() contract.QueueRepository {
	return &QueueRepository{store: s}
}

func (s *Store) BucketRepository() contract.BucketRepository {
	return &BucketRepository{store: s}
}

func (s *Store) ContainerRepository() contract.ContainerRepository {
	return &ContainerRepository{store: s}
}

// insert stores row under id after claiming every unique key. Nothing is
// written when any claim fails; the failing key is returned.
func (s *Store) insert(table *cache.Cache, id uuid.UUID, row any, uniqueKeys ...string) (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, found := table.Get(id.String()); found {
		return "id", false
	}
	claimed := make([]string, 0, len(uniqueKeys))
	for _, key := range uniqueKeys {
		if err := s.unique.Add(key, id, cache.NoExpiration); err != nil {
			for _, k := range claimed {
				s.unique.Delete(k)
			}
			return key, false
		}
		claimed = append(claimed, key)
	}
	table.Set(id.String(), row, cache.NoExpiration)
	return "", true
}

// stamp fills a zero timestamp and drops precision below a microsecond,
// which is what a timestamptz column keeps.
func (s *Store) stamp(t *time.Time) {
	if t.IsZero() {
		*t = s.now()
	}
	*t = t.Truncate(time.Microsecond)
}

func newID(id uuid.UUID) uuid.UUID {
	if id == uuid.Nil {
		return uuid.New()
	}
	return id
}

func selectRows[M any](table *cache.Cache, keep func(*M) bool) []*M {
	out := make([]*M, 0)
	for _, item := range table.Items() {
		m := item.Object.(M)
		if keep(&m) {
			out = append(out, &m)
		}
	}
	return out
}

// getRow looks a row up by id and reports it only when keep also holds,
// mirroring a WHERE id = ? AND ... lookup.
func getRow[M any](table *cache.Cache, id uuid.UUID, keep func(*M) bool) (*M, bool) {
	obj, found := table.Get(id.String())
	if !found {
		return nil, false
	}
	m := obj.(M)
	if !keep(&m) {
		return nil, false
	}
	return &m, true
}

// sortByTime orders rows on a timestamp with id as the tie-breaker, matching
// the ORDER BY clauses of the gorm scopes.
func sortByTime[M any](rows []*M, key func(*M) (time.Time, uuid.UUID), desc bool) {
	slices.SortFunc(rows, func(a, b *M) int {
		ta, ida := key(a)
		tb, idb := key(b)
		c := ta.Compare(tb)
		if c == 0 {
			c = strings.Compare(ida.String(), idb.String())
		}
		if desc {
			return -c
		}
		return c
	})
}

func uniqueKey(index string, parts ...string) string {
	return index + ":" + strings.Join(parts, "/")
}
