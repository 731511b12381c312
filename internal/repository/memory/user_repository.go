package memory

import (
	"context"
	"slices"
	"strings"

	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/mapper"
	"cloud-console-be/internal/model"
	"cloud-console-be/internal/repository/guard"
	"cloud-console-be/internal/repository/repoerr"
)

type UserRepository struct {
	store  *Store
	mapper mapper.UserMapper
}

func (r *UserRepository) Create(_ context.Context, user *entity.User) error {
	const op = "UserRepository.Create"
	if user == nil {
		return repoerr.InvalidArgument(op, "user is nil")
	}
	if err := guard.Email(op, user.Email); err != nil {
		return err
	}
	m := r.mapper.ToModel(user)
	m.Id = newID(m.Id)
	r.store.stamp(&m.CreatedAt)
	r.store.stamp(&m.UpdatedAt)
	if key, ok := r.store.insert(r.store.users, m.Id, *m, uniqueKey("users.email", m.Email)); !ok {
		return repoerr.IntegrityViolation(op, "duplicate key %s", key)
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepository) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	const op = "UserRepository.FindByEmail"
	if err := guard.Email(op, email); err != nil {
		return nil, err
	}
	rows := selectRows(r.store.users, func(u *model.User) bool { return u.Email == email })
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return r.mapper.ToEntity(rows[0]), nil
	}
	return nil, repoerr.IntegrityViolation(op, "unique key matched more than one row")
}

func (r *UserRepository) SearchByEmail(_ context.Context, fragment string) ([]*entity.User, error) {
	const op = "UserRepository.SearchByEmail"
	if err := guard.Key(op, "email fragment", fragment); err != nil {
		return nil, err
	}
	needle := strings.ToLower(fragment)
	rows := selectRows(r.store.users, func(u *model.User) bool {
		return strings.Contains(strings.ToLower(u.Email), needle)
	})
	sortByEmail(rows)
	return r.mapper.ToEntities(rows), nil
}

func sortByEmail(rows []*model.User) {
	slices.SortFunc(rows, func(a, b *model.User) int {
		if c := strings.Compare(a.Email, b.Email); c != 0 {
			return c
		}
		return strings.Compare(a.Id.String(), b.Id.String())
	})
}
