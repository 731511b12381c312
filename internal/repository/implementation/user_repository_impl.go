package implementation

import (
	"context"

	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/mapper"
	"cloud-console-be/internal/model"
	"cloud-console-be/internal/repository/contract"
	"cloud-console-be/internal/repository/guard"
	"cloud-console-be/internal/repository/repoerr"
	"cloud-console-be/internal/repository/scope"
	"cloud-console-be/internal/repository/specification"

	"gorm.io/gorm"
)

type UserRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.UserMapper
}

func NewUserRepository(db *gorm.DB) contract.UserRepository {
	return &UserRepositoryImpl{
		db:     db,
		mapper: mapper.NewUserMapper(),
	}
}

func (r *UserRepositoryImpl) Create(ctx context.Context, user *entity.User) error {
	const op = "UserRepository.Create"
	if user == nil {
		return repoerr.InvalidArgument(op, "user is nil")
	}
	if err := guard.Email(op, user.Email); err != nil {
		return err
	}
	m := r.mapper.ToModel(user)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return repoerr.FromStorage(op, err)
	}
	*user = *r.mapper.ToEntity(m)
	return nil
}

func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	const op = "UserRepository.FindByEmail"
	if err := guard.Email(op, email); err != nil {
		return nil, err
	}
	m, err := findUnique[model.User](ctx, r.db, op, specification.ByEmail{Email: email})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntity(m), nil
}

func (r *UserRepositoryImpl) SearchByEmail(ctx context.Context, fragment string) ([]*entity.User, error) {
	const op = "UserRepository.SearchByEmail"
	if err := guard.Key(op, "email fragment", fragment); err != nil {
		return nil, err
	}
	models, err := findAll[model.User](ctx, r.db, op, scope.OrderByEmailAsc, specification.EmailContains{Fragment: fragment})
	if err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
