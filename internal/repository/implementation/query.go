package implementation

import (
	"context"
	"errors"

	"cloud-console-be/internal/repository/repoerr"
	"cloud-console-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

// findOne returns the first row matching every spec, or nil when none does.
func findOne[M any](ctx context.Context, db *gorm.DB, op string, specs ...specification.Specification) (*M, error) {
	var m M
	query := applySpecifications(db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, repoerr.FromStorage(op, err)
	}
	return &m, nil
}

// findUnique is findOne for natural keys: a second matching row means the
// uniqueness invariant is broken and is reported instead of picking one.
func findUnique[M any](ctx context.Context, db *gorm.DB, op string, specs ...specification.Specification) (*M, error) {
	var rows []*M
	query := specification.Limit{N: 2}.Apply(applySpecifications(db.WithContext(ctx), specs...))
	if err := query.Find(&rows).Error; err != nil {
		return nil, repoerr.FromStorage(op, err)
	}
	switch len(rows) {
	case 0:
		return nil, nil
	case 1:
		return rows[0], nil
	}
	return nil, repoerr.IntegrityViolation(op, "unique key matched more than one row")
}

func findAll[M any](ctx context.Context, db *gorm.DB, op string, order func(*gorm.DB) *gorm.DB, specs ...specification.Specification) ([]*M, error) {
	rows := make([]*M, 0)
	query := applySpecifications(db.WithContext(ctx), specs...)
	if order != nil {
		query = query.Scopes(order)
	}
	if err := query.Find(&rows).Error; err != nil {
		return nil, repoerr.FromStorage(op, err)
	}
	return rows, nil
}

func count[M any](ctx context.Context, db *gorm.DB, op string, specs ...specification.Specification) (int64, error) {
	var n int64
	query := applySpecifications(db.WithContext(ctx).Model(new(M)), specs...)
	if err := query.Count(&n).Error; err != nil {
		return 0, repoerr.FromStorage(op, err)
	}
	return n, nil
}

func exists[M any](ctx context.Context, db *gorm.DB, op string, specs ...specification.Specification) (bool, error) {
	n, err := count[M](ctx, db, op, specs...)
	return n > 0, err
}
