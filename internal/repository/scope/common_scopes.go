package scope

import (
	"cloud-console-be/internal/repository/specification"

	"gorm.io/gorm"
)

// Every ordering ends on id so rows sharing a timestamp come back in a stable order.

func orderWithTieBreak(field string, desc bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		db = specification.OrderBy{Field: field, Desc: desc}.Apply(db)
		return specification.OrderBy{Field: "id", Desc: desc}.Apply(db)
	}
}

var (
	OrderByCreatedDesc  = orderWithTieBreak("created_at", true)
	OrderByCreatedAsc   = orderWithTieBreak("created_at", false)
	OrderByExecutedDesc = orderWithTieBreak("executed_at", true)
	OrderByExecutedAsc  = orderWithTieBreak("executed_at", false)
	OrderByEmailAsc     = orderWithTieBreak("email", false)
)
