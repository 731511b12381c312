package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OwnedByUser scopes rows to the user_id owner column. Id-based lookups of
// user-owned rows always combine it with ByID in the same statement.
type OwnedByUser struct {
	UserID uuid.UUID
}

func (s OwnedByUser) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("user_id = ?", s.UserID)
}

// OwnedByEmail scopes rows owned through the owner_email column.
type OwnedByEmail struct {
	Email string
}

func (s OwnedByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("owner_email = ?", s.Email)
}
