package specification

import (
	"strings"

	"gorm.io/gorm"
)

type ByEmail struct {
	Email string
}

func (s ByEmail) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("email = ?", s.Email)
}

// EmailContains is a case-insensitive substring match. LIKE metacharacters in
// Fragment are matched literally.
type EmailContains struct {
	Fragment string
}

func (s EmailContains) Apply(db *gorm.DB) *gorm.DB {
	pattern := "%" + EscapeLike(s.Fragment) + "%"
	return db.Where(`email ILIKE ? ESCAPE '\'`, pattern)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}
