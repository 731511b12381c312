package model

import (
	"time"

	"github.com/google/uuid"
)

type AIFunction struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index:idx_ai_functions_user_created,priority:1"`
	Name      string    `gorm:"type:varchar(255);not null"`
	Model     string    `gorm:"type:varchar(100);not null"`
	Prompt    string    `gorm:"type:text"`
	CreatedAt time.Time `gorm:"autoCreateTime;index:idx_ai_functions_user_created,priority:2"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`

	User *User `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (AIFunction) TableName() string {
	return "ai_functions"
}
