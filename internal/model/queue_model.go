package model

import (
	"time"

	"github.com/google/uuid"
)

type Queue struct {
	Id                       uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId                   uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_queues_user_queue_name,priority:1"`
	QueueName                string    `gorm:"type:varchar(80);not null;uniqueIndex:idx_queues_user_queue_name,priority:2"`
	VisibilityTimeoutSeconds int       `gorm:"not null;default:30"`
	CreatedAt                time.Time `gorm:"autoCreateTime"`

	User *User `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (Queue) TableName() string {
	return "queues"
}
