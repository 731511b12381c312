package entity

import (
	"time"

	"github.com/google/uuid"
)

type Queue struct {
	Id                       uuid.UUID
	UserId                   uuid.UUID
	QueueName                string
	VisibilityTimeoutSeconds int
	CreatedAt                time.Time
}
