package entity

import (
	"time"

	"github.com/google/uuid"
)

// AIFunction is a prompt-backed function a user defined against a hosted model.
type AIFunction struct {
	Id        uuid.UUID
	UserId    uuid.UUID
	Name      string
	Model     string
	Prompt    string
	CreatedAt time.Time
	UpdatedAt time.Time
}
