package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type Lambda struct {
	Id             uuid.UUID
	UserId         uuid.UUID
	Name           string
	Runtime        string
	Handler        string
	Code           string
	Environment    map[string]string
	MemoryMB       int
	TimeoutSeconds int
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type ExecutionStatus string

const (
	ExecutionStatusSuccess ExecutionStatus = "success"
	ExecutionStatusError   ExecutionStatus = "error"
	ExecutionStatusTimeout ExecutionStatus = "timeout"
)

// LambdaExecution is an immutable record of one invocation.
type LambdaExecution struct {
	Id         uuid.UUID
	LambdaId   uuid.UUID
	Status     ExecutionStatus
	Input      json.RawMessage
	Output     json.RawMessage
	DurationMs int64
	Timestamp  time.Time
}
