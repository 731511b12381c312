package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Lambda struct {
	Id             uuid.UUID         `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	UserId         uuid.UUID         `gorm:"type:uuid;not null;index"`
	Name           string            `gorm:"type:varchar(255);not null"`
	Runtime        string            `gorm:"type:varchar(50);not null"`
	Handler        string            `gorm:"type:varchar(255);not null"`
	Code           string            `gorm:"type:text"`
	Environment    datatypes.JSONMap `gorm:"type:jsonb"`
	MemoryMB       int               `gorm:"not null;default:128"`
	TimeoutSeconds int               `gorm:"not null;default:30"`
	CreatedAt      time.Time         `gorm:"autoCreateTime"`
	UpdatedAt      time.Time         `gorm:"autoUpdateTime"`

	User *User `gorm:"foreignKey:UserId;constraint:OnDelete:CASCADE"`
}

func (Lambda) TableName() string {
	return "lambdas"
}

// LambdaExecution rows are written once and never updated.
type LambdaExecution struct {
	Id         uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	LambdaId   uuid.UUID      `gorm:"type:uuid;not null;index:idx_lambda_executions_lambda_executed,priority:1"`
	Status     string         `gorm:"type:varchar(20);not null"`
	Input      datatypes.JSON `gorm:"type:jsonb"`
	Output     datatypes.JSON `gorm:"type:jsonb"`
	DurationMs int64          `gorm:"not null;default:0"`
	Timestamp  time.Time      `gorm:"column:executed_at;autoCreateTime;index:idx_lambda_executions_lambda_executed,priority:2"`

	Lambda *Lambda `gorm:"foreignKey:LambdaId;constraint:OnDelete:CASCADE"`
}

func (LambdaExecution) TableName() string {
	return "lambda_executions"
}
