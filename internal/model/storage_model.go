package model

import (
	"time"

	"github.com/google/uuid"
)

type Bucket struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerEmail string    `gorm:"type:varchar(255);not null;index"`
	Name       string    `gorm:"type:varchar(63);uniqueIndex;not null"`
	Region     string    `gorm:"type:varchar(50);not null"`
	IsPublic   bool      `gorm:"default:false"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`

	Owner *User `gorm:"foreignKey:OwnerEmail;references:Email;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Bucket) TableName() string {
	return "buckets"
}

type Container struct {
	Id         uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	OwnerEmail string    `gorm:"type:varchar(255);not null;index:idx_containers_owner_status,priority:1"`
	InstanceId string    `gorm:"type:varchar(128);uniqueIndex;not null"`
	Image      string    `gorm:"type:varchar(255);not null"`
	Status     string    `gorm:"type:varchar(20);not null;default:'pending';index:idx_containers_owner_status,priority:2"`
	CreatedAt  time.Time `gorm:"autoCreateTime"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime"`

	Owner *User `gorm:"foreignKey:OwnerEmail;references:Email;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (Container) TableName() string {
	return "containers"
}
