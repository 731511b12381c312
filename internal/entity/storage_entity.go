package entity

import (
	"time"

	"github.com/google/uuid"
)

type Bucket struct {
	Id         uuid.UUID
	OwnerEmail string
	Name       string
	Region     string
	IsPublic   bool
	CreatedAt  time.Time
}

type ContainerStatus string

const (
	ContainerStatusPending    ContainerStatus = "pending"
	ContainerStatusRunning    ContainerStatus = "running"
	ContainerStatusStopped    ContainerStatus = "stopped"
	ContainerStatusTerminated ContainerStatus = "terminated"
)

type Container struct {
	Id         uuid.UUID
	OwnerEmail string
	InstanceId string
	Image      string
	Status     ContainerStatus
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
