package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByName struct {
	Name string
}

func (s ByName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("name = ?", s.Name)
}

type ByInstanceID struct {
	InstanceID string
}

func (s ByInstanceID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("instance_id = ?", s.InstanceID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByQueueName struct {
	QueueName string
}

func (s ByQueueName) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("queue_name = ?", s.QueueName)
}

type ByLambdaID struct {
	LambdaID uuid.UUID
}

func (s ByLambdaID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("lambda_id = ?", s.LambdaID)
}
