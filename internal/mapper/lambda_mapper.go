package mapper

import (
	"encoding/json"
	"fmt"

	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/model"

	"gorm.io/datatypes"
)

// Defaults applied when the caller leaves the field zero; they match the
// column defaults.
const (
	DefaultLambdaMemoryMB       = 128
	DefaultLambdaTimeoutSeconds = 30
)

type LambdaMapper struct{}

func NewLambdaMapper() *LambdaMapper {
	return &LambdaMapper{}
}

func (m *LambdaMapper) ToEntity(l *model.Lambda) *entity.Lambda {
	if l == nil {
		return nil
	}
	return &entity.Lambda{
		Id:             l.Id,
		UserId:         l.UserId,
		Name:           l.Name,
		Runtime:        l.Runtime,
		Handler:        l.Handler,
		Code:           l.Code,
		Environment:    environmentToEntity(l.Environment),
		MemoryMB:       l.MemoryMB,
		TimeoutSeconds: l.TimeoutSeconds,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func (m *LambdaMapper) ToModel(l *entity.Lambda) *model.Lambda {
	if l == nil {
		return nil
	}
	memory, timeout := l.MemoryMB, l.TimeoutSeconds
	if memory == 0 {
		memory = DefaultLambdaMemoryMB
	}
	if timeout == 0 {
		timeout = DefaultLambdaTimeoutSeconds
	}
	return &model.Lambda{
		Id:             l.Id,
		UserId:         l.UserId,
		Name:           l.Name,
		Runtime:        l.Runtime,
		Handler:        l.Handler,
		Code:           l.Code,
		Environment:    environmentToModel(l.Environment),
		MemoryMB:       memory,
		TimeoutSeconds: timeout,
		CreatedAt:      l.CreatedAt,
		UpdatedAt:      l.UpdatedAt,
	}
}

func (m *LambdaMapper) ToEntities(lambdas []*model.Lambda) []*entity.Lambda {
	entities := make([]*entity.Lambda, len(lambdas))
	for i, l := range lambdas {
		entities[i] = m.ToEntity(l)
	}
	return entities
}

// Execution Mappers

func (m *LambdaMapper) ExecutionToEntity(e *model.LambdaExecution) *entity.LambdaExecution {
	if e == nil {
		return nil
	}
	return &entity.LambdaExecution{
		Id:         e.Id,
		LambdaId:   e.LambdaId,
		Status:     entity.ExecutionStatus(e.Status),
		Input:      json.RawMessage(e.Input),
		Output:     json.RawMessage(e.Output),
		DurationMs: e.DurationMs,
		Timestamp:  e.Timestamp,
	}
}

func (m *LambdaMapper) ExecutionToModel(e *entity.LambdaExecution) *model.LambdaExecution {
	if e == nil {
		return nil
	}
	return &model.LambdaExecution{
		Id:         e.Id,
		LambdaId:   e.LambdaId,
		Status:     string(e.Status),
		Input:      datatypes.JSON(e.Input),
		Output:     datatypes.JSON(e.Output),
		DurationMs: e.DurationMs,
		Timestamp:  e.Timestamp,
	}
}

func (m *LambdaMapper) ExecutionsToEntities(executions []*model.LambdaExecution) []*entity.LambdaExecution {
	entities := make([]*entity.LambdaExecution, len(executions))
	for i, e := range executions {
		entities[i] = m.ExecutionToEntity(e)
	}
	return entities
}

func environmentToModel(env map[string]string) datatypes.JSONMap {
	if env == nil {
		return nil
	}
	out := make(datatypes.JSONMap, len(env))
	for k, v := range env {
		out[k] = v
	}
	return out
}

// jsonb hands values back as interface{}; non-string values are stringified.
func environmentToEntity(env datatypes.JSONMap) map[string]string {
	if env == nil {
		return nil
	}
	out := make(map[string]string, len(env))
	for k, v := range env {
		if s, ok := v.(string); ok {
			out[k] = s
			continue
		}
		out[k] = fmt.Sprint(v)
	}
	return out
}
