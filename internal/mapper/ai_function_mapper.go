package mapper

import (
	"cloud-console-be/internal/entity"
	"cloud-console-be/internal/model"
)

type AIFunctionMapper struct{}

func NewAIFunctionMapper() *AIFunctionMapper {
	return &AIFunctionMapper{}
}

func (m *AIFunctionMapper) ToEntity(f *model.AIFunction) *entity.AIFunction {
	if f == nil {
		return nil
	}
	return &entity.AIFunction{
		Id:        f.Id,
		UserId:    f.UserId,
		Name:      f.Name,
		Model:     f.Model,
		Prompt:    f.Prompt,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (m *AIFunctionMapper) ToModel(f *entity.AIFunction) *model.AIFunction {
	if f == nil {
		return nil
	}
	return &model.AIFunction{
		Id:        f.Id,
		UserId:    f.UserId,
		Name:      f.Name,
		Model:     f.Model,
		Prompt:    f.Prompt,
		CreatedAt: f.CreatedAt,
		UpdatedAt: f.UpdatedAt,
	}
}

func (m *AIFunctionMapper) ToEntities(functions []*model.AIFunction) []*entity.AIFunction {
	entities := make([]*entity.AIFunction, len(functions))
	for i, f := range functions {
		entities[i] = m.ToEntity(f)
	}
	return entities
}
