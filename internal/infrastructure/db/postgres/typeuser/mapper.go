package typeuser

import (
	domain "food-delivery-api/internal/domain/typeuser"
)

func fromDBModel(model *TypeUser) *domain.TypeUser {
	return &domain.TypeUser{
		ID:          model.ID,
		Name:        model.Name,
		Description: model.Description,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}
}

func fromDBModels(models TypeUsers) domain.TypeUsers {
	out := make(domain.TypeUsers, len(models))
	for idx, m := range models {
		out[idx] = fromDBModel(m)
	}

	return out
}
