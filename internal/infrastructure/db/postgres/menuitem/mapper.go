package menuitem

import (
	domain "food-delivery-api/internal/domain/menuitem"
)

func fromDBModel(model *MenuItem) *domain.MenuItem {
	return &domain.MenuItem{
		ID:              model.ID,
		RestaurantID:    model.RestaurantID,
		Name:            model.Name,
		Description:     model.Description,
		Price:           model.Price,
		Category:        model.Category,
		ImageURL:        model.ImageURL,
		IsAvailable:     model.IsAvailable,
		PreparationTime: model.PreparationTime,
		IsActive:        model.IsActive,
		CreatedAt:       model.CreatedAt,
		UpdatedAt:       model.UpdatedAt,
	}
}

func fromDBModels(models MenuItems) domain.MenuItems {
	out := make(domain.MenuItems, len(models))
	for idx, m := range models {
		out[idx] = fromDBModel(m)
	}

	return out
}
