package restaurant

import (
	"food-delivery-api/internal/domain/address"
	domain "food-delivery-api/internal/domain/restaurant"
)

func fromDBModel(model *Restaurant) *domain.Restaurant {
	r := &domain.Restaurant{
		ID:          model.ID,
		OwnerID:     model.OwnerID,
		Name:        model.Name,
		Description: model.Description,
		Cuisine:     model.Cuisine,
		TaxID:       model.CNPJ,
		Phone:       model.Phone,
		Email:       model.Email,
		OpeningTime: model.OpeningTime,
		ClosingTime: model.ClosingTime,
		IsActive:    model.IsActive,
		CreatedAt:   model.CreatedAt,
		UpdatedAt:   model.UpdatedAt,
	}

	if model.ZipCode != nil || model.Street != nil || model.City != nil {
		r.Address = &address.Address{
			Street:       deref(model.Street),
			Number:       model.Number,
			Complement:   deref(model.Complement),
			Neighborhood: deref(model.Neighborhood),
			City:         deref(model.City),
			State:        deref(model.State),
			ZipCode:      deref(model.ZipCode),
		}
	}

	return r
}

func fromDBModels(models Restaurants) domain.Restaurants {
	out := make(domain.Restaurants, len(models))
	for idx, m := range models {
		out[idx] = fromDBModel(m)
	}

	return out
}

func writeArgs(r domain.Restaurant) []any {
	args := []any{
		r.Name, r.Description, r.Cuisine, r.TaxID, r.Phone, r.Email, r.OpeningTime, r.ClosingTime,
	}
	if r.Address == nil {
		return append(args, nil, nil, nil, nil, nil, nil, nil)
	}
	a := r.Address
	return append(args,
		ref(a.Street), a.Number, ref(a.Complement), ref(a.Neighborhood),
		ref(a.City), ref(a.State), ref(a.ZipCode),
	)
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func ref(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
