package user

import (
	"food-delivery-api/internal/domain/address"
	domain "food-delivery-api/internal/domain/user"
)

func fromDBModel(model *User) *domain.User {
	var u = &domain.User{
		ID:           model.ID,
		Name:         model.Name,
		Email:        model.Email,
		PasswordHash: model.PasswordHash,
		Phone:        model.Phone,
		BirthDate:    model.BirthDate,
		TypeUserID:   model.TypeUserID,
		IsActive:     model.IsActive,

		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}

	if model.ZipCode != nil || model.Street != nil || model.City != nil {
		u.Address = &address.Address{
			Street:       deref(model.Street),
			Number:       model.Number,
			Complement:   deref(model.Complement),
			Neighborhood: deref(model.Neighborhood),
			City:         deref(model.City),
			State:        deref(model.State),
			ZipCode:      deref(model.ZipCode),
		}
	}

	return u
}

func fromDBModels(models Users) domain.Users {
	us := make(domain.Users, len(models))
	for idx, u := range models {
		us[idx] = fromDBModel(u)
	}

	return us
}

// addressArgs flattens an optional address into the seven address columns.
func addressArgs(a *address.Address) []any {
	if a == nil {
		return []any{nil, nil, nil, nil, nil, nil, nil}
	}
	return []any{
		ref(a.Street), a.Number, ref(a.Complement), ref(a.Neighborhood),
		ref(a.City), ref(a.State), ref(a.ZipCode),
	}
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
