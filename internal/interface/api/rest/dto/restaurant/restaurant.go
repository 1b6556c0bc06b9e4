package restaurant

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"food-delivery-api/internal/domain/restaurant"
	"food-delivery-api/internal/interface/api/rest/dto/address"
	"food-delivery-api/internal/interface/api/rest/dto/menuitem"
)

var clockLayouts = []string{"15:04:05", "15:04"}

type (
	Request struct {
		Name        string           `json:"name"`
		Description string           `json:"description"`
		Cuisine     string           `json:"cuisine"`
		CNPJ        string           `json:"cnpj"`
		Phone       string           `json:"phone"`
		Email       string           `json:"email"`
		OpeningTime *string          `json:"openingTime"`
		ClosingTime *string          `json:"closingTime"`
		Address     *address.Address `json:"address"`
		OwnerID     string           `json:"ownerId"`
	}
	Restaurant struct {
		ID          uuid.UUID          `json:"id"`
		Name        string             `json:"name"`
		Description string             `json:"description"`
		Cuisine     string             `json:"cuisine"`
		CNPJ        string             `json:"cnpj"`
		Phone       string             `json:"phone"`
		Email       string             `json:"email"`
		OpeningTime *string            `json:"openingTime,omitempty"`
		ClosingTime *string            `json:"closingTime,omitempty"`
		Address     *address.Address   `json:"address,omitempty"`
		OwnerID     uuid.UUID          `json:"ownerId"`
		MenuItems   menuitem.MenuItems `json:"menuItems,omitempty"`
		IsActive    bool               `json:"isActive"`
		CreatedAt   time.Time          `json:"createdAt"`
		UpdatedAt   time.Time          `json:"updatedAt"`
	}
	Restaurants []Restaurant
)

// ParseClock accepts HH:MM or HH:MM:SS and returns HH:MM:SS.
func ParseClock(s string) (string, error) {
	s = strings.TrimSpace(s)
	for _, layout := range clockLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("15:04:05"), nil
		}
	}
	return "", errors.New("time must be HH:MM or HH:MM:SS")
}

func ToResponse(r restaurant.Restaurant, resolve func(string) string) Restaurant {
	return Restaurant{
		ID:          r.ID,
		Name:        r.Name,
		Description: r.Description,
		Cuisine:     r.Cuisine,
		CNPJ:        r.TaxID,
		Phone:       r.Phone,
		Email:       r.Email,
		OpeningTime: r.OpeningTime,
		ClosingTime: r.ClosingTime,
		Address:     address.FromDomain(r.Address),
		OwnerID:     r.OwnerID,
		MenuItems:   menuitem.ToResponses(r.MenuItems, resolve),
		IsActive:    r.IsActive,
		CreatedAt:   r.CreatedAt,
		UpdatedAt:   r.UpdatedAt,
	}
}

func ToResponses(rs restaurant.Restaurants, resolve func(string) string) Restaurants {
	out := make(Restaurants, len(rs))
	for idx, r := range rs {
		out[idx] = ToResponse(*r, resolve)
	}
	return out
}

func ToDomain(req Request) (restaurant.Restaurant, error) {
	owner, err := uuid.Parse(req.OwnerID)
	if err != nil {
		return restaurant.Restaurant{}, errors.New("ownerId must be a valid UUID")
	}

	r := restaurant.Restaurant{
		OwnerID:     owner,
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		Cuisine:     strings.TrimSpace(req.Cuisine),
		TaxID:       strings.TrimSpace(req.CNPJ),
		Phone:       strings.TrimSpace(req.Phone),
		Email:       strings.ToLower(strings.TrimSpace(req.Email)),
		Address:     address.ToDomain(req.Address),
	}

	for _, c := range []struct {
		in  *string
		out **string
	}{
		{req.OpeningTime, &r.OpeningTime},
		{req.ClosingTime, &r.ClosingTime},
	} {
		if c.in == nil || *c.in == "" {
			continue
		}
		v, err := ParseClock(*c.in)
		if err != nil {
			return restaurant.Restaurant{}, err
		}
		*c.out = &v
	}

	return r, nil
}
