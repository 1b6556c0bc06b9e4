package restaurant

import (
	"time"

	"github.com/google/uuid"

	"food-delivery-api/internal/domain/address"
	"food-delivery-api/internal/domain/menuitem"
	"food-delivery-api/internal/domain/paging"
)

type (
	Restaurant struct {
		ID          uuid.UUID
		OwnerID     uuid.UUID
		Name        string
		Description string
		Cuisine     string
		TaxID       string // CNPJ
		Phone       string
		Email       string
		OpeningTime *string // HH:MM:SS
		ClosingTime *string
		Address     *address.Address
		MenuItems   menuitem.MenuItems
		IsActive    bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Restaurants []*Restaurant
	Page        = paging.Page[*Restaurant]
)
