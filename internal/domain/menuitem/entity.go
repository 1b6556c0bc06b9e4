package menuitem

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type (
	MenuItem struct {
		ID              uuid.UUID
		RestaurantID    uuid.UUID
		Name            string
		Description     string
		Price           decimal.Decimal
		Category        string
		ImageURL        string
		IsAvailable     bool
		PreparationTime *int // minutes
		IsActive        bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	MenuItems []*MenuItem
)
