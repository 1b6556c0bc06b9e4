package menuitem

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"food-delivery-api/internal/domain/menuitem"
)

type (
	Request struct {
		Name            string           `json:"name"`
		Description     string           `json:"description"`
		Price           *decimal.Decimal `json:"price"`
		Category        string           `json:"category"`
		ImageURL        string           `json:"imageUrl"`
		IsAvailable     *bool            `json:"isAvailable"`
		PreparationTime *int             `json:"preparationTime"`
		RestaurantID    string           `json:"restaurantId"`
	}
	MenuItem struct {
		ID              uuid.UUID `json:"id"`
		RestaurantID    uuid.UUID `json:"restaurantId"`
		Name            string    `json:"name"`
		Description     string    `json:"description"`
		Price           string    `json:"price"`
		Category        string    `json:"category,omitempty"`
		ImageURL        string    `json:"imageUrl,omitempty"`
		IsAvailable     bool      `json:"isAvailable"`
		PreparationTime *int      `json:"preparationTime,omitempty"`
		IsActive        bool      `json:"isActive"`
		CreatedAt       time.Time `json:"createdAt"`
		UpdatedAt       time.Time `json:"updatedAt"`
	}
	MenuItems []MenuItem
)

// ToResponse renders money with two decimals; resolve maps image keys to URLs and may be nil.
func ToResponse(m menuitem.MenuItem, resolve func(string) string) MenuItem {
	img := m.ImageURL
	if resolve != nil {
		img = resolve(img)
	}

	return MenuItem{
		ID:              m.ID,
		RestaurantID:    m.RestaurantID,
		Name:            m.Name,
		Description:     m.Description,
		Price:           m.Price.StringFixed(2),
		Category:        m.Category,
		ImageURL:        img,
		IsAvailable:     m.IsAvailable,
		PreparationTime: m.PreparationTime,
		IsActive:        m.IsActive,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToResponses(ms menuitem.MenuItems, resolve func(string) string) MenuItems {
	out := make(MenuItems, len(ms))
	for idx, m := range ms {
		out[idx] = ToResponse(*m, resolve)
	}
	return out
}

// ToDomain leaves RestaurantID zero when the body omits it.
func ToDomain(req Request) (menuitem.MenuItem, error) {
	m := menuitem.MenuItem{
		Name:            strings.TrimSpace(req.Name),
		Description:     strings.TrimSpace(req.Description),
		Category:        strings.TrimSpace(req.Category),
		ImageURL:        strings.TrimSpace(req.ImageURL),
		IsAvailable:     true,
		PreparationTime: req.PreparationTime,
	}
	if req.RestaurantID != "" {
		rid, err := uuid.Parse(req.RestaurantID)
		if err != nil {
			return menuitem.MenuItem{}, errors.New("restaurantId must be a valid UUID")
		}
		m.RestaurantID = rid
	}
	if req.Price != nil {
		m.Price = *req.Price
	}
	if req.IsAvailable != nil {
		m.IsAvailable = *req.IsAvailable
	}

	return m, nil
}
