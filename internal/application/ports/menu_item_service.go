package ports

import (
	"context"

	"github.com/google/uuid"

	"food-delivery-api/internal/domain/menuitem"
)

type MenuItemService interface {
	FindAll(ctx context.Context) (menuitem.MenuItems, error)
	FindByID(ctx context.Context, id uuid.UUID) (*menuitem.MenuItem, error)
	FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) (menuitem.MenuItems, error)
	FindAvailableByRestaurant(ctx context.Context, restaurantID uuid.UUID) (menuitem.MenuItems, error)
	SearchByCategory(ctx context.Context, category string) (menuitem.MenuItems, error)
	SearchByName(ctx context.Context, name string) (menuitem.MenuItems, error)
	Create(ctx context.Context, m menuitem.MenuItem) (*menuitem.MenuItem, error)
	Update(ctx context.Context, id uuid.UUID, m menuitem.MenuItem, available *bool) (*menuitem.MenuItem, error)
	UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) (*menuitem.MenuItem, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeletePhysical(ctx context.Context, id uuid.UUID) error
}
