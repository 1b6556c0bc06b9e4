package menuitem

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	FetchByID(ctx context.Context, id uuid.UUID) (*MenuItem, error)
	FetchActive(ctx context.Context) (MenuItems, error)
	FetchByRestaurant(ctx context.Context, restaurantID uuid.UUID, onlyAvailable bool) (MenuItems, error)
	SearchByCategory(ctx context.Context, category string) (MenuItems, error)
	SearchByName(ctx context.Context, name string) (MenuItems, error)
	Create(ctx context.Context, req MenuItem) (*MenuItem, error)
	Update(ctx context.Context, req MenuItem) (*MenuItem, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*MenuItem, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
