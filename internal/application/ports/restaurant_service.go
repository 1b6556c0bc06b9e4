package ports

import (
	"context"

	"github.com/google/uuid"

	"food-delivery-api/internal/domain/paging"
	"food-delivery-api/internal/domain/restaurant"
)

type RestaurantService interface {
	FindAll(ctx context.Context) (restaurant.Restaurants, error)
	FindPaged(ctx context.Context, req paging.Request) (restaurant.Page, error)
	FindByID(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error)
	FindByOwner(ctx context.Context, ownerID uuid.UUID) (restaurant.Restaurants, error)
	SearchByCuisine(ctx context.Context, cuisine string) (restaurant.Restaurants, error)
	SearchByName(ctx context.Context, name string) (restaurant.Restaurants, error)
	Create(ctx context.Context, r restaurant.Restaurant) (*restaurant.Restaurant, error)
	Update(ctx context.Context, id uuid.UUID, r restaurant.Restaurant) (*restaurant.Restaurant, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Activate(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error)
	DeletePhysical(ctx context.Context, id uuid.UUID) error
}
