package restaurant

import (
	"context"

	"github.com/google/uuid"

	"food-delivery-api/internal/domain/paging"
)

type Repository interface {
	FetchByID(ctx context.Context, id uuid.UUID) (*Restaurant, error)
	FetchActive(ctx context.Context) (Restaurants, error)
	FetchActivePage(ctx context.Context, req paging.Request) (Restaurants, int64, error)
	FetchByOwner(ctx context.Context, ownerID uuid.UUID) (Restaurants, error)
	SearchByCuisine(ctx context.Context, cuisine string) (Restaurants, error)
	SearchByName(ctx context.Context, name string) (Restaurants, error)
	ExistsByTaxID(ctx context.Context, taxID string) (bool, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, req Restaurant) (*Restaurant, error)
	Update(ctx context.Context, req Restaurant) (*Restaurant, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
