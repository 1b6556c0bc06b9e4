package typeuser

import (
	"context"

	"github.com/google/uuid"
)

type Repository interface {
	FetchByID(ctx context.Context, id uuid.UUID) (*TypeUser, error)
	FetchByName(ctx context.Context, name string) (*TypeUser, error)
	FetchActive(ctx context.Context) (TypeUsers, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	Create(ctx context.Context, req TypeUser) (*TypeUser, error)
	Update(ctx context.Context, req TypeUser) (*TypeUser, error)
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
