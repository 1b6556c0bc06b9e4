package ports

import (
	"context"

	"github.com/google/uuid"

	"food-delivery-api/internal/domain/typeuser"
)

type TypeUserService interface {
	FindAll(ctx context.Context) (typeuser.TypeUsers, error)
	FindByID(ctx context.Context, id uuid.UUID) (*typeuser.TypeUser, error)
	Create(ctx context.Context, t typeuser.TypeUser) (*typeuser.TypeUser, error)
	Update(ctx context.Context, id uuid.UUID, t typeuser.TypeUser) (*typeuser.TypeUser, error)
	Delete(ctx context.Context, id uuid.UUID) error
	DeletePhysical(ctx context.Context, id uuid.UUID) error
}
