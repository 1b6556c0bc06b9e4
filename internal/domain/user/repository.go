package user

import (
	"context"

	"food-delivery-api/internal/domain/paging"
)

// Repository lookups return (nil, nil) when the record does not exist and
// ignore the active flag unless the method name says otherwise.
type Repository interface {
	FetchUserByID(ctx context.Context, id UUID) (*User, error)
	FetchUserByEmail(ctx context.Context, email string) (*User, error)
	FetchActiveUsers(ctx context.Context) (Users, error)
	FetchActiveByType(ctx context.Context, typeUserID UUID) (Users, error)
	FetchActiveUsersPage(ctx context.Context, req paging.Request) (Users, int64, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByPhone(ctx context.Context, phone string) (bool, error)
	CreateUser(ctx context.Context, req User) (*User, error)
	UpdateUser(ctx context.Context, req User) (*User, error)
	UpdatePassword(ctx context.Context, id UUID, hash string) error
	SetActive(ctx context.Context, id UUID, active bool) (*User, error)
	CountActive(ctx context.Context) (int64, error)
	CountActiveByType(ctx context.Context, typeUserID UUID) (int64, error)
	DeleteUser(ctx context.Context, id UUID) (bool, error)
}
