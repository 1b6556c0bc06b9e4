package ports

import (
	"context"

	"food-delivery-api/internal/domain/paging"
	"food-delivery-api/internal/domain/user"
)

type UserService interface {
	CreateUser(ctx context.Context, u user.User, password string) (*user.User, error)
	FindUserByID(ctx context.Context, id user.UUID) (*user.User, error)
	FindByEmail(ctx context.Context, email string) (*user.User, error)
	FindUsers(ctx context.Context) (user.Users, error)
	FindUsersPaged(ctx context.Context, req paging.Request) (user.Page, error)
	UpdateUser(ctx context.Context, id user.UUID, p user.Patch) (*user.User, error)
	DeactivateUser(ctx context.Context, id user.UUID) error
	ActivateUser(ctx context.Context, id user.UUID) (*user.User, error)
	ChangePassword(ctx context.Context, id user.UUID, current, next string) error
	CountActive(ctx context.Context) (int64, error)
	FindByType(ctx context.Context, typeUserID user.UUID) (user.Users, error)
	CountByType(ctx context.Context, typeUserID user.UUID) (int64, error)
	DeleteUserPhysical(ctx context.Context, id user.UUID) error
	CurrentUser(ctx context.Context) (*user.User, error)
}
