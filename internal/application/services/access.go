package services

import (
	"context"

	"go.uber.org/zap"

	"food-delivery-api/internal/application/apperr"
	"food-delivery-api/internal/application/identity"
	"food-delivery-api/internal/application/ports"
	"food-delivery-api/internal/domain/typeuser"
	"food-delivery-api/internal/domain/user"
)

type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// AccessPolicy maps type-user names to roles. The table is fixed at construction.
type AccessPolicy struct {
	roles     map[string]Role
	users     user.Repository
	typeUsers typeuser.Repository
	logger    *zap.Logger
}

func NewAccessPolicy(
	adminTypeNames []string,
	users user.Repository,
	typeUsers typeuser.Repository,
	logger *zap.Logger,
) ports.Authorizer {
	roles := make(map[string]Role, len(adminTypeNames))
	for _, n := range adminTypeNames {
		roles[n] = RoleAdmin
	}

	return &AccessPolicy{
		roles:     roles,
		users:     users,
		typeUsers: typeUsers,
		logger:    logger,
	}
}

func (p *AccessPolicy) roleOf(name string) Role {
	if r, ok := p.roles[name]; ok {
		return r
	}
	return RoleUser
}

func (p *AccessPolicy) RequireAdmin(ctx context.Context) error {
	id, ok := identity.UserIDFrom(ctx)
	if !ok {
		return apperr.Unauthenticated("authentication required")
	}

	u, err := p.users.FetchUserByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil || !u.IsActive || u.TypeUserID == nil {
		return p.deny(id)
	}

	t, err := p.typeUsers.FetchByID(ctx, *u.TypeUserID)
	if err != nil {
		return err
	}
	if t == nil || !t.IsActive || p.roleOf(t.Name) != RoleAdmin {
		return p.deny(id)
	}

	return nil
}

func (p *AccessPolicy) deny(id user.UUID) error {
	p.logger.Warn("admin operation denied", zap.Stringer("user_id", id))
	return apperr.Forbidden("administrator role required")
}
