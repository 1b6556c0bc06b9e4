package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"food-delivery-api/config"
	"food-delivery-api/internal/application/ports"
	"food-delivery-api/internal/domain/typeuser"
	"food-delivery-api/internal/domain/user"
)

const AdminTypeName = "Administrador"

var defaultTypeUsers = []typeuser.TypeUser{
	{Name: AdminTypeName, Description: "Administrador do sistema"},
	{Name: "Cliente", Description: "Cliente que realiza pedidos"},
	{Name: "Moderador", Description: "Moderador de conteúdo"},
	{Name: "Dono de Restaurante", Description: "Proprietário de restaurante"},
}

// Seeder creates the reference type users and the bootstrap administrator.
// Running it again leaves existing records untouched.
type Seeder struct {
	cfg                config.Seed
	typeUserRepository typeuser.Repository
	userRepository     user.Repository
	hasher             ports.PasswordHasher
	logger             *zap.Logger
}

func NewSeeder(
	cfg config.Seed,
	typeUserRepository typeuser.Repository,
	userRepository user.Repository,
	hasher ports.PasswordHasher,
	logger *zap.Logger,
) *Seeder {
	return &Seeder{
		cfg:                cfg,
		typeUserRepository: typeUserRepository,
		userRepository:     userRepository,
		hasher:             hasher,
		logger:             logger,
	}
}

func (s *Seeder) Run(ctx context.Context) error {
	var admin *typeuser.TypeUser

	for _, def := range defaultTypeUsers {
		t, err := s.typeUserRepository.FetchByName(ctx, def.Name)
		if err != nil {
			return fmt.Errorf("seed type user %q: %w", def.Name, err)
		}
		if t == nil {
			def.IsActive = true
			if t, err = s.typeUserRepository.Create(ctx, def); err != nil {
				return fmt.Errorf("seed type user %q: %w", def.Name, err)
			}
			s.logger.Info("type user seeded", zap.String("name", t.Name))
		}
		if def.Name == AdminTypeName {
			admin = t
		}
	}

	email := normalizeEmail(s.cfg.AdminEmail)
	exists, err := s.userRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}
	if exists {
		return nil
	}

	hash, err := s.hasher.Hash(s.cfg.AdminPassword)
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	u, err := s.userRepository.CreateUser(ctx, user.User{
		Name:         s.cfg.AdminName,
		Email:        email,
		PasswordHash: hash,
		Phone:        s.cfg.AdminPhone,
		TypeUserID:   &admin.ID,
		IsActive:     true,
	})
	if err != nil {
		return fmt.Errorf("seed admin user: %w", err)
	}

	s.logger.Info("admin user seeded", zap.String("email", u.Email))

	return nil
}
