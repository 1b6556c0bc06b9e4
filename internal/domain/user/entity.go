package user

import (
	"time"

	"github.com/google/uuid"

	"food-delivery-api/internal/domain/address"
	"food-delivery-api/internal/domain/paging"
)

type (
	UUID = uuid.UUID
	User struct {
		ID           UUID
		Name         string
		Email        string
		PasswordHash string
		Phone        string
		BirthDate    *time.Time
		Address      *address.Address
		TypeUserID   *UUID
		IsActive     bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
	Page  = paging.Page[*User]

	// Patch carries a partial update; nil fields are left untouched.
	Patch struct {
		Name       *string
		Email      *string
		Password   *string
		Phone      *string
		BirthDate  *time.Time
		Address    *address.Address
		TypeUserID *UUID
	}
)
