package user

import (
	"time"

	"github.com/google/uuid"

	"food-delivery-api/internal/interface/api/rest/dto/address"
)

type (
	CreateRequest struct {
		Name       string           `json:"name"`
		Email      string           `json:"email"`
		Password   string           `json:"password"`
		Phone      string           `json:"phone"`
		BirthDate  string           `json:"birthDate"`
		Address    *address.Address `json:"address"`
		TypeUserID string           `json:"typeUserId"`
	}
	// UpdateRequest fields left out of the body stay untouched.
	UpdateRequest struct {
		Name       *string          `json:"name"`
		Email      *string          `json:"email"`
		Password   *string          `json:"password"`
		Phone      *string          `json:"phone"`
		BirthDate  *string          `json:"birthDate"`
		Address    *address.Address `json:"address"`
		TypeUserID *string          `json:"typeUserId"`
	}

	User struct {
		ID         uuid.UUID        `json:"id"`
		Name       string           `json:"name"`
		Email      string           `json:"email"`
		Phone      string           `json:"phone"`
		BirthDate  string           `json:"birthDate,omitempty"`
		Address    *address.Address `json:"address,omitempty"`
		TypeUserID *uuid.UUID       `json:"typeUserId,omitempty"`
		IsActive   bool             `json:"isActive"`
		CreatedAt  time.Time        `json:"createdAt"`
		UpdatedAt  time.Time        `json:"updatedAt"`
	}
	Users []User
	Count struct {
		Count int64 `json:"count"`
	}
)
