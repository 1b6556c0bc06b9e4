package user

import (
	"time"

	"github.com/google/uuid"
)

type (
	User struct {
		ID           uuid.UUID
		Name         string
		Email        string
		PasswordHash string
		Phone        string
		BirthDate    *time.Time
		TypeUserID   *uuid.UUID

		Street       *string
		Number       *int
		Complement   *string
		Neighborhood *string
		City         *string
		State        *string
		ZipCode      *string

		IsActive  bool
		CreatedAt time.Time
		UpdatedAt time.Time
	}
	Users []*User
)
