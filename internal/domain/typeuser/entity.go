package typeuser

import (
	"time"

	"github.com/google/uuid"
)

type (
	TypeUser struct {
		ID          uuid.UUID
		Name        string
		Description string
		IsActive    bool

		CreatedAt time.Time
		UpdatedAt time.Time
	}
	TypeUsers []*TypeUser
)
