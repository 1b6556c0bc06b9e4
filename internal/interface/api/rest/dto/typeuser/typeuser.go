package typeuser

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"food-delivery-api/internal/domain/typeuser"
)

type (
	Request struct {
		Name        string `json:"name"`
		Description string `json:"description"`
	}
	TypeUser struct {
		ID          uuid.UUID `json:"id"`
		Name        string    `json:"name"`
		Description string    `json:"description,omitempty"`
		IsActive    bool      `json:"isActive"`
		CreatedAt   time.Time `json:"createdAt"`
		UpdatedAt   time.Time `json:"updatedAt"`
	}
	TypeUsers []TypeUser
)

func ToResponse(t typeuser.TypeUser) TypeUser {
	return TypeUser{
		ID:          t.ID,
		Name:        t.Name,
		Description: t.Description,
		IsActive:    t.IsActive,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func ToResponses(ts typeuser.TypeUsers) TypeUsers {
	out := make(TypeUsers, len(ts))
	for idx, t := range ts {
		out[idx] = ToResponse(*t)
	}
	return out
}

func ToDomain(req Request) typeuser.TypeUser {
	return typeuser.TypeUser{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
}
