package restaurant

import (
	"time"

	"github.com/google/uuid"
)

type (
	Restaurant struct {
		ID          uuid.UUID
		OwnerID     uuid.UUID
		Name        string
		Description string
		Cuisine     string
		CNPJ        string
		Phone       string
		Email       string
		OpeningTime *string
		ClosingTime *string

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
	Restaurants []*Restaurant
)
