package address

import (
	"strings"

	"food-delivery-api/internal/domain/address"
)

type Address struct {
	Street       string `json:"street,omitempty"`
	Number       *int   `json:"number,omitempty"`
	Complement   string `json:"complement,omitempty"`
	Neighborhood string `json:"neighborhood,omitempty"`
	City         string `json:"city,omitempty"`
	State        string `json:"state,omitempty"`
	ZipCode      string `json:"zipCode"`
}

func ToDomain(a *Address) *address.Address {
	if a == nil {
		return nil
	}
	return &address.Address{
		Street:       strings.TrimSpace(a.Street),
		Number:       a.Number,
		Complement:   strings.TrimSpace(a.Complement),
		Neighborhood: strings.TrimSpace(a.Neighborhood),
		City:         strings.TrimSpace(a.City),
		State:        strings.TrimSpace(a.State),
		ZipCode:      strings.TrimSpace(a.ZipCode),
	}
}

func FromDomain(a *address.Address) *Address {
	if a == nil {
		return nil
	}
	return &Address{
		Street:       a.Street,
		Number:       a.Number,
		Complement:   a.Complement,
		Neighborhood: a.Neighborhood,
		City:         a.City,
		State:        a.State,
		ZipCode:      a.ZipCode,
	}
}
