package user

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"food-delivery-api/internal/domain/user"
	"food-delivery-api/internal/interface/api/rest/dto/address"
)

const BirthDateLayout = "02/01/2006"

var birthDateLayouts = []string{BirthDateLayout, "2006-01-02"}

// ParseBirthDate accepts dd/MM/yyyy and YYYY-MM-DD.
func ParseBirthDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range birthDateLayouts {
		if d, err := time.Parse(layout, s); err == nil {
			return d, nil
		}
	}
	return time.Time{}, errors.New("birthDate must be dd/MM/yyyy or YYYY-MM-DD")
}

func ToResponseUser(uDomain user.User) User {
	var u = User{
		ID:         uDomain.ID,
		Name:       uDomain.Name,
		Email:      uDomain.Email,
		Phone:      uDomain.Phone,
		Address:    address.FromDomain(uDomain.Address),
		TypeUserID: uDomain.TypeUserID,
		IsActive:   uDomain.IsActive,
		CreatedAt:  uDomain.CreatedAt,
		UpdatedAt:  uDomain.UpdatedAt,
	}
	if uDomain.BirthDate != nil {
		u.BirthDate = uDomain.BirthDate.Format(BirthDateLayout)
	}

	return u
}

func ToResponseUsers(usDomain user.Users) Users {
	us := make(Users, len(usDomain))
	for idx, u := range usDomain {
		us[idx] = ToResponseUser(*u)
	}

	return us
}

func ToDomainUser(req CreateRequest) (user.User, error) {
	var u = user.User{
		Name:    strings.TrimSpace(req.Name),
		Email:   req.Email,
		Phone:   strings.TrimSpace(req.Phone),
		Address: address.ToDomain(req.Address),
	}

	if req.BirthDate != "" {
		d, err := ParseBirthDate(req.BirthDate)
		if err != nil {
			return user.User{}, err
		}
		u.BirthDate = &d
	}
	if req.TypeUserID != "" {
		id, err := uuid.Parse(req.TypeUserID)
		if err != nil {
			return user.User{}, errors.New("typeUserId must be a valid UUID")
		}
		u.TypeUserID = &id
	}

	return u, nil
}

func ToDomainPatch(req UpdateRequest) (user.Patch, error) {
	var p = user.Patch{
		Name:     trimmed(req.Name),
		Email:    req.Email,
		Password: req.Password,
		Phone:    trimmed(req.Phone),
		Address:  address.ToDomain(req.Address),
	}

	if req.BirthDate != nil {
		d, err := ParseBirthDate(*req.BirthDate)
		if err != nil {
			return user.Patch{}, err
		}
		p.BirthDate = &d
	}
	if req.TypeUserID != nil {
		id, err := uuid.Parse(*req.TypeUserID)
		if err != nil {
			return user.Patch{}, errors.New("typeUserId must be a valid UUID")
		}
		p.TypeUserID = &id
	}

	return p, nil
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
