package validator

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"food-delivery-api/internal/domain/paging"
	"food-delivery-api/internal/interface/api/rest/dto/address"
	"food-delivery-api/internal/interface/api/rest/dto/auth"
	"food-delivery-api/internal/interface/api/rest/dto/menuitem"
	"food-delivery-api/internal/interface/api/rest/dto/restaurant"
	"food-delivery-api/internal/interface/api/rest/dto/typeuser"
	"food-delivery-api/internal/interface/api/rest/dto/user"
)

func fields(t *testing.T, errs interface{ Strings() []string }) []string {
	t.Helper()
	return errs.Strings()
}

func ptr[T any](v T) *T { return &v }

func validUser() user.CreateRequest {
	return user.CreateRequest{
		Name:     "Ana Souza",
		Email:    "ana@mail.com",
		Password: "secret123",
		Phone:    "(11) 98888-7777",
	}
}

func TestValidateUserCreate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *user.CreateRequest)
		want   []string
	}{
		{name: "valid", mutate: func(*user.CreateRequest) {}},
		{name: "e164 phone", mutate: func(r *user.CreateRequest) { r.Phone = "+5511988887777" }},
		{
			name:   "missing fields",
			mutate: func(r *user.CreateRequest) { *r = user.CreateRequest{} },
			want:   []string{"email: is required", "name: is required", "password: is required", "phone: is required"},
		},
		{
			name:   "bad email",
			mutate: func(r *user.CreateRequest) { r.Email = "nope" },
			want:   []string{"email: invalid email format"},
		},
		{
			name:   "short password",
			mutate: func(r *user.CreateRequest) { r.Password = "123" },
			want:   []string{"password: length must be 6-72 characters"},
		},
		{
			name:   "bad phone",
			mutate: func(r *user.CreateRequest) { r.Phone = "11 9999" },
			want:   []string{"phone: must be E.164 (+5511988887777) or (XX) XXXXX-XXXX"},
		},
		{
			name:   "future birth date",
			mutate: func(r *user.CreateRequest) { r.BirthDate = time.Now().AddDate(1, 0, 0).Format("02/01/2006") },
			want:   []string{"birthDate: must not be in the future"},
		},
		{
			name:   "garbled birth date",
			mutate: func(r *user.CreateRequest) { r.BirthDate = "31-12-1990" },
			want:   []string{"birthDate: must be dd/MM/yyyy or YYYY-MM-DD"},
		},
		{
			name:   "bad type user",
			mutate: func(r *user.CreateRequest) { r.TypeUserID = "abc" },
			want:   []string{"typeUserId: must be a valid UUID"},
		},
		{
			name:   "address without zip",
			mutate: func(r *user.CreateRequest) { r.Address = &address.Address{City: "SP"} },
			want:   []string{"address.zipCode: is required"},
		},
		{
			name:   "email longer than the column",
			mutate: func(r *user.CreateRequest) { r.Email = strings.Repeat("a", 250) + "@mail.com" },
			want:   []string{"email: must be at most 255 characters"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := validUser()
			tt.mutate(&r)

			errs := ValidateUserCreate(r)
			if tt.want == nil {
				assert.Nil(t, errs)
				return
			}
			assert.Equal(t, tt.want, fields(t, errs))
		})
	}
}

func TestValidateAddress_ColumnLimits(t *testing.T) {
	long := strings.Repeat("x", 256)
	tests := []struct {
		name   string
		mutate func(a *address.Address)
		want   []string
	}{
		{name: "at the limits", mutate: func(a *address.Address) {
			a.ZipCode = strings.Repeat("9", 20)
			a.Street = strings.Repeat("x", 255)
			a.Number = ptr(math.MaxInt32)
		}},
		{
			name:   "zip code too long",
			mutate: func(a *address.Address) { a.ZipCode = strings.Repeat("9", 21) },
			want:   []string{"zipCode: must be at most 20 characters"},
		},
		{
			name: "free text too long",
			mutate: func(a *address.Address) {
				a.Street, a.Complement, a.Neighborhood = long, long, long
			},
			want: []string{
				"complement: must be at most 255 characters",
				"neighborhood: must be at most 255 characters",
				"street: must be at most 255 characters",
			},
		},
		{
			name:   "number past INTEGER",
			mutate: func(a *address.Address) { a.Number = ptr(math.MaxInt32 + 1) },
			want:   []string{"number: must be between 0 and 2147483647"},
		},
		{
			name:   "negative number",
			mutate: func(a *address.Address) { a.Number = ptr(-1) },
			want:   []string{"number: must be between 0 and 2147483647"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			a := address.Address{ZipCode: "01001-000"}
			tt.mutate(&a)

			errs := ValidateAddress(a)
			if tt.want == nil {
				assert.Nil(t, errs)
				return
			}
			assert.Equal(t, tt.want, fields(t, errs))
		})
	}
}

func TestValidateUserPatch(t *testing.T) {
	assert.Nil(t, ValidateUserPatch(user.UpdateRequest{}))

	bad := "x"
	errs := ValidateUserPatch(user.UpdateRequest{Name: &bad, Email: &bad, Password: &bad})
	assert.Equal(t, []string{
		"email: invalid email format",
		"name: length must be 2-100 characters",
		"password: length must be 6-72 characters",
	}, fields(t, errs))
}

func TestValidateLogin(t *testing.T) {
	assert.Nil(t, ValidateLogin(auth.LoginRequest{Identifier: "ana@mail.com", Password: "x"}))
	assert.Equal(t,
		[]string{"email: is required", "password: is required"},
		fields(t, ValidateLogin(auth.LoginRequest{})),
	)
}

func TestValidateTypeUser(t *testing.T) {
	assert.Nil(t, ValidateTypeUser(typeuser.Request{Name: "Cliente"}))
	assert.Equal(t,
		[]string{"name: length must be 2-50 characters"},
		fields(t, ValidateTypeUser(typeuser.Request{Name: "C"})),
	)
}

func TestValidateRestaurant(t *testing.T) {
	open := "25:00"
	r := restaurant.Request{
		Name:        "Cantina",
		Description: "Massas",
		Cuisine:     "Italiana",
		CNPJ:        "12.345.678/0001-90",
		Phone:       "(11) 3333-4444",
		Email:       "contato@cantina.com",
		OwnerID:     uuid.NewString(),
	}
	assert.Nil(t, ValidateRestaurant(r))

	r.CNPJ = "12345678000190"
	r.OpeningTime = &open
	assert.Equal(t,
		[]string{"cnpj: must be XX.XXX.XXX/XXXX-XX", "openingTime: must be HH:MM or HH:MM:SS"},
		fields(t, ValidateRestaurant(r)),
	)
}

func TestValidateMenuItem(t *testing.T) {
	price := decimal.RequireFromString("0.001")
	zero := 0
	r := menuitem.Request{
		Name:            "Pizza",
		Description:     "Grande",
		Price:           &price,
		PreparationTime: &zero,
	}

	assert.Equal(t, []string{
		"preparationTime: must be between 1 and 2147483647",
		"price: must be between 0.01 and 99999999.99",
		"restaurantId: is required",
	}, fields(t, ValidateMenuItem(r, false)))

	ok := decimal.RequireFromString("10")
	r.Price = &ok
	r.PreparationTime = nil
	assert.Nil(t, ValidateMenuItem(r, true))
}

func TestValidateMenuItem_ColumnLimits(t *testing.T) {
	tests := []struct {
		name  string
		price string
		prep  int
		want  []string
	}{
		{name: "largest NUMERIC(10,2)", price: "99999999.99", prep: math.MaxInt32},
		{
			name:  "price past NUMERIC(10,2)",
			price: "100000000",
			prep:  30,
			want:  []string{"price: must be between 0.01 and 99999999.99"},
		},
		{
			name:  "preparation time past INTEGER",
			price: "10",
			prep:  math.MaxInt32 + 1,
			want:  []string{"preparationTime: must be between 1 and 2147483647"},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			price := decimal.RequireFromString(tt.price)
			prep := tt.prep
			r := menuitem.Request{Name: "Pizza", Description: "Grande", Price: &price, PreparationTime: &prep}

			errs := ValidateMenuItem(r, true)
			if tt.want == nil {
				assert.Nil(t, errs)
				return
			}
			assert.Equal(t, tt.want, fields(t, errs))
		})
	}
}

func TestValidatePage(t *testing.T) {
	tests := []struct {
		name       string
		page, size string
		want       paging.Request
		wantErr    bool
	}{
		{name: "defaults", want: paging.Request{Page: 1, Size: paging.DefaultSize}},
		{name: "explicit", page: "3", size: "20", want: paging.Request{Page: 3, Size: 20}},
		{name: "zero page", page: "0", wantErr: true},
		{name: "size too big", size: "101", wantErr: true},
		{name: "not a number", page: "x", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			req, errs := ValidatePage(tt.page, tt.size)
			if tt.wantErr {
				assert.NotEmpty(t, errs)
				return
			}
			assert.Nil(t, errs)
			assert.Equal(t, tt.want, req)
		})
	}
}
