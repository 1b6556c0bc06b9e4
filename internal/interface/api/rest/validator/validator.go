package validator

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"food-delivery-api/internal/application/apperr"
	"food-delivery-api/internal/domain/paging"
	"food-delivery-api/internal/interface/api/rest/dto/address"
	"food-delivery-api/internal/interface/api/rest/dto/auth"
	"food-delivery-api/internal/interface/api/rest/dto/menuitem"
	"food-delivery-api/internal/interface/api/rest/dto/restaurant"
	"food-delivery-api/internal/interface/api/rest/dto/typeuser"
	"food-delivery-api/internal/interface/api/rest/dto/user"
)

// Upper bounds follow the column types in migrations/000001_init_schema.up.sql.
const (
	minPasswordLen = 6
	maxPasswordLen = 72 // bcrypt safe
	maxEmailLen    = 255
	maxTextLen     = 255
	maxZipCodeLen  = 20
)

var (
	validate = validator.New()

	brMobileRe = regexp.MustCompile(`^\(\d{2}\) \d{4,5}-\d{4}$`)
	cnpjRe     = regexp.MustCompile(`^\d{2}\.\d{3}\.\d{3}/\d{4}-\d{2}$`)
	minPrice   = decimal.RequireFromString("0.01")
	maxPrice   = decimal.RequireFromString("99999999.99") // NUMERIC(10,2)
)

type checker struct {
	errs apperr.FieldErrors
}

func (c *checker) add(field, msg string) {
	c.errs = append(c.errs, apperr.FieldError{Field: field, Message: msg})
}

func (c *checker) result() apperr.FieldErrors {
	if len(c.errs) == 0 {
		return nil
	}
	return c.errs
}

func (c *checker) required(field, v string) bool {
	if strings.TrimSpace(v) == "" {
		c.add(field, "is required")
		return false
	}
	return true
}

func (c *checker) length(field, v string, lo, hi int) {
	if l := utf8.RuneCountInString(strings.TrimSpace(v)); l < lo || l > hi {
		if lo == 0 {
			c.add(field, fmt.Sprintf("must be at most %d characters", hi))
			return
		}
		c.add(field, fmt.Sprintf("length must be %d-%d characters", lo, hi))
	}
}

func (c *checker) email(field, v string) {
	v = strings.TrimSpace(v)
	if utf8.RuneCountInString(v) > maxEmailLen {
		c.add(field, fmt.Sprintf("must be at most %d characters", maxEmailLen))
		return
	}
	if validate.Var(v, "email") != nil {
		c.add(field, "invalid email format")
	}
}

// int32 keeps v inside a Postgres INTEGER column.
func (c *checker) int32Range(field string, v, lo int) {
	if v < lo || v > math.MaxInt32 {
		c.add(field, fmt.Sprintf("must be between %d and %d", lo, math.MaxInt32))
	}
}

func (c *checker) phone(field, v string) {
	v = strings.TrimSpace(v)
	if validate.Var(v, "e164") != nil && !brMobileRe.MatchString(v) {
		c.add(field, "must be E.164 (+5511988887777) or (XX) XXXXX-XXXX")
	}
}

func (c *checker) uuid(field, v string) {
	if validate.Var(v, "uuid") != nil {
		c.add(field, "must be a valid UUID")
	}
}

func (c *checker) password(field, v string) {
	if strings.TrimSpace(v) == "" {
		c.add(field, "is required")
	} else if l := len(v); l < minPasswordLen || l > maxPasswordLen {
		c.add(field, fmt.Sprintf("length must be %d-%d characters", minPasswordLen, maxPasswordLen))
	}
}

func (c *checker) birthDate(field, v string) {
	dob, err := user.ParseBirthDate(v)
	if err != nil {
		c.add(field, "must be dd/MM/yyyy or YYYY-MM-DD")
		return
	}
	if dob.After(time.Now().UTC()) {
		c.add(field, "must not be in the future")
	}
}

func (c *checker) merge(prefix string, errs apperr.FieldErrors) {
	for _, e := range errs {
		c.add(prefix+"."+e.Field, e.Message)
	}
}

func IsUUID(s string) (bool, uuid.UUID) {
	id, err := uuid.Parse(s)
	return err == nil, id
}

// ValidatePage parses optional page/size query values; empty means default.
func ValidatePage(page, size string) (paging.Request, apperr.FieldErrors) {
	var (
		c   checker
		req paging.Request
	)

	if page != "" {
		p, err := strconv.Atoi(page)
		if err != nil || p < 1 {
			c.add("page", "must be a positive integer")
		}
		req.Page = p
	}
	if size != "" {
		s, err := strconv.Atoi(size)
		if err != nil || s < 1 || s > paging.MaxSize {
			c.add("size", fmt.Sprintf("must be between 1 and %d", paging.MaxSize))
		}
		req.Size = s
	}

	return req.Normalize(), c.result()
}

func ValidateAddress(a address.Address) apperr.FieldErrors {
	var c checker
	if c.required("zipCode", a.ZipCode) {
		c.length("zipCode", a.ZipCode, 0, maxZipCodeLen)
	}
	if a.Number != nil {
		c.int32Range("number", *a.Number, 0)
	}
	c.length("street", a.Street, 0, maxTextLen)
	c.length("complement", a.Complement, 0, maxTextLen)
	c.length("neighborhood", a.Neighborhood, 0, maxTextLen)
	c.length("state", a.State, 0, 50)
	c.length("city", a.City, 0, 100)
	return c.result()
}

func ValidateLogin(r auth.LoginRequest) apperr.FieldErrors {
	var c checker
	c.required("email", r.Login())
	if strings.TrimSpace(r.Password) == "" {
		c.add("password", "is required")
	}
	return c.result()
}

func ValidateUserCreate(r user.CreateRequest) apperr.FieldErrors {
	var c checker

	if c.required("name", r.Name) {
		c.length("name", r.Name, 2, 100)
	}
	if c.required("email", r.Email) {
		c.email("email", r.Email)
	}
	c.password("password", r.Password)
	if c.required("phone", r.Phone) {
		c.phone("phone", r.Phone)
	}
	if strings.TrimSpace(r.BirthDate) != "" {
		c.birthDate("birthDate", r.BirthDate)
	}
	if r.TypeUserID != "" {
		c.uuid("typeUserId", r.TypeUserID)
	}
	if r.Address != nil {
		c.merge("address", ValidateAddress(*r.Address))
	}

	return c.result()
}

// ValidateUserPatch checks only the fields present in the body.
func ValidateUserPatch(r user.UpdateRequest) apperr.FieldErrors {
	var c checker

	if r.Name != nil {
		c.length("name", *r.Name, 2, 100)
	}
	if r.Email != nil && c.required("email", *r.Email) {
		c.email("email", *r.Email)
	}
	if r.Password != nil {
		c.password("password", *r.Password)
	}
	if r.Phone != nil && c.required("phone", *r.Phone) {
		c.phone("phone", *r.Phone)
	}
	if r.BirthDate != nil {
		c.birthDate("birthDate", *r.BirthDate)
	}
	if r.TypeUserID != nil {
		c.uuid("typeUserId", *r.TypeUserID)
	}
	if r.Address != nil {
		c.merge("address", ValidateAddress(*r.Address))
	}

	return c.result()
}

func ValidatePasswordChange(current, next string) apperr.FieldErrors {
	var c checker
	c.required("currentPassword", current)
	c.password("newPassword", next)
	return c.result()
}

func ValidateTypeUser(r typeuser.Request) apperr.FieldErrors {
	var c checker
	if c.required("name", r.Name) {
		c.length("name", r.Name, 2, 50)
	}
	c.length("description", r.Description, 0, 255)
	return c.result()
}

func ValidateRestaurant(r restaurant.Request) apperr.FieldErrors {
	var c checker

	if c.required("name", r.Name) {
		c.length("name", r.Name, 2, 100)
	}
	if c.required("description", r.Description) {
		c.length("description", r.Description, 0, 500)
	}
	if c.required("cuisine", r.Cuisine) {
		c.length("cuisine", r.Cuisine, 0, 50)
	}
	if c.required("cnpj", r.CNPJ) && !cnpjRe.MatchString(strings.TrimSpace(r.CNPJ)) {
		c.add("cnpj", "must be XX.XXX.XXX/XXXX-XX")
	}
	if c.required("phone", r.Phone) && !brMobileRe.MatchString(strings.TrimSpace(r.Phone)) {
		c.add("phone", "must be (XX) XXXX-XXXX or (XX) XXXXX-XXXX")
	}
	if c.required("email", r.Email) {
		c.email("email", r.Email)
	}
	if c.required("ownerId", r.OwnerID) {
		c.uuid("ownerId", r.OwnerID)
	}
	if r.OpeningTime != nil {
		if _, err := restaurant.ParseClock(*r.OpeningTime); err != nil {
			c.add("openingTime", "must be HH:MM or HH:MM:SS")
		}
	}
	if r.ClosingTime != nil {
		if _, err := restaurant.ParseClock(*r.ClosingTime); err != nil {
			c.add("closingTime", "must be HH:MM or HH:MM:SS")
		}
	}
	if r.Address != nil {
		c.merge("address", ValidateAddress(*r.Address))
	}

	return c.result()
}

// ValidateMenuItem skips restaurantId when forUpdate is set; updates never move an item.
func ValidateMenuItem(r menuitem.Request, forUpdate bool) apperr.FieldErrors {
	var c checker

	if c.required("name", r.Name) {
		c.length("name", r.Name, 2, 100)
	}
	if c.required("description", r.Description) {
		c.length("description", r.Description, 0, 500)
	}
	if r.Price == nil {
		c.add("price", "is required")
	} else if r.Price.LessThan(minPrice) || r.Price.GreaterThan(maxPrice) {
		c.add("price", "must be between 0.01 and 99999999.99")
	}
	c.length("category", r.Category, 0, 50)
	c.length("imageUrl", r.ImageURL, 0, 255)
	if r.PreparationTime != nil {
		c.int32Range("preparationTime", *r.PreparationTime, 1)
	}
	if !forUpdate && c.required("restaurantId", r.RestaurantID) {
		c.uuid("restaurantId", r.RestaurantID)
	}

	return c.result()
}
