package rest

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"food-delivery-api/internal/application/apperr"
	"food-delivery-api/internal/application/identity"
	"food-delivery-api/internal/application/services"
	"food-delivery-api/internal/domain/paging"
	domain "food-delivery-api/internal/domain/user"
	"food-delivery-api/internal/interface/api/rest/dto/address"
	"food-delivery-api/internal/interface/api/rest/dto/pagination"
	"food-delivery-api/internal/interface/api/rest/dto/user"
)

func someDomainUser() *domain.User {
	dob := time.Date(1990, time.May, 17, 0, 0, 0, 0, time.UTC)
	return &domain.User{
		ID:           uuid.New(),
		Name:         "Ana Souza",
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$hash",
		Phone:        "(11) 98888-7777",
		BirthDate:    &dob,
		IsActive:     true,
	}
}

func validCreateRequest() user.CreateRequest {
	return user.CreateRequest{
		Name:      "Ana Souza",
		Email:     "ana@example.com",
		Password:  "secret123",
		Phone:     "(11) 98888-7777",
		BirthDate: "17/05/1990",
	}
}

func TestUserController_CreateUserHandler(t *testing.T) {
	tests := []struct {
		name       string
		body       any
		create     func(ctx context.Context, u domain.User, password string) (*domain.User, error)
		wantStatus int
		wantErrors []string
	}{
		{
			name:       "bad json",
			body:       "{",
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"invalid request body"},
		},
		{
			name: "validation errors",
			body: user.CreateRequest{Name: "A", Email: "nope", Password: "123", Phone: "1"},
			wantErrors: []string{
				"email: invalid email format",
				"name: length must be 2-100 characters",
				"password: length must be 6-72 characters",
				"phone: must be E.164 (+5511988887777) or (XX) XXXXX-XXXX",
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "duplicate email",
			body: validCreateRequest(),
			create: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
				return nil, services.ErrEmailTaken
			},
			wantStatus: http.StatusConflict,
			wantErrors: []string{"email already registered"},
		},
		{
			name: "created",
			body: validCreateRequest(),
			create: func(ctx context.Context, u domain.User, password string) (*domain.User, error) {
				if password != "secret123" || u.BirthDate == nil {
					return nil, apperr.BadRequest("unexpected input")
				}
				created := someDomainUser()
				return created, nil
			},
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, Services{Users: &FakeUserService{CreateUserFunc: tt.create}})

			rr := doReq(t, r, http.MethodPost, RouteApi+RouteUsers, tt.body, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			if tt.wantErrors != nil {
				assert.Equal(t, tt.wantErrors, decodeError(t, rr).Errors)
				return
			}
			var got map[string]any
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, "ana@example.com", got["email"])
			assert.Equal(t, "17/05/1990", got["birthDate"])
			assert.NotContains(t, got, "password")
			assert.NotContains(t, got, "passwordHash")
		})
	}
}

func TestUserController_RequiresIdentity(t *testing.T) {
	r := newTestRouter(t, Services{Users: &FakeUserService{}})

	rr := doReq(t, r, http.MethodGet, RouteApi+RouteUsers, nil, nil)
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, []string{"authentication required"}, decodeError(t, rr).Errors)

	rr = doReq(t, r, http.MethodGet, RouteApi+RouteUsers, nil, map[string]string{"Authorization": "Token abc"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, []string{"invalid token format"}, decodeError(t, rr).Errors)

	rr = doReq(t, r, http.MethodGet, RouteApi+RouteUsers, nil, map[string]string{"Authorization": "Bearer garbage"})
	require.Equal(t, http.StatusUnauthorized, rr.Code)
	assert.Equal(t, []string{"invalid token"}, decodeError(t, rr).Errors)
}

func TestUserController_GetUserHandler(t *testing.T) {
	caller := uuid.New()
	found := someDomainUser()

	tests := []struct {
		name       string
		path       string
		find       func(ctx context.Context, id domain.UUID) (*domain.User, error)
		wantStatus int
		wantErrors []string
	}{
		{
			name:       "malformed id",
			path:       "/api/users/not-a-uuid",
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"id must be a valid UUID"},
		},
		{
			name: "not found",
			path: "/api/users/" + uuid.NewString(),
			find: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
				return nil, services.ErrUserNotFound
			},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"user not found"},
		},
		{
			name: "found",
			path: "/api/users/" + found.ID.String(),
			find: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
				if got, _ := identity.UserIDFrom(ctx); got != caller {
					return nil, apperr.Unauthenticated("authentication required")
				}
				return found, nil
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, Services{Users: &FakeUserService{FindUserByIDFunc: tt.find}})

			rr := doReq(t, r, http.MethodGet, tt.path, nil, bearer(caller))
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantErrors != nil {
				assert.Equal(t, tt.wantErrors, decodeError(t, rr).Errors)
				return
			}

			var got user.User
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Equal(t, found.ID, got.ID)
		})
	}
}

func TestUserController_StaticRoutesWinOverID(t *testing.T) {
	caller := uuid.New()
	me := someDomainUser()
	us := &FakeUserService{
		CurrentUserFunc: func(ctx context.Context) (*domain.User, error) { return me, nil },
		CountActiveFunc: func(ctx context.Context) (int64, error) { return 7, nil },
		CountByTypeFunc: func(ctx context.Context, typeUserID domain.UUID) (int64, error) { return 3, nil },
		FindByEmailFunc: func(ctx context.Context, email string) (*domain.User, error) {
			if email != "ana@example.com" {
				return nil, services.ErrUserNotFound
			}
			return me, nil
		},
	}
	r := newTestRouter(t, Services{Users: us})

	rr := doReq(t, r, http.MethodGet, "/api/users/me", nil, bearer(caller))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), me.ID.String())

	rr = doReq(t, r, http.MethodGet, "/api/users/count", nil, bearer(caller))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":7}`, rr.Body.String())

	rr = doReq(t, r, http.MethodGet, "/api/users/count/type/"+uuid.NewString(), nil, bearer(caller))
	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"count":3}`, rr.Body.String())

	rr = doReq(t, r, http.MethodGet, "/api/users/email/ana@example.com", nil, bearer(caller))
	require.Equal(t, http.StatusOK, rr.Code)
}

func TestUserController_GetUsersByType(t *testing.T) {
	caller := uuid.New()
	typeID := uuid.New()
	member := someDomainUser()

	tests := []struct {
		name     string
		path     string
		wantCode int
		wantBody string
	}{
		{
			name:     "lists active members of the type",
			path:     "/api/users/type/" + typeID.String(),
			wantCode: http.StatusOK,
			wantBody: member.ID.String(),
		},
		{
			name:     "unknown type gives an empty list",
			path:     "/api/users/type/" + uuid.NewString(),
			wantCode: http.StatusOK,
			wantBody: "[]",
		},
		{
			name:     "malformed type id",
			path:     "/api/users/type/not-a-uuid",
			wantCode: http.StatusBadRequest,
		},
	}

	us := &FakeUserService{
		FindByTypeFunc: func(ctx context.Context, id domain.UUID) (domain.Users, error) {
			if id != typeID {
				return domain.Users{}, nil
			}
			return domain.Users{member}, nil
		},
	}
	r := newTestRouter(t, Services{Users: us})

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			rr := doReq(t, r, http.MethodGet, tt.path, nil, bearer(caller))
			require.Equal(t, tt.wantCode, rr.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rr.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestUserController_GetUsersPagedHandler(t *testing.T) {
	caller := uuid.New()

	tests := []struct {
		name       string
		query      string
		wantStatus int
		wantReq    paging.Request
	}{
		{name: "defaults", query: "", wantStatus: http.StatusOK, wantReq: paging.Request{}.Normalize()},
		{name: "explicit", query: "?page=2&size=5", wantStatus: http.StatusOK, wantReq: paging.Request{Page: 2, Size: 5}},
		{name: "bad page", query: "?page=zero", wantStatus: http.StatusBadRequest},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var gotReq paging.Request
			us := &FakeUserService{
				FindUsersPagedFunc: func(ctx context.Context, req paging.Request) (domain.Page, error) {
					gotReq = req
					return domain.Page{Items: []*domain.User{someDomainUser()}, Page: req.Page, Size: req.Size, Total: 11}, nil
				},
			}
			r := newTestRouter(t, Services{Users: us})

			rr := doReq(t, r, http.MethodGet, "/api/users/paginated"+tt.query, nil, bearer(caller))
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus != http.StatusOK {
				return
			}

			assert.Equal(t, tt.wantReq, gotReq)
			var got pagination.Response[user.User]
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &got))
			assert.Len(t, got.Data, 1)
			assert.EqualValues(t, 11, got.Pagination.Total)
		})
	}
}

func TestUserController_UpdateUserHandler(t *testing.T) {
	caller := uuid.New()
	target := someDomainUser()

	var gotPatch domain.Patch
	us := &FakeUserService{
		UpdateUserFunc: func(ctx context.Context, id domain.UUID, p domain.Patch) (*domain.User, error) {
			gotPatch = p
			updated := *target
			updated.Name = *p.Name
			return &updated, nil
		},
	}
	r := newTestRouter(t, Services{Users: us})

	rr := doReq(t, r, http.MethodPut, "/api/users/"+target.ID.String(), map[string]any{"name": "  Ana Lima "}, bearer(caller))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NotNil(t, gotPatch.Name)
	assert.Equal(t, "Ana Lima", *gotPatch.Name)
	assert.Nil(t, gotPatch.Email)
	assert.Nil(t, gotPatch.Password)

	rr = doReq(t, r, http.MethodPut, "/api/users/"+target.ID.String(), map[string]any{"email": "bad"}, bearer(caller))
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []string{"email: invalid email format"}, decodeError(t, rr).Errors)
}

func TestUserController_Lifecycle(t *testing.T) {
	caller := uuid.New()
	target := someDomainUser()

	tests := []struct {
		name       string
		method     string
		path       string
		us         *FakeUserService
		wantStatus int
		wantErrors []string
	}{
		{
			name:   "soft delete",
			method: http.MethodDelete,
			path:   "/api/users/" + target.ID.String(),
			us: &FakeUserService{DeactivateUserFunc: func(ctx context.Context, id domain.UUID) error {
				return nil
			}},
			wantStatus: http.StatusNoContent,
		},
		{
			name:   "physical delete forbidden",
			method: http.MethodDelete,
			path:   "/api/users/" + target.ID.String() + "/physical",
			us: &FakeUserService{DeleteUserPhysicalFunc: func(ctx context.Context, id domain.UUID) error {
				return apperr.Forbidden("admin privileges required")
			}},
			wantStatus: http.StatusForbidden,
			wantErrors: []string{"admin privileges required"},
		},
		{
			name:   "activate",
			method: http.MethodPatch,
			path:   "/api/users/" + target.ID.String() + "/activate",
			us: &FakeUserService{ActivateUserFunc: func(ctx context.Context, id domain.UUID) (*domain.User, error) {
				return target, nil
			}},
			wantStatus: http.StatusOK,
		},
		{
			name:       "change password missing params",
			method:     http.MethodPatch,
			path:       "/api/users/" + target.ID.String() + "/change-password",
			us:         &FakeUserService{},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"currentPassword: is required", "newPassword: is required"},
		},
		{
			name:   "change password wrong current",
			method: http.MethodPatch,
			path:   "/api/users/" + target.ID.String() + "/change-password?currentPassword=old123&newPassword=new456",
			us: &FakeUserService{ChangePasswordFunc: func(ctx context.Context, id domain.UUID, current, next string) error {
				return services.ErrCurrentPasswordWrong
			}},
			wantStatus: http.StatusBadRequest,
			wantErrors: []string{"current password does not match"},
		},
		{
			name:   "change password",
			method: http.MethodPatch,
			path:   "/api/users/" + target.ID.String() + "/change-password?currentPassword=old123&newPassword=new456",
			us: &FakeUserService{ChangePasswordFunc: func(ctx context.Context, id domain.UUID, current, next string) error {
				if current != "old123" || next != "new456" {
					return services.ErrCurrentPasswordWrong
				}
				return nil
			}},
			wantStatus: http.StatusNoContent,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRouter(t, Services{Users: tt.us})

			rr := doReq(t, r, tt.method, tt.path, nil, bearer(caller))
			require.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantErrors != nil {
				assert.Equal(t, tt.wantErrors, decodeError(t, rr).Errors)
			}
		})
	}
}

func TestUserController_CreateRejectsValuesPastColumnLimits(t *testing.T) {
	// CreateUserFunc is unset: reaching the service would answer 500
	r := newTestRouter(t, Services{Users: &FakeUserService{}})

	req := validCreateRequest()
	req.Address = &address.Address{ZipCode: strings.Repeat("1", 30)}

	rr := doReq(t, r, http.MethodPost, "/api/users", req, nil)
	require.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, []string{"address.zipCode: must be at most 20 characters"}, decodeError(t, rr).Errors)
}
