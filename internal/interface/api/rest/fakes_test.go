package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"food-delivery-api/internal/domain/menuitem"
	"food-delivery-api/internal/domain/paging"
	"food-delivery-api/internal/domain/restaurant"
	"food-delivery-api/internal/domain/typeuser"
	domain "food-delivery-api/internal/domain/user"
	"food-delivery-api/internal/interface/api/rest/respond"
)

var errNotUsed = errors.New("not used")

type FakeUserService struct {
	CreateUserFunc         func(ctx context.Context, u domain.User, password string) (*domain.User, error)
	FindUserByIDFunc       func(ctx context.Context, id domain.UUID) (*domain.User, error)
	FindByEmailFunc        func(ctx context.Context, email string) (*domain.User, error)
	FindUsersFunc          func(ctx context.Context) (domain.Users, error)
	FindUsersPagedFunc     func(ctx context.Context, req paging.Request) (domain.Page, error)
	UpdateUserFunc         func(ctx context.Context, id domain.UUID, p domain.Patch) (*domain.User, error)
	DeactivateUserFunc     func(ctx context.Context, id domain.UUID) error
	ActivateUserFunc       func(ctx context.Context, id domain.UUID) (*domain.User, error)
	ChangePasswordFunc     func(ctx context.Context, id domain.UUID, current, next string) error
	CountActiveFunc        func(ctx context.Context) (int64, error)
	FindByTypeFunc         func(ctx context.Context, typeUserID domain.UUID) (domain.Users, error)
	CountByTypeFunc        func(ctx context.Context, typeUserID domain.UUID) (int64, error)
	DeleteUserPhysicalFunc func(ctx context.Context, id domain.UUID) error
	CurrentUserFunc        func(ctx context.Context) (*domain.User, error)
}

func (f *FakeUserService) CreateUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	if f.CreateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateUserFunc(ctx, u, password)
}
func (f *FakeUserService) FindUserByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if f.FindUserByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FindUserByIDFunc(ctx, id)
}
func (f *FakeUserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	if f.FindByEmailFunc == nil {
		return nil, errNotUsed
	}
	return f.FindByEmailFunc(ctx, email)
}
func (f *FakeUserService) FindUsers(ctx context.Context) (domain.Users, error) {
	if f.FindUsersFunc == nil {
		return nil, errNotUsed
	}
	return f.FindUsersFunc(ctx)
}
func (f *FakeUserService) FindUsersPaged(ctx context.Context, req paging.Request) (domain.Page, error) {
	if f.FindUsersPagedFunc == nil {
		return domain.Page{}, errNotUsed
	}
	return f.FindUsersPagedFunc(ctx, req)
}
func (f *FakeUserService) UpdateUser(ctx context.Context, id domain.UUID, p domain.Patch) (*domain.User, error) {
	if f.UpdateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateUserFunc(ctx, id, p)
}
func (f *FakeUserService) DeactivateUser(ctx context.Context, id domain.UUID) error {
	if f.DeactivateUserFunc == nil {
		return errNotUsed
	}
	return f.DeactivateUserFunc(ctx, id)
}
func (f *FakeUserService) ActivateUser(ctx context.Context, id domain.UUID) (*domain.User, error) {
	if f.ActivateUserFunc == nil {
		return nil, errNotUsed
	}
	return f.ActivateUserFunc(ctx, id)
}
func (f *FakeUserService) ChangePassword(ctx context.Context, id domain.UUID, current, next string) error {
	if f.ChangePasswordFunc == nil {
		return errNotUsed
	}
	return f.ChangePasswordFunc(ctx, id, current, next)
}
func (f *FakeUserService) CountActive(ctx context.Context) (int64, error) {
	if f.CountActiveFunc == nil {
		return 0, errNotUsed
	}
	return f.CountActiveFunc(ctx)
}
func (f *FakeUserService) FindByType(ctx context.Context, typeUserID domain.UUID) (domain.Users, error) {
	if f.FindByTypeFunc == nil {
		return nil, errNotUsed
	}
	return f.FindByTypeFunc(ctx, typeUserID)
}
func (f *FakeUserService) CountByType(ctx context.Context, typeUserID domain.UUID) (int64, error) {
	if f.CountByTypeFunc == nil {
		return 0, errNotUsed
	}
	return f.CountByTypeFunc(ctx, typeUserID)
}
func (f *FakeUserService) DeleteUserPhysical(ctx context.Context, id domain.UUID) error {
	if f.DeleteUserPhysicalFunc == nil {
		return errNotUsed
	}
	return f.DeleteUserPhysicalFunc(ctx, id)
}
func (f *FakeUserService) CurrentUser(ctx context.Context) (*domain.User, error) {
	if f.CurrentUserFunc == nil {
		return nil, errNotUsed
	}
	return f.CurrentUserFunc(ctx)
}

type FakeTypeUserService struct {
	FindAllFunc        func(ctx context.Context) (typeuser.TypeUsers, error)
	FindByIDFunc       func(ctx context.Context, id uuid.UUID) (*typeuser.TypeUser, error)
	CreateFunc         func(ctx context.Context, t typeuser.TypeUser) (*typeuser.TypeUser, error)
	UpdateFunc         func(ctx context.Context, id uuid.UUID, t typeuser.TypeUser) (*typeuser.TypeUser, error)
	DeleteFunc         func(ctx context.Context, id uuid.UUID) error
	DeletePhysicalFunc func(ctx context.Context, id uuid.UUID) error
}

func (f *FakeTypeUserService) FindAll(ctx context.Context) (typeuser.TypeUsers, error) {
	if f.FindAllFunc == nil {
		return nil, errNotUsed
	}
	return f.FindAllFunc(ctx)
}
func (f *FakeTypeUserService) FindByID(ctx context.Context, id uuid.UUID) (*typeuser.TypeUser, error) {
	if f.FindByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FindByIDFunc(ctx, id)
}
func (f *FakeTypeUserService) Create(ctx context.Context, t typeuser.TypeUser) (*typeuser.TypeUser, error) {
	if f.CreateFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateFunc(ctx, t)
}
func (f *FakeTypeUserService) Update(ctx context.Context, id uuid.UUID, t typeuser.TypeUser) (*typeuser.TypeUser, error) {
	if f.UpdateFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateFunc(ctx, id, t)
}
func (f *FakeTypeUserService) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFunc == nil {
		return errNotUsed
	}
	return f.DeleteFunc(ctx, id)
}
func (f *FakeTypeUserService) DeletePhysical(ctx context.Context, id uuid.UUID) error {
	if f.DeletePhysicalFunc == nil {
		return errNotUsed
	}
	return f.DeletePhysicalFunc(ctx, id)
}

type FakeRestaurantService struct {
	FindAllFunc         func(ctx context.Context) (restaurant.Restaurants, error)
	FindPagedFunc       func(ctx context.Context, req paging.Request) (restaurant.Page, error)
	FindByIDFunc        func(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error)
	FindByOwnerFunc     func(ctx context.Context, ownerID uuid.UUID) (restaurant.Restaurants, error)
	SearchByCuisineFunc func(ctx context.Context, cuisine string) (restaurant.Restaurants, error)
	SearchByNameFunc    func(ctx context.Context, name string) (restaurant.Restaurants, error)
	CreateFunc          func(ctx context.Context, r restaurant.Restaurant) (*restaurant.Restaurant, error)
	UpdateFunc          func(ctx context.Context, id uuid.UUID, r restaurant.Restaurant) (*restaurant.Restaurant, error)
	DeleteFunc          func(ctx context.Context, id uuid.UUID) error
	ActivateFunc        func(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error)
	DeletePhysicalFunc  func(ctx context.Context, id uuid.UUID) error
}

func (f *FakeRestaurantService) FindAll(ctx context.Context) (restaurant.Restaurants, error) {
	if f.FindAllFunc == nil {
		return nil, errNotUsed
	}
	return f.FindAllFunc(ctx)
}
func (f *FakeRestaurantService) FindPaged(ctx context.Context, req paging.Request) (restaurant.Page, error) {
	if f.FindPagedFunc == nil {
		return restaurant.Page{}, errNotUsed
	}
	return f.FindPagedFunc(ctx, req)
}
func (f *FakeRestaurantService) FindByID(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error) {
	if f.FindByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FindByIDFunc(ctx, id)
}
func (f *FakeRestaurantService) FindByOwner(ctx context.Context, ownerID uuid.UUID) (restaurant.Restaurants, error) {
	if f.FindByOwnerFunc == nil {
		return nil, errNotUsed
	}
	return f.FindByOwnerFunc(ctx, ownerID)
}
func (f *FakeRestaurantService) SearchByCuisine(ctx context.Context, cuisine string) (restaurant.Restaurants, error) {
	if f.SearchByCuisineFunc == nil {
		return nil, errNotUsed
	}
	return f.SearchByCuisineFunc(ctx, cuisine)
}
func (f *FakeRestaurantService) SearchByName(ctx context.Context, name string) (restaurant.Restaurants, error) {
	if f.SearchByNameFunc == nil {
		return nil, errNotUsed
	}
	return f.SearchByNameFunc(ctx, name)
}
func (f *FakeRestaurantService) Create(ctx context.Context, r restaurant.Restaurant) (*restaurant.Restaurant, error) {
	if f.CreateFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateFunc(ctx, r)
}
func (f *FakeRestaurantService) Update(ctx context.Context, id uuid.UUID, r restaurant.Restaurant) (*restaurant.Restaurant, error) {
	if f.UpdateFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateFunc(ctx, id, r)
}
func (f *FakeRestaurantService) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFunc == nil {
		return errNotUsed
	}
	return f.DeleteFunc(ctx, id)
}
func (f *FakeRestaurantService) Activate(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error) {
	if f.ActivateFunc == nil {
		return nil, errNotUsed
	}
	return f.ActivateFunc(ctx, id)
}
func (f *FakeRestaurantService) DeletePhysical(ctx context.Context, id uuid.UUID) error {
	if f.DeletePhysicalFunc == nil {
		return errNotUsed
	}
	return f.DeletePhysicalFunc(ctx, id)
}

type FakeMenuItemService struct {
	FindAllFunc                   func(ctx context.Context) (menuitem.MenuItems, error)
	FindByIDFunc                  func(ctx context.Context, id uuid.UUID) (*menuitem.MenuItem, error)
	FindByRestaurantFunc          func(ctx context.Context, restaurantID uuid.UUID) (menuitem.MenuItems, error)
	FindAvailableByRestaurantFunc func(ctx context.Context, restaurantID uuid.UUID) (menuitem.MenuItems, error)
	SearchByCategoryFunc          func(ctx context.Context, category string) (menuitem.MenuItems, error)
	SearchByNameFunc              func(ctx context.Context, name string) (menuitem.MenuItems, error)
	CreateFunc                    func(ctx context.Context, m menuitem.MenuItem) (*menuitem.MenuItem, error)
	UpdateFunc                    func(ctx context.Context, id uuid.UUID, m menuitem.MenuItem, available *bool) (*menuitem.MenuItem, error)
	UpdateAvailabilityFunc        func(ctx context.Context, id uuid.UUID, available bool) (*menuitem.MenuItem, error)
	DeleteFunc                    func(ctx context.Context, id uuid.UUID) error
	DeletePhysicalFunc            func(ctx context.Context, id uuid.UUID) error
}

func (f *FakeMenuItemService) FindAll(ctx context.Context) (menuitem.MenuItems, error) {
	if f.FindAllFunc == nil {
		return nil, errNotUsed
	}
	return f.FindAllFunc(ctx)
}
func (f *FakeMenuItemService) FindByID(ctx context.Context, id uuid.UUID) (*menuitem.MenuItem, error) {
	if f.FindByIDFunc == nil {
		return nil, errNotUsed
	}
	return f.FindByIDFunc(ctx, id)
}
func (f *FakeMenuItemService) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) (menuitem.MenuItems, error) {
	if f.FindByRestaurantFunc == nil {
		return nil, errNotUsed
	}
	return f.FindByRestaurantFunc(ctx, restaurantID)
}
func (f *FakeMenuItemService) FindAvailableByRestaurant(ctx context.Context, restaurantID uuid.UUID) (menuitem.MenuItems, error) {
	if f.FindAvailableByRestaurantFunc == nil {
		return nil, errNotUsed
	}
	return f.FindAvailableByRestaurantFunc(ctx, restaurantID)
}
func (f *FakeMenuItemService) SearchByCategory(ctx context.Context, category string) (menuitem.MenuItems, error) {
	if f.SearchByCategoryFunc == nil {
		return nil, errNotUsed
	}
	return f.SearchByCategoryFunc(ctx, category)
}
func (f *FakeMenuItemService) SearchByName(ctx context.Context, name string) (menuitem.MenuItems, error) {
	if f.SearchByNameFunc == nil {
		return nil, errNotUsed
	}
	return f.SearchByNameFunc(ctx, name)
}
func (f *FakeMenuItemService) Create(ctx context.Context, m menuitem.MenuItem) (*menuitem.MenuItem, error) {
	if f.CreateFunc == nil {
		return nil, errNotUsed
	}
	return f.CreateFunc(ctx, m)
}
func (f *FakeMenuItemService) Update(ctx context.Context, id uuid.UUID, m menuitem.MenuItem, available *bool) (*menuitem.MenuItem, error) {
	if f.UpdateFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateFunc(ctx, id, m, available)
}
func (f *FakeMenuItemService) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) (*menuitem.MenuItem, error) {
	if f.UpdateAvailabilityFunc == nil {
		return nil, errNotUsed
	}
	return f.UpdateAvailabilityFunc(ctx, id, available)
}
func (f *FakeMenuItemService) Delete(ctx context.Context, id uuid.UUID) error {
	if f.DeleteFunc == nil {
		return errNotUsed
	}
	return f.DeleteFunc(ctx, id)
}
func (f *FakeMenuItemService) DeletePhysical(ctx context.Context, id uuid.UUID) error {
	if f.DeletePhysicalFunc == nil {
		return errNotUsed
	}
	return f.DeletePhysicalFunc(ctx, id)
}

type fakeAuthService struct {
	LoginFunc func(ctx context.Context, identifier, password string) (string, error)
}

func (f *fakeAuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	if f.LoginFunc == nil {
		return "", errNotUsed
	}
	return f.LoginFunc(ctx, identifier, password)
}

// fakeVerifier accepts any token that is itself a UUID.
type fakeVerifier struct{}

func (fakeVerifier) Verify(token string) (string, error) {
	if _, err := uuid.Parse(token); err != nil {
		return "", errors.New("bad token")
	}
	return token, nil
}

type fakeS3 struct{}

func (fakeS3) GetPublicURL(key string) string { return "https://cdn.test/" + key }
func (fakeS3) GetBucket() string              { return "cdn" }
func (s fakeS3) ResolveURL(ref string) string {
	if ref == "" || strings.HasPrefix(ref, "https://") {
		return ref
	}
	return s.GetPublicURL(ref)
}

func passThrough(c *gin.Context) { c.Next() }

func newTestRouter(t *testing.T, svc Services) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r, err := NewEngine(nil)
	require.NoError(t, err)
	Register(r, zap.NewNop(), fakeVerifier{}, fakeS3{}, passThrough, svc)
	return r
}

func bearer(id uuid.UUID) map[string]string {
	return map[string]string{"Authorization": "Bearer " + id.String()}
}

func doReq(t *testing.T, r *gin.Engine, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	var buf *bytes.Reader
	switch v := body.(type) {
	case nil:
		buf = bytes.NewReader(nil)
	case string:
		buf = bytes.NewReader([]byte(v))
	default:
		b, err := json.Marshal(v)
		require.NoError(t, err)
		buf = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, path, buf)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rr := httptest.NewRecorder()
	r.ServeHTTP(rr, req)
	return rr
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) respond.ErrorBody {
	t.Helper()
	var body respond.ErrorBody
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}
