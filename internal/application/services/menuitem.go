package services

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"food-delivery-api/internal/application/apperr"
	"food-delivery-api/internal/application/ports"
	"food-delivery-api/internal/domain/menuitem"
	"food-delivery-api/internal/domain/restaurant"
	"food-delivery-api/internal/infrastructure/mq"
	dto "food-delivery-api/internal/interface/api/rest/dto/menuitem"
)

const entityMenuItem = "menu_item"

var (
	ErrMenuItemNotFound = apperr.BadRequest("menu item not found")
	ErrMenuItemInactive = apperr.BadRequest("menu item is not active")
)

type MenuItemService struct {
	repository           menuitem.Repository
	restaurantRepository restaurant.Repository
	authz                ports.Authorizer
	mq                   ports.EventPublisher
	logger               *zap.Logger
	mCounter             *prometheus.CounterVec
}

func NewMenuItemService(
	repository menuitem.Repository,
	restaurantRepository restaurant.Repository,
	authz ports.Authorizer,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.MenuItemService {
	return &MenuItemService{
		repository:           repository,
		restaurantRepository: restaurantRepository,
		authz:                authz,
		mq:                   mq,
		logger:               logger,
		mCounter:             mCounter,
	}
}

func (ms *MenuItemService) publish(method string, m *menuitem.MenuItem) {
	ms.mq.Publish(mq.NewEvent(method, entityMenuItem, m.ID, dto.ToResponse(*m, nil)))
}

func (ms *MenuItemService) fetch(ctx context.Context, id uuid.UUID) (*menuitem.MenuItem, error) {
	m, err := ms.repository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if m == nil {
		return nil, ErrMenuItemNotFound
	}
	return m, nil
}

func (ms *MenuItemService) fetchActive(ctx context.Context, id uuid.UUID) (*menuitem.MenuItem, error) {
	m, err := ms.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !m.IsActive {
		return nil, ErrMenuItemInactive
	}
	return m, nil
}

func (ms *MenuItemService) FindAll(ctx context.Context) (menuitem.MenuItems, error) {
	return ms.repository.FetchActive(ctx)
}

func (ms *MenuItemService) FindByID(ctx context.Context, id uuid.UUID) (*menuitem.MenuItem, error) {
	return ms.fetchActive(ctx, id)
}

func (ms *MenuItemService) FindByRestaurant(ctx context.Context, restaurantID uuid.UUID) (menuitem.MenuItems, error) {
	return ms.repository.FetchByRestaurant(ctx, restaurantID, false)
}

func (ms *MenuItemService) FindAvailableByRestaurant(ctx context.Context, restaurantID uuid.UUID) (menuitem.MenuItems, error) {
	return ms.repository.FetchByRestaurant(ctx, restaurantID, true)
}

func (ms *MenuItemService) SearchByCategory(ctx context.Context, category string) (menuitem.MenuItems, error) {
	return ms.repository.SearchByCategory(ctx, strings.TrimSpace(category))
}

func (ms *MenuItemService) SearchByName(ctx context.Context, name string) (menuitem.MenuItems, error) {
	return ms.repository.SearchByName(ctx, normalizeTerm(name))
}

// Create only attaches items to an existing, active restaurant.
func (ms *MenuItemService) Create(ctx context.Context, m menuitem.MenuItem) (*menuitem.MenuItem, error) {
	r, err := ms.restaurantRepository.FetchByID(ctx, m.RestaurantID)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRestaurantNotFound
	}
	if !r.IsActive {
		ms.logger.Warn("menu item rejected for inactive restaurant", zap.Stringer("restaurant_id", r.ID))
		return nil, ErrRestaurantInactive
	}

	m.IsActive = true
	mRet, err := ms.repository.Create(ctx, m)
	if err != nil {
		return nil, err
	}

	ms.publish(http.MethodPost, mRet)
	ms.mCounter.WithLabelValues("menu_item_created_total").Inc()

	return mRet, nil
}

// Update replaces the editable fields; a nil available keeps the current availability.
func (ms *MenuItemService) Update(ctx context.Context, id uuid.UUID, m menuitem.MenuItem, available *bool) (*menuitem.MenuItem, error) {
	current, err := ms.fetchActive(ctx, id)
	if err != nil {
		return nil, err
	}

	current.Name = m.Name
	current.Description = m.Description
	current.Price = m.Price
	current.Category = m.Category
	current.ImageURL = m.ImageURL
	if available != nil {
		current.IsAvailable = *available
	}
	current.PreparationTime = m.PreparationTime

	mRet, err := ms.repository.Update(ctx, *current)
	if err != nil {
		return nil, err
	}
	if mRet == nil {
		return nil, ErrMenuItemNotFound
	}

	ms.publish(http.MethodPut, mRet)
	ms.mCounter.WithLabelValues("menu_item_updated_total").Inc()

	return mRet, nil
}

func (ms *MenuItemService) UpdateAvailability(ctx context.Context, id uuid.UUID, available bool) (*menuitem.MenuItem, error) {
	if _, err := ms.fetchActive(ctx, id); err != nil {
		return nil, err
	}

	mRet, err := ms.repository.SetAvailability(ctx, id, available)
	if err != nil {
		return nil, err
	}
	if mRet == nil {
		return nil, ErrMenuItemNotFound
	}

	ms.publish(http.MethodPatch, mRet)
	ms.mCounter.WithLabelValues("menu_item_availability_total").Inc()

	return mRet, nil
}

func (ms *MenuItemService) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := ms.fetch(ctx, id)
	if err != nil {
		return err
	}
	if err = ms.repository.SetActive(ctx, id, false); err != nil {
		return err
	}

	m.IsActive = false
	ms.publish(http.MethodDelete, m)
	ms.mCounter.WithLabelValues("menu_item_deactivated_total").Inc()

	return nil
}

func (ms *MenuItemService) DeletePhysical(ctx context.Context, id uuid.UUID) error {
	if err := ms.authz.RequireAdmin(ctx); err != nil {
		return err
	}

	m, err := ms.fetch(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := ms.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrMenuItemNotFound
	}

	ms.logger.Info("menu item physically deleted", zap.Stringer("menu_item_id", id))
	ms.publish(http.MethodDelete, m)
	ms.mCounter.WithLabelValues("menu_item_deleted_total").Inc()

	return nil
}
