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
	"food-delivery-api/internal/domain/paging"
	"food-delivery-api/internal/domain/restaurant"
	"food-delivery-api/internal/domain/user"
	"food-delivery-api/internal/infrastructure/mq"
	dto "food-delivery-api/internal/interface/api/rest/dto/restaurant"
)

const entityRestaurant = "restaurant"

var (
	ErrRestaurantNotFound = apperr.BadRequest("restaurant not found")
	ErrRestaurantInactive = apperr.BadRequest("restaurant is not active")
	ErrOwnerNotFound      = apperr.BadRequest("owner not found")
	ErrCNPJTaken          = apperr.Conflict("cnpj already registered")
	ErrRestaurantEmail    = apperr.Conflict("restaurant email already registered")
)

type RestaurantService struct {
	repository     restaurant.Repository
	itemRepository menuitem.Repository
	userRepository user.Repository
	authz          ports.Authorizer
	mq             ports.EventPublisher
	logger         *zap.Logger
	mCounter       *prometheus.CounterVec
}

func NewRestaurantService(
	repository restaurant.Repository,
	itemRepository menuitem.Repository,
	userRepository user.Repository,
	authz ports.Authorizer,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.RestaurantService {
	return &RestaurantService{
		repository:     repository,
		itemRepository: itemRepository,
		userRepository: userRepository,
		authz:          authz,
		mq:             mq,
		logger:         logger,
		mCounter:       mCounter,
	}
}

func (rs *RestaurantService) publish(method string, r *restaurant.Restaurant) {
	rs.mq.Publish(mq.NewEvent(method, entityRestaurant, r.ID, dto.ToResponse(*r, nil)))
}

func (rs *RestaurantService) fetch(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error) {
	r, err := rs.repository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, ErrRestaurantNotFound
	}
	return r, nil
}

func (rs *RestaurantService) fetchActive(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error) {
	r, err := rs.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !r.IsActive {
		return nil, ErrRestaurantInactive
	}
	return r, nil
}

// checkOwner accepts any existing user regardless of activity.
func (rs *RestaurantService) checkOwner(ctx context.Context, id uuid.UUID) error {
	u, err := rs.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		rs.logger.Warn("restaurant owner not found", zap.Stringer("owner_id", id))
		return ErrOwnerNotFound
	}
	return nil
}

func (rs *RestaurantService) checkTaxID(ctx context.Context, taxID string) error {
	taken, err := rs.repository.ExistsByTaxID(ctx, taxID)
	if err != nil {
		return err
	}
	if taken {
		rs.logger.Warn("cnpj already registered", zap.String("cnpj", taxID))
		return ErrCNPJTaken
	}
	return nil
}

func (rs *RestaurantService) checkEmail(ctx context.Context, email string) error {
	taken, err := rs.repository.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		rs.logger.Warn("restaurant email already registered", zap.String("email", email))
		return ErrRestaurantEmail
	}
	return nil
}

func (rs *RestaurantService) FindAll(ctx context.Context) (restaurant.Restaurants, error) {
	return rs.repository.FetchActive(ctx)
}

func (rs *RestaurantService) FindPaged(ctx context.Context, req paging.Request) (restaurant.Page, error) {
	req = req.Normalize()

	items, total, err := rs.repository.FetchActivePage(ctx, req)
	if err != nil {
		return restaurant.Page{}, err
	}

	return restaurant.Page{Items: items, Total: total, Page: req.Page, Size: req.Size}, nil
}

func (rs *RestaurantService) FindByID(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error) {
	r, err := rs.fetchActive(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.MenuItems, err = rs.itemRepository.FetchByRestaurant(ctx, id, false); err != nil {
		return nil, err
	}

	return r, nil
}

func (rs *RestaurantService) FindByOwner(ctx context.Context, ownerID uuid.UUID) (restaurant.Restaurants, error) {
	return rs.repository.FetchByOwner(ctx, ownerID)
}

func (rs *RestaurantService) SearchByCuisine(ctx context.Context, cuisine string) (restaurant.Restaurants, error) {
	return rs.repository.SearchByCuisine(ctx, strings.TrimSpace(cuisine))
}

func (rs *RestaurantService) SearchByName(ctx context.Context, name string) (restaurant.Restaurants, error) {
	return rs.repository.SearchByName(ctx, normalizeTerm(name))
}

func (rs *RestaurantService) Create(ctx context.Context, r restaurant.Restaurant) (*restaurant.Restaurant, error) {
	r.Email = normalizeEmail(r.Email)

	if err := rs.checkTaxID(ctx, r.TaxID); err != nil {
		return nil, err
	}
	if err := rs.checkEmail(ctx, r.Email); err != nil {
		return nil, err
	}
	if err := rs.checkOwner(ctx, r.OwnerID); err != nil {
		return nil, err
	}

	r.IsActive = true
	rRet, err := rs.repository.Create(ctx, r)
	if err != nil {
		return nil, err
	}

	rs.publish(http.MethodPost, rRet)
	rs.mCounter.WithLabelValues("restaurant_created_total").Inc()

	return rRet, nil
}

func (rs *RestaurantService) Update(ctx context.Context, id uuid.UUID, r restaurant.Restaurant) (*restaurant.Restaurant, error) {
	current, err := rs.fetchActive(ctx, id)
	if err != nil {
		return nil, err
	}

	if r.TaxID != current.TaxID {
		if err = rs.checkTaxID(ctx, r.TaxID); err != nil {
			return nil, err
		}
	}
	email := normalizeEmail(r.Email)
	if email != current.Email {
		if err = rs.checkEmail(ctx, email); err != nil {
			return nil, err
		}
	}
	if r.OwnerID != uuid.Nil && r.OwnerID != current.OwnerID {
		if err = rs.checkOwner(ctx, r.OwnerID); err != nil {
			return nil, err
		}
		current.OwnerID = r.OwnerID
	}

	current.Name = r.Name
	current.Description = r.Description
	current.Cuisine = r.Cuisine
	current.TaxID = r.TaxID
	current.Phone = r.Phone
	current.Email = email
	current.OpeningTime = r.OpeningTime
	current.ClosingTime = r.ClosingTime
	if r.Address != nil {
		current.Address = r.Address
	}

	rRet, err := rs.repository.Update(ctx, *current)
	if err != nil {
		return nil, err
	}
	if rRet == nil {
		return nil, ErrRestaurantNotFound
	}

	rs.publish(http.MethodPut, rRet)
	rs.mCounter.WithLabelValues("restaurant_updated_total").Inc()

	return rRet, nil
}

func (rs *RestaurantService) setActive(ctx context.Context, id uuid.UUID, active bool) (*restaurant.Restaurant, error) {
	r, err := rs.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = rs.repository.SetActive(ctx, id, active); err != nil {
		return nil, err
	}

	r.IsActive = active
	return r, nil
}

func (rs *RestaurantService) Delete(ctx context.Context, id uuid.UUID) error {
	r, err := rs.setActive(ctx, id, false)
	if err != nil {
		return err
	}

	rs.publish(http.MethodDelete, r)
	rs.mCounter.WithLabelValues("restaurant_deactivated_total").Inc()

	return nil
}

func (rs *RestaurantService) Activate(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error) {
	r, err := rs.setActive(ctx, id, true)
	if err != nil {
		return nil, err
	}

	rs.publish(http.MethodPatch, r)
	rs.mCounter.WithLabelValues("restaurant_activated_total").Inc()

	return r, nil
}

func (rs *RestaurantService) DeletePhysical(ctx context.Context, id uuid.UUID) error {
	if err := rs.authz.RequireAdmin(ctx); err != nil {
		return err
	}

	r, err := rs.fetch(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := rs.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrRestaurantNotFound
	}

	rs.logger.Info("restaurant physically deleted", zap.Stringer("restaurant_id", id))
	rs.publish(http.MethodDelete, r)
	rs.mCounter.WithLabelValues("restaurant_deleted_total").Inc()

	return nil
}
