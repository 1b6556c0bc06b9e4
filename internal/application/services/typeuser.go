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
	"food-delivery-api/internal/domain/typeuser"
	"food-delivery-api/internal/infrastructure/mq"
	dto "food-delivery-api/internal/interface/api/rest/dto/typeuser"
)

const entityTypeUser = "type_user"

var (
	ErrTypeUserNotFound = apperr.BadRequest("type user not found")
	ErrTypeUserInactive = apperr.BadRequest("type user is not active")
	ErrTypeUserNameUsed = apperr.Conflict("type user name already registered")
)

type TypeUserService struct {
	repository typeuser.Repository
	authz      ports.Authorizer
	mq         ports.EventPublisher
	logger     *zap.Logger
	mCounter   *prometheus.CounterVec
}

func NewTypeUserService(
	repository typeuser.Repository,
	authz ports.Authorizer,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.TypeUserService {
	return &TypeUserService{
		repository: repository,
		authz:      authz,
		mq:         mq,
		logger:     logger,
		mCounter:   mCounter,
	}
}

func (ts *TypeUserService) publish(method string, t *typeuser.TypeUser) {
	ts.mq.Publish(mq.NewEvent(method, entityTypeUser, t.ID, dto.ToResponse(*t)))
}

func (ts *TypeUserService) fetch(ctx context.Context, id uuid.UUID) (*typeuser.TypeUser, error) {
	t, err := ts.repository.FetchByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, ErrTypeUserNotFound
	}
	return t, nil
}

func (ts *TypeUserService) FindAll(ctx context.Context) (typeuser.TypeUsers, error) {
	return ts.repository.FetchActive(ctx)
}

func (ts *TypeUserService) FindByID(ctx context.Context, id uuid.UUID) (*typeuser.TypeUser, error) {
	t, err := ts.fetch(ctx, id)
	if err != nil {
		return nil, err
	}
	if !t.IsActive {
		return nil, ErrTypeUserInactive
	}
	return t, nil
}

func (ts *TypeUserService) Create(ctx context.Context, t typeuser.TypeUser) (*typeuser.TypeUser, error) {
	t.Name = strings.TrimSpace(t.Name)

	taken, err := ts.repository.ExistsByName(ctx, t.Name)
	if err != nil {
		return nil, err
	}
	if taken {
		ts.logger.Warn("type user name already registered", zap.String("name", t.Name))
		return nil, ErrTypeUserNameUsed
	}

	t.IsActive = true
	tRet, err := ts.repository.Create(ctx, t)
	if err != nil {
		return nil, err
	}

	ts.publish(http.MethodPost, tRet)
	ts.mCounter.WithLabelValues("type_user_created_total").Inc()

	return tRet, nil
}

func (ts *TypeUserService) Update(ctx context.Context, id uuid.UUID, t typeuser.TypeUser) (*typeuser.TypeUser, error) {
	current, err := ts.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(t.Name)
	if name != current.Name {
		other, err := ts.repository.FetchByName(ctx, name)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != id {
			ts.logger.Warn("type user name already registered", zap.String("name", name))
			return nil, ErrTypeUserNameUsed
		}
	}

	current.Name = name
	current.Description = t.Description

	tRet, err := ts.repository.Update(ctx, *current)
	if err != nil {
		return nil, err
	}
	if tRet == nil {
		return nil, ErrTypeUserNotFound
	}

	ts.publish(http.MethodPut, tRet)
	ts.mCounter.WithLabelValues("type_user_updated_total").Inc()

	return tRet, nil
}

func (ts *TypeUserService) Delete(ctx context.Context, id uuid.UUID) error {
	t, err := ts.fetch(ctx, id)
	if err != nil {
		return err
	}
	if err = ts.repository.SetActive(ctx, id, false); err != nil {
		return err
	}

	t.IsActive = false
	ts.publish(http.MethodDelete, t)
	ts.mCounter.WithLabelValues("type_user_deactivated_total").Inc()

	return nil
}

func (ts *TypeUserService) DeletePhysical(ctx context.Context, id uuid.UUID) error {
	if err := ts.authz.RequireAdmin(ctx); err != nil {
		return err
	}

	t, err := ts.fetch(ctx, id)
	if err != nil {
		return err
	}

	deleted, err := ts.repository.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrTypeUserNotFound
	}

	ts.logger.Info("type user physically deleted", zap.Stringer("type_user_id", id))
	ts.publish(http.MethodDelete, t)
	ts.mCounter.WithLabelValues("type_user_deleted_total").Inc()

	return nil
}
