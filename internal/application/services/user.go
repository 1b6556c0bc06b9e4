package services

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"food-delivery-api/internal/application/apperr"
	"food-delivery-api/internal/application/identity"
	"food-delivery-api/internal/application/ports"
	"food-delivery-api/internal/domain/paging"
	"food-delivery-api/internal/domain/typeuser"
	domain "food-delivery-api/internal/domain/user"
	"food-delivery-api/internal/infrastructure/mq"
	"food-delivery-api/internal/interface/api/rest/dto/user"
)

const entityUser = "user"

var (
	ErrUserNotFound         = apperr.BadRequest("user not found")
	ErrUserInactive         = apperr.BadRequest("user is not active")
	ErrEmailTaken           = apperr.Conflict("email already registered")
	ErrPhoneTaken           = apperr.Conflict("phone already registered")
	ErrTypeUserUnavailable  = apperr.BadRequest("type user not found or inactive")
	ErrCurrentPasswordWrong = apperr.BadRequest("current password does not match")
)

type UserService struct {
	userRepository     domain.Repository
	typeUserRepository typeuser.Repository
	hasher             ports.PasswordHasher
	authz              ports.Authorizer
	mq                 ports.EventPublisher
	logger             *zap.Logger
	mCounter           *prometheus.CounterVec
}

func NewUserService(
	userRepository domain.Repository,
	typeUserRepository typeuser.Repository,
	hasher ports.PasswordHasher,
	authz ports.Authorizer,
	mq ports.EventPublisher,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.UserService {
	return &UserService{
		userRepository:     userRepository,
		typeUserRepository: typeUserRepository,
		hasher:             hasher,
		authz:              authz,
		mq:                 mq,
		logger:             logger,
		mCounter:           mCounter,
	}
}

func (us *UserService) publish(method string, u *domain.User) {
	us.mq.Publish(mq.NewEvent(method, entityUser, u.ID, user.ToResponseUser(*u)))
}

// activeUser loads a user and rejects missing or deactivated records.
func (us *UserService) activeUser(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}

	return u, nil
}

func (us *UserService) checkTypeUser(ctx context.Context, id *domain.UUID) error {
	if id == nil {
		return nil
	}
	t, err := us.typeUserRepository.FetchByID(ctx, *id)
	if err != nil {
		return err
	}
	if t == nil || !t.IsActive {
		return ErrTypeUserUnavailable
	}
	return nil
}

func (us *UserService) checkEmailFree(ctx context.Context, email string) error {
	taken, err := us.userRepository.ExistsByEmail(ctx, email)
	if err != nil {
		return err
	}
	if taken {
		us.logger.Warn("email already registered", zap.String("email", email))
		return ErrEmailTaken
	}
	return nil
}

func (us *UserService) checkPhoneFree(ctx context.Context, phone string) error {
	taken, err := us.userRepository.ExistsByPhone(ctx, phone)
	if err != nil {
		return err
	}
	if taken {
		us.logger.Warn("phone already registered", zap.String("phone", phone))
		return ErrPhoneTaken
	}
	return nil
}

func (us *UserService) CreateUser(ctx context.Context, u domain.User, password string) (*domain.User, error) {
	u.Email = normalizeEmail(u.Email)

	if err := us.checkEmailFree(ctx, u.Email); err != nil {
		return nil, err
	}
	if err := us.checkPhoneFree(ctx, u.Phone); err != nil {
		return nil, err
	}
	if err := us.checkTypeUser(ctx, u.TypeUserID); err != nil {
		return nil, err
	}

	hash, err := us.hasher.Hash(password)
	if err != nil {
		return nil, err
	}
	u.PasswordHash = hash
	u.IsActive = true

	uRet, err := us.userRepository.CreateUser(ctx, u)
	if err != nil {
		return nil, err
	}

	us.publish(http.MethodPost, uRet)
	us.mCounter.WithLabelValues("user_created_total").Inc()

	return uRet, nil
}

func (us *UserService) FindUserByID(ctx context.Context, id domain.UUID) (*domain.User, error) {
	return us.activeUser(ctx, id)
}

func (us *UserService) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}
	if !u.IsActive {
		return nil, ErrUserInactive
	}

	return u, nil
}

func (us *UserService) FindUsers(ctx context.Context) (domain.Users, error) {
	return us.userRepository.FetchActiveUsers(ctx)
}

func (us *UserService) FindUsersPaged(ctx context.Context, req paging.Request) (domain.Page, error) {
	req = req.Normalize()

	users, total, err := us.userRepository.FetchActiveUsersPage(ctx, req)
	if err != nil {
		return domain.Page{}, err
	}

	return domain.Page{Items: users, Total: total, Page: req.Page, Size: req.Size}, nil
}

func (us *UserService) UpdateUser(ctx context.Context, id domain.UUID, p domain.Patch) (*domain.User, error) {
	u, err := us.activeUser(ctx, id)
	if err != nil {
		return nil, err
	}

	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		email := normalizeEmail(*p.Email)
		if email != u.Email {
			if err = us.checkEmailFree(ctx, email); err != nil {
				return nil, err
			}
			u.Email = email
		}
	}
	if p.Phone != nil && *p.Phone != u.Phone {
		if err = us.checkPhoneFree(ctx, *p.Phone); err != nil {
			return nil, err
		}
		u.Phone = *p.Phone
	}
	if p.Password != nil {
		if u.PasswordHash, err = us.hasher.Hash(*p.Password); err != nil {
			return nil, err
		}
	}
	if p.BirthDate != nil {
		u.BirthDate = p.BirthDate
	}
	if p.Address != nil {
		u.Address = p.Address
	}
	if p.TypeUserID != nil && (u.TypeUserID == nil || *u.TypeUserID != *p.TypeUserID) {
		if err = us.checkTypeUser(ctx, p.TypeUserID); err != nil {
			return nil, err
		}
		u.TypeUserID = p.TypeUserID
	}

	uRet, err := us.userRepository.UpdateUser(ctx, *u)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, ErrUserNotFound
	}

	us.publish(http.MethodPut, uRet)
	us.mCounter.WithLabelValues("user_updated_total").Inc()

	return uRet, nil
}

func (us *UserService) setActive(ctx context.Context, id domain.UUID, active bool) (*domain.User, error) {
	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrUserNotFound
	}

	uRet, err := us.userRepository.SetActive(ctx, id, active)
	if err != nil {
		return nil, err
	}
	if uRet == nil {
		return nil, ErrUserNotFound
	}

	return uRet, nil
}

func (us *UserService) DeactivateUser(ctx context.Context, id domain.UUID) error {
	u, err := us.setActive(ctx, id, false)
	if err != nil {
		return err
	}

	us.publish(http.MethodDelete, u)
	us.mCounter.WithLabelValues("user_deactivated_total").Inc()

	return nil
}

func (us *UserService) ActivateUser(ctx context.Context, id domain.UUID) (*domain.User, error) {
	u, err := us.setActive(ctx, id, true)
	if err != nil {
		return nil, err
	}

	us.publish(http.MethodPatch, u)
	us.mCounter.WithLabelValues("user_activated_total").Inc()

	return u, nil
}

func (us *UserService) ChangePassword(ctx context.Context, id domain.UUID, current, next string) error {
	u, err := us.activeUser(ctx, id)
	if err != nil {
		return err
	}
	if !us.hasher.Verify(current, u.PasswordHash) {
		us.logger.Warn("password change rejected", zap.Stringer("user_id", id))
		return ErrCurrentPasswordWrong
	}

	hash, err := us.hasher.Hash(next)
	if err != nil {
		return err
	}
	if err = us.userRepository.UpdatePassword(ctx, id, hash); err != nil {
		return err
	}

	us.publish(http.MethodPatch, u)
	us.mCounter.WithLabelValues("user_password_changed_total").Inc()

	return nil
}

func (us *UserService) CountActive(ctx context.Context) (int64, error) {
	return us.userRepository.CountActive(ctx)
}

func (us *UserService) FindByType(ctx context.Context, typeUserID domain.UUID) (domain.Users, error) {
	return us.userRepository.FetchActiveByType(ctx, typeUserID)
}

func (us *UserService) CountByType(ctx context.Context, typeUserID domain.UUID) (int64, error) {
	return us.userRepository.CountActiveByType(ctx, typeUserID)
}

func (us *UserService) DeleteUserPhysical(ctx context.Context, id domain.UUID) error {
	if err := us.authz.RequireAdmin(ctx); err != nil {
		return err
	}

	u, err := us.userRepository.FetchUserByID(ctx, id)
	if err != nil {
		return err
	}
	if u == nil {
		return ErrUserNotFound
	}

	deleted, err := us.userRepository.DeleteUser(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrUserNotFound
	}

	us.logger.Info("user physically deleted", zap.Stringer("user_id", id))
	us.publish(http.MethodDelete, u)
	us.mCounter.WithLabelValues("user_deleted_total").Inc()

	return nil
}

func (us *UserService) CurrentUser(ctx context.Context) (*domain.User, error) {
	id, ok := identity.UserIDFrom(ctx)
	if !ok {
		return nil, apperr.Unauthenticated("authentication required")
	}

	return us.activeUser(ctx, id)
}
