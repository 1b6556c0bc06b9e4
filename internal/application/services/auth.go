package services

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"food-delivery-api/internal/application/apperr"
	"food-delivery-api/internal/application/ports"
	"food-delivery-api/internal/domain/user"
)

var ErrInvalidCredentials = apperr.Unauthenticated("invalid credentials")

type AuthService struct {
	userRepository user.Repository
	hasher         ports.PasswordHasher
	issuer         ports.TokenIssuer
	logger         *zap.Logger
	mCounter       *prometheus.CounterVec
}

func NewAuthService(
	userRepository user.Repository,
	hasher ports.PasswordHasher,
	issuer ports.TokenIssuer,
	logger *zap.Logger,
	mCounter *prometheus.CounterVec,
) ports.Auth {
	return &AuthService{
		userRepository: userRepository,
		hasher:         hasher,
		issuer:         issuer,
		logger:         logger,
		mCounter:       mCounter,
	}
}

// Login answers unknown, inactive and wrong-password accounts with the same error.
func (as *AuthService) Login(ctx context.Context, identifier, password string) (string, error) {
	u, err := as.userRepository.FetchUserByEmail(ctx, normalizeEmail(identifier))
	if err != nil {
		return "", err
	}
	if u == nil || !u.IsActive || !as.hasher.Verify(password, u.PasswordHash) {
		as.mCounter.WithLabelValues("login_failed_total").Inc()
		return "", ErrInvalidCredentials
	}

	token, err := as.issuer.Issue(u.ID.String())
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}

	as.mCounter.WithLabelValues("login_succeeded_total").Inc()

	return token, nil
}
