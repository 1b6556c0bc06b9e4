package services

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"food-delivery-api/internal/application/services/servicestest"
	"food-delivery-api/internal/domain/user"
)

type fakeIssuer struct {
	issueFunc func(subject string) (string, error)
}

func (f fakeIssuer) Issue(subject string) (string, error) { return f.issueFunc(subject) }

func TestAuthService_Login(t *testing.T) {
	store := servicestest.NewStore()
	active := seedUser(t, store, user.User{Name: "Ana", Email: "ana@mail.com", Phone: "1", IsActive: true})
	seedUser(t, store, user.User{Name: "Bia", Email: "bia@mail.com", Phone: "2"})

	issuer := fakeIssuer{issueFunc: func(subject string) (string, error) { return "token-" + subject, nil }}

	tests := []struct {
		name       string
		identifier string
		password   string
		wantToken  string
		wantErr    error
	}{
		{name: "ok", identifier: "ana@mail.com", password: "secret123", wantToken: "token-" + active.ID.String()},
		{name: "email is case insensitive", identifier: " ANA@mail.com", password: "secret123", wantToken: "token-" + active.ID.String()},
		{name: "wrong password", identifier: "ana@mail.com", password: "nope", wantErr: ErrInvalidCredentials},
		{name: "unknown user", identifier: "x@mail.com", password: "secret123", wantErr: ErrInvalidCredentials},
		{name: "inactive user", identifier: "bia@mail.com", password: "secret123", wantErr: ErrInvalidCredentials},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			counter := testCounter()
			svc := NewAuthService(store.Users(), testHasher(), issuer, zap.NewNop(), counter)

			token, err := svc.Login(context.Background(), tt.identifier, tt.password)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, token)
				assert.Equal(t, 1.0, testutil.ToFloat64(counter.WithLabelValues("login_failed_total")))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token)
		})
	}
}

func TestAuthService_Login_IssuerFailure(t *testing.T) {
	store := servicestest.NewStore()
	seedUser(t, store, user.User{Name: "Ana", Email: "ana@mail.com", Phone: "1", IsActive: true})

	issuer := fakeIssuer{issueFunc: func(string) (string, error) { return "", errors.New("boom") }}
	svc := NewAuthService(store.Users(), testHasher(), issuer, zap.NewNop(), testCounter())

	_, err := svc.Login(context.Background(), "ana@mail.com", "secret123")
	assert.EqualError(t, err, "failed to generate token: boom")
}
