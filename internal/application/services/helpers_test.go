package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"food-delivery-api/internal/application/identity"
	"food-delivery-api/internal/application/services/servicestest"
	"food-delivery-api/internal/domain/typeuser"
	"food-delivery-api/internal/domain/user"
	"food-delivery-api/internal/infrastructure/hasher"
)

func testCounter() *prometheus.CounterVec {
	return prometheus.NewCounterVec(prometheus.CounterOpts{Name: "test_counters"}, []string{"result"})
}

func testHasher() *hasher.Bcrypt { return hasher.New(bcrypt.MinCost) }

func seedTypeUser(t *testing.T, store *servicestest.Store, name string, active bool) *typeuser.TypeUser {
	t.Helper()
	tu, err := store.TypeUsers().Create(context.Background(), typeuser.TypeUser{Name: name, IsActive: active})
	require.NoError(t, err)
	return tu
}

func seedUser(t *testing.T, store *servicestest.Store, u user.User) *user.User {
	t.Helper()
	if u.PasswordHash == "" {
		h, err := testHasher().Hash("secret123")
		require.NoError(t, err)
		u.PasswordHash = h
	}
	created, err := store.Users().CreateUser(context.Background(), u)
	require.NoError(t, err)
	return created
}

func as(id uuid.UUID) context.Context {
	return identity.WithUserID(context.Background(), id)
}
