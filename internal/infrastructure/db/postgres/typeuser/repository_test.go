package typeuser

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "food-delivery-api/internal/domain/typeuser"
)

var cols = []string{"id", "name", "description", "is_active", "created_at", "updated_at"}

func newMock(t *testing.T) (pgxmock.PgxPoolIface, *Repository) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)

	return mock, &Repository{db: mock}
}

func TestRepository_FetchByID(t *testing.T) {
	id := uuid.New()
	now := time.Now()

	tests := []struct {
		name  string
		setup func(m pgxmock.PgxPoolIface)
		want  *domain.TypeUser
	}{
		{
			name: "found",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta("FROM type_users")).WithArgs(id).
					WillReturnRows(pgxmock.NewRows(cols).AddRow(id, "Cliente", "Cliente do sistema", true, now, now))
			},
			want: &domain.TypeUser{ID: id, Name: "Cliente", Description: "Cliente do sistema", IsActive: true, CreatedAt: now, UpdatedAt: now},
		},
		{
			name: "missing",
			setup: func(m pgxmock.PgxPoolIface) {
				m.ExpectQuery(regexp.QuoteMeta("FROM type_users")).WithArgs(id).
					WillReturnError(pgx.ErrNoRows)
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			mock, repo := newMock(t)
			tt.setup(mock)

			got, err := repo.FetchByID(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FetchActive(t *testing.T) {
	mock, repo := newMock(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta(SelectActiveTypeUsers)).
		WillReturnRows(pgxmock.NewRows(cols).
			AddRow(uuid.New(), "Administrador", "", true, now, now).
			AddRow(uuid.New(), "Cliente", "", true, now, now))

	ts, err := repo.FetchActive(context.Background())
	require.NoError(t, err)
	require.Len(t, ts, 2)
	assert.Equal(t, "Administrador", ts[0].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Create_Duplicate(t *testing.T) {
	mock, repo := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO type_users")).
		WithArgs("Cliente", "").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "type_users_name_key"})

	got, err := repo.Create(context.Background(), domain.TypeUser{Name: "Cliente"})
	assert.Nil(t, got)
	assert.ErrorIs(t, err, ErrNameAlreadyExists)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_Delete_Referenced(t *testing.T) {
	mock, repo := newMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(DeleteTypeUserByID)).WithArgs(id).
		WillReturnError(&pgconn.PgError{Code: "23503"})

	ok, err := repo.Delete(context.Background(), id)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrTypeUserReferenced)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_SetActive(t *testing.T) {
	mock, repo := newMock(t)
	id := uuid.New()

	mock.ExpectExec(regexp.QuoteMeta(SetTypeUserActiveByID)).WithArgs(id, false).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, repo.SetActive(context.Background(), id, false))
	assert.NoError(t, mock.ExpectationsWereMet())
}
