package typeuser

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"food-delivery-api/internal/application/apperr"
	"food-delivery-api/internal/domain/typeuser"
	"food-delivery-api/internal/infrastructure/db/postgres"
)

var (
	ErrNameAlreadyExists  = apperr.Conflict("type user name already registered")
	ErrTypeUserReferenced = apperr.Conflict("type user is still referenced by users")
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) typeuser.Repository {
	return &Repository{db: db}
}

func scanTypeUser(row pgx.Row) (*TypeUser, error) {
	t := new(TypeUser)
	if err := row.Scan(
		&t.ID,
		&t.Name,
		&t.Description,
		&t.IsActive,
		&t.CreatedAt,
		&t.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*typeuser.TypeUser, error) {
	t, err := scanTypeUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		if postgres.IsPgUniqueViolation(err) {
			return nil, ErrNameAlreadyExists
		}
		return nil, err
	}

	return fromDBModel(t), nil
}

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*typeuser.TypeUser, error) {
	return r.fetchOne(ctx, SelectTypeUserByID, id)
}

func (r *Repository) FetchByName(ctx context.Context, name string) (*typeuser.TypeUser, error) {
	return r.fetchOne(ctx, SelectTypeUserByName, name)
}

func (r *Repository) FetchActive(ctx context.Context) (typeuser.TypeUsers, error) {
	rows, err := r.db.Query(ctx, SelectActiveTypeUsers)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ts TypeUsers
	for rows.Next() {
		t, err := scanTypeUser(rows)
		if err != nil {
			return nil, err
		}
		ts = append(ts, t)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(ts), nil
}

func (r *Repository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, ExistsTypeUserByName, name).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *Repository) Create(ctx context.Context, req typeuser.TypeUser) (*typeuser.TypeUser, error) {
	return r.fetchOne(ctx, InsertTypeUser, req.Name, req.Description)
}

func (r *Repository) Update(ctx context.Context, req typeuser.TypeUser) (*typeuser.TypeUser, error) {
	return r.fetchOne(ctx, UpdateTypeUserByID, req.ID, req.Name, req.Description)
}

func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := r.db.Exec(ctx, SetTypeUserActiveByID, id, active)
	return err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteTypeUserByID, id)
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return false, ErrTypeUserReferenced
		}
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
