package user

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"food-delivery-api/internal/application/apperr"
	"food-delivery-api/internal/domain/paging"
	"food-delivery-api/internal/domain/user"
	"food-delivery-api/internal/infrastructure/db/postgres"
)

var (
	ErrEmailAlreadyExists = apperr.Conflict("email already registered")
	ErrPhoneAlreadyExists = apperr.Conflict("phone already registered")
	ErrUserReferenced     = apperr.Conflict("user is still referenced by other records")
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) user.Repository {
	return &Repository{db: db}
}

func scanUser(row pgx.Row) (*User, error) {
	u := new(User)
	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Email,
		&u.PasswordHash,
		&u.Phone,
		&u.BirthDate,
		&u.TypeUserID,

		&u.Street,
		&u.Number,
		&u.Complement,
		&u.Neighborhood,
		&u.City,
		&u.State,
		&u.ZipCode,

		&u.IsActive,
		&u.CreatedAt,
		&u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return u, nil
}

// translate maps constraint violations onto domain conflicts.
func translate(err error) error {
	if name, ok := postgres.UniqueViolation(err); ok {
		if name == "users_phone_key" {
			return ErrPhoneAlreadyExists
		}
		return ErrEmailAlreadyExists
	}
	if postgres.IsPgForeignKeyViolation(err) {
		return ErrUserReferenced
	}
	return err
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*user.User, error) {
	u, err := scanUser(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate(err)
	}

	return fromDBModel(u), nil
}

func (r *Repository) fetchMany(ctx context.Context, b sq.SelectBuilder) (user.Users, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var us Users
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		us = append(us, u)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(us), nil
}

func activeUsers() sq.SelectBuilder {
	return postgres.Builder.
		Select(userColumns).
		From("users").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name ASC", "id ASC")
}

func (r *Repository) FetchUserByID(ctx context.Context, id user.UUID) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByID, id)
}

func (r *Repository) FetchUserByEmail(ctx context.Context, email string) (*user.User, error) {
	return r.fetchOne(ctx, SelectUserByEmail, email)
}

func (r *Repository) FetchActiveUsers(ctx context.Context) (user.Users, error) {
	return r.fetchMany(ctx, activeUsers())
}

func (r *Repository) FetchActiveByType(ctx context.Context, typeUserID user.UUID) (user.Users, error) {
	return r.fetchMany(ctx, activeUsers().Where(sq.Eq{"type_user_id": typeUserID}))
}

func (r *Repository) FetchActiveUsersPage(ctx context.Context, req paging.Request) (user.Users, int64, error) {
	total, err := r.CountActive(ctx)
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return user.Users{}, 0, nil
	}

	us, err := r.fetchMany(ctx, activeUsers().Limit(uint64(req.Size)).Offset(req.Offset()))
	if err != nil {
		return nil, 0, err
	}

	return us, total, nil
}

func (r *Repository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, query, arg).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, ExistsUserByEmail, email)
}

func (r *Repository) ExistsByPhone(ctx context.Context, phone string) (bool, error) {
	return r.exists(ctx, ExistsUserByPhone, phone)
}

func (r *Repository) CreateUser(ctx context.Context, req user.User) (*user.User, error) {
	args := append(
		[]any{req.Name, req.Email, req.PasswordHash, req.Phone, req.BirthDate, req.TypeUserID},
		addressArgs(req.Address)...,
	)

	u, err := r.fetchOne(ctx, InsertUser, args...)
	if err != nil {
		return nil, err
	}

	return u, nil
}

func (r *Repository) UpdateUser(ctx context.Context, req user.User) (*user.User, error) {
	args := append(
		[]any{req.Name, req.Email, req.PasswordHash, req.Phone, req.BirthDate, req.TypeUserID},
		addressArgs(req.Address)...,
	)
	args = append(args, req.ID)

	return r.fetchOne(ctx, UpdateUserByID, args...)
}

func (r *Repository) UpdatePassword(ctx context.Context, id user.UUID, hash string) error {
	_, err := r.db.Exec(ctx, UpdatePasswordByID, id, hash)
	return err
}

func (r *Repository) SetActive(ctx context.Context, id user.UUID, active bool) (*user.User, error) {
	return r.fetchOne(ctx, SetActiveByID, id, active)
}

func (r *Repository) count(ctx context.Context, query string, args ...any) (int64, error) {
	var n int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&n); err != nil {
		return 0, err
	}
	return n, nil
}

func (r *Repository) CountActive(ctx context.Context) (int64, error) {
	return r.count(ctx, CountActiveUsers)
}

func (r *Repository) CountActiveByType(ctx context.Context, typeUserID user.UUID) (int64, error) {
	return r.count(ctx, CountActiveUsersByType, typeUserID)
}

func (r *Repository) DeleteUser(ctx context.Context, id user.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteUserByID, id)
	if err != nil {
		return false, translate(err)
	}

	return tag.RowsAffected() > 0, nil
}
