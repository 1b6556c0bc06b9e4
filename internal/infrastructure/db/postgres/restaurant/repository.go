package restaurant

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"food-delivery-api/internal/application/apperr"
	"food-delivery-api/internal/domain/paging"
	"food-delivery-api/internal/domain/restaurant"
	"food-delivery-api/internal/infrastructure/db/postgres"
)

var (
	ErrCNPJAlreadyExists    = apperr.Conflict("CNPJ already registered")
	ErrEmailAlreadyExists   = apperr.Conflict("restaurant email already registered")
	ErrOwnerNotFound        = apperr.BadRequest("owner not found")
	ErrRestaurantReferenced = apperr.Conflict("restaurant still has menu items")
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) restaurant.Repository {
	return &Repository{db: db}
}

func scanRestaurant(row pgx.Row) (*Restaurant, error) {
	r := new(Restaurant)
	if err := row.Scan(
		&r.ID,
		&r.OwnerID,
		&r.Name,
		&r.Description,
		&r.Cuisine,
		&r.CNPJ,
		&r.Phone,
		&r.Email,
		&r.OpeningTime,
		&r.ClosingTime,

		&r.Street,
		&r.Number,
		&r.Complement,
		&r.Neighborhood,
		&r.City,
		&r.State,
		&r.ZipCode,

		&r.IsActive,
		&r.CreatedAt,
		&r.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return r, nil
}

func translate(err error) error {
	if name, ok := postgres.UniqueViolation(err); ok {
		if name == "restaurants_email_key" {
			return ErrEmailAlreadyExists
		}
		return ErrCNPJAlreadyExists
	}
	if postgres.IsPgForeignKeyViolation(err) {
		return ErrOwnerNotFound
	}
	return err
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*restaurant.Restaurant, error) {
	m, err := scanRestaurant(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, translate(err)
	}

	return fromDBModel(m), nil
}

func (r *Repository) fetchMany(ctx context.Context, b sq.SelectBuilder) (restaurant.Restaurants, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rs Restaurants
	for rows.Next() {
		m, err := scanRestaurant(rows)
		if err != nil {
			return nil, err
		}
		rs = append(rs, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(rs), nil
}

func activeRestaurants() sq.SelectBuilder {
	return postgres.Builder.
		Select(restaurantColumns).
		From("restaurants").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name ASC", "id ASC")
}

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*restaurant.Restaurant, error) {
	return r.fetchOne(ctx, SelectRestaurantByID, id)
}

func (r *Repository) FetchActive(ctx context.Context) (restaurant.Restaurants, error) {
	return r.fetchMany(ctx, activeRestaurants())
}

func (r *Repository) FetchActivePage(ctx context.Context, req paging.Request) (restaurant.Restaurants, int64, error) {
	var total int64
	if err := r.db.QueryRow(ctx, CountActiveRestaurants).Scan(&total); err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return restaurant.Restaurants{}, 0, nil
	}

	rs, err := r.fetchMany(ctx, activeRestaurants().Limit(uint64(req.Size)).Offset(req.Offset()))
	if err != nil {
		return nil, 0, err
	}

	return rs, total, nil
}

func (r *Repository) FetchByOwner(ctx context.Context, ownerID uuid.UUID) (restaurant.Restaurants, error) {
	return r.fetchMany(ctx, activeRestaurants().Where(sq.Eq{"owner_id": ownerID}))
}

func (r *Repository) SearchByCuisine(ctx context.Context, cuisine string) (restaurant.Restaurants, error) {
	return r.fetchMany(ctx, activeRestaurants().Where(sq.ILike{"cuisine": "%" + cuisine + "%"}))
}

// SearchByName expects an already lower-cased, accent-free term.
func (r *Repository) SearchByName(ctx context.Context, name string) (restaurant.Restaurants, error) {
	return r.fetchMany(ctx, activeRestaurants().Where(sq.Expr("unaccent(lower(name)) LIKE ?", "%"+name+"%")))
}

func (r *Repository) exists(ctx context.Context, query string, arg any) (bool, error) {
	var ok bool
	if err := r.db.QueryRow(ctx, query, arg).Scan(&ok); err != nil {
		return false, err
	}
	return ok, nil
}

func (r *Repository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	return r.exists(ctx, ExistsRestaurantByCNPJ, taxID)
}

func (r *Repository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, ExistsRestaurantByEmail, email)
}

func (r *Repository) Create(ctx context.Context, req restaurant.Restaurant) (*restaurant.Restaurant, error) {
	return r.fetchOne(ctx, InsertRestaurant, append(writeArgs(req), req.OwnerID)...)
}

func (r *Repository) Update(ctx context.Context, req restaurant.Restaurant) (*restaurant.Restaurant, error) {
	return r.fetchOne(ctx, UpdateRestaurantByID, append(writeArgs(req), req.OwnerID, req.ID)...)
}

func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := r.db.Exec(ctx, SetRestaurantActiveByID, id, active)
	return err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteRestaurantByID, id)
	if err != nil {
		if postgres.IsPgForeignKeyViolation(err) {
			return false, ErrRestaurantReferenced
		}
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
