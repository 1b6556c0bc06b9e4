package menuitem

import (
	"context"
	"errors"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"food-delivery-api/internal/domain/menuitem"
	"food-delivery-api/internal/infrastructure/db/postgres"
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) menuitem.Repository {
	return &Repository{db: db}
}

func scanMenuItem(row pgx.Row) (*MenuItem, error) {
	m := new(MenuItem)
	if err := row.Scan(
		&m.ID,
		&m.RestaurantID,
		&m.Name,
		&m.Description,
		&m.Price,
		&m.Category,
		&m.ImageURL,
		&m.IsAvailable,
		&m.PreparationTime,
		&m.IsActive,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *Repository) fetchOne(ctx context.Context, query string, args ...any) (*menuitem.MenuItem, error) {
	m, err := scanMenuItem(r.db.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}

	return fromDBModel(m), nil
}

func (r *Repository) fetchMany(ctx context.Context, b sq.SelectBuilder) (menuitem.MenuItems, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ms MenuItems
	for rows.Next() {
		m, err := scanMenuItem(rows)
		if err != nil {
			return nil, err
		}
		ms = append(ms, m)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return fromDBModels(ms), nil
}

func activeItems() sq.SelectBuilder {
	return postgres.Builder.
		Select(menuItemColumns).
		From("menu_items").
		Where(sq.Eq{"is_active": true}).
		OrderBy("name ASC")
}

func (r *Repository) FetchByID(ctx context.Context, id uuid.UUID) (*menuitem.MenuItem, error) {
	return r.fetchOne(ctx, SelectMenuItemByID, id)
}

func (r *Repository) FetchActive(ctx context.Context) (menuitem.MenuItems, error) {
	return r.fetchMany(ctx, activeItems())
}

func (r *Repository) FetchByRestaurant(
	ctx context.Context,
	restaurantID uuid.UUID,
	onlyAvailable bool,
) (menuitem.MenuItems, error) {
	b := activeItems().Where(sq.Eq{"restaurant_id": restaurantID})
	if onlyAvailable {
		b = b.Where(sq.Eq{"is_available": true})
	}

	return r.fetchMany(ctx, b)
}

func (r *Repository) SearchByCategory(ctx context.Context, category string) (menuitem.MenuItems, error) {
	return r.fetchMany(ctx, activeItems().Where(sq.Expr("lower(category) = lower(?)", category)))
}

// SearchByName expects an already lower-cased, accent-free term.
func (r *Repository) SearchByName(ctx context.Context, name string) (menuitem.MenuItems, error) {
	return r.fetchMany(ctx, activeItems().Where(sq.Expr("unaccent(lower(name)) LIKE ?", "%"+name+"%")))
}

func (r *Repository) Create(ctx context.Context, req menuitem.MenuItem) (*menuitem.MenuItem, error) {
	return r.fetchOne(ctx, InsertMenuItem,
		req.RestaurantID, req.Name, req.Description, req.Price,
		req.Category, req.ImageURL, req.IsAvailable, req.PreparationTime,
	)
}

func (r *Repository) Update(ctx context.Context, req menuitem.MenuItem) (*menuitem.MenuItem, error) {
	return r.fetchOne(ctx, UpdateMenuItemByID,
		req.ID, req.Name, req.Description, req.Price,
		req.Category, req.ImageURL, req.IsAvailable, req.PreparationTime,
	)
}

func (r *Repository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) (*menuitem.MenuItem, error) {
	return r.fetchOne(ctx, SetAvailabilityByID, id, available)
}

func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	_, err := r.db.Exec(ctx, SetMenuItemActiveByID, id, active)
	return err
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	tag, err := r.db.Exec(ctx, DeleteMenuItemByID, id)
	if err != nil {
		return false, err
	}

	return tag.RowsAffected() > 0, nil
}
