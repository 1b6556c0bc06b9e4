package menuitem

const (
	menuItemColumns = `id, restaurant_id, name, description, price, category, image_url,
		is_available, preparation_time, is_active, created_at, updated_at`

	SelectMenuItemByID = `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE id = $1
	`
	InsertMenuItem = `
		INSERT INTO menu_items (restaurant_id, name, description, price, category, image_url, is_available, preparation_time)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + menuItemColumns
	UpdateMenuItemByID = `
		UPDATE menu_items
		SET name = $2,
		    description = $3,
		    price = $4,
		    category = $5,
		    image_url = $6,
		    is_available = $7,
		    preparation_time = $8,
		    updated_at = now()
		WHERE id = $1
		RETURNING ` + menuItemColumns
	SetAvailabilityByID = `
		UPDATE menu_items
		SET is_available = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + menuItemColumns
	SetMenuItemActiveByID = `UPDATE menu_items SET is_active = $2, updated_at = now() WHERE id = $1`
	DeleteMenuItemByID    = `DELETE FROM menu_items WHERE id = $1`
)
