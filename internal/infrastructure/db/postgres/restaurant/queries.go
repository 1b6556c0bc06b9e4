package restaurant

const (
	restaurantColumns = `id, owner_id, name, description, cuisine, cnpj, phone, email,
		to_char(opening_time, 'HH24:MI:SS'), to_char(closing_time, 'HH24:MI:SS'),
		address_street, address_number, address_complement, address_neighborhood,
		address_city, address_state, address_zip_code,
		is_active, created_at, updated_at`

	SelectRestaurantByID = `
		SELECT ` + restaurantColumns + `
		FROM restaurants
		WHERE id = $1
	`
	ExistsRestaurantByCNPJ  = `SELECT EXISTS (SELECT 1 FROM restaurants WHERE cnpj = $1)`
	ExistsRestaurantByEmail = `SELECT EXISTS (SELECT 1 FROM restaurants WHERE email = $1)`
	CountActiveRestaurants  = `SELECT count(*) FROM restaurants WHERE is_active`
	InsertRestaurant        = `
		INSERT INTO restaurants (name, description, cuisine, cnpj, phone, email, opening_time, closing_time,
		                         address_street, address_number, address_complement, address_neighborhood,
		                         address_city, address_state, address_zip_code, owner_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7::time, $8::time, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING ` + restaurantColumns
	UpdateRestaurantByID = `
		UPDATE restaurants
		SET name = $1,
		    description = $2,
		    cuisine = $3,
		    cnpj = $4,
		    phone = $5,
		    email = $6,
		    opening_time = $7::time,
		    closing_time = $8::time,
		    address_street = $9,
		    address_number = $10,
		    address_complement = $11,
		    address_neighborhood = $12,
		    address_city = $13,
		    address_state = $14,
		    address_zip_code = $15,
		    owner_id = $16,
		    updated_at = now()
		WHERE id = $17
		RETURNING ` + restaurantColumns
	SetRestaurantActiveByID = `UPDATE restaurants SET is_active = $2, updated_at = now() WHERE id = $1`
	DeleteRestaurantByID    = `DELETE FROM restaurants WHERE id = $1`
)
