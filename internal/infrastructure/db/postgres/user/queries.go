package user

const (
	userColumns = `id, name, email, password_hash, phone, birth_date, type_user_id,
		address_street, address_number, address_complement, address_neighborhood,
		address_city, address_state, address_zip_code,
		is_active, created_at, updated_at`

	SelectUserByID = `
		SELECT ` + userColumns + `
		FROM users
		WHERE id = $1
	`
	SelectUserByEmail = `
		SELECT ` + userColumns + `
		FROM users
		WHERE email = $1
	`
	ExistsUserByEmail = `SELECT EXISTS (SELECT 1 FROM users WHERE email = $1)`
	ExistsUserByPhone = `SELECT EXISTS (SELECT 1 FROM users WHERE phone = $1)`
	InsertUser        = `
		INSERT INTO users (name, email, password_hash, phone, birth_date, type_user_id,
		                   address_street, address_number, address_complement, address_neighborhood,
		                   address_city, address_state, address_zip_code)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		RETURNING ` + userColumns
	UpdateUserByID = `
		UPDATE users
		SET name = $1,
		    email = $2,
		    password_hash = $3,
		    phone = $4,
		    birth_date = $5,
		    type_user_id = $6,
		    address_street = $7,
		    address_number = $8,
		    address_complement = $9,
		    address_neighborhood = $10,
		    address_city = $11,
		    address_state = $12,
		    address_zip_code = $13,
		    updated_at = now()
		WHERE id = $14
		RETURNING ` + userColumns
	UpdatePasswordByID = `UPDATE users SET password_hash = $2, updated_at = now() WHERE id = $1`
	SetActiveByID      = `
		UPDATE users
		SET is_active = $2, updated_at = now()
		WHERE id = $1
		RETURNING ` + userColumns
	CountActiveUsers       = `SELECT count(*) FROM users WHERE is_active`
	CountActiveUsersByType = `SELECT count(*) FROM users WHERE is_active AND type_user_id = $1`
	DeleteUserByID         = `DELETE FROM users WHERE id = $1`
)
