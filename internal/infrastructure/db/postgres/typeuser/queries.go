package typeuser

const (
	typeUserColumns = `id, name, description, is_active, created_at, updated_at`

	SelectTypeUserByID = `
		SELECT ` + typeUserColumns + `
		FROM type_users
		WHERE id = $1
	`
	SelectTypeUserByName = `
		SELECT ` + typeUserColumns + `
		FROM type_users
		WHERE name = $1
	`
	SelectActiveTypeUsers = `
		SELECT ` + typeUserColumns + `
		FROM type_users
		WHERE is_active
		ORDER BY name
	`
	ExistsTypeUserByName = `SELECT EXISTS (SELECT 1 FROM type_users WHERE name = $1)`
	InsertTypeUser       = `
		INSERT INTO type_users (name, description)
		VALUES ($1, $2)
		RETURNING ` + typeUserColumns
	UpdateTypeUserByID = `
		UPDATE type_users
		SET name = $2, description = $3, updated_at = now()
		WHERE id = $1
		RETURNING ` + typeUserColumns
	SetTypeUserActiveByID = `UPDATE type_users SET is_active = $2, updated_at = now() WHERE id = $1`
	DeleteTypeUserByID    = `DELETE FROM type_users WHERE id = $1`
)
