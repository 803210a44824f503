package user

const (
	columns = `id, username, first_name, last_name, phone_number, address, profile_picture_url, is_staff, is_farmer, password_hash, created_at, updated_at`

	SelectUsers = `
		SELECT ` + columns + `
		FROM users
		ORDER BY created_at, id
	`
	SelectUserByID = `
		SELECT ` + columns + `
		FROM users
		WHERE id = $1
	`
	SelectUserByUsername = `
		SELECT ` + columns + `
		FROM users
		WHERE username = $1
	`
	InsertUser = `
		INSERT INTO users (username, first_name, last_name, phone_number, address, is_staff, is_farmer, password_hash)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + columns
	UpdateUserByID = `
		UPDATE users
		SET username = $1,
		    first_name = $2,
		    last_name = $3,
		    phone_number = $4,
		    address = $5,
		    is_farmer = $6,
		    password_hash = $7,
		    updated_at = now()
		WHERE id = $8
		RETURNING ` + columns
	UpdateProfilePictureByID = `
		UPDATE users
		SET profile_picture_url = $1,
		    updated_at = now()
		WHERE id = $2
		RETURNING ` + columns
	DeleteUserByID = `
		DELETE FROM users
		WHERE id = $1
		RETURNING ` + columns
)
