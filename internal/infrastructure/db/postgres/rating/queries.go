package rating

// Every read joins the submitting user's username. Writes go through a CTE so
// they return the same shape.
const (
	projection = `r.id, r.product_id, r.user_id, COALESCE(u.username, ''), r.score, r.comment, r.created_at, r.updated_at`

	SelectRatings = `
		SELECT ` + projection + `
		FROM ratings r
		LEFT JOIN users u ON u.id = r.user_id
		ORDER BY r.created_at, r.id
	`
	SelectRatingByID = `
		SELECT ` + projection + `
		FROM ratings r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.id = $1
	`
	SelectRatingsByProduct = `
		SELECT ` + projection + `
		FROM ratings r
		LEFT JOIN users u ON u.id = r.user_id
		WHERE r.product_id = $1
		ORDER BY r.created_at, r.id
	`
	SelectRatingExists = `
		SELECT EXISTS (
			SELECT 1 FROM ratings WHERE user_id = $1 AND product_id = $2
		)
	`
	InsertRating = `
		WITH r AS (
			INSERT INTO ratings (product_id, user_id, score, comment)
			VALUES ($1, $2, $3, $4)
			RETURNING *
		)
		SELECT ` + projection + `
		FROM r
		LEFT JOIN users u ON u.id = r.user_id
	`
	UpdateRatingByID = `
		WITH r AS (
			UPDATE ratings
			SET score = $1,
			    comment = $2,
			    updated_at = now()
			WHERE id = $3
			RETURNING *
		)
		SELECT ` + projection + `
		FROM r
		LEFT JOIN users u ON u.id = r.user_id
	`
	DeleteRatingByID = `
		WITH r AS (
			DELETE FROM ratings
			WHERE id = $1
			RETURNING *
		)
		SELECT ` + projection + `
		FROM r
		LEFT JOIN users u ON u.id = r.user_id
	`
)
