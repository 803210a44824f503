package rest

const (
	// api
	RouteApiV1 = "/api/v1"

	// auth
	RouteAuth  = RouteApiV1 + "/auth"
	RouteLogin = RouteAuth + "/login"

	// users
	RouteUsers       = RouteApiV1 + "/users"
	RouteUser        = RouteUsers + "/:user_id"
	RouteUserPicture = RouteUser + "/picture"
	RouteUserByName  = RouteApiV1 + "/usernames/:username"

	// ratings
	RouteRatings        = RouteApiV1 + "/ratings"
	RouteRating         = RouteRatings + "/:rating_id"
	RouteProductRatings = RouteApiV1 + "/products/:product_id/ratings"

	// ops
	RouteHealth  = RouteApiV1 + "/healthz"
	RouteMetrics = RouteApiV1 + "/metrics"
)
