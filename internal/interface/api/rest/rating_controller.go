package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"marketplace-api/internal/application/ports"
	"marketplace-api/internal/infrastructure/jwt"
	"marketplace-api/internal/interface/api/rest/dto/rating"
	"marketplace-api/internal/interface/api/rest/middleware"
	"marketplace-api/internal/interface/api/rest/validator"
)

type RatingController struct {
	ratingService ports.RatingService
	logger        *zap.Logger
}

func NewRatingController(
	r *gin.Engine,
	ratingService ports.RatingService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *RatingController {
	rc := &RatingController{
		ratingService: ratingService,
		logger:        logger,
	}

	r.GET(RouteRatings, rc.GetRatingsHandler)
	r.GET(RouteRating, rc.GetRatingHandler)
	r.GET(RouteProductRatings, rc.GetProductRatingsHandler)
	r.POST(RouteRatings, middleware.AuthMiddleware(jwtService), rc.CreateRatingHandler)
	r.PUT(RouteRating, middleware.AuthMiddleware(jwtService), rc.UpdateRatingHandler)
	r.DELETE(RouteRating, middleware.AuthMiddleware(jwtService), rc.DeleteRatingHandler)

	return rc
}

func (rc *RatingController) GetRatingsHandler(c *gin.Context) {
	rs, err := rc.ratingService.FindRatings(c.Request.Context())
	if err != nil {
		respondError(c, rc.logger, "FindRatings()", err)
		return
	}

	c.JSON(http.StatusOK, rating.ResponseData{
		Data: rating.ToResponseRatings(rs),
	})
}

func (rc *RatingController) GetRatingHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("rating_id"))
	if !ok {
		respondBadID(c, "rating_id")
		return
	}

	r, err := rc.ratingService.FindRatingByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, rc.logger, "FindRatingByID()", err)
		return
	}

	c.JSON(http.StatusOK, rating.ToResponseRating(*r))
}

func (rc *RatingController) GetProductRatingsHandler(c *gin.Context) {
	ok, productID := validator.IsUUID(c.Param("product_id"))
	if !ok {
		respondBadID(c, "product_id")
		return
	}

	rs, err := rc.ratingService.FindRatingsByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, rc.logger, "FindRatingsByProduct()", err)
		return
	}

	c.JSON(http.StatusOK, rating.ResponseData{
		Data: rating.ToResponseRatings(rs),
	})
}

func (rc *RatingController) CreateRatingHandler(c *gin.Context) {
	var req rating.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	// user_id defaults to the bearer
	if req.UserID == uuid.Nil {
		if sub, ok := middleware.SubjectID(c); ok {
			req.UserID = sub
		}
	}

	r, err := rc.ratingService.CreateRating(c.Request.Context(), rating.ToCreateParams(req))
	if err != nil {
		respondError(c, rc.logger, "CreateRating()", err)
		return
	}

	c.Header("Location", RouteRatings+"/"+r.ID.String())
	c.JSON(http.StatusCreated, rating.ToResponseRating(*r))
}

func (rc *RatingController) UpdateRatingHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("rating_id"))
	if !ok {
		respondBadID(c, "rating_id")
		return
	}

	var req rating.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	r, err := rc.ratingService.UpdateRating(c.Request.Context(), id, rating.ToUpdateParams(req))
	if err != nil {
		respondError(c, rc.logger, "UpdateRating()", err)
		return
	}

	c.JSON(http.StatusOK, rating.ToResponseRating(*r))
}

func (rc *RatingController) DeleteRatingHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("rating_id"))
	if !ok {
		respondBadID(c, "rating_id")
		return
	}

	r, err := rc.ratingService.DeleteRating(c.Request.Context(), id)
	if err != nil {
		respondError(c, rc.logger, "DeleteRating()", err)
		return
	}

	c.JSON(http.StatusOK, rating.ToResponseRating(*r))
}
