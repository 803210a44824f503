package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-api/internal/application/ports"
	"marketplace-api/internal/interface/api/rest/dto/auth"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
	}

	r.POST(RouteLogin, ac.LoginHandler)

	return ac
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "invalid json"},
		)
		return
	}

	token, err := ac.userService.Authenticate(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		respondError(c, ac.logger, "Authenticate()", err)
		return
	}

	c.JSON(http.StatusOK, auth.ToLoginResponse(token))
}
