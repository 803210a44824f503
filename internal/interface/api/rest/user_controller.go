package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"marketplace-api/internal/application/ports"
	"marketplace-api/internal/infrastructure/jwt"
	"marketplace-api/internal/interface/api/rest/dto/user"
	"marketplace-api/internal/interface/api/rest/middleware"
	"marketplace-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	r *gin.Engine,
	userService ports.UserService,
	logger *zap.Logger,
	jwtService *jwt.Service,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	r.GET(RouteUsers, uc.GetUsersHandler)
	r.GET(RouteUser, uc.GetUserHandler)
	r.GET(RouteUserByName, uc.GetUserByUsernameHandler)
	// registration is public
	r.POST(RouteUsers, uc.CreateUserHandler)
	r.PUT(RouteUser, middleware.AuthMiddleware(jwtService), uc.UpdateUserHandler)
	r.PUT(RouteUserPicture, middleware.AuthMiddleware(jwtService), uc.UpdatePictureHandler)
	r.DELETE(RouteUser, middleware.AuthMiddleware(jwtService), uc.DeleteUserHandler)

	return uc
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.FindUsers(c.Request.Context())
	if err != nil {
		respondError(c, uc.logger, "FindUsers()", err)
		return
	}

	c.JSON(http.StatusOK, user.ResponseData{
		Data: user.ToResponseUsers(users),
	})
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		respondBadID(c, "user_id")
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, uc.logger, "FindUserByID()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) GetUserByUsernameHandler(c *gin.Context) {
	u, err := uc.userService.FindUserByUsername(c.Request.Context(), c.Param("username"))
	if err != nil {
		respondError(c, uc.logger, "FindUserByUsername()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), user.ToCreateParams(req))
	if err != nil {
		respondError(c, uc.logger, "CreateUser()", err)
		return
	}

	c.Header("Location", RouteUsers+"/"+u.ID.String())
	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		respondBadID(c, "user_id")
		return
	}

	var req user.UpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadBody(c, err)
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), id, user.ToUpdateParams(req))
	if err != nil {
		respondError(c, uc.logger, "UpdateUser()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) UpdatePictureHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		respondBadID(c, "user_id")
		return
	}

	file, err := c.FormFile("file")
	if err != nil {
		respondBadBody(c, err)
		return
	}

	u, err := uc.userService.UpdateProfilePicture(c.Request.Context(), id, file)
	if err != nil {
		respondError(c, uc.logger, "UpdateProfilePicture()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	ok, id := validator.IsUUID(c.Param("user_id"))
	if !ok {
		respondBadID(c, "user_id")
		return
	}

	u, err := uc.userService.DeleteUser(c.Request.Context(), id)
	if err != nil {
		respondError(c, uc.logger, "DeleteUser()", err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}
