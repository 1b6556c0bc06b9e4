package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"food-delivery-api/internal/application/ports"
	"food-delivery-api/internal/interface/api/rest/dto/pagination"
	"food-delivery-api/internal/interface/api/rest/dto/user"
	"food-delivery-api/internal/interface/api/rest/middleware"
	"food-delivery-api/internal/interface/api/rest/respond"
	"food-delivery-api/internal/interface/api/rest/validator"
)

type UserController struct {
	userService ports.UserService
	logger      *zap.Logger
}

func NewUserController(
	public gin.IRoutes,
	r gin.IRoutes,
	userService ports.UserService,
	logger *zap.Logger,
) *UserController {
	uc := &UserController{
		userService: userService,
		logger:      logger,
	}

	authed := middleware.RequireIdentity()

	public.POST(RouteUsers, uc.CreateUserHandler)
	r.GET(RouteUsers, authed, uc.GetUsersHandler)
	r.GET(RouteUserMe, authed, uc.GetMeHandler)
	r.GET(RouteUsersPaginated, authed, uc.GetUsersPagedHandler)
	r.GET(RouteUsersCount, authed, uc.CountHandler)
	r.GET(RouteUsersCountByType, authed, uc.CountByTypeHandler)
	r.GET(RouteUsersByType, authed, uc.GetUsersByTypeHandler)
	r.GET(RouteUserByEmail, authed, uc.GetUserByEmailHandler)
	r.GET(RouteUser, authed, uc.GetUserHandler)
	r.PUT(RouteUser, authed, uc.UpdateUserHandler)
	r.DELETE(RouteUser, authed, uc.DeleteUserHandler)
	r.DELETE(RouteUserPhysical, authed, uc.DeleteUserPhysicalHandler)
	r.PATCH(RouteUserActivate, authed, uc.ActivateUserHandler)
	r.PATCH(RouteUserPassword, authed, uc.ChangePasswordHandler)

	return uc
}

func (uc *UserController) CreateUserHandler(c *gin.Context) {
	var req user.CreateRequest
	if !bindJSON(c, &req) {
		return
	}
	if !validated(c, validator.ValidateUserCreate(req)) {
		return
	}

	uDomain, err := user.ToDomainUser(req)
	if err != nil {
		respond.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	u, err := uc.userService.CreateUser(c.Request.Context(), uDomain, req.Password)
	if err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, user.ToResponseUser(*u))
}

func (uc *UserController) GetUsersHandler(c *gin.Context) {
	users, err := uc.userService.FindUsers(c.Request.Context())
	if err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUsers(users))
}

func (uc *UserController) GetUsersPagedHandler(c *gin.Context) {
	req, errs := validator.ValidatePage(c.Query("page"), c.Query("size"))
	if !validated(c, errs) {
		return
	}

	page, err := uc.userService.FindUsersPaged(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, pagination.NewResponse(
		user.ToResponseUsers(page.Items), page.Page, page.Size, page.Total,
	))
}

func (uc *UserController) GetMeHandler(c *gin.Context) {
	u, err := uc.userService.CurrentUser(c.Request.Context())
	if err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) GetUserHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	u, err := uc.userService.FindUserByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) GetUserByEmailHandler(c *gin.Context) {
	u, err := uc.userService.FindByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) CountHandler(c *gin.Context) {
	n, err := uc.userService.CountActive(c.Request.Context())
	if err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.Count{Count: n})
}

func (uc *UserController) GetUsersByTypeHandler(c *gin.Context) {
	typeID, ok := pathID(c, "type_id")
	if !ok {
		return
	}

	users, err := uc.userService.FindByType(c.Request.Context(), typeID)
	if err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUsers(users))
}

func (uc *UserController) CountByTypeHandler(c *gin.Context) {
	typeID, ok := pathID(c, "type_id")
	if !ok {
		return
	}

	n, err := uc.userService.CountByType(c.Request.Context(), typeID)
	if err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.Count{Count: n})
}

func (uc *UserController) UpdateUserHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req user.UpdateRequest
	if !bindJSON(c, &req) {
		return
	}
	if !validated(c, validator.ValidateUserPatch(req)) {
		return
	}

	patch, err := user.ToDomainPatch(req)
	if err != nil {
		respond.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	u, err := uc.userService.UpdateUser(c.Request.Context(), id, patch)
	if err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) DeleteUserHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := uc.userService.DeactivateUser(c.Request.Context(), id); err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (uc *UserController) DeleteUserPhysicalHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := uc.userService.DeleteUserPhysical(c.Request.Context(), id); err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (uc *UserController) ActivateUserHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	u, err := uc.userService.ActivateUser(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.JSON(http.StatusOK, user.ToResponseUser(*u))
}

func (uc *UserController) ChangePasswordHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	current, next := c.Query("currentPassword"), c.Query("newPassword")
	if !validated(c, validator.ValidatePasswordChange(current, next)) {
		return
	}

	if err := uc.userService.ChangePassword(c.Request.Context(), id, current, next); err != nil {
		respond.Error(c, uc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
