package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"food-delivery-api/internal/application/ports"
	"food-delivery-api/internal/interface/api/rest/dto/typeuser"
	"food-delivery-api/internal/interface/api/rest/middleware"
	"food-delivery-api/internal/interface/api/rest/respond"
	"food-delivery-api/internal/interface/api/rest/validator"
)

type TypeUserController struct {
	typeUserService ports.TypeUserService
	logger          *zap.Logger
}

func NewTypeUserController(
	r gin.IRoutes,
	typeUserService ports.TypeUserService,
	logger *zap.Logger,
) *TypeUserController {
	tc := &TypeUserController{
		typeUserService: typeUserService,
		logger:          logger,
	}

	authed := middleware.RequireIdentity()

	r.GET(RouteTypeUsers, authed, tc.GetTypeUsersHandler)
	r.GET(RouteTypeUser, authed, tc.GetTypeUserHandler)
	r.POST(RouteTypeUsers, authed, tc.CreateTypeUserHandler)
	r.PUT(RouteTypeUser, authed, tc.UpdateTypeUserHandler)
	r.DELETE(RouteTypeUser, authed, tc.DeleteTypeUserHandler)
	r.DELETE(RouteTypeUserPhysical, authed, tc.DeleteTypeUserPhysicalHandler)

	return tc
}

func (tc *TypeUserController) GetTypeUsersHandler(c *gin.Context) {
	ts, err := tc.typeUserService.FindAll(c.Request.Context())
	if err != nil {
		respond.Error(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusOK, typeuser.ToResponses(ts))
}

func (tc *TypeUserController) GetTypeUserHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	t, err := tc.typeUserService.FindByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusOK, typeuser.ToResponse(*t))
}

func (tc *TypeUserController) CreateTypeUserHandler(c *gin.Context) {
	var req typeuser.Request
	if !bindJSON(c, &req) {
		return
	}
	if !validated(c, validator.ValidateTypeUser(req)) {
		return
	}

	t, err := tc.typeUserService.Create(c.Request.Context(), typeuser.ToDomain(req))
	if err != nil {
		respond.Error(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, typeuser.ToResponse(*t))
}

func (tc *TypeUserController) UpdateTypeUserHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req typeuser.Request
	if !bindJSON(c, &req) {
		return
	}
	if !validated(c, validator.ValidateTypeUser(req)) {
		return
	}

	t, err := tc.typeUserService.Update(c.Request.Context(), id, typeuser.ToDomain(req))
	if err != nil {
		respond.Error(c, tc.logger, err)
		return
	}

	c.JSON(http.StatusOK, typeuser.ToResponse(*t))
}

func (tc *TypeUserController) DeleteTypeUserHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := tc.typeUserService.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, tc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (tc *TypeUserController) DeleteTypeUserPhysicalHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := tc.typeUserService.DeletePhysical(c.Request.Context(), id); err != nil {
		respond.Error(c, tc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
