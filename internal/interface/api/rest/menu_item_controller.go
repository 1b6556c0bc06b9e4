package rest

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"food-delivery-api/internal/application/apperr"
	"food-delivery-api/internal/application/ports"
	dmenuitem "food-delivery-api/internal/domain/menuitem"
	"food-delivery-api/internal/interface/api/rest/dto/menuitem"
	"food-delivery-api/internal/interface/api/rest/middleware"
	"food-delivery-api/internal/interface/api/rest/respond"
	"food-delivery-api/internal/interface/api/rest/validator"
)

type MenuItemController struct {
	menuItemService ports.MenuItemService
	s3              ports.S3Client
	logger          *zap.Logger
}

func NewMenuItemController(
	r gin.IRoutes,
	menuItemService ports.MenuItemService,
	s3 ports.S3Client,
	logger *zap.Logger,
) *MenuItemController {
	mc := &MenuItemController{
		menuItemService: menuItemService,
		s3:              s3,
		logger:          logger,
	}

	authed := middleware.RequireIdentity()

	r.GET(RouteMenuItems, authed, mc.GetMenuItemsHandler)
	r.GET(RouteMenuItemsByRestaurant, authed, mc.GetByRestaurantHandler)
	r.GET(RouteMenuItemsAvailable, authed, mc.GetAvailableByRestaurantHandler)
	r.GET(RouteMenuItemsByCategory, authed, mc.SearchByCategoryHandler)
	r.GET(RouteMenuItemsByName, authed, mc.SearchByNameHandler)
	r.GET(RouteMenuItem, authed, mc.GetMenuItemHandler)
	r.POST(RouteMenuItems, authed, mc.CreateMenuItemHandler)
	r.PUT(RouteMenuItem, authed, mc.UpdateMenuItemHandler)
	r.PATCH(RouteMenuItemAvailability, authed, mc.UpdateAvailabilityHandler)
	r.DELETE(RouteMenuItem, authed, mc.DeleteMenuItemHandler)
	r.DELETE(RouteMenuItemPhysical, authed, mc.DeleteMenuItemPhysicalHandler)

	return mc
}

func (mc *MenuItemController) list(c *gin.Context, items func() (dmenuitem.MenuItems, error)) {
	ms, err := items()
	if err != nil {
		respond.Error(c, mc.logger, err)
		return
	}

	c.JSON(http.StatusOK, menuitem.ToResponses(ms, mc.s3.ResolveURL))
}

func (mc *MenuItemController) GetMenuItemsHandler(c *gin.Context) {
	mc.list(c, func() (dmenuitem.MenuItems, error) { return mc.menuItemService.FindAll(c.Request.Context()) })
}

func (mc *MenuItemController) GetByRestaurantHandler(c *gin.Context) {
	rid, ok := pathID(c, "restaurant_id")
	if !ok {
		return
	}
	mc.list(c, func() (dmenuitem.MenuItems, error) {
		return mc.menuItemService.FindByRestaurant(c.Request.Context(), rid)
	})
}

func (mc *MenuItemController) GetAvailableByRestaurantHandler(c *gin.Context) {
	rid, ok := pathID(c, "restaurant_id")
	if !ok {
		return
	}
	mc.list(c, func() (dmenuitem.MenuItems, error) {
		return mc.menuItemService.FindAvailableByRestaurant(c.Request.Context(), rid)
	})
}

func (mc *MenuItemController) SearchByCategoryHandler(c *gin.Context) {
	category, ok := requiredQuery(c, "category")
	if !ok {
		return
	}
	mc.list(c, func() (dmenuitem.MenuItems, error) {
		return mc.menuItemService.SearchByCategory(c.Request.Context(), category)
	})
}

func (mc *MenuItemController) SearchByNameHandler(c *gin.Context) {
	name, ok := requiredQuery(c, "name")
	if !ok {
		return
	}
	mc.list(c, func() (dmenuitem.MenuItems, error) {
		return mc.menuItemService.SearchByName(c.Request.Context(), name)
	})
}

func (mc *MenuItemController) GetMenuItemHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	m, err := mc.menuItemService.FindByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, mc.logger, err)
		return
	}

	c.JSON(http.StatusOK, menuitem.ToResponse(*m, mc.s3.ResolveURL))
}

func (mc *MenuItemController) CreateMenuItemHandler(c *gin.Context) {
	var req menuitem.Request
	if !bindJSON(c, &req) {
		return
	}
	if !validated(c, validator.ValidateMenuItem(req, false)) {
		return
	}

	mDomain, err := menuitem.ToDomain(req)
	if err != nil {
		respond.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := mc.menuItemService.Create(c.Request.Context(), mDomain)
	if err != nil {
		respond.Error(c, mc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, menuitem.ToResponse(*m, mc.s3.ResolveURL))
}

func (mc *MenuItemController) UpdateMenuItemHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req menuitem.Request
	if !bindJSON(c, &req) {
		return
	}
	if !validated(c, validator.ValidateMenuItem(req, true)) {
		return
	}

	mDomain, err := menuitem.ToDomain(req)
	if err != nil {
		respond.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	m, err := mc.menuItemService.Update(c.Request.Context(), id, mDomain, req.IsAvailable)
	if err != nil {
		respond.Error(c, mc.logger, err)
		return
	}

	c.JSON(http.StatusOK, menuitem.ToResponse(*m, mc.s3.ResolveURL))
}

func (mc *MenuItemController) UpdateAvailabilityHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	raw, ok := requiredQuery(c, "isAvailable")
	if !ok {
		return
	}
	available, err := strconv.ParseBool(raw)
	if err != nil {
		respond.Validation(c, apperr.FieldErrors{{Field: "isAvailable", Message: "must be true or false"}})
		return
	}

	m, err := mc.menuItemService.UpdateAvailability(c.Request.Context(), id, available)
	if err != nil {
		respond.Error(c, mc.logger, err)
		return
	}

	c.JSON(http.StatusOK, menuitem.ToResponse(*m, mc.s3.ResolveURL))
}

func (mc *MenuItemController) DeleteMenuItemHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := mc.menuItemService.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, mc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (mc *MenuItemController) DeleteMenuItemPhysicalHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := mc.menuItemService.DeletePhysical(c.Request.Context(), id); err != nil {
		respond.Error(c, mc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
