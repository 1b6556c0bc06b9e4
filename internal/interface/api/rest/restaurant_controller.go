package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"food-delivery-api/internal/application/ports"
	"food-delivery-api/internal/interface/api/rest/dto/pagination"
	"food-delivery-api/internal/interface/api/rest/dto/restaurant"
	"food-delivery-api/internal/interface/api/rest/middleware"
	"food-delivery-api/internal/interface/api/rest/respond"
	"food-delivery-api/internal/interface/api/rest/validator"
)

type RestaurantController struct {
	restaurantService ports.RestaurantService
	s3                ports.S3Client
	logger            *zap.Logger
}

func NewRestaurantController(
	r gin.IRoutes,
	restaurantService ports.RestaurantService,
	s3 ports.S3Client,
	logger *zap.Logger,
) *RestaurantController {
	rc := &RestaurantController{
		restaurantService: restaurantService,
		s3:                s3,
		logger:            logger,
	}

	authed := middleware.RequireIdentity()

	r.GET(RouteRestaurants, authed, rc.GetRestaurantsHandler)
	r.GET(RouteRestaurantsPaginated, authed, rc.GetRestaurantsPagedHandler)
	r.GET(RouteRestaurantsByOwner, authed, rc.GetByOwnerHandler)
	r.GET(RouteRestaurantsByCuisine, authed, rc.SearchByCuisineHandler)
	r.GET(RouteRestaurantsByName, authed, rc.SearchByNameHandler)
	r.GET(RouteRestaurant, authed, rc.GetRestaurantHandler)
	r.POST(RouteRestaurants, authed, rc.CreateRestaurantHandler)
	r.PUT(RouteRestaurant, authed, rc.UpdateRestaurantHandler)
	r.DELETE(RouteRestaurant, authed, rc.DeleteRestaurantHandler)
	r.PATCH(RouteRestaurantActivate, authed, rc.ActivateRestaurantHandler)
	r.DELETE(RouteRestaurantPhysical, authed, rc.DeleteRestaurantPhysicalHandler)

	return rc
}

func (rc *RestaurantController) GetRestaurantsHandler(c *gin.Context) {
	rs, err := rc.restaurantService.FindAll(c.Request.Context())
	if err != nil {
		respond.Error(c, rc.logger, err)
		return
	}

	c.JSON(http.StatusOK, restaurant.ToResponses(rs, rc.s3.ResolveURL))
}

func (rc *RestaurantController) GetRestaurantsPagedHandler(c *gin.Context) {
	req, errs := validator.ValidatePage(c.Query("page"), c.Query("size"))
	if !validated(c, errs) {
		return
	}

	page, err := rc.restaurantService.FindPaged(c.Request.Context(), req)
	if err != nil {
		respond.Error(c, rc.logger, err)
		return
	}

	c.JSON(http.StatusOK, pagination.NewResponse(
		restaurant.ToResponses(page.Items, rc.s3.ResolveURL), page.Page, page.Size, page.Total,
	))
}

func (rc *RestaurantController) GetByOwnerHandler(c *gin.Context) {
	ownerID, ok := pathID(c, "owner_id")
	if !ok {
		return
	}

	rs, err := rc.restaurantService.FindByOwner(c.Request.Context(), ownerID)
	if err != nil {
		respond.Error(c, rc.logger, err)
		return
	}

	c.JSON(http.StatusOK, restaurant.ToResponses(rs, rc.s3.ResolveURL))
}

func (rc *RestaurantController) SearchByCuisineHandler(c *gin.Context) {
	cuisine, ok := requiredQuery(c, "cuisine")
	if !ok {
		return
	}

	rs, err := rc.restaurantService.SearchByCuisine(c.Request.Context(), cuisine)
	if err != nil {
		respond.Error(c, rc.logger, err)
		return
	}

	c.JSON(http.StatusOK, restaurant.ToResponses(rs, rc.s3.ResolveURL))
}

func (rc *RestaurantController) SearchByNameHandler(c *gin.Context) {
	name, ok := requiredQuery(c, "name")
	if !ok {
		return
	}

	rs, err := rc.restaurantService.SearchByName(c.Request.Context(), name)
	if err != nil {
		respond.Error(c, rc.logger, err)
		return
	}

	c.JSON(http.StatusOK, restaurant.ToResponses(rs, rc.s3.ResolveURL))
}

func (rc *RestaurantController) GetRestaurantHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	r, err := rc.restaurantService.FindByID(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, rc.logger, err)
		return
	}

	c.JSON(http.StatusOK, restaurant.ToResponse(*r, rc.s3.ResolveURL))
}

func (rc *RestaurantController) CreateRestaurantHandler(c *gin.Context) {
	var req restaurant.Request
	if !bindJSON(c, &req) {
		return
	}
	if !validated(c, validator.ValidateRestaurant(req)) {
		return
	}

	rDomain, err := restaurant.ToDomain(req)
	if err != nil {
		respond.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	r, err := rc.restaurantService.Create(c.Request.Context(), rDomain)
	if err != nil {
		respond.Error(c, rc.logger, err)
		return
	}

	c.JSON(http.StatusCreated, restaurant.ToResponse(*r, rc.s3.ResolveURL))
}

func (rc *RestaurantController) UpdateRestaurantHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req restaurant.Request
	if !bindJSON(c, &req) {
		return
	}
	if !validated(c, validator.ValidateRestaurant(req)) {
		return
	}

	rDomain, err := restaurant.ToDomain(req)
	if err != nil {
		respond.Abort(c, http.StatusBadRequest, err.Error())
		return
	}

	r, err := rc.restaurantService.Update(c.Request.Context(), id, rDomain)
	if err != nil {
		respond.Error(c, rc.logger, err)
		return
	}

	c.JSON(http.StatusOK, restaurant.ToResponse(*r, rc.s3.ResolveURL))
}

func (rc *RestaurantController) DeleteRestaurantHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := rc.restaurantService.Delete(c.Request.Context(), id); err != nil {
		respond.Error(c, rc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (rc *RestaurantController) ActivateRestaurantHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	r, err := rc.restaurantService.Activate(c.Request.Context(), id)
	if err != nil {
		respond.Error(c, rc.logger, err)
		return
	}

	c.JSON(http.StatusOK, restaurant.ToResponse(*r, rc.s3.ResolveURL))
}

func (rc *RestaurantController) DeleteRestaurantPhysicalHandler(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}

	if err := rc.restaurantService.DeletePhysical(c.Request.Context(), id); err != nil {
		respond.Error(c, rc.logger, err)
		return
	}

	c.Status(http.StatusNoContent)
}
