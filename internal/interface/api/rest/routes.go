package rest

const (
	RouteLogin   = "/login"
	RouteHealth  = "/healthz"
	RouteMetrics = "/metrics"
	RouteDocs    = "/docs/openapi.json"

	RouteApi = "/api"

	// relative to RouteApi
	RouteUsers            = "/users"
	RouteUser             = RouteUsers + "/:id"
	RouteUserMe           = RouteUsers + "/me"
	RouteUsersPaginated   = RouteUsers + "/paginated"
	RouteUsersCount       = RouteUsers + "/count"
	RouteUsersCountByType = RouteUsersCount + "/type/:type_id"
	RouteUsersByType      = RouteUsers + "/type/:type_id"
	RouteUserByEmail      = RouteUsers + "/email/:email"
	RouteUserPhysical     = RouteUser + "/physical"
	RouteUserActivate     = RouteUser + "/activate"
	RouteUserPassword     = RouteUser + "/change-password"

	RouteTypeUsers        = "/type-users"
	RouteTypeUser         = RouteTypeUsers + "/:id"
	RouteTypeUserPhysical = RouteTypeUser + "/physical"

	RouteRestaurants          = "/restaurants"
	RouteRestaurant           = RouteRestaurants + "/:id"
	RouteRestaurantsPaginated = RouteRestaurants + "/paginated"
	RouteRestaurantsByOwner   = RouteRestaurants + "/owner/:owner_id"
	RouteRestaurantsByCuisine = RouteRestaurants + "/search/cuisine"
	RouteRestaurantsByName    = RouteRestaurants + "/search/name"
	RouteRestaurantActivate   = RouteRestaurant + "/activate"
	RouteRestaurantPhysical   = RouteRestaurant + "/physical"

	RouteMenuItems             = "/menu-items"
	RouteMenuItem              = RouteMenuItems + "/:id"
	RouteMenuItemsByRestaurant = RouteMenuItems + "/restaurant/:restaurant_id"
	RouteMenuItemsAvailable    = RouteMenuItemsByRestaurant + "/available"
	RouteMenuItemsByCategory   = RouteMenuItems + "/search/category"
	RouteMenuItemsByName       = RouteMenuItems + "/search/name"
	RouteMenuItemAvailability  = RouteMenuItem + "/availability"
	RouteMenuItemPhysical      = RouteMenuItem + "/physical"
)
