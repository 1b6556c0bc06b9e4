package rest

import (
	_ "embed"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"food-delivery-api/internal/application/ports"
	"food-delivery-api/internal/interface/api/rest/middleware"
)

//go:embed docs/openapi.json
var openAPIDoc []byte

// Services is everything the HTTP surface serves.
type Services struct {
	Auth        ports.Auth
	Users       ports.UserService
	TypeUsers   ports.TypeUserService
	Restaurants ports.RestaurantService
	MenuItems   ports.MenuItemService
}

// NewEngine builds the gin engine. Forwarded client IP headers are honoured
// only from trustedProxies; nil trusts no proxy and ClientIP is the peer address.
func NewEngine(trustedProxies []string, mw ...gin.HandlerFunc) (*gin.Engine, error) {
	r := gin.New()
	if err := r.SetTrustedProxies(trustedProxies); err != nil {
		return nil, err
	}
	r.Use(gin.Recovery())
	r.Use(mw...)

	return r, nil
}

// Register mounts login, docs and health at the root and the resource controllers under RouteApi.
func Register(
	r *gin.Engine,
	logger *zap.Logger,
	verifier ports.TokenVerifier,
	s3 ports.S3Client,
	loginLimiter gin.HandlerFunc,
	svc Services,
) {
	r.GET(RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET(RouteDocs, func(c *gin.Context) {
		c.Data(http.StatusOK, "application/json; charset=utf-8", openAPIDoc)
	})

	NewAuthController(r, logger, svc.Auth, loginLimiter)

	// signup is anonymous, so a stale token must not block it
	public := r.Group(RouteApi)
	api := r.Group(RouteApi, middleware.Authenticate(verifier))
	NewUserController(public, api, svc.Users, logger)
	NewTypeUserController(api, svc.TypeUsers, logger)
	NewRestaurantController(api, svc.Restaurants, s3, logger)
	NewMenuItemController(api, svc.MenuItems, s3, logger)
}
