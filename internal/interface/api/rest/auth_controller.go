package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"food-delivery-api/internal/application/ports"
	"food-delivery-api/internal/interface/api/rest/dto/auth"
	"food-delivery-api/internal/interface/api/rest/respond"
	"food-delivery-api/internal/interface/api/rest/validator"
)

type AuthController struct {
	logger      *zap.Logger
	authService ports.Auth
}

func NewAuthController(
	r gin.IRoutes,
	logger *zap.Logger,
	authService ports.Auth,
	limiter gin.HandlerFunc,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	r.POST(RouteLogin, limiter, ac.LoginHandler)

	return ac
}

// LoginHandler answers with the bare token as text/plain.
func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.LoginRequest
	if !bindJSON(c, &req) {
		return
	}
	if !validated(c, validator.ValidateLogin(req)) {
		return
	}

	token, err := ac.authService.Login(c.Request.Context(), req.Login(), req.Password)
	if err != nil {
		respond.Error(c, ac.logger, err)
		return
	}

	c.String(http.StatusOK, token)
}
