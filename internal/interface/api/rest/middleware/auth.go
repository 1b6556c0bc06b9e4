package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"food-delivery-api/internal/application/identity"
	"food-delivery-api/internal/application/ports"
	"food-delivery-api/internal/interface/api/rest/respond"
)

const CtxUserID = "userID"

// Authenticate lets anonymous requests through and rejects malformed or invalid tokens.
func Authenticate(verifier ports.TokenVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.Next()
			return
		}

		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenStr == authHeader || tokenStr == "" {
			respond.Abort(c, http.StatusUnauthorized, "invalid token format")
			return
		}

		subject, err := verifier.Verify(tokenStr)
		if err != nil {
			respond.Abort(c, http.StatusUnauthorized, "invalid token")
			return
		}
		id, err := uuid.Parse(subject)
		if err != nil {
			respond.Abort(c, http.StatusUnauthorized, "invalid token")
			return
		}

		c.Set(CtxUserID, id)
		c.Request = c.Request.WithContext(identity.WithUserID(c.Request.Context(), id))

		c.Next()
	}
}

// RequireIdentity guards routes that need a caller.
func RequireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := c.Get(CtxUserID); !ok {
			respond.Abort(c, http.StatusUnauthorized, "authentication required")
			return
		}
		c.Next()
	}
}

func UserIDFrom(ctx context.Context) (uuid.UUID, bool) {
	return identity.UserIDFrom(ctx)
}
