package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"food-delivery-api/internal/application/apperr"
	"food-delivery-api/internal/interface/api/rest/respond"
	"food-delivery-api/internal/interface/api/rest/validator"
)

// pathID parses a UUID route parameter and answers 400 when it is malformed.
func pathID(c *gin.Context, param string) (uuid.UUID, bool) {
	ok, id := validator.IsUUID(c.Param(param))
	if !ok {
		respond.Abort(c, http.StatusBadRequest, param+" must be a valid UUID")
		return uuid.Nil, false
	}
	return id, true
}

func bindJSON(c *gin.Context, req any) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		respond.Abort(c, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

func validated(c *gin.Context, errs apperr.FieldErrors) bool {
	if len(errs) > 0 {
		respond.Validation(c, errs)
		return false
	}
	return true
}

func requiredQuery(c *gin.Context, key string) (string, bool) {
	v := c.Query(key)
	if v == "" {
		respond.Validation(c, apperr.FieldErrors{{Field: key, Message: "is required"}})
		return "", false
	}
	return v, true
}
