// Package respond renders the uniform error payload shared by handlers and middleware.
package respond

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"food-delivery-api/internal/application/apperr"
)

const internalMessage = "internal server error"

type ErrorBody struct {
	Errors []string `json:"errors"`
	Status int      `json:"status"`
}

func StatusOf(kind apperr.Kind) int {
	switch kind {
	case apperr.KindBadRequest, apperr.KindValidation:
		return http.StatusBadRequest
	case apperr.KindConflict:
		return http.StatusConflict
	case apperr.KindUnauthenticated:
		return http.StatusUnauthorized
	case apperr.KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes messages with status and stops the handler chain.
func Abort(c *gin.Context, status int, messages ...string) {
	if len(messages) == 0 {
		messages = []string{http.StatusText(status)}
	}
	c.AbortWithStatusJSON(status, ErrorBody{Errors: messages, Status: status})
}

// Error maps err onto a status; unclassified errors are logged and hidden from the client.
func Error(c *gin.Context, logger *zap.Logger, err error) {
	var e *apperr.Error
	if !errors.As(err, &e) || e.Kind == apperr.KindInternal {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.Error(err),
		)
		Abort(c, http.StatusInternalServerError, internalMessage)
		return
	}

	status := StatusOf(e.Kind)
	if e.Kind == apperr.KindValidation {
		Abort(c, status, e.Fields.Strings()...)
		return
	}
	Abort(c, status, e.Message)
}

// Validation renders field errors as a 400.
func Validation(c *gin.Context, fields apperr.FieldErrors) {
	Abort(c, http.StatusBadRequest, fields.Strings()...)
}
