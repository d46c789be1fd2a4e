package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"dora-eats/internal/checkout"
	"dora-eats/internal/models"
	"dora-eats/internal/repository/cache"
	"dora-eats/internal/service"
)

const (
	sessionHeader = "X-Session-Id"
	sessionKey    = "session"
)

type errorResponse struct {
	Message string `json:"message"`
}

type validationResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

func newErrorResponse(c *gin.Context, statusCode int, message string) {
	logrus.WithField("path", c.FullPath()).Error(message)
	c.AbortWithStatusJSON(statusCode, errorResponse{Message: message})
}

// serviceError maps service failures onto HTTP statuses. Submission errors
// keep their cause in the log only.
func serviceError(c *gin.Context, err error) {
	var fields checkout.ErrorSet
	switch {
	case errors.As(err, &fields):
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, validationResponse{
			Message: "validation failed",
			Errors:  fields,
		})
	case errors.Is(err, service.ErrNotFound):
		newErrorResponse(c, http.StatusNotFound, "not found")
	case errors.Is(err, service.ErrEmptyCart):
		newErrorResponse(c, http.StatusConflict, service.ErrEmptyCart.Error())
	case errors.Is(err, service.ErrInFlight):
		newErrorResponse(c, http.StatusConflict, service.ErrInFlight.Error())
	case errors.Is(err, service.ErrSubmission):
		logrus.WithError(err).Warn("submission failed")
		newErrorResponse(c, http.StatusBadGateway, service.ErrSubmission.Error())
	default:
		var eh cache.ErrorHandler
		if errors.As(err, &eh) {
			newErrorResponse(c, eh.StatusCode, err.Error())
			return
		}
		newErrorResponse(c, http.StatusInternalServerError, err.Error())
	}
}

func requireSession(c *gin.Context) {
	id := strings.TrimSpace(c.GetHeader(sessionHeader))
	if id == "" {
		newErrorResponse(c, http.StatusBadRequest, "missing "+sessionHeader+" header")
		return
	}
	c.Set(sessionKey, id)
	c.Next()
}

func session(c *gin.Context) string {
	return c.GetString(sessionKey)
}

// bindFields reads checkout form state from a JSON object or a
// form-encoded body.
func bindFields(c *gin.Context) (models.Fields, error) {
	if c.ContentType() == gin.MIMEJSON {
		var f models.Fields
		if err := c.ShouldBindJSON(&f); err != nil {
			return nil, err
		}
		if f == nil {
			f = models.Fields{}
		}
		return f, nil
	}
	if err := c.Request.ParseForm(); err != nil {
		return nil, err
	}
	return models.FieldsFromValues(c.Request.PostForm), nil
}
