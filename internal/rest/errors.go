package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/Guyuepp/forum-api/domain"
	"github.com/Guyuepp/forum-api/internal/rest/middleware"
	"github.com/Guyuepp/forum-api/internal/rest/response"
)

// getStatusCode maps a domain error kind to an HTTP status.
func getStatusCode(err error) int {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domain.ErrMissingProperty),
		errors.Is(err, domain.ErrInvalidType),
		errors.Is(err, domain.ErrBadParamInput):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func respondError(c *gin.Context, err error) {
	code := getStatusCode(err)
	if code >= http.StatusInternalServerError {
		logrus.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
		c.JSON(code, response.Error())
		return
	}
	c.JSON(code, response.Fail(err.Error()))
}

func userID(c *gin.Context) string {
	return c.GetString(middleware.UserIDKey)
}
