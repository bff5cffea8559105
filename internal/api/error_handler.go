package api

import (
	"errors"
	"net/http"

	"github.com/bloomday/bloomday/internal/domain"
	"github.com/bloomday/bloomday/internal/pkg/constants"
	"github.com/bloomday/bloomday/internal/pkg/logger"
	"github.com/labstack/echo/v4"
)

func httpErrorHandler(err error, c echo.Context) {
	msg := err.Error()
	code := http.StatusInternalServerError

	walk := err
	for walk != nil {
		if ce, ok := walk.(*constants.CodedError); ok {
			code = ce.Code()
			break
		}
		if he, ok := walk.(*echo.HTTPError); ok {
			code = he.Code
			break
		}
		walk = errors.Unwrap(walk)
	}

	if code >= http.StatusInternalServerError {
		logger.Errorf(c.Request().Context(), "%s %s: %s", c.Request().Method, c.Path(), msg)
	}

	_ = c.JSON(code, domain.ErrorResponse{
		Message: msg,
		Code:    code,
	})
}
