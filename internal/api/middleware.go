package api

import (
	"context"

	"github.com/bloomday/bloomday/internal/pkg/constants"
	"github.com/bloomday/bloomday/internal/pkg/utils"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/random"
)

// RequestIDMiddleware stamps every request with an id the logger picks up.
func RequestIDMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		reqID := ctx.Request().Header.Get(echo.HeaderXRequestID)
		if reqID == "" {
			reqID = random.String(32)
		}
		ctx.Response().Header().Set(echo.HeaderXRequestID, reqID)

		reqCtx := context.WithValue(ctx.Request().Context(), constants.CtxKeyRequestID, reqID) //nolint:staticcheck
		ctx.SetRequest(ctx.Request().WithContext(reqCtx))

		return next(ctx)
	}
}

// AuthMiddleware guards the portal group. It only validates the auth cookie;
// issuing tokens is the account service's job.
func (svc *APIService) AuthMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		cookie, err := ctx.Cookie(constants.CookieKeyAuthToken)
		if err != nil {
			return constants.ErrMissingAuthCookie
		}

		token, err := utils.ParseAuthToken(cookie.Value)
		if err != nil {
			return err
		}

		ctx.Set(constants.CtxKeyUserID, token.UserID)

		return next(ctx)
	}
}
