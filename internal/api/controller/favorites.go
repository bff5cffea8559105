package controller

import (
	"net/http"

	"github.com/bloomday/bloomday/internal/domain/dto"
	"github.com/bloomday/bloomday/internal/pkg/constants"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func userIDFromCtx(ctx echo.Context) (uuid.UUID, error) {
	raw, ok := ctx.Get(constants.CtxKeyUserID).(string)
	if !ok || raw == "" {
		return uuid.Nil, constants.ErrUnauthorized
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, constants.ErrUnauthorized
	}

	return userID, nil
}

func (c *Controller) ListFavorites(ctx echo.Context) error {
	userID, err := userIDFromCtx(ctx)
	if err != nil {
		return err
	}

	vendors, err := c.favoriteService.List(ctx.Request().Context(), userID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, vendors)
}

func (c *Controller) AddFavorite(ctx echo.Context) error {
	userID, err := userIDFromCtx(ctx)
	if err != nil {
		return err
	}

	req := new(dto.AddFavoriteRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	if err := c.favoriteService.Add(ctx.Request().Context(), userID, req.VendorID); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *Controller) RemoveFavorite(ctx echo.Context) error {
	userID, err := userIDFromCtx(ctx)
	if err != nil {
		return err
	}

	vendorID, err := uuid.Parse(ctx.Param("vendor_id"))
	if err != nil {
		return constants.ErrBadRequest
	}

	if err := c.favoriteService.Remove(ctx.Request().Context(), userID, vendorID); err != nil {
		return err
	}

	return ctx.NoContent(http.StatusNoContent)
}
