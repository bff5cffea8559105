package controller

import (
	"net/http"

	"github.com/bloomday/bloomday/internal/domain/dto"
	"github.com/labstack/echo/v4"
)

func (c *Controller) Search(ctx echo.Context) error {
	req := new(dto.SearchRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	results, err := c.searchService.Search(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, results)
}
