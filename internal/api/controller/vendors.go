package controller

import (
	"net/http"

	"github.com/bloomday/bloomday/internal/domain/dto"
	"github.com/bloomday/bloomday/internal/pkg/store"
	"github.com/labstack/echo/v4"
)

func (c *Controller) ListVendors(ctx echo.Context) error {
	opts := store.ListVendorsOpts{
		Category: ctx.QueryParams().Get("category"),
		City:     ctx.QueryParams().Get("city"),
		State:    ctx.QueryParams().Get("state"),
	}
	if sub := ctx.QueryParams().Get("subcategory"); sub != "" {
		opts.Subcategory = &sub
	}

	vendors, err := c.vendorService.List(ctx.Request().Context(), opts)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, vendors)
}

func (c *Controller) GetVendorBySlug(ctx echo.Context) error {
	vendor, err := c.vendorService.GetBySlug(ctx.Request().Context(), ctx.Param("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, vendor)
}

func (c *Controller) UpsertVendor(ctx echo.Context) error {
	req := new(dto.UpsertVendorRequest)
	if err := ctx.Bind(req); err != nil {
		return err
	}
	if err := ctx.Validate(req); err != nil {
		return err
	}

	vendor, err := c.vendorService.Upsert(ctx.Request().Context(), req)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, vendor)
}

func (c *Controller) EnrichVendor(ctx echo.Context) error {
	vendor, err := c.vendorService.Enrich(ctx.Request().Context(), ctx.Param("slug"))
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, vendor)
}

func (c *Controller) EnrichAllVendors(ctx echo.Context) error {
	vendors, err := c.vendorService.EnrichAll(ctx.Request().Context())
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, vendors)
}
