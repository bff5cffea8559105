package controller

import (
	"github.com/bloomday/bloomday/internal/service/favorite"
	"github.com/bloomday/bloomday/internal/service/search"
	"github.com/bloomday/bloomday/internal/service/vendor"
)

type Controller struct {
	searchService   *search.Service
	vendorService   *vendor.Service
	favoriteService *favorite.Service
}

func NewController(
	searchService *search.Service,
	vendorService *vendor.Service,
	favoriteService *favorite.Service,
) *Controller {
	return &Controller{
		searchService:   searchService,
		vendorService:   vendorService,
		favoriteService: favoriteService,
	}
}
