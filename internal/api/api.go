package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/bloomday/bloomday/internal/api/controller"
	"github.com/bloomday/bloomday/internal/pkg/config"
	"github.com/bloomday/bloomday/internal/pkg/dataforseo"
	"github.com/bloomday/bloomday/internal/pkg/logger"
	"github.com/bloomday/bloomday/internal/pkg/store"
	"github.com/bloomday/bloomday/internal/service/favorite"
	"github.com/bloomday/bloomday/internal/service/search"
	"github.com/bloomday/bloomday/internal/service/vendor"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

type APIService struct {
	router *echo.Echo

	searchService   *search.Service
	vendorService   *vendor.Service
	favoriteService *favorite.Service
}

// Serve blocks until the server stops. A Shutdown-triggered close is a clean
// return, not a fatal; deferred cleanup in main still has to run.
func (svc *APIService) Serve(addr string) {
	if err := svc.router.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal(context.Background(), err)
	}
}

func (svc *APIService) Shutdown(ctx context.Context) error {
	return svc.router.Shutdown(ctx)
}

func NewAPIService(cfg *config.Config, st store.Store) (*APIService, error) {
	svc := &APIService{router: echo.New()}

	svc.router.HideBanner = true
	svc.router.Validator = NewValidator()
	svc.router.Binder = NewBinder()
	svc.router.HTTPErrorHandler = httpErrorHandler
	svc.router.Use(middleware.Logger())
	svc.router.Use(RequestIDMiddleware)
	svc.router.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: []string{echo.GET, echo.PUT, echo.POST, echo.DELETE},
		AllowHeaders: []string{"Content-Type", "Authorization"},
	}))

	provider, err := dataforseo.NewClient(dataforseo.Config{
		Login:    cfg.DataForSEO.Login,
		Password: cfg.DataForSEO.Password,
		BaseURL:  cfg.DataForSEO.BaseURL,
	})
	if err != nil {
		return nil, err
	}

	svc.searchService = search.NewSearchService(st, provider, cfg.CacheTTL)
	svc.vendorService = vendor.NewVendorService(st)
	svc.favoriteService = favorite.NewFavoriteService(st)

	api := svc.router.Group("/api/v1")
	cntrl := controller.NewController(svc.searchService, svc.vendorService, svc.favoriteService)

	api.POST("/search", cntrl.Search)

	vendors := api.Group("/vendors")
	vendors.GET("/list", cntrl.ListVendors)
	vendors.POST("", cntrl.UpsertVendor)
	vendors.POST("/enrich", cntrl.EnrichAllVendors)
	vendors.GET("/:slug", cntrl.GetVendorBySlug)
	vendors.POST("/:slug/enrich", cntrl.EnrichVendor)

	portal := api.Group("/portal", svc.AuthMiddleware)
	portal.GET("/favorites/list", cntrl.ListFavorites)
	portal.POST("/favorites", cntrl.AddFavorite)
	portal.DELETE("/favorites/:vendor_id", cntrl.RemoveFavorite)

	return svc, nil
}
