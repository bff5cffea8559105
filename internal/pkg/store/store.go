package store

import (
	"context"

	"github.com/bloomday/bloomday/internal/domain"
	"github.com/bloomday/bloomday/internal/pkg/store/xpgx"
	"github.com/google/uuid"
)

type Pool = xpgx.Pool

type Store interface {
	GetCacheEntry(ctx context.Context, key CacheKey) (*domain.CacheEntry, error)
	UpsertCacheEntry(ctx context.Context, entry *domain.CacheEntry) error

	UpsertVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error)
	GetVendorBySlug(ctx context.Context, slug string) (*domain.Vendor, error)
	ListVendors(ctx context.Context, opts ListVendorsOpts) ([]*domain.Vendor, error)

	AddFavorite(ctx context.Context, userID, vendorID uuid.UUID) error
	RemoveFavorite(ctx context.Context, userID, vendorID uuid.UUID) error
	ListFavorites(ctx context.Context, userID uuid.UUID) ([]*domain.Vendor, error)
}

type store struct {
	pool Pool
}

func NewStore(pool Pool) Store {
	return &store{pool}
}
