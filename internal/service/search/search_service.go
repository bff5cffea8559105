// Package search implements the location-scoped vendor search: resolve the
// location, probe the vendor_cache table, and on miss or expiry fetch from
// the paid provider and write the result back best-effort.
package search

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bloomday/bloomday/internal/domain"
	"github.com/bloomday/bloomday/internal/domain/dto"
	"github.com/bloomday/bloomday/internal/pkg/constants"
	"github.com/bloomday/bloomday/internal/pkg/logger"
	"github.com/bloomday/bloomday/internal/pkg/store"
	"github.com/bloomday/bloomday/internal/service/geo"
	"golang.org/x/sync/singleflight"
)

// Provider is the external business-search boundary. Each call is metered.
type Provider interface {
	SearchBusinesses(ctx context.Context, keyword string, locationCode int) ([]domain.GoogleListing, error)
}

type Service struct {
	store    store.Store
	provider Provider
	ttl      time.Duration

	group singleflight.Group
	now   func() time.Time
}

func NewSearchService(st store.Store, provider Provider, ttl time.Duration) *Service {
	return &Service{
		store:    st,
		provider: provider,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Search runs one search request: resolve → probe → fetch on miss → write
// back best-effort. Directory vendors matching the tuple are merged ahead of
// provider listings and are never cached, so directory edits show up
// immediately.
func (s *Service) Search(ctx context.Context, req *dto.SearchRequest) ([]domain.SearchResult, error) {
	city, state, err := geo.SplitLocation(req.Location)
	if err != nil {
		return nil, err
	}

	locationCode, err := geo.Resolve(state, city)
	if err != nil {
		return nil, err
	}

	key := store.NewCacheKey(req.Keyword, city, state, req.Subcategory)

	providerResults, err := s.cachedProviderResults(ctx, key, locationCode)
	if err != nil {
		return nil, err
	}

	results := append(s.directoryListings(ctx, key), providerResults...)
	return results, nil
}

// cachedProviderResults serves provider output through the vendor_cache
// table. A row is usable only while now < expires_at; expiry is checked
// lazily here, stale rows are overwritten on the next fetch and never
// evicted in the background. Concurrent requests for the same tuple share
// one in-flight provider call per process.
func (s *Service) cachedProviderResults(ctx context.Context, key store.CacheKey, locationCode int) ([]domain.SearchResult, error) {
	entry, err := s.store.GetCacheEntry(ctx, key)
	if err != nil && !errors.Is(err, constants.ErrDBNotFound) {
		logger.Errorf(ctx, "cache probe failed for %s: %s", key, err.Error())
	}
	if err == nil && entry.Live(s.now()) {
		return entry.SearchResults, nil
	}

	fetched, err, _ := s.group.Do(key.String(), func() (interface{}, error) {
		// The flight is shared across callers; it must not die with the
		// first caller's request context.
		return s.fetchAndCache(context.WithoutCancel(ctx), key, locationCode)
	})
	if err != nil {
		return nil, err
	}

	return fetched.([]domain.SearchResult), nil
}

func (s *Service) fetchAndCache(ctx context.Context, key store.CacheKey, locationCode int) ([]domain.SearchResult, error) {
	keyword := key.Category
	if key.Subcategory != "" {
		keyword = fmt.Sprintf("%s %s", key.Category, key.Subcategory)
	}

	listings, err := s.provider.SearchBusinesses(ctx, keyword, locationCode)
	if err != nil {
		return nil, fmt.Errorf("provider.SearchBusinesses: %w", err)
	}

	results := make([]domain.SearchResult, 0, len(listings))
	for _, l := range listings {
		results = append(results, l.SearchResult())
	}

	// Best-effort write: caching is an optimization, not a correctness
	// requirement, so a failed upsert must not mask a successful fetch.
	now := s.now()
	entry := &domain.CacheEntry{
		Category:      key.Category,
		City:          key.City,
		State:         key.State,
		Subcategory:   key.Subcategory,
		LocationCode:  locationCode,
		SearchResults: results,
		CreatedAt:     now,
		ExpiresAt:     now.Add(s.ttl),
	}
	if err := s.store.UpsertCacheEntry(ctx, entry); err != nil {
		logger.Errorf(ctx, "cache write failed for %s: %s", key, err.Error())
	}

	return results, nil
}

func (s *Service) directoryListings(ctx context.Context, key store.CacheKey) []domain.SearchResult {
	opts := store.ListVendorsOpts{
		Category: key.Category,
		City:     key.City,
		State:    key.State,
	}
	if key.Subcategory != "" {
		sub := key.Subcategory
		opts.Subcategory = &sub
	}

	vendors, err := s.store.ListVendors(ctx, opts)
	if err != nil {
		logger.Errorf(ctx, "directory lookup failed for %s: %s", key, err.Error())
		return nil
	}

	listings := make([]domain.Listing, 0, len(vendors))
	for _, v := range vendors {
		listings = append(listings, domain.DatabaseListing{Vendor: v})
	}

	return domain.Project(listings)
}
