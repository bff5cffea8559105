package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/bloomday/bloomday/internal/domain"
	"github.com/bloomday/bloomday/internal/pkg/store/xpgx"
	"github.com/bytedance/sonic"
)

// CacheKey identifies one cached search. All parts are stored lower-cased;
// subcategory is the empty string when the search had none, so the unique
// index compares real values instead of NULLs.
type CacheKey struct {
	Category    string
	City        string
	State       string
	Subcategory string
}

func NewCacheKey(category, city, state, subcategory string) CacheKey {
	norm := func(s string) string { return strings.ToLower(strings.TrimSpace(s)) }
	return CacheKey{
		Category:    norm(category),
		City:        norm(city),
		State:       norm(state),
		Subcategory: norm(subcategory),
	}
}

func (k CacheKey) String() string {
	return strings.Join([]string{k.Category, k.City, k.State, k.Subcategory}, "|")
}

var cacheColumns = []string{
	"id", "category", "city", "state", "subcategory",
	"location_code", "search_results", "created_at", "expires_at",
}

func (s *store) GetCacheEntry(ctx context.Context, key CacheKey) (*domain.CacheEntry, error) {
	query := builder().Select(cacheColumns...).
		From(tableVendorCache).
		Where(sq.Eq{
			"category":    key.Category,
			"city":        key.City,
			"state":       key.State,
			"subcategory": key.Subcategory,
		})

	selected, err := xpgx.Getx[domain.CacheEntry](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) UpsertCacheEntry(ctx context.Context, entry *domain.CacheEntry) error {
	resultsJSON, err := sonic.Marshal(entry.SearchResults)
	if err != nil {
		return fmt.Errorf("failed to marshal search results: %w", err)
	}

	query := builder().Insert(tableVendorCache).
		Columns("category", "city", "state", "subcategory", "location_code", "search_results", "created_at", "expires_at").
		Values(entry.Category, entry.City, entry.State, entry.Subcategory, entry.LocationCode, resultsJSON, entry.CreatedAt, entry.ExpiresAt).
		Suffix(`
on conflict (category, city, state, subcategory)
do update
set
	location_code = excluded.location_code,
	search_results = excluded.search_results,
	created_at = excluded.created_at,
	expires_at = excluded.expires_at`)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return err
	}

	return nil
}
