package store

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/bloomday/bloomday/internal/domain"
	"github.com/bloomday/bloomday/internal/pkg/store/xpgx"
)

type ListVendorsOpts struct {
	Category    string
	City        string
	State       string
	Subcategory *string
	Limit       uint64
}

var vendorColumns = []string{
	"id", "slug", "name", "category", "subcategory", "city", "state",
	"phone", "website", "instagram_handle", "rating", "review_count",
	"description", "image_url", "created_at", "updated_at",
}

func (s *store) UpsertVendor(ctx context.Context, vendor *domain.Vendor) (*domain.Vendor, error) {
	query := builder().Insert(tableVendors).
		Columns("id", "slug", "name", "category", "subcategory", "city", "state",
			"phone", "website", "instagram_handle", "rating", "review_count",
			"description", "image_url").
		Values(vendor.ID, vendor.Slug, vendor.Name, vendor.Category, vendor.Subcategory,
			strings.ToLower(vendor.City), strings.ToLower(vendor.State),
			vendor.Phone, vendor.Website, vendor.InstagramHandle, vendor.Rating,
			vendor.ReviewCount, vendor.Description, vendor.ImageURL).
		Suffix(`
on conflict (slug)
do update
set
	name = excluded.name,
	category = excluded.category,
	subcategory = excluded.subcategory,
	city = excluded.city,
	state = excluded.state,
	phone = excluded.phone,
	website = excluded.website,
	instagram_handle = excluded.instagram_handle,
	rating = excluded.rating,
	review_count = excluded.review_count,
	description = excluded.description,
	image_url = excluded.image_url,
	updated_at = now()`)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return nil, fmt.Errorf("upsert vendor %s: %w", vendor.Slug, err)
	}

	return s.GetVendorBySlug(ctx, vendor.Slug)
}

func (s *store) GetVendorBySlug(ctx context.Context, slug string) (*domain.Vendor, error) {
	query := builder().Select(vendorColumns...).
		From(tableVendors).
		Where(sq.Eq{"slug": slug})

	selected, err := xpgx.Getx[domain.Vendor](ctx, s.pool, query)
	if err != nil {
		return nil, wrapErr(err)
	}

	return selected, nil
}

func (s *store) ListVendors(ctx context.Context, opts ListVendorsOpts) ([]*domain.Vendor, error) {
	query := builder().Select(vendorColumns...).
		From(tableVendors).
		OrderBy("rating desc, review_count desc, name")

	if opts.Category != "" {
		query = query.Where(sq.Eq{"category": strings.ToLower(opts.Category)})
	}
	if opts.City != "" {
		query = query.Where(sq.Eq{"city": strings.ToLower(opts.City)})
	}
	if opts.State != "" {
		query = query.Where(sq.Eq{"state": strings.ToLower(opts.State)})
	}
	if opts.Subcategory != nil {
		query = query.Where(sq.Eq{"subcategory": strings.ToLower(*opts.Subcategory)})
	}
	if opts.Limit > 0 {
		query = query.Limit(opts.Limit)
	}

	selected, err := xpgx.Selectx[domain.Vendor](ctx, s.pool, query)
	if err != nil {
		return nil, err
	}

	return selected, nil
}
