package store

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/bloomday/bloomday/internal/domain"
	"github.com/bloomday/bloomday/internal/pkg/store/xpgx"
	"github.com/google/uuid"
)

func (s *store) AddFavorite(ctx context.Context, userID, vendorID uuid.UUID) error {
	query := builder().Insert(tableFavorites).
		Columns("user_id", "vendor_id").
		Values(userID, vendorID).
		Suffix(`on conflict (user_id, vendor_id) do nothing`)

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return wrapErr(err)
	}

	return nil
}

func (s *store) RemoveFavorite(ctx context.Context, userID, vendorID uuid.UUID) error {
	query := builder().Delete(tableFavorites).
		Where(sq.Eq{"user_id": userID, "vendor_id": vendorID})

	if _, err := xpgx.Execx(ctx, s.pool, query); err != nil {
		return err
	}

	return nil
}

func (s *store) ListFavorites(ctx context.Context, userID uuid.UUID) ([]*domain.Vendor, error) {
	cols := make([]string, 0, len(vendorColumns))
	for _, c := range vendorColumns {
		cols = append(cols, "v."+c)
	}

	query := builder().Select(cols...).
		From(tableFavorites + " f").
		Join(tableVendors + " v on v.id=f.vendor_id").
		Where(sq.Eq{"f.user_id": userID}).
		OrderBy("f.created_at desc")

	selected, err := xpgx.Selectx[domain.Vendor](ctx, s.pool, query)
	if err != nil {
		return nil, err
	}

	return selected, nil
}
