package favorite

import (
	"context"
	"fmt"

	"github.com/bloomday/bloomday/internal/domain"
	"github.com/bloomday/bloomday/internal/pkg/store"
	"github.com/google/uuid"
)

type Service struct {
	store store.Store
}

func NewFavoriteService(store store.Store) *Service {
	return &Service{store: store}
}

func (s *Service) Add(ctx context.Context, userID, vendorID uuid.UUID) error {
	if err := s.store.AddFavorite(ctx, userID, vendorID); err != nil {
		return fmt.Errorf("store.AddFavorite: %w", err)
	}

	return nil
}

func (s *Service) Remove(ctx context.Context, userID, vendorID uuid.UUID) error {
	if err := s.store.RemoveFavorite(ctx, userID, vendorID); err != nil {
		return fmt.Errorf("store.RemoveFavorite: %w", err)
	}

	return nil
}

func (s *Service) List(ctx context.Context, userID uuid.UUID) ([]*domain.Vendor, error) {
	vendors, err := s.store.ListFavorites(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("store.ListFavorites: %w", err)
	}

	return vendors, nil
}
