package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/wylmer7856/AgroStock-Web-sub003/internal/domain"
	"github.com/wylmer7856/AgroStock-Web-sub003/internal/repository"
	apperrors "github.com/wylmer7856/AgroStock-Web-sub003/pkg/errors"
)

// WishlistService implements the business logic for wishlist operations.
type WishlistService struct {
	repo   repository.WishlistRepository
	logger *slog.Logger
}

// NewWishlistService creates a new wishlist service.
func NewWishlistService(repo repository.WishlistRepository, logger *slog.Logger) *WishlistService {
	return &WishlistService{repo: repo, logger: logger}
}

// AddToWishlist adds a product to the user's wishlist and returns the new
// entry. The product must exist, and a product can appear at most once per
// user.
func (s *WishlistService) AddToWishlist(ctx context.Context, userID, productID int64) (*domain.WishlistEntry, error) {
	if productID <= 0 {
		return nil, apperrors.InvalidInput("product id must be positive")
	}

	entry, err := s.repo.Add(ctx, userID, productID)
	if err != nil {
		return nil, fmt.Errorf("add to wishlist: %w", err)
	}

	s.logger.InfoContext(ctx, "wishlist entry added",
		slog.Int64("user_id", userID),
		slog.Int64("product_id", productID),
	)

	return entry, nil
}

// ListWishlist returns the user's wishlist entries with product summaries,
// newest first.
func (s *WishlistService) ListWishlist(ctx context.Context, userID int64) ([]domain.WishlistItem, error) {
	items, err := s.repo.ListForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist: %w", err)
	}

	return items, nil
}

// RemoveFromWishlist removes one of the user's wishlist entries by entry ID.
func (s *WishlistService) RemoveFromWishlist(ctx context.Context, entryID, userID int64) error {
	if entryID <= 0 {
		return apperrors.InvalidInput("wishlist entry id must be positive")
	}

	if err := s.repo.Remove(ctx, entryID, userID); err != nil {
		return fmt.Errorf("remove from wishlist: %w", err)
	}

	return nil
}

// RemoveProductFromWishlist removes the user's wishlist entry for a product.
func (s *WishlistService) RemoveProductFromWishlist(ctx context.Context, productID, userID int64) error {
	if productID <= 0 {
		return apperrors.InvalidInput("product id must be positive")
	}

	if err := s.repo.RemoveByProduct(ctx, productID, userID); err != nil {
		return fmt.Errorf("remove product from wishlist: %w", err)
	}

	return nil
}

// ClearWishlist removes all of the user's wishlist entries and returns how
// many were removed. An empty wishlist clears to zero without error.
func (s *WishlistService) ClearWishlist(ctx context.Context, userID int64) (int64, error) {
	removed, err := s.repo.Clear(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("clear wishlist: %w", err)
	}

	s.logger.InfoContext(ctx, "wishlist cleared",
		slog.Int64("user_id", userID),
		slog.Int64("removed", removed),
	)

	return removed, nil
}

// InWishlist reports whether the product is in the user's wishlist.
func (s *WishlistService) InWishlist(ctx context.Context, productID, userID int64) (bool, error) {
	if productID <= 0 {
		return false, apperrors.InvalidInput("product id must be positive")
	}

	exists, err := s.repo.Contains(ctx, productID, userID)
	if err != nil {
		return false, fmt.Errorf("check wishlist: %w", err)
	}

	return exists, nil
}
