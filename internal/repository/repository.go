package repository

import (
	"context"

	"github.com/wylmer7856/AgroStock-Web-sub003/internal/domain"
)

// ReviewRepository defines persistence operations for product reviews.
type ReviewRepository interface {
	// Create inserts a review and returns the stored row, fetched by the
	// key generated for the insert.
	Create(ctx context.Context, review *domain.Review) (*domain.Review, error)

	// GetByID retrieves a review by its identifier.
	GetByID(ctx context.Context, id int64) (*domain.Review, error)

	// List returns all reviews, newest first.
	List(ctx context.Context) ([]domain.Review, error)

	// ListByProduct returns a product's reviews, newest first.
	ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error)

	// Update applies a partial update: nil fields keep their stored values.
	Update(ctx context.Context, id int64, rating *int, comment *string) error

	// Delete removes a review.
	Delete(ctx context.Context, id int64) error

	// RatingSummary computes the on-demand rating aggregate for a product.
	RatingSummary(ctx context.Context, productID int64) (*domain.RatingSummary, error)
}

// NotificationRepository defines persistence operations for notifications.
// Mutating operations are scoped to the owning user.
type NotificationRepository interface {
	// Create inserts a notification and returns the stored row.
	Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error)

	// ListForUser returns the user's notifications, newest first, bounded
	// by limit, optionally restricted to unread.
	ListForUser(ctx context.Context, userID int64, limit int, unreadOnly bool) ([]domain.Notification, error)

	// MarkRead flips the read flag and stamps read_at for one notification
	// owned by userID.
	MarkRead(ctx context.Context, id, userID int64) error

	// MarkAllRead marks every unread notification for the user and returns
	// the number of rows updated.
	MarkAllRead(ctx context.Context, userID int64) (int64, error)

	// Delete removes one notification owned by userID.
	Delete(ctx context.Context, id, userID int64) error

	// CountUnread returns the user's unread notification count.
	CountUnread(ctx context.Context, userID int64) (int, error)
}

// WishlistRepository defines persistence operations for wishlist membership.
type WishlistRepository interface {
	// Add inserts a (user, product) entry, rejecting duplicates and
	// unknown products.
	Add(ctx context.Context, userID, productID int64) (*domain.WishlistEntry, error)

	// ListForUser returns the user's entries joined with product
	// summaries, newest first.
	ListForUser(ctx context.Context, userID int64) ([]domain.WishlistItem, error)

	// Remove deletes one entry owned by userID.
	Remove(ctx context.Context, entryID, userID int64) error

	// RemoveByProduct deletes the user's entry for the given product.
	RemoveByProduct(ctx context.Context, productID, userID int64) error

	// Clear deletes all of the user's entries and returns how many were
	// removed.
	Clear(ctx context.Context, userID int64) (int64, error)

	// Contains reports whether the product is in the user's wishlist.
	Contains(ctx context.Context, productID, userID int64) (bool, error)
}
