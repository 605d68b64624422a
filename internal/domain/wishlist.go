package domain

import (
	"time"
)

// WishlistEntry represents a product saved in a user's wishlist. The
// (UserID, ProductID) pair is unique.
type WishlistEntry struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	ProductID int64     `json:"product_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ProductSummary is a read-only projection of the product a wishlist entry
// points at, carried purely for display. The product row is owned elsewhere.
type ProductSummary struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	PriceCents int64  `json:"price_cents"`
	Unit       string `json:"unit"`
	ImageURL   string `json:"image_url,omitempty"`
}

// WishlistItem is a wishlist entry joined with its product summary for
// listing.
type WishlistItem struct {
	WishlistEntry
	Product ProductSummary `json:"product"`
}
