package domain

import (
	"time"
)

// Rating bounds for a product review.
const (
	MinRating = 1
	MaxRating = 5
)

// Review represents a product review left by a consumer for a producer's
// product after an order. The order, product, consumer, and producer
// references are immutable after creation; only rating and comment may change.
type Review struct {
	ID         int64     `json:"id"`
	OrderID    int64     `json:"order_id"`
	ProductID  int64     `json:"product_id"`
	ConsumerID int64     `json:"consumer_id"`
	ProducerID int64     `json:"producer_id"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// RatingSummary is the on-demand aggregate over a product's reviews. It is
// computed from the review rows at read time, never cached.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// ValidRating reports whether r is within the allowed rating range.
func ValidRating(r int) bool {
	return r >= MinRating && r <= MaxRating
}
