package domain

import (
	"time"
)

// Notification category constants.
const (
	CategoryOrder     = "order"
	CategoryStock     = "stock"
	CategoryPrice     = "price"
	CategoryMessage   = "message"
	CategorySystem    = "system"
	CategoryPromotion = "promotion"
)

// Reference type constants for the optional subject-entity pointer.
const (
	ReferenceOrder   = "order"
	ReferenceProduct = "product"
	ReferenceMessage = "message"
	ReferenceUser    = "user"
)

// Notification represents a message delivered to a user's in-app inbox.
// Invariant: ReadAt is non-nil exactly when IsRead is true, and the read flag
// only ever moves from unread to read.
type Notification struct {
	ID            int64      `json:"id"`
	UserID        int64      `json:"user_id"`
	Title         string     `json:"title"`
	Message       string     `json:"message"`
	Category      string     `json:"category"`
	ReferenceID   *int64     `json:"reference_id,omitempty"`
	ReferenceType *string    `json:"reference_type,omitempty"`
	IsRead        bool       `json:"is_read"`
	ReadAt        *time.Time `json:"read_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// ValidCategories returns the set of valid notification categories.
func ValidCategories() []string {
	return []string{CategoryOrder, CategoryStock, CategoryPrice, CategoryMessage, CategorySystem, CategoryPromotion}
}

// IsValidCategory checks whether c is a valid notification category.
func IsValidCategory(c string) bool {
	for _, v := range ValidCategories() {
		if v == c {
			return true
		}
	}
	return false
}

// ValidReferenceTypes returns the set of valid reference types.
func ValidReferenceTypes() []string {
	return []string{ReferenceOrder, ReferenceProduct, ReferenceMessage, ReferenceUser}
}

// IsValidReferenceType checks whether t is a valid reference type.
func IsValidReferenceType(t string) bool {
	for _, v := range ValidReferenceTypes() {
		if v == t {
			return true
		}
	}
	return false
}
