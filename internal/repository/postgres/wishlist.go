package postgres

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/wylmer7856/AgroStock-Web-sub003/internal/domain"
	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/database"
	apperrors "github.com/wylmer7856/AgroStock-Web-sub003/pkg/errors"
)

// WishlistRepository implements repository.WishlistRepository using PostgreSQL.
type WishlistRepository struct {
	pool database.DBTX
}

// NewWishlistRepository creates a new PostgreSQL-backed wishlist repository.
func NewWishlistRepository(pool database.DBTX) *WishlistRepository {
	return &WishlistRepository{pool: pool}
}

// Add inserts a product into the user's wishlist. The product-exists check,
// duplicate check, and insert run in one transaction. The unique constraint
// on (user_id, product_id) backstops the duplicate check under concurrency.
func (r *WishlistRepository) Add(ctx context.Context, userID, productID int64) (*domain.WishlistEntry, error) {
	var created *domain.WishlistEntry

	err := database.WithTx(ctx, r.pool, "AddWishlistEntry", func(tx pgx.Tx) error {
		var productExists bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, productID,
		).Scan(&productExists); err != nil {
			return fmt.Errorf("check product exists: %w", err)
		}
		if !productExists {
			return apperrors.NotFound("product", productID)
		}

		var alreadyListed bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS(SELECT 1 FROM wishlist_items WHERE user_id = $1 AND product_id = $2)`,
			userID, productID,
		).Scan(&alreadyListed); err != nil {
			return fmt.Errorf("check wishlist entry exists: %w", err)
		}
		if alreadyListed {
			return apperrors.Duplicate("product already in wishlist")
		}

		entry := domain.WishlistEntry{UserID: userID, ProductID: productID}
		err := tx.QueryRow(ctx,
			`INSERT INTO wishlist_items (user_id, product_id) VALUES ($1, $2) RETURNING id, created_at`,
			userID, productID,
		).Scan(&entry.ID, &entry.CreatedAt)
		if err != nil {
			if isUniqueViolation(err) {
				return apperrors.Duplicate("product already in wishlist")
			}
			return fmt.Errorf("insert wishlist entry: %w", err)
		}

		created = &entry
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// ListForUser returns the user's wishlist entries joined with product
// summaries, newest first.
func (r *WishlistRepository) ListForUser(ctx context.Context, userID int64) ([]domain.WishlistItem, error) {
	query := `
		SELECT w.id, w.user_id, w.product_id, w.created_at,
		       p.name, p.price_cents, p.unit, COALESCE(p.image_url, '')
		FROM wishlist_items w
		JOIN products p ON p.id = w.product_id
		WHERE w.user_id = $1
		ORDER BY w.created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("list wishlist entries: %w", err)
	}
	defer rows.Close()

	items := make([]domain.WishlistItem, 0)

	for rows.Next() {
		var item domain.WishlistItem

		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.ProductID,
			&item.CreatedAt,
			&item.Product.Name,
			&item.Product.PriceCents,
			&item.Product.Unit,
			&item.Product.ImageURL,
		); err != nil {
			return nil, fmt.Errorf("scan wishlist row: %w", err)
		}

		item.Product.ID = item.ProductID
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate wishlist rows: %w", err)
	}

	return items, nil
}

// Remove deletes one of the user's wishlist entries by entry ID.
func (r *WishlistRepository) Remove(ctx context.Context, entryID, userID int64) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM wishlist_items WHERE id = $1 AND user_id = $2`, entryID, userID)
	if err != nil {
		return fmt.Errorf("remove wishlist entry: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("wishlist entry", entryID)
	}

	return nil
}

// RemoveByProduct deletes the user's wishlist entry for a product.
func (r *WishlistRepository) RemoveByProduct(ctx context.Context, productID, userID int64) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM wishlist_items WHERE product_id = $1 AND user_id = $2`, productID, userID)
	if err != nil {
		return fmt.Errorf("remove wishlist entry by product: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("wishlist entry for product", productID)
	}

	return nil
}

// Clear deletes all of the user's wishlist entries and returns the number
// removed. Clearing an empty wishlist is not an error.
func (r *WishlistRepository) Clear(ctx context.Context, userID int64) (int64, error) {
	ct, err := r.pool.Exec(ctx, `DELETE FROM wishlist_items WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("clear wishlist: %w", err)
	}

	return ct.RowsAffected(), nil
}

// Contains checks whether a product is in the user's wishlist.
func (r *WishlistRepository) Contains(ctx context.Context, productID, userID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM wishlist_items WHERE user_id = $1 AND product_id = $2)`

	var exists bool
	if err := r.pool.QueryRow(ctx, query, userID, productID).Scan(&exists); err != nil {
		return false, fmt.Errorf("check wishlist entry exists: %w", err)
	}

	return exists, nil
}

// isUniqueViolation reports whether err is a PostgreSQL unique constraint
// violation (SQLSTATE 23505).
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "23505")
}
