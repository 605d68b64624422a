package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/wylmer7856/AgroStock-Web-sub003/internal/domain"
	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/database"
	apperrors "github.com/wylmer7856/AgroStock-Web-sub003/pkg/errors"
)

const reviewColumns = `id, order_id, product_id, consumer_id, producer_id, rating, comment, created_at`

// ReviewRepository implements repository.ReviewRepository using PostgreSQL.
type ReviewRepository struct {
	pool database.DBTX
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool database.DBTX) *ReviewRepository {
	return &ReviewRepository{pool: pool}
}

// Create inserts a new review and returns the stored row. The insert and the
// read-back run in one transaction keyed on the generated ID, so a concurrent
// insert can never be returned in place of this one.
func (r *ReviewRepository) Create(ctx context.Context, review *domain.Review) (*domain.Review, error) {
	insertQuery := `
		INSERT INTO reviews (order_id, product_id, consumer_id, producer_id, rating, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	var created *domain.Review

	err := database.WithTx(ctx, r.pool, "CreateReview", func(tx pgx.Tx) error {
		var id int64
		if err := tx.QueryRow(ctx, insertQuery,
			review.OrderID,
			review.ProductID,
			review.ConsumerID,
			review.ProducerID,
			review.Rating,
			review.Comment,
		).Scan(&id); err != nil {
			return fmt.Errorf("insert review: %w", err)
		}

		stored, err := scanReviewRow(tx.QueryRow(ctx,
			`SELECT `+reviewColumns+` FROM reviews WHERE id = $1`, id))
		if err != nil {
			return fmt.Errorf("read back review %d: %w", id, err)
		}

		created = stored
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// GetByID retrieves a review by its ID.
func (r *ReviewRepository) GetByID(ctx context.Context, id int64) (*domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = $1`

	review, err := scanReviewRow(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NotFound("review", id)
		}
		return nil, fmt.Errorf("get review: %w", err)
	}

	return review, nil
}

// List returns all reviews, newest first.
func (r *ReviewRepository) List(ctx context.Context) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews ORDER BY created_at DESC`

	return r.scanReviews(ctx, query)
}

// ListByProduct returns all reviews for a product, newest first.
func (r *ReviewRepository) ListByProduct(ctx context.Context, productID int64) ([]domain.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE product_id = $1 ORDER BY created_at DESC`

	return r.scanReviews(ctx, query, productID)
}

// Update applies a partial update to rating and comment. Nil parameters leave
// the stored column untouched.
func (r *ReviewRepository) Update(ctx context.Context, id int64, rating *int, comment *string) error {
	query := `
		UPDATE reviews
		SET rating = COALESCE($1, rating),
		    comment = COALESCE($2, comment)
		WHERE id = $3`

	ct, err := r.pool.Exec(ctx, query, rating, comment, id)
	if err != nil {
		return fmt.Errorf("update review: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("review", id)
	}

	return nil
}

// Delete removes a review by its ID.
func (r *ReviewRepository) Delete(ctx context.Context, id int64) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("review", id)
	}

	return nil
}

// RatingSummary computes the average rating and review count for a product
// from the review rows. A product with no reviews yields a zero average.
func (r *ReviewRepository) RatingSummary(ctx context.Context, productID int64) (*domain.RatingSummary, error) {
	query := `
		SELECT COALESCE(AVG(rating), 0), COUNT(*)
		FROM reviews
		WHERE product_id = $1`

	var summary domain.RatingSummary

	err := r.pool.QueryRow(ctx, query, productID).Scan(
		&summary.Average,
		&summary.Count,
	)
	if err != nil {
		return nil, fmt.Errorf("get rating summary: %w", err)
	}

	return &summary, nil
}

func (r *ReviewRepository) scanReviews(ctx context.Context, query string, args ...any) ([]domain.Review, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	defer rows.Close()

	reviews := make([]domain.Review, 0)

	for rows.Next() {
		var rv domain.Review

		if err := rows.Scan(
			&rv.ID,
			&rv.OrderID,
			&rv.ProductID,
			&rv.ConsumerID,
			&rv.ProducerID,
			&rv.Rating,
			&rv.Comment,
			&rv.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review row: %w", err)
		}

		reviews = append(reviews, rv)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate review rows: %w", err)
	}

	return reviews, nil
}

func scanReviewRow(row pgx.Row) (*domain.Review, error) {
	var rv domain.Review

	err := row.Scan(
		&rv.ID,
		&rv.OrderID,
		&rv.ProductID,
		&rv.ConsumerID,
		&rv.ProducerID,
		&rv.Rating,
		&rv.Comment,
		&rv.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &rv, nil
}
