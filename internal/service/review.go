package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/wylmer7856/AgroStock-Web-sub003/internal/domain"
	"github.com/wylmer7856/AgroStock-Web-sub003/internal/repository"
	apperrors "github.com/wylmer7856/AgroStock-Web-sub003/pkg/errors"
)

// ReviewService implements the business logic for review operations.
type ReviewService struct {
	repo   repository.ReviewRepository
	logger *slog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(repo repository.ReviewRepository, logger *slog.Logger) *ReviewService {
	return &ReviewService{repo: repo, logger: logger}
}

// CreateReviewInput holds the parameters for creating a review.
type CreateReviewInput struct {
	OrderID    int64
	ProductID  int64
	ConsumerID int64
	ProducerID int64
	Rating     int
	Comment    string
}

// CreateReview validates and stores a new review, returning the stored row.
func (s *ReviewService) CreateReview(ctx context.Context, input *CreateReviewInput) (*domain.Review, error) {
	if input.OrderID <= 0 {
		return nil, apperrors.InvalidInput("order_id is required")
	}
	if input.ProductID <= 0 {
		return nil, apperrors.InvalidInput("product_id is required")
	}
	if input.ConsumerID <= 0 {
		return nil, apperrors.InvalidInput("consumer_id is required")
	}
	if input.ProducerID <= 0 {
		return nil, apperrors.InvalidInput("producer_id is required")
	}
	if !domain.ValidRating(input.Rating) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("rating must be between %d and %d", domain.MinRating, domain.MaxRating))
	}

	review := &domain.Review{
		OrderID:    input.OrderID,
		ProductID:  input.ProductID,
		ConsumerID: input.ConsumerID,
		ProducerID: input.ProducerID,
		Rating:     input.Rating,
		Comment:    strings.TrimSpace(input.Comment),
	}

	created, err := s.repo.Create(ctx, review)
	if err != nil {
		return nil, fmt.Errorf("create review: %w", err)
	}

	s.logger.InfoContext(ctx, "review created",
		slog.Int64("review_id", created.ID),
		slog.Int64("product_id", created.ProductID),
		slog.Int("rating", created.Rating),
	)

	return created, nil
}

// GetReview retrieves a review by its ID.
func (s *ReviewService) GetReview(ctx context.Context, id int64) (*domain.Review, error) {
	if id <= 0 {
		return nil, apperrors.InvalidInput("review id must be positive")
	}

	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get review: %w", err)
	}

	return review, nil
}

// ListReviews returns all reviews, newest first.
func (s *ReviewService) ListReviews(ctx context.Context) ([]domain.Review, error) {
	reviews, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}

	return reviews, nil
}

// ListProductReviews returns a product's reviews, newest first.
func (s *ReviewService) ListProductReviews(ctx context.Context, productID int64) ([]domain.Review, error) {
	if productID <= 0 {
		return nil, apperrors.InvalidInput("product id must be positive")
	}

	reviews, err := s.repo.ListByProduct(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("list product reviews: %w", err)
	}

	return reviews, nil
}

// UpdateReviewInput holds the optional fields of a review update. A nil field
// keeps the stored value.
type UpdateReviewInput struct {
	Rating  *int
	Comment *string
}

// UpdateReview applies a partial update to a review's rating and comment and
// returns the updated row. The order, product, and party references never
// change.
func (s *ReviewService) UpdateReview(ctx context.Context, id int64, input *UpdateReviewInput) (*domain.Review, error) {
	if id <= 0 {
		return nil, apperrors.InvalidInput("review id must be positive")
	}
	if input.Rating == nil && input.Comment == nil {
		return nil, apperrors.InvalidInput("at least one of rating or comment must be provided")
	}
	if input.Rating != nil && !domain.ValidRating(*input.Rating) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("rating must be between %d and %d", domain.MinRating, domain.MaxRating))
	}

	comment := input.Comment
	if comment != nil {
		trimmed := strings.TrimSpace(*comment)
		comment = &trimmed
	}

	if err := s.repo.Update(ctx, id, input.Rating, comment); err != nil {
		return nil, fmt.Errorf("update review: %w", err)
	}

	review, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get updated review: %w", err)
	}

	s.logger.InfoContext(ctx, "review updated", slog.Int64("review_id", id))

	return review, nil
}

// DeleteReview removes a review.
func (s *ReviewService) DeleteReview(ctx context.Context, id int64) error {
	if id <= 0 {
		return apperrors.InvalidInput("review id must be positive")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete review: %w", err)
	}

	s.logger.InfoContext(ctx, "review deleted", slog.Int64("review_id", id))

	return nil
}

// ProductRating returns the on-demand rating aggregate for a product. The
// average is the exact arithmetic mean of the stored ratings.
func (s *ReviewService) ProductRating(ctx context.Context, productID int64) (*domain.RatingSummary, error) {
	if productID <= 0 {
		return nil, apperrors.InvalidInput("product id must be positive")
	}

	summary, err := s.repo.RatingSummary(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("get product rating: %w", err)
	}

	return summary, nil
}
