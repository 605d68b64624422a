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

// List bounds for notification queries.
const (
	defaultNotificationLimit = 50
	maxNotificationLimit     = 100
)

// NotificationService implements the business logic for notification operations.
type NotificationService struct {
	repo   repository.NotificationRepository
	logger *slog.Logger
}

// NewNotificationService creates a new notification service.
func NewNotificationService(repo repository.NotificationRepository, logger *slog.Logger) *NotificationService {
	return &NotificationService{repo: repo, logger: logger}
}

// CreateNotificationInput holds the parameters for creating a notification.
type CreateNotificationInput struct {
	UserID        int64
	Title         string
	Message       string
	Category      string
	ReferenceID   *int64
	ReferenceType *string
}

// CreateNotification validates and stores a new notification. Notifications
// are always created unread.
func (s *NotificationService) CreateNotification(ctx context.Context, input *CreateNotificationInput) (*domain.Notification, error) {
	if input.UserID <= 0 {
		return nil, apperrors.InvalidInput("user_id is required")
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, apperrors.InvalidInput("title is required")
	}

	message := strings.TrimSpace(input.Message)
	if message == "" {
		return nil, apperrors.InvalidInput("message is required")
	}

	category := input.Category
	if category == "" {
		category = domain.CategorySystem
	}
	if !domain.IsValidCategory(category) {
		return nil, apperrors.InvalidInput(fmt.Sprintf("invalid category %q", category))
	}

	// The reference is a pair: an ID without a type, or a type without an
	// ID, is meaningless.
	if (input.ReferenceID == nil) != (input.ReferenceType == nil) {
		return nil, apperrors.InvalidInput("reference_id and reference_type must be provided together")
	}
	if input.ReferenceID != nil {
		if *input.ReferenceID <= 0 {
			return nil, apperrors.InvalidInput("reference_id must be positive")
		}
		if !domain.IsValidReferenceType(*input.ReferenceType) {
			return nil, apperrors.InvalidInput(fmt.Sprintf("invalid reference_type %q", *input.ReferenceType))
		}
	}

	notification := &domain.Notification{
		UserID:        input.UserID,
		Title:         title,
		Message:       message,
		Category:      category,
		ReferenceID:   input.ReferenceID,
		ReferenceType: input.ReferenceType,
	}

	created, err := s.repo.Create(ctx, notification)
	if err != nil {
		return nil, fmt.Errorf("create notification: %w", err)
	}

	s.logger.InfoContext(ctx, "notification created",
		slog.Int64("notification_id", created.ID),
		slog.Int64("user_id", created.UserID),
		slog.String("category", created.Category),
	)

	return created, nil
}

// ListNotifications returns the user's notifications, newest first, bounded
// by limit. A non-positive limit falls back to the default; oversized limits
// are clamped.
func (s *NotificationService) ListNotifications(ctx context.Context, userID int64, limit int, unreadOnly bool) ([]domain.Notification, error) {
	if userID <= 0 {
		return nil, apperrors.InvalidInput("user id must be positive")
	}

	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	notifications, err := s.repo.ListForUser(ctx, userID, limit, unreadOnly)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}

	return notifications, nil
}

// MarkNotificationRead marks one of the user's notifications as read.
// Marking an already-read notification is a no-op, not an error.
func (s *NotificationService) MarkNotificationRead(ctx context.Context, id, userID int64) error {
	if id <= 0 {
		return apperrors.InvalidInput("notification id must be positive")
	}

	if err := s.repo.MarkRead(ctx, id, userID); err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	return nil
}

// MarkAllNotificationsRead marks every unread notification for the user and
// returns the number updated.
func (s *NotificationService) MarkAllNotificationsRead(ctx context.Context, userID int64) (int64, error) {
	updated, err := s.repo.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	s.logger.InfoContext(ctx, "notifications marked read",
		slog.Int64("user_id", userID),
		slog.Int64("updated", updated),
	)

	return updated, nil
}

// DeleteNotification removes one of the user's notifications.
func (s *NotificationService) DeleteNotification(ctx context.Context, id, userID int64) error {
	if id <= 0 {
		return apperrors.InvalidInput("notification id must be positive")
	}

	if err := s.repo.Delete(ctx, id, userID); err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	return nil
}

// UnreadCount returns the user's unread notification count.
func (s *NotificationService) UnreadCount(ctx context.Context, userID int64) (int, error) {
	count, err := s.repo.CountUnread(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	return count, nil
}
