package postgres

import (
	"context"
	"fmt"

	"github.com/wylmer7856/AgroStock-Web-sub003/internal/domain"
	"github.com/wylmer7856/AgroStock-Web-sub003/pkg/database"
	apperrors "github.com/wylmer7856/AgroStock-Web-sub003/pkg/errors"
)

// NotificationRepository implements repository.NotificationRepository using PostgreSQL.
type NotificationRepository struct {
	pool database.DBTX
}

// NewNotificationRepository creates a new PostgreSQL-backed notification repository.
func NewNotificationRepository(pool database.DBTX) *NotificationRepository {
	return &NotificationRepository{pool: pool}
}

// Create inserts a new notification and returns the stored row. The insert
// returns the server-generated columns directly, so no follow-up read is
// needed.
func (r *NotificationRepository) Create(ctx context.Context, n *domain.Notification) (*domain.Notification, error) {
	query := `
		INSERT INTO notifications (user_id, title, message, category, reference_id, reference_type)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, is_read, read_at, created_at`

	created := *n

	err := r.pool.QueryRow(ctx, query,
		n.UserID,
		n.Title,
		n.Message,
		n.Category,
		n.ReferenceID,
		n.ReferenceType,
	).Scan(
		&created.ID,
		&created.IsRead,
		&created.ReadAt,
		&created.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}

	return &created, nil
}

// ListForUser returns the user's notifications, newest first, up to limit.
// When unreadOnly is set, read notifications are filtered out.
func (r *NotificationRepository) ListForUser(ctx context.Context, userID int64, limit int, unreadOnly bool) ([]domain.Notification, error) {
	query := `
		SELECT id, user_id, title, message, category, reference_id, reference_type, is_read, read_at, created_at
		FROM notifications
		WHERE user_id = $1 AND (NOT $2::boolean OR is_read = FALSE)
		ORDER BY created_at DESC
		LIMIT $3`

	rows, err := r.pool.Query(ctx, query, userID, unreadOnly, limit)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]domain.Notification, 0)

	for rows.Next() {
		var n domain.Notification

		if err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.Title,
			&n.Message,
			&n.Category,
			&n.ReferenceID,
			&n.ReferenceType,
			&n.IsRead,
			&n.ReadAt,
			&n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan notification row: %w", err)
		}

		notifications = append(notifications, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notification rows: %w", err)
	}

	return notifications, nil
}

// MarkRead marks one of the user's notifications as read. The read timestamp
// is only set on the first transition, so repeated calls are idempotent.
func (r *NotificationRepository) MarkRead(ctx context.Context, id, userID int64) error {
	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = COALESCE(read_at, NOW())
		WHERE id = $1 AND user_id = $2`

	ct, err := r.pool.Exec(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("mark notification read: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("notification", id)
	}

	return nil
}

// MarkAllRead marks all of the user's unread notifications as read and
// returns the number of notifications updated.
func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID int64) (int64, error) {
	query := `
		UPDATE notifications
		SET is_read = TRUE, read_at = NOW()
		WHERE user_id = $1 AND is_read = FALSE`

	ct, err := r.pool.Exec(ctx, query, userID)
	if err != nil {
		return 0, fmt.Errorf("mark all notifications read: %w", err)
	}

	return ct.RowsAffected(), nil
}

// Delete removes one of the user's notifications.
func (r *NotificationRepository) Delete(ctx context.Context, id, userID int64) error {
	ct, err := r.pool.Exec(ctx, `DELETE FROM notifications WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("delete notification: %w", err)
	}

	if ct.RowsAffected() == 0 {
		return apperrors.NotFound("notification", id)
	}

	return nil
}

// CountUnread returns the user's unread notification count.
func (r *NotificationRepository) CountUnread(ctx context.Context, userID int64) (int, error) {
	query := `SELECT COUNT(*) FROM notifications WHERE user_id = $1 AND is_read = FALSE`

	var count int
	if err := r.pool.QueryRow(ctx, query, userID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}

	return count, nil
}
