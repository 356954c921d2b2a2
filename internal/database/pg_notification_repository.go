package database

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prosports-server/internal/interfaces"
	"prosports-server/internal/models"
)

var _ interfaces.NotificationRepository = (*pgNotificationRepository)(nil)

type pgNotificationRepository struct {
	db     interfaces.DBTX
	logger *zap.Logger
}

// NewPgNotificationRepository creates a new PostgreSQL-backed NotificationRepository.
func NewPgNotificationRepository(db interfaces.DBTX, logger *zap.Logger) interfaces.NotificationRepository {
	return &pgNotificationRepository{db: db, logger: logger.Named("PgNotificationRepo")}
}

const notificationColumns = `id, user_id, type, title, body, is_read, created_at`

func (r *pgNotificationRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	query := `INSERT INTO notifications (user_id, type, title, body)
		VALUES ($1, $2, $3, $4)
		RETURNING id, is_read, created_at`
	err := r.db.QueryRow(ctx, query, n.UserID, n.Type, n.Title, n.Body).
		Scan(&n.ID, &n.IsRead, &n.CreatedAt)
	if err != nil {
		r.logger.Error("Failed to create notification in postgres", zap.Error(err))
		return fmt.Errorf("failed to create notification in postgres: %w", err)
	}
	return nil
}

// ListNotificationsForUser returns the user's notifications plus broadcasts,
// newest first. A zero `before` means "start from the top"; otherwise only
// rows strictly older than the (before, beforeID) cursor are returned.
func (r *pgNotificationRepository) ListNotificationsForUser(ctx context.Context, userID uuid.UUID, before time.Time, beforeID uuid.UUID, limit int) ([]models.Notification, error) {
	query := `SELECT ` + notificationColumns + ` FROM notifications WHERE (user_id = $1 OR user_id IS NULL)`
	args := []any{userID}
	if !before.IsZero() {
		query += ` AND (created_at, id) < ($2, $3)`
		args = append(args, before, beforeID)
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT %d`, limit)

	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		r.logger.Error("Failed to query notifications from postgres", zap.Error(err), zap.String("userID", userID.String()))
		return nil, fmt.Errorf("failed to query notifications: %w", err)
	}
	defer rows.Close()

	notifications := make([]models.Notification, 0)
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(
			&n.ID, &n.UserID, &n.Type, &n.Title, &n.Body, &n.IsRead, &n.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan notification row: %w", err)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating notification rows: %w", err)
	}
	return notifications, nil
}

// MarkNotificationRead flips is_read for a notification addressed to the
// user. Broadcasts have no per-user read state and cannot be marked.
func (r *pgNotificationRepository) MarkNotificationRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE notifications SET is_read = TRUE WHERE id = $1 AND user_id = $2`,
		id, userID,
	)
	if err != nil {
		r.logger.Error("Failed to mark notification read in postgres", zap.Error(err), zap.String("id", id.String()))
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return models.ErrNotFound
	}
	return nil
}
