package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"prosports-server/internal/interfaces"
	"prosports-server/internal/models"
	"prosports-server/internal/utils"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

// NotificationService stores notifications and pushes them to the delivery
// queue. Persistence is the source of truth; the push is best-effort.
type NotificationService interface {
	NotifyUser(ctx context.Context, userID uuid.UUID, notifType, title, body string) error
	Broadcast(ctx context.Context, notifType, title, body string) error
	ListForUser(ctx context.Context, userID uuid.UUID, cursor string, limit int) ([]models.Notification, string, error)
	MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error
}

var _ NotificationService = (*notificationService)(nil)

type notificationService struct {
	notifications interfaces.NotificationRepository
	publisher     interfaces.NotificationPublisher
	logger        *zap.Logger
}

func NewNotificationService(
	notifications interfaces.NotificationRepository,
	publisher interfaces.NotificationPublisher,
	logger *zap.Logger,
) NotificationService {
	return &notificationService{
		notifications: notifications,
		publisher:     publisher,
		logger:        logger.Named("NotificationService"),
	}
}

func (s *notificationService) NotifyUser(ctx context.Context, userID uuid.UUID, notifType, title, body string) error {
	n := &models.Notification{UserID: &userID, Type: notifType, Title: title, Body: body}
	return s.dispatch(ctx, n)
}

func (s *notificationService) Broadcast(ctx context.Context, notifType, title, body string) error {
	n := &models.Notification{Type: notifType, Title: title, Body: body}
	return s.dispatch(ctx, n)
}

// dispatch persists the notification and then publishes it to the broker.
// A publish failure is logged but not returned: the stored copy is still
// retrievable through the list endpoint.
func (s *notificationService) dispatch(ctx context.Context, n *models.Notification) error {
	if strings.TrimSpace(n.Title) == "" {
		return fmt.Errorf("%w: notification title is required", models.ErrInvalidInput)
	}
	if err := s.notifications.CreateNotification(ctx, n); err != nil {
		s.logger.Error("Failed to store notification", zap.Error(err), zap.String("type", n.Type))
		return err
	}
	if err := s.publisher.Publish(ctx, n); err != nil {
		s.logger.Warn("Failed to publish notification, stored copy remains",
			zap.Error(err),
			zap.String("notificationID", n.ID.String()))
	}
	return nil
}

func (s *notificationService) ListForUser(ctx context.Context, userID uuid.UUID, cursor string, limit int) ([]models.Notification, string, error) {
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}
	before, beforeID, err := utils.DecodeCursor(cursor)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", models.ErrInvalidInput, err)
	}

	notifications, err := s.notifications.ListNotificationsForUser(ctx, userID, before, beforeID, limit)
	if err != nil {
		s.logger.Error("Failed to list notifications", zap.Error(err), zap.String("userID", userID.String()))
		return nil, "", err
	}

	nextCursor := ""
	if len(notifications) == limit {
		last := notifications[len(notifications)-1]
		nextCursor = utils.EncodeCursor(last.CreatedAt, last.ID)
	}
	return notifications, nextCursor, nil
}

func (s *notificationService) MarkRead(ctx context.Context, id uuid.UUID, userID uuid.UUID) error {
	return s.notifications.MarkNotificationRead(ctx, id, userID)
}
