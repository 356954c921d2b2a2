package interfaces

import (
	"context"

	"prosports-server/internal/models"
)

// NotificationPublisher hands a notification to the delivery pipeline.
// The broker owns durability; callers must treat publish failures as
// non-fatal because the persistent copy is already stored.
type NotificationPublisher interface {
	Publish(ctx context.Context, n *models.Notification) error
}
