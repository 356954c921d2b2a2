package messaging

import (
	"time"

	"github.com/google/uuid"

	"prosports-server/internal/models"
)

// NotificationEvent is the wire format carried through the notification
// queue. UserID is nil for broadcasts.
type NotificationEvent struct {
	NotificationID uuid.UUID  `json:"notification_id"`
	UserID         *uuid.UUID `json:"user_id,omitempty"`
	Type           string     `json:"type"`
	Title          string     `json:"title"`
	Body           string     `json:"body"`
	CreatedAt      time.Time  `json:"created_at"`
}

// EventFromNotification maps a stored notification onto the queue payload.
func EventFromNotification(n *models.Notification) NotificationEvent {
	return NotificationEvent{
		NotificationID: n.ID,
		UserID:         n.UserID,
		Type:           n.Type,
		Title:          n.Title,
		Body:           n.Body,
		CreatedAt:      n.CreatedAt,
	}
}
