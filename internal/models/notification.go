package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification types delivered over the push channel.
const (
	NotificationMatchScheduled = "MATCH_SCHEDULED"
	NotificationMatchResult    = "MATCH_RESULT"
	NotificationAnnouncement   = "ANNOUNCEMENT"
)

// Notification is a message addressed to one user (UserID set) or to
// everyone (UserID nil, a broadcast). A copy is persisted so clients that
// were offline can fetch it later; delivery itself is best-effort.
type Notification struct {
	ID        uuid.UUID  `db:"id" json:"id"`
	UserID    *uuid.UUID `db:"user_id" json:"userId,omitempty"`
	Type      string     `db:"type" json:"type"`
	Title     string     `db:"title" json:"title"`
	Body      string     `db:"body" json:"body"`
	IsRead    bool       `db:"is_read" json:"isRead"`
	CreatedAt time.Time  `db:"created_at" json:"createdAt"`
}
