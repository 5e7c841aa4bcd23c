package entity

import (
	"time"

	"github.com/google/uuid"
)

// db model
type Notification struct {
	Id        uuid.UUID      `json:"id" db:"id"`
	UserId    uuid.UUID      `json:"userId" db:"user_id"`
	Type      string         `json:"type" db:"type"`
	Title     string         `json:"title" db:"title"`
	Message   string         `json:"message" db:"message"`
	IsRead    bool           `json:"isRead" db:"is_read"`
	Metadata  map[string]any `json:"metadata" db:"metadata"`
	CreatedAt time.Time      `json:"createdAt" db:"created_at"`
}

// service + repo input model
type CreateNotificationInput struct {
	UserId   string
	Type     string
	Title    string
	Message  string
	Metadata map[string]any
}

// controller model
type NotificationOutputModel struct {
	Id        string         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	IsRead    bool           `json:"isRead"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt string         `json:"createdAt"`
}

// NotificationFeed bundles a page of notifications with the recipient's
// unread counter for badge rendering.
type NotificationFeed struct {
	Notifications []NotificationOutputModel `json:"notifications"`
	UnreadCount   int                       `json:"unreadCount"`
}
