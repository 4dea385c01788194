package models

import (
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationApproved NotificationType = "approved"
	NotificationRejected NotificationType = "rejected"
	NotificationCreated  NotificationType = "created"
	NotificationAssigned NotificationType = "assigned"
)

// Notification is written only by the pull request lifecycle, inside the same
// transaction as the status change it reports.
type Notification struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	PullRequestID uuid.UUID
	Type          NotificationType
	Title         string
	Message       string
	Read          bool
	CreatedAt     time.Time
	UpdatedAt     time.Time

	// Resolved for display in list queries.
	PRTitle   string
	ProjectID uuid.UUID
}
