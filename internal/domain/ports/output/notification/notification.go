package notification

import (
	"context"

	"prreview-service/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name NotificationRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename NotificationRepository.go

type NotificationRepository interface {
	CreateNotification(ctx context.Context, n *models.Notification) error
	// ListByUserID returns the user's notifications newest first with the
	// related pull request's title and project resolved.
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error)
	CountUnreadByUserID(ctx context.Context, userID uuid.UUID) (int, error)
	// MarkRead flips read only when the notification belongs to userID.
	MarkRead(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	// MarkAllRead returns the number of notifications it flipped.
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
