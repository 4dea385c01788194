package input

import (
	"context"

	"prreview-service/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name NotificationInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename NotificationInputPort.go

type NotificationInputPort interface {
	ListNotifications(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error)
	UnreadCount(ctx context.Context, userID uuid.UUID) (int, error)
	MarkRead(ctx context.Context, userID uuid.UUID, notificationID uuid.UUID) error
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
}
