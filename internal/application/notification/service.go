package notification

import (
	"context"

	"prreview-service/internal/domain/models"
	"prreview-service/internal/domain/ports/input"
	ports "prreview-service/internal/domain/ports/output"
	uow "prreview-service/internal/domain/ports/output/uow"
	"prreview-service/internal/utils"

	"github.com/google/uuid"
)

// Service covers the read side of notifications. Writes happen only inside
// the pull request lifecycle transactions.
type Service struct {
	uow uow.UnitOfWork
	log ports.Logger
}

func NewService(uow uow.UnitOfWork, log ports.Logger) input.NotificationInputPort {
	return &Service{uow: uow, log: log}
}

func (s *Service) ListNotifications(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error) {
	if userID == uuid.Nil {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return tx.NotificationRepository().ListByUserID(ctx, userID)
}

func (s *Service) UnreadCount(ctx context.Context, userID uuid.UUID) (int, error) {
	if userID == uuid.Nil {
		return 0, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return tx.NotificationRepository().CountUnreadByUserID(ctx, userID)
}

func (s *Service) MarkRead(ctx context.Context, userID uuid.UUID, notificationID uuid.UUID) error {
	if userID == uuid.Nil || notificationID == uuid.Nil {
		return utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	if err := tx.NotificationRepository().MarkRead(ctx, userID, notificationID); err != nil {
		return err
	}
	if err := tx.Commit(ctx); err != nil {
		return err
	}
	commit = true
	return nil
}

func (s *Service) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	if userID == uuid.Nil {
		return 0, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return 0, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	affected, err := tx.NotificationRepository().MarkAllRead(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	commit = true
	return affected, nil
}
