package notification_repository

import (
	"context"
	"errors"

	"prreview-service/internal/domain/models"
	ports "prreview-service/internal/domain/ports/output"
	notification_port "prreview-service/internal/domain/ports/output/notification"
	"prreview-service/internal/infrastructure/persistence/postgres"
	"prreview-service/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type NotificationRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewNotificationRepository(querier postgres.Querier, log ports.Logger) notification_port.NotificationRepository {
	return &NotificationRepository{querier: querier, log: log}
}

func (r *NotificationRepository) CreateNotification(ctx context.Context, n *models.Notification) error {
	const q = `
		INSERT INTO notifications (id, user_id, pull_request_id, type, title, message, read, created_at, updated_at)
		VALUES (@id, @user_id, @pull_request_id, @type, @title, @message, false, now(), now())
		RETURNING read, created_at, updated_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":              n.ID,
		"user_id":         n.UserID,
		"pull_request_id": n.PullRequestID,
		"type":            n.Type,
		"title":           n.Title,
		"message":         n.Message,
	})
	if err := row.Scan(&n.Read, &n.CreatedAt, &n.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return utils.ErrNotFound
		}
		r.log.Error("CreateNotification failed", "user_id", n.UserID, "err", err)
		return err
	}
	return nil
}

func (r *NotificationRepository) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*models.Notification, error) {
	const q = `
		SELECT n.id, n.user_id, n.pull_request_id, n.type, n.title, n.message, n.read, n.created_at, n.updated_at,
			pr.title, pr.project_id
		FROM notifications n
		JOIN pull_requests pr ON pr.id = n.pull_request_id
		WHERE n.user_id = @user_id
		ORDER BY n.created_at DESC;
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		r.log.Error("ListByUserID query failed", "user_id", userID, "err", err)
		return nil, err
	}
	defer rows.Close()

	var res []*models.Notification
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.PullRequestID, &n.Type, &n.Title, &n.Message,
			&n.Read, &n.CreatedAt, &n.UpdatedAt, &n.PRTitle, &n.ProjectID); err != nil {
			r.log.Error("ListByUserID scan failed", "err", err)
			return nil, err
		}
		res = append(res, &n)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (r *NotificationRepository) CountUnreadByUserID(ctx context.Context, userID uuid.UUID) (int, error) {
	const q = `
		SELECT count(*)
		FROM notifications
		WHERE user_id = @user_id AND read = false;
	`
	var count int
	if err := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"user_id": userID}).Scan(&count); err != nil {
		r.log.Error("CountUnreadByUserID failed", "user_id", userID, "err", err)
		return 0, err
	}
	return count, nil
}

func (r *NotificationRepository) MarkRead(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	// Scoped to the owner: marking someone else's notification reads as absent.
	const q = `
		UPDATE notifications
		SET read = true,
			updated_at = now()
		WHERE id = @id AND user_id = @user_id;
	`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		r.log.Error("MarkRead failed", "notification_id", id, "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrNotificationNotFound
	}
	return nil
}

func (r *NotificationRepository) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	const q = `
		UPDATE notifications
		SET read = true,
			updated_at = now()
		WHERE user_id = @user_id AND read = false;
	`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		r.log.Error("MarkAllRead failed", "user_id", userID, "err", err)
		return 0, err
	}
	return tag.RowsAffected(), nil
}
