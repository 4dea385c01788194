package uow

import (
	"context"
	"fmt"

	ports "prreview-service/internal/domain/ports/output"
	notification_port "prreview-service/internal/domain/ports/output/notification"
	pr_port "prreview-service/internal/domain/ports/output/pr"
	project_port "prreview-service/internal/domain/ports/output/project"
	user_port "prreview-service/internal/domain/ports/output/user"
	"prreview-service/internal/domain/ports/output/uow"
	notification_repo "prreview-service/internal/infrastructure/persistence/postgres/notification"
	pr_repo "prreview-service/internal/infrastructure/persistence/postgres/pr"
	project_repo "prreview-service/internal/infrastructure/persistence/postgres/project"
	user_repo "prreview-service/internal/infrastructure/persistence/postgres/user"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PostgresUnitOfWork struct {
	pool *pgxpool.Pool
	log  ports.Logger
}

func NewPostgresUOW(pool *pgxpool.Pool, log ports.Logger) uow.UnitOfWork {
	return &PostgresUnitOfWork{pool: pool, log: log}
}

func (u *PostgresUnitOfWork) Begin(ctx context.Context) (uow.Transaction, error) {
	tx, err := u.pool.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("error beginning transaction: %w", err)
	}
	return &PostgresTransaction{tx: tx, log: u.log}, nil
}

type PostgresTransaction struct {
	tx  pgx.Tx
	log ports.Logger
}

func (t *PostgresTransaction) Commit(ctx context.Context) error {
	return t.tx.Commit(ctx)
}

func (t *PostgresTransaction) Rollback(ctx context.Context) error {
	return t.tx.Rollback(ctx)
}

func (t *PostgresTransaction) UserRepository() user_port.UserRepository {
	return user_repo.NewUserRepository(t.tx, t.log)
}

func (t *PostgresTransaction) ProjectRepository() project_port.ProjectRepository {
	return project_repo.NewProjectRepository(t.tx, t.log)
}

func (t *PostgresTransaction) PRRepository() pr_port.PRRepository {
	return pr_repo.NewPRRepository(t.tx, t.log)
}

func (t *PostgresTransaction) NotificationRepository() notification_port.NotificationRepository {
	return notification_repo.NewNotificationRepository(t.tx, t.log)
}
