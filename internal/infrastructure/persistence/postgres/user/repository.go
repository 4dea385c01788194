package user_repository

import (
	"context"
	"errors"

	"prreview-service/internal/domain/models"
	ports "prreview-service/internal/domain/ports/output"
	user_port "prreview-service/internal/domain/ports/output/user"
	"prreview-service/internal/infrastructure/persistence/postgres"
	"prreview-service/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type UserRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewUserRepository(querier postgres.Querier, log ports.Logger) user_port.UserRepository {
	return &UserRepository{querier: querier, log: log}
}

func (r *UserRepository) CreateUser(ctx context.Context, user *models.User) error {
	const q = `
		INSERT INTO users (id, name, email, password_hash, role, created_at, updated_at)
		VALUES (@id, @name, lower(@email), @password_hash, @role, now(), now())
		RETURNING created_at, updated_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":            user.ID,
		"name":          user.Name,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
		"role":          user.Role,
	})
	if err := row.Scan(&user.CreatedAt, &user.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return utils.ErrEmailExists
		}
		r.log.Error("CreateUser failed", "user_id", user.ID, "err", err)
		return err
	}
	return nil
}

func (r *UserRepository) GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE id = @id;
	`
	var u models.User
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrUserNotFound
		}
		r.log.Error("GetUserByID failed", "user_id", id, "err", err)
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE email = lower(@email);
	`
	var u models.User
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"email": email})
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrUserNotFound
		}
		r.log.Error("GetUserByEmail failed", "err", err)
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ListReviewers(ctx context.Context) ([]*models.User, error) {
	const q = `
		SELECT id, name, email, password_hash, role, created_at, updated_at
		FROM users
		WHERE role = 'reviewer'
		ORDER BY name ASC;
	`
	rows, err := r.querier.Query(ctx, q)
	if err != nil {
		r.log.Error("ListReviewers query failed", "err", err)
		return nil, err
	}
	defer rows.Close()

	var res []*models.User
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Role, &u.CreatedAt, &u.UpdatedAt); err != nil {
			r.log.Error("ListReviewers scan failed", "err", err)
			return nil, err
		}
		res = append(res, &u)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}
