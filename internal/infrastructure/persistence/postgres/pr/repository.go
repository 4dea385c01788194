package pr_repository

import (
	"context"
	"errors"

	"prreview-service/internal/domain/models"
	ports "prreview-service/internal/domain/ports/output"
	pr_port "prreview-service/internal/domain/ports/output/pr"
	"prreview-service/internal/infrastructure/persistence/postgres"
	"prreview-service/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type PRRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewPRRepository(querier postgres.Querier, log ports.Logger) pr_port.PRRepository {
	return &PRRepository{querier: querier, log: log}
}

func (r *PRRepository) CreatePR(ctx context.Context, pr *models.PullRequest) error {
	const q = `
		INSERT INTO pull_requests (id, title, description, branch, project_id, author_id, reviewer_id, attachments, status, created_at, updated_at)
		VALUES (@id, @title, @description, @branch, @project_id, @author_id, @reviewer_id, @attachments, 'pending', now(), now())
		RETURNING status, created_at, updated_at;
	`
	attachments := pr.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":          pr.ID,
		"title":       pr.Title,
		"description": pr.Description,
		"branch":      pr.Branch,
		"project_id":  pr.ProjectID,
		"author_id":   pr.AuthorID,
		"reviewer_id": pr.ReviewerID,
		"attachments": attachments,
	})
	if err := row.Scan(&pr.Status, &pr.CreatedAt, &pr.UpdatedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			switch pgErr.ConstraintName {
			case "pull_requests_project_id_fkey":
				return utils.ErrProjectNotFound
			default:
				return utils.ErrUserNotFound
			}
		}
		r.log.Error("CreatePR failed", "pr_id", pr.ID, "err", err)
		return err
	}
	return nil
}

const prColumns = `id, title, description, branch, project_id, author_id, reviewer_id, attachments, status, created_at, updated_at`

func (r *PRRepository) scanPR(row pgx.Row) (*models.PullRequest, error) {
	var pr models.PullRequest
	err := row.Scan(&pr.ID, &pr.Title, &pr.Description, &pr.Branch, &pr.ProjectID,
		&pr.AuthorID, &pr.ReviewerID, &pr.Attachments, &pr.Status, &pr.CreatedAt, &pr.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &pr, nil
}

func (r *PRRepository) GetPRByID(ctx context.Context, id uuid.UUID) (*models.PullRequest, error) {
	const q = `
		SELECT ` + prColumns + `
		FROM pull_requests
		WHERE id = @id;
	`
	pr, err := r.scanPR(r.querier.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrPRNotFound
		}
		r.log.Error("GetPRByID failed", "pr_id", id, "err", err)
		return nil, err
	}
	return pr, nil
}

func (r *PRRepository) LockPRByID(ctx context.Context, id uuid.UUID) (*models.PullRequest, error) {
	const q = `
		SELECT ` + prColumns + `
		FROM pull_requests
		WHERE id = @id
		FOR UPDATE;
	`
	pr, err := r.scanPR(r.querier.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrPRNotFound
		}
		r.log.Error("LockPRByID failed", "pr_id", id, "err", err)
		return nil, err
	}
	return pr, nil
}

func (r *PRRepository) UpdateStatus(ctx context.Context, prID uuid.UUID, status models.PRStatus) error {
	const q = `
		UPDATE pull_requests
		SET status = @status,
			updated_at = now()
		WHERE id = @id;
	`
	tag, err := r.querier.Exec(ctx, q, pgx.NamedArgs{"id": prID, "status": status})
	if err != nil {
		r.log.Error("UpdateStatus failed", "pr_id", prID, "err", err)
		return err
	}
	if tag.RowsAffected() == 0 {
		return utils.ErrPRNotFound
	}
	return nil
}

const prDetailedQuery = `
	SELECT pr.id, pr.title, pr.description, pr.branch, pr.project_id, pr.author_id, pr.reviewer_id,
		pr.attachments, pr.status, pr.created_at, pr.updated_at,
		p.name, p.description,
		a.name, a.email,
		rv.name, rv.email
	FROM pull_requests pr
	JOIN projects p ON p.id = pr.project_id
	JOIN users a ON a.id = pr.author_id
	JOIN users rv ON rv.id = pr.reviewer_id
`

func (r *PRRepository) scanDetailed(row pgx.Row) (*models.PullRequest, error) {
	var (
		pr       models.PullRequest
		project  models.ProjectRef
		author   models.UserRef
		reviewer models.UserRef
	)
	err := row.Scan(&pr.ID, &pr.Title, &pr.Description, &pr.Branch, &pr.ProjectID,
		&pr.AuthorID, &pr.ReviewerID, &pr.Attachments, &pr.Status, &pr.CreatedAt, &pr.UpdatedAt,
		&project.Name, &project.Description,
		&author.Name, &author.Email,
		&reviewer.Name, &reviewer.Email)
	if err != nil {
		return nil, err
	}
	project.ID = pr.ProjectID
	author.ID = pr.AuthorID
	reviewer.ID = pr.ReviewerID
	pr.Project = &project
	pr.Author = &author
	pr.Reviewer = &reviewer
	return &pr, nil
}

func (r *PRRepository) GetPRDetailed(ctx context.Context, id uuid.UUID) (*models.PullRequest, error) {
	const q = prDetailedQuery + `
	WHERE pr.id = @id;
	`
	pr, err := r.scanDetailed(r.querier.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrPRNotFound
		}
		r.log.Error("GetPRDetailed failed", "pr_id", id, "err", err)
		return nil, err
	}
	return pr, nil
}

func (r *PRRepository) ListPRsByParticipant(ctx context.Context, userID uuid.UUID, filter pr_port.ListFilter) ([]*models.PullRequest, error) {
	q := prDetailedQuery + `
	WHERE (pr.author_id = @user_id OR pr.reviewer_id = @user_id)
	`
	args := pgx.NamedArgs{"user_id": userID}
	if filter.ProjectID != nil {
		q += ` AND pr.project_id = @project_id`
		args["project_id"] = *filter.ProjectID
	}
	if filter.Status != nil {
		q += ` AND pr.status = @status`
		args["status"] = *filter.Status
	}
	q += `
	ORDER BY pr.created_at DESC;`

	rows, err := r.querier.Query(ctx, q, args)
	if err != nil {
		r.log.Error("ListPRsByParticipant query failed", "user_id", userID, "err", err)
		return nil, err
	}
	defer rows.Close()

	var res []*models.PullRequest
	for rows.Next() {
		pr, err := r.scanDetailed(rows)
		if err != nil {
			r.log.Error("ListPRsByParticipant scan failed", "err", err)
			return nil, err
		}
		res = append(res, pr)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}
