package project_repository

import (
	"context"
	"errors"

	"prreview-service/internal/domain/models"
	ports "prreview-service/internal/domain/ports/output"
	project_port "prreview-service/internal/domain/ports/output/project"
	"prreview-service/internal/infrastructure/persistence/postgres"
	"prreview-service/internal/utils"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type ProjectRepository struct {
	querier postgres.Querier
	log     ports.Logger
}

func NewProjectRepository(querier postgres.Querier, log ports.Logger) project_port.ProjectRepository {
	return &ProjectRepository{querier: querier, log: log}
}

func (r *ProjectRepository) CreateProject(ctx context.Context, project *models.Project) error {
	const q = `
		INSERT INTO projects (id, name, description, created_at, updated_at)
		VALUES (@id, @name, @description, now(), now())
		RETURNING created_at, updated_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":          project.ID,
		"name":        project.Name,
		"description": project.Description,
	})
	if err := row.Scan(&project.CreatedAt, &project.UpdatedAt); err != nil {
		r.log.Error("CreateProject failed", "project_id", project.ID, "err", err)
		return err
	}
	return nil
}

func (r *ProjectRepository) GetProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	const q = `
		SELECT id, name, description, created_at, updated_at
		FROM projects
		WHERE id = @id;
	`
	var p models.Project
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	if err := row.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, utils.ErrProjectNotFound
		}
		r.log.Error("GetProjectByID failed", "project_id", id, "err", err)
		return nil, err
	}
	return &p, nil
}

func (r *ProjectRepository) ListProjects(ctx context.Context) ([]*models.Project, error) {
	const q = `
		SELECT id, name, description, created_at, updated_at
		FROM projects
		ORDER BY created_at DESC;
	`
	rows, err := r.querier.Query(ctx, q)
	if err != nil {
		r.log.Error("ListProjects query failed", "err", err)
		return nil, err
	}
	defer rows.Close()

	var res []*models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(&p.ID, &p.Name, &p.Description, &p.CreatedAt, &p.UpdatedAt); err != nil {
			r.log.Error("ListProjects scan failed", "err", err)
			return nil, err
		}
		res = append(res, &p)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (r *ProjectRepository) CreateFile(ctx context.Context, file *models.ProjectFile) error {
	const q = `
		INSERT INTO project_files (id, project_id, name, type, parent_id, content, created_at, updated_at)
		VALUES (@id, @project_id, @name, @type, @parent_id, @content, now(), now())
		RETURNING created_at, updated_at;
	`
	row := r.querier.QueryRow(ctx, q, pgx.NamedArgs{
		"id":         file.ID,
		"project_id": file.ProjectID,
		"name":       file.Name,
		"type":       file.Type,
		"parent_id":  file.ParentID,
		"content":    file.Content,
	})
	if err := row.Scan(&file.CreatedAt, &file.UpdatedAt); err != nil {
		r.log.Error("CreateFile failed", "project_id", file.ProjectID, "name", file.Name, "err", err)
		return err
	}
	return nil
}

func (r *ProjectRepository) ListFilesByProjectID(ctx context.Context, projectID uuid.UUID) ([]*models.ProjectFile, error) {
	const q = `
		SELECT id, project_id, name, type, parent_id, content, created_at, updated_at
		FROM project_files
		WHERE project_id = @project_id
		ORDER BY name ASC;
	`
	rows, err := r.querier.Query(ctx, q, pgx.NamedArgs{"project_id": projectID})
	if err != nil {
		r.log.Error("ListFilesByProjectID query failed", "project_id", projectID, "err", err)
		return nil, err
	}
	defer rows.Close()

	var res []*models.ProjectFile
	for rows.Next() {
		var f models.ProjectFile
		if err := rows.Scan(&f.ID, &f.ProjectID, &f.Name, &f.Type, &f.ParentID, &f.Content, &f.CreatedAt, &f.UpdatedAt); err != nil {
			r.log.Error("ListFilesByProjectID scan failed", "err", err)
			return nil, err
		}
		res = append(res, &f)
	}
	if rows.Err() != nil {
		return nil, rows.Err()
	}
	return res, nil
}

func (r *ProjectRepository) DeleteAllProjects(ctx context.Context) error {
	// Files, pull requests and notifications go with them via ON DELETE CASCADE.
	const q = `DELETE FROM projects;`
	if _, err := r.querier.Exec(ctx, q); err != nil {
		r.log.Error("DeleteAllProjects failed", "err", err)
		return err
	}
	return nil
}
