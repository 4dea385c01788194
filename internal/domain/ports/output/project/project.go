package project

import (
	"context"

	"prreview-service/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name ProjectRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename ProjectRepository.go

type ProjectRepository interface {
	CreateProject(ctx context.Context, project *models.Project) error
	GetProjectByID(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListProjects(ctx context.Context) ([]*models.Project, error)
	CreateFile(ctx context.Context, file *models.ProjectFile) error
	ListFilesByProjectID(ctx context.Context, projectID uuid.UUID) ([]*models.ProjectFile, error)
	// DeleteAllProjects removes every project and, through cascading foreign
	// keys, its files, pull requests and their notifications. Used by seeding.
	DeleteAllProjects(ctx context.Context) error
}
