package input

import (
	"context"

	"prreview-service/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name ProjectInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename ProjectInputPort.go

type SeedResult struct {
	Projects int
	Files    int
}

type ProjectInputPort interface {
	ListProjects(ctx context.Context) ([]*models.Project, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	ListProjectFiles(ctx context.Context, projectID uuid.UUID) ([]*models.ProjectFile, error)
	// SeedSampleData clears all projects and recreates the sample set.
	SeedSampleData(ctx context.Context) (*SeedResult, error)
}
