package project

import (
	"context"

	"prreview-service/internal/domain/models"
	"prreview-service/internal/domain/ports/input"
	ports "prreview-service/internal/domain/ports/output"
	uow "prreview-service/internal/domain/ports/output/uow"
	"prreview-service/internal/utils"

	"github.com/google/uuid"
)

type Service struct {
	uow uow.UnitOfWork
	log ports.Logger
}

func NewService(uow uow.UnitOfWork, log ports.Logger) input.ProjectInputPort {
	return &Service{uow: uow, log: log}
}

func (s *Service) ListProjects(ctx context.Context) ([]*models.Project, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return tx.ProjectRepository().ListProjects(ctx)
}

func (s *Service) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	if id == uuid.Nil {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return tx.ProjectRepository().GetProjectByID(ctx, id)
}

func (s *Service) ListProjectFiles(ctx context.Context, projectID uuid.UUID) ([]*models.ProjectFile, error) {
	if projectID == uuid.Nil {
		return nil, utils.ErrInvalidArgument
	}
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	repo := tx.ProjectRepository()
	if _, err := repo.GetProjectByID(ctx, projectID); err != nil {
		return nil, err
	}
	return repo.ListFilesByProjectID(ctx, projectID)
}

// SeedSampleData wipes all projects (cascading to files, pull requests and
// notifications) and recreates the sample set in one transaction.
func (s *Service) SeedSampleData(ctx context.Context) (*input.SeedResult, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("SeedSampleData begin tx failed", "err", err)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	repo := tx.ProjectRepository()
	if err := repo.DeleteAllProjects(ctx); err != nil {
		return nil, err
	}

	projects := []*models.Project{
		{ID: uuid.New(), Name: "Inventory System", Description: "Warehouse management project"},
		{ID: uuid.New(), Name: "E-Commerce Platform", Description: "Online shopping application with payment integration"},
		{ID: uuid.New(), Name: "Task Management App", Description: "Collaborative task tracking and project management tool"},
	}
	for _, p := range projects {
		if err := repo.CreateProject(ctx, p); err != nil {
			return nil, err
		}
	}

	inventory := projects[0]
	srcFolder := &models.ProjectFile{
		ID:        uuid.New(),
		ProjectID: inventory.ID,
		Name:      "src",
		Type:      models.FileTypeFolder,
	}
	indexContent := "console.log('Hello World');"
	packageContent := "{\n  \"name\": \"inventory-system\",\n  \"version\": \"1.0.0\"\n}"
	files := []*models.ProjectFile{
		srcFolder,
		{
			ID:        uuid.New(),
			ProjectID: inventory.ID,
			Name:      "index.js",
			Type:      models.FileTypeFile,
			ParentID:  &srcFolder.ID,
			Content:   &indexContent,
		},
		{
			ID:        uuid.New(),
			ProjectID: inventory.ID,
			Name:      "package.json",
			Type:      models.FileTypeFile,
			Content:   &packageContent,
		},
	}
	for _, f := range files {
		if err := repo.CreateFile(ctx, f); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("SeedSampleData commit failed", "err", err)
		return nil, err
	}
	commit = true

	s.log.Info("sample data seeded", "projects", len(projects), "files", len(files))
	return &input.SeedResult{Projects: len(projects), Files: len(files)}, nil
}
