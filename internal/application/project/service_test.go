package project_test

import (
	"context"
	"testing"

	app "prreview-service/internal/application/project"
	"prreview-service/internal/domain/models"
	"prreview-service/internal/infrastructure/logger"
	"prreview-service/internal/utils"
	"prreview-service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProjectService_ListProjects(t *testing.T) {
	ctx := context.Background()
	mockUOW := mocks.NewUnitOfWork(t)
	mockTx := mocks.NewTransaction(t)
	prepo := mocks.NewProjectRepository(t)
	want := []*models.Project{{ID: uuid.New(), Name: "Inventory System"}}
	mockUOW.EXPECT().Begin(ctx).Return(mockTx, nil)
	mockTx.EXPECT().ProjectRepository().Return(prepo)
	prepo.EXPECT().ListProjects(ctx).Return(want, nil)
	mockTx.EXPECT().Rollback(ctx).Return(nil)

	svc := app.NewService(mockUOW, logger.New("dev"))
	got, err := svc.ListProjects(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestProjectService_ListProjectFiles(t *testing.T) {
	ctx := context.Background()
	pid := uuid.New()

	t.Run("happy", func(t *testing.T) {
		mockUOW := mocks.NewUnitOfWork(t)
		mockTx := mocks.NewTransaction(t)
		prepo := mocks.NewProjectRepository(t)
		files := []*models.ProjectFile{{ID: uuid.New(), ProjectID: pid, Name: "src", Type: models.FileTypeFolder}}
		mockUOW.EXPECT().Begin(ctx).Return(mockTx, nil)
		mockTx.EXPECT().ProjectRepository().Return(prepo)
		prepo.EXPECT().GetProjectByID(ctx, pid).Return(&models.Project{ID: pid}, nil)
		prepo.EXPECT().ListFilesByProjectID(ctx, pid).Return(files, nil)
		mockTx.EXPECT().Rollback(ctx).Return(nil)

		svc := app.NewService(mockUOW, logger.New("dev"))
		got, err := svc.ListProjectFiles(ctx, pid)
		require.NoError(t, err)
		require.Equal(t, files, got)
	})

	t.Run("unknown project", func(t *testing.T) {
		mockUOW := mocks.NewUnitOfWork(t)
		mockTx := mocks.NewTransaction(t)
		prepo := mocks.NewProjectRepository(t)
		mockUOW.EXPECT().Begin(ctx).Return(mockTx, nil)
		mockTx.EXPECT().ProjectRepository().Return(prepo)
		prepo.EXPECT().GetProjectByID(ctx, pid).Return(nil, utils.ErrProjectNotFound)
		mockTx.EXPECT().Rollback(ctx).Return(nil)

		svc := app.NewService(mockUOW, logger.New("dev"))
		_, err := svc.ListProjectFiles(ctx, pid)
		require.ErrorIs(t, err, utils.ErrProjectNotFound)
	})
}

func TestProjectService_SeedSampleData(t *testing.T) {
	ctx := context.Background()

	t.Run("wipes then recreates sample set", func(t *testing.T) {
		mockUOW := mocks.NewUnitOfWork(t)
		mockTx := mocks.NewTransaction(t)
		prepo := mocks.NewProjectRepository(t)
		mockUOW.EXPECT().Begin(ctx).Return(mockTx, nil)
		mockTx.EXPECT().ProjectRepository().Return(prepo)
		prepo.EXPECT().DeleteAllProjects(ctx).Return(nil)
		var projectNames []string
		prepo.EXPECT().CreateProject(ctx, mock.AnythingOfType("*models.Project")).Run(func(_ context.Context, p *models.Project) {
			projectNames = append(projectNames, p.Name)
		}).Return(nil).Times(3)
		var fileNames []string
		prepo.EXPECT().CreateFile(ctx, mock.AnythingOfType("*models.ProjectFile")).Run(func(_ context.Context, f *models.ProjectFile) {
			fileNames = append(fileNames, f.Name)
		}).Return(nil).Times(3)
		mockTx.EXPECT().Commit(ctx).Return(nil)

		svc := app.NewService(mockUOW, logger.New("dev"))
		res, err := svc.SeedSampleData(ctx)
		require.NoError(t, err)
		require.Equal(t, 3, res.Projects)
		require.Equal(t, 3, res.Files)
		require.Contains(t, projectNames, "Inventory System")
		require.Contains(t, fileNames, "index.js")
		require.Contains(t, fileNames, "package.json")
	})

	t.Run("delete failure rolls back", func(t *testing.T) {
		mockUOW := mocks.NewUnitOfWork(t)
		mockTx := mocks.NewTransaction(t)
		prepo := mocks.NewProjectRepository(t)
		mockUOW.EXPECT().Begin(ctx).Return(mockTx, nil)
		mockTx.EXPECT().ProjectRepository().Return(prepo)
		prepo.EXPECT().DeleteAllProjects(ctx).Return(utils.ErrInternal)
		mockTx.EXPECT().Rollback(ctx).Return(nil)

		svc := app.NewService(mockUOW, logger.New("dev"))
		_, err := svc.SeedSampleData(ctx)
		require.ErrorIs(t, err, utils.ErrInternal)
	})
}
