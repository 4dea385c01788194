package integration

import (
	"testing"

	"prreview-service/internal/domain/models"
	pr_port "prreview-service/internal/domain/ports/output/pr"
	"prreview-service/internal/infrastructure/logger"
	"prreview-service/internal/infrastructure/persistence/postgres/uow"
	"prreview-service/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func seedPRFixtures(t *testing.T) (author, reviewer *models.User, project *models.Project) {
	t.Helper()
	require.NoError(t, TruncateAll(testCtx, pgC.Pool))

	u := uow.NewPostgresUOW(pgC.Pool, logger.New("test"))
	tx, err := u.Begin(testCtx)
	require.NoError(t, err)

	author = &models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", PasswordHash: "$hash", Role: models.RoleDeveloper}
	reviewer = &models.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com", PasswordHash: "$hash", Role: models.RoleReviewer}
	require.NoError(t, tx.UserRepository().CreateUser(testCtx, author))
	require.NoError(t, tx.UserRepository().CreateUser(testCtx, reviewer))

	project = &models.Project{ID: uuid.New(), Name: "Inventory System", Description: "Warehouse management project"}
	require.NoError(t, tx.ProjectRepository().CreateProject(testCtx, project))
	require.NoError(t, tx.Commit(testCtx))
	return author, reviewer, project
}

func TestPRRepository_Integration(t *testing.T) {
	if pgC == nil {
		t.Fatal("postgres not init")
	}
	author, reviewer, project := seedPRFixtures(t)
	u := uow.NewPostgresUOW(pgC.Pool, logger.New("test"))

	pr := &models.PullRequest{
		ID:          uuid.New(),
		Title:       "Add product search",
		Description: "Implements fuzzy search",
		Branch:      "feature/search",
		ProjectID:   project.ID,
		AuthorID:    author.ID,
		ReviewerID:  reviewer.ID,
		Attachments: []string{"diagram.png"},
	}

	tx, err := u.Begin(testCtx)
	require.NoError(t, err)
	require.NoError(t, tx.PRRepository().CreatePR(testCtx, pr))
	require.NoError(t, tx.Commit(testCtx))

	t.Run("detailed resolves relations", func(t *testing.T) {
		tx, err := u.Begin(testCtx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(testCtx) }()

		got, err := tx.PRRepository().GetPRDetailed(testCtx, pr.ID)
		require.NoError(t, err)
		require.Equal(t, models.StatusPending, got.Status)
		require.NotNil(t, got.Project)
		require.Equal(t, "Inventory System", got.Project.Name)
		require.NotNil(t, got.Author)
		require.Equal(t, "Alice", got.Author.Name)
		require.NotNil(t, got.Reviewer)
		require.Equal(t, "bob@example.com", got.Reviewer.Email)
		require.Equal(t, []string{"diagram.png"}, got.Attachments)
	})

	t.Run("lock and update status", func(t *testing.T) {
		tx, err := u.Begin(testCtx)
		require.NoError(t, err)

		locked, err := tx.PRRepository().LockPRByID(testCtx, pr.ID)
		require.NoError(t, err)
		require.Equal(t, models.StatusPending, locked.Status)

		require.NoError(t, tx.PRRepository().UpdateStatus(testCtx, pr.ID, models.StatusApproved))
		require.NoError(t, tx.Commit(testCtx))

		tx, err = u.Begin(testCtx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(testCtx) }()
		got, err := tx.PRRepository().GetPRByID(testCtx, pr.ID)
		require.NoError(t, err)
		require.Equal(t, models.StatusApproved, got.Status)
	})

	t.Run("participant listing and status filter", func(t *testing.T) {
		tx, err := u.Begin(testCtx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(testCtx) }()
		repo := tx.PRRepository()

		forAuthor, err := repo.ListPRsByParticipant(testCtx, author.ID, pr_port.ListFilter{})
		require.NoError(t, err)
		require.Len(t, forAuthor, 1)

		forReviewer, err := repo.ListPRsByParticipant(testCtx, reviewer.ID, pr_port.ListFilter{})
		require.NoError(t, err)
		require.Len(t, forReviewer, 1)

		pending := models.StatusPending
		none, err := repo.ListPRsByParticipant(testCtx, author.ID, pr_port.ListFilter{Status: &pending})
		require.NoError(t, err)
		require.Empty(t, none)

		stranger, err := repo.ListPRsByParticipant(testCtx, uuid.New(), pr_port.ListFilter{})
		require.NoError(t, err)
		require.Empty(t, stranger)
	})

	t.Run("missing pr", func(t *testing.T) {
		tx, err := u.Begin(testCtx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(testCtx) }()

		_, err = tx.PRRepository().LockPRByID(testCtx, uuid.New())
		require.ErrorIs(t, err, utils.ErrPRNotFound)
	})
}

func TestNotificationRepository_Integration(t *testing.T) {
	if pgC == nil {
		t.Fatal("postgres not init")
	}
	author, reviewer, project := seedPRFixtures(t)
	u := uow.NewPostgresUOW(pgC.Pool, logger.New("test"))

	pr := &models.PullRequest{
		ID:          uuid.New(),
		Title:       "Fix cart totals",
		Description: "Rounds totals",
		Branch:      "fix/totals",
		ProjectID:   project.ID,
		AuthorID:    author.ID,
		ReviewerID:  reviewer.ID,
	}
	n := &models.Notification{
		ID:            uuid.New(),
		UserID:        author.ID,
		PullRequestID: pr.ID,
		Type:          models.NotificationApproved,
		Title:         "Pull Request Approved",
		Message:       `Your pull request "Fix cart totals" has been approved by Bob`,
	}

	tx, err := u.Begin(testCtx)
	require.NoError(t, err)
	require.NoError(t, tx.PRRepository().CreatePR(testCtx, pr))
	require.NoError(t, tx.NotificationRepository().CreateNotification(testCtx, n))
	require.NoError(t, tx.Commit(testCtx))

	t.Run("listing resolves pull request title and project", func(t *testing.T) {
		tx, err := u.Begin(testCtx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(testCtx) }()

		got, err := tx.NotificationRepository().ListByUserID(testCtx, author.ID)
		require.NoError(t, err)
		require.Len(t, got, 1)
		require.Equal(t, "Fix cart totals", got[0].PRTitle)
		require.Equal(t, project.ID, got[0].ProjectID)
		require.False(t, got[0].Read)
	})

	t.Run("mark read is owner-scoped", func(t *testing.T) {
		tx, err := u.Begin(testCtx)
		require.NoError(t, err)

		err = tx.NotificationRepository().MarkRead(testCtx, reviewer.ID, n.ID)
		require.ErrorIs(t, err, utils.ErrNotificationNotFound)
		_ = tx.Rollback(testCtx)

		tx, err = u.Begin(testCtx)
		require.NoError(t, err)
		require.NoError(t, tx.NotificationRepository().MarkRead(testCtx, author.ID, n.ID))
		require.NoError(t, tx.Commit(testCtx))

		tx, err = u.Begin(testCtx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(testCtx) }()
		count, err := tx.NotificationRepository().CountUnreadByUserID(testCtx, author.ID)
		require.NoError(t, err)
		require.Zero(t, count)
	})
}
