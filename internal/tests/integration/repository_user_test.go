package integration

import (
	"testing"

	"prreview-service/internal/domain/models"
	"prreview-service/internal/infrastructure/logger"
	"prreview-service/internal/infrastructure/persistence/postgres/uow"
	"prreview-service/internal/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestUserRepository_Integration(t *testing.T) {
	if pgC == nil {
		t.Fatal("postgres not init")
	}
	require.NoError(t, TruncateAll(testCtx, pgC.Pool))

	u := uow.NewPostgresUOW(pgC.Pool, logger.New("test"))

	alice := &models.User{ID: uuid.New(), Name: "Alice", Email: "alice@example.com", PasswordHash: "$hash", Role: models.RoleDeveloper}
	bob := &models.User{ID: uuid.New(), Name: "Bob", Email: "bob@example.com", PasswordHash: "$hash", Role: models.RoleReviewer}
	carol := &models.User{ID: uuid.New(), Name: "Carol", Email: "carol@example.com", PasswordHash: "$hash", Role: models.RoleReviewer}

	tx, err := u.Begin(testCtx)
	require.NoError(t, err)
	repo := tx.UserRepository()
	for _, usr := range []*models.User{alice, bob, carol} {
		require.NoError(t, repo.CreateUser(testCtx, usr))
	}
	require.NoError(t, tx.Commit(testCtx))

	t.Run("duplicate email is case-insensitive", func(t *testing.T) {
		tx, err := u.Begin(testCtx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(testCtx) }()

		dup := &models.User{ID: uuid.New(), Name: "Other", Email: "ALICE@example.com", PasswordHash: "$hash", Role: models.RoleDeveloper}
		err = tx.UserRepository().CreateUser(testCtx, dup)
		require.ErrorIs(t, err, utils.ErrEmailExists)
	})

	t.Run("lookup by email ignores case", func(t *testing.T) {
		tx, err := u.Begin(testCtx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(testCtx) }()

		got, err := tx.UserRepository().GetUserByEmail(testCtx, "alice@example.com")
		require.NoError(t, err)
		require.Equal(t, alice.ID, got.ID)
		require.NotEmpty(t, got.PasswordHash)
	})

	t.Run("unknown user", func(t *testing.T) {
		tx, err := u.Begin(testCtx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(testCtx) }()

		_, err = tx.UserRepository().GetUserByID(testCtx, uuid.New())
		require.ErrorIs(t, err, utils.ErrUserNotFound)
	})

	t.Run("reviewers ordered by name", func(t *testing.T) {
		tx, err := u.Begin(testCtx)
		require.NoError(t, err)
		defer func() { _ = tx.Rollback(testCtx) }()

		reviewers, err := tx.UserRepository().ListReviewers(testCtx)
		require.NoError(t, err)
		require.Len(t, reviewers, 2)
		require.Equal(t, "Bob", reviewers[0].Name)
		require.Equal(t, "Carol", reviewers[1].Name)
	})
}
