package notification_test

import (
	"context"
	"testing"

	app "prreview-service/internal/application/notification"
	"prreview-service/internal/domain/models"
	"prreview-service/internal/infrastructure/logger"
	"prreview-service/internal/utils"
	"prreview-service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_ListNotifications(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	t.Run("happy", func(t *testing.T) {
		mockUOW := mocks.NewUnitOfWork(t)
		mockTx := mocks.NewTransaction(t)
		nrepo := mocks.NewNotificationRepository(t)
		want := []*models.Notification{
			{ID: uuid.New(), UserID: uid, Type: models.NotificationApproved, Title: "Pull Request Approved"},
			{ID: uuid.New(), UserID: uid, Type: models.NotificationAssigned, Title: "New Pull Request Assigned", Read: true},
		}
		mockUOW.EXPECT().Begin(ctx).Return(mockTx, nil)
		mockTx.EXPECT().NotificationRepository().Return(nrepo)
		nrepo.EXPECT().ListByUserID(ctx, uid).Return(want, nil)
		mockTx.EXPECT().Rollback(ctx).Return(nil)

		svc := app.NewService(mockUOW, logger.New("dev"))
		got, err := svc.ListNotifications(ctx, uid)
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("nil user id", func(t *testing.T) {
		mockUOW := mocks.NewUnitOfWork(t)
		svc := app.NewService(mockUOW, logger.New("dev"))
		_, err := svc.ListNotifications(ctx, uuid.Nil)
		require.ErrorIs(t, err, utils.ErrInvalidArgument)
	})
}

func TestNotificationService_UnreadCount(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	mockUOW := mocks.NewUnitOfWork(t)
	mockTx := mocks.NewTransaction(t)
	nrepo := mocks.NewNotificationRepository(t)
	mockUOW.EXPECT().Begin(ctx).Return(mockTx, nil)
	mockTx.EXPECT().NotificationRepository().Return(nrepo)
	nrepo.EXPECT().CountUnreadByUserID(ctx, uid).Return(3, nil)
	mockTx.EXPECT().Rollback(ctx).Return(nil)

	svc := app.NewService(mockUOW, logger.New("dev"))
	count, err := svc.UnreadCount(ctx, uid)
	require.NoError(t, err)
	require.Equal(t, 3, count)
}

func TestNotificationService_MarkRead(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	nid := uuid.New()

	tests := []struct {
		name    string
		setup   func(uow *mocks.UnitOfWork, tx *mocks.Transaction, nrepo *mocks.NotificationRepository)
		wantErr error
	}{
		{
			name: "happy",
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, nrepo *mocks.NotificationRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().NotificationRepository().Return(nrepo)
				nrepo.EXPECT().MarkRead(ctx, uid, nid).Return(nil)
				tx.EXPECT().Commit(ctx).Return(nil)
			},
		},
		{
			name: "someone else's notification",
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, nrepo *mocks.NotificationRepository) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().NotificationRepository().Return(nrepo)
				nrepo.EXPECT().MarkRead(ctx, uid, nid).Return(utils.ErrNotificationNotFound)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrNotificationNotFound,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUOW := mocks.NewUnitOfWork(t)
			mockTx := mocks.NewTransaction(t)
			nrepo := mocks.NewNotificationRepository(t)
			if tt.setup != nil {
				tt.setup(mockUOW, mockTx, nrepo)
			}
			svc := app.NewService(mockUOW, logger.New("dev"))
			err := svc.MarkRead(ctx, uid, nid)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_MarkAllRead(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()

	t.Run("returns affected count", func(t *testing.T) {
		mockUOW := mocks.NewUnitOfWork(t)
		mockTx := mocks.NewTransaction(t)
		nrepo := mocks.NewNotificationRepository(t)
		mockUOW.EXPECT().Begin(ctx).Return(mockTx, nil)
		mockTx.EXPECT().NotificationRepository().Return(nrepo)
		nrepo.EXPECT().MarkAllRead(ctx, uid).Return(int64(5), nil)
		mockTx.EXPECT().Commit(ctx).Return(nil)

		svc := app.NewService(mockUOW, logger.New("dev"))
		affected, err := svc.MarkAllRead(ctx, uid)
		require.NoError(t, err)
		require.Equal(t, int64(5), affected)
	})

	t.Run("nothing unread is not an error", func(t *testing.T) {
		mockUOW := mocks.NewUnitOfWork(t)
		mockTx := mocks.NewTransaction(t)
		nrepo := mocks.NewNotificationRepository(t)
		mockUOW.EXPECT().Begin(ctx).Return(mockTx, nil)
		mockTx.EXPECT().NotificationRepository().Return(nrepo)
		nrepo.EXPECT().MarkAllRead(ctx, uid).Return(int64(0), nil)
		mockTx.EXPECT().Commit(ctx).Return(nil)

		svc := app.NewService(mockUOW, logger.New("dev"))
		affected, err := svc.MarkAllRead(ctx, uid)
		require.NoError(t, err)
		require.Zero(t, affected)
	})
}
