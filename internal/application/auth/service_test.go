package auth_test

import (
	"context"
	"testing"

	app "prreview-service/internal/application/auth"
	"prreview-service/internal/domain/models"
	"prreview-service/internal/infrastructure/logger"
	"prreview-service/internal/utils"
	"prreview-service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Register(t *testing.T) {
	ctx := context.Background()
	tests := []struct {
		name     string
		userName string
		email    string
		password string
		role     models.Role
		setup    func(uow *mocks.UnitOfWork, tx *mocks.Transaction, urepo *mocks.UserRepository, tokens *mocks.TokenManager, hasher *mocks.PasswordHasher)
		wantErr  error
	}{
		{
			name:     "happy",
			userName: "Alice",
			email:    "Alice@Example.com",
			password: "secret1",
			role:     models.RoleDeveloper,
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, urepo *mocks.UserRepository, tokens *mocks.TokenManager, hasher *mocks.PasswordHasher) {
				hasher.EXPECT().Hash("secret1").Return("$hash", nil)
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(urepo)
				urepo.EXPECT().CreateUser(ctx, mock.MatchedBy(func(u *models.User) bool {
					return u != nil && u.ID != uuid.Nil && u.Email == "alice@example.com" && u.PasswordHash == "$hash"
				})).Return(nil)
				tx.EXPECT().Commit(ctx).Return(nil)
				tokens.EXPECT().Issue(mock.AnythingOfType("uuid.UUID")).Return("tok", nil)
			},
		},
		{
			name:     "defaults to developer role",
			userName: "Alice",
			email:    "alice@example.com",
			password: "secret1",
			role:     "",
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, urepo *mocks.UserRepository, tokens *mocks.TokenManager, hasher *mocks.PasswordHasher) {
				hasher.EXPECT().Hash("secret1").Return("$hash", nil)
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(urepo)
				urepo.EXPECT().CreateUser(ctx, mock.MatchedBy(func(u *models.User) bool {
					return u != nil && u.Role == models.RoleDeveloper
				})).Return(nil)
				tx.EXPECT().Commit(ctx).Return(nil)
				tokens.EXPECT().Issue(mock.AnythingOfType("uuid.UUID")).Return("tok", nil)
			},
		},
		{
			name:     "short password",
			userName: "Alice",
			email:    "alice@example.com",
			password: "short",
			role:     models.RoleDeveloper,
			wantErr:  utils.ErrInvalidArgument,
		},
		{
			name:     "unknown role",
			userName: "Alice",
			email:    "alice@example.com",
			password: "secret1",
			role:     "admin",
			wantErr:  utils.ErrInvalidArgument,
		},
		{
			name:     "email taken",
			userName: "Alice",
			email:    "alice@example.com",
			password: "secret1",
			role:     models.RoleReviewer,
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, urepo *mocks.UserRepository, tokens *mocks.TokenManager, hasher *mocks.PasswordHasher) {
				hasher.EXPECT().Hash("secret1").Return("$hash", nil)
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(urepo)
				urepo.EXPECT().CreateUser(ctx, mock.Anything).Return(utils.ErrEmailExists)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrEmailExists,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUOW := mocks.NewUnitOfWork(t)
			mockTx := mocks.NewTransaction(t)
			mockUserRepo := mocks.NewUserRepository(t)
			mockTokens := mocks.NewTokenManager(t)
			mockHasher := mocks.NewPasswordHasher(t)
			log := logger.New("dev")
			if tt.setup != nil {
				tt.setup(mockUOW, mockTx, mockUserRepo, mockTokens, mockHasher)
			}
			svc := app.NewService(mockUOW, mockTokens, mockHasher, log)
			u, token, err := svc.Register(ctx, tt.userName, tt.email, tt.password, tt.role)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, u)
				require.Empty(t, token)
			} else {
				require.NoError(t, err)
				require.NotNil(t, u)
				require.Equal(t, "tok", token)
			}
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	stored := &models.User{ID: uid, Name: "Alice", Email: "alice@example.com", PasswordHash: "$hash", Role: models.RoleDeveloper}

	tests := []struct {
		name     string
		email    string
		password string
		setup    func(uow *mocks.UnitOfWork, tx *mocks.Transaction, urepo *mocks.UserRepository, tokens *mocks.TokenManager, hasher *mocks.PasswordHasher)
		wantErr  error
	}{
		{
			name:     "happy",
			email:    "Alice@Example.com",
			password: "secret1",
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, urepo *mocks.UserRepository, tokens *mocks.TokenManager, hasher *mocks.PasswordHasher) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(urepo)
				urepo.EXPECT().GetUserByEmail(ctx, "alice@example.com").Return(stored, nil)
				hasher.EXPECT().Compare("$hash", "secret1").Return(nil)
				tokens.EXPECT().Issue(uid).Return("tok", nil)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
		},
		{
			name:     "unknown email",
			email:    "nobody@example.com",
			password: "secret1",
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, urepo *mocks.UserRepository, tokens *mocks.TokenManager, hasher *mocks.PasswordHasher) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(urepo)
				urepo.EXPECT().GetUserByEmail(ctx, "nobody@example.com").Return(nil, utils.ErrUserNotFound)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrInvalidCredentials,
		},
		{
			name:     "wrong password",
			email:    "alice@example.com",
			password: "wrong-pass",
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, urepo *mocks.UserRepository, tokens *mocks.TokenManager, hasher *mocks.PasswordHasher) {
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(urepo)
				urepo.EXPECT().GetUserByEmail(ctx, "alice@example.com").Return(stored, nil)
				hasher.EXPECT().Compare("$hash", "wrong-pass").Return(utils.ErrInvalidCredentials)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrInvalidCredentials,
		},
		{
			name:     "empty password",
			email:    "alice@example.com",
			password: "",
			wantErr:  utils.ErrInvalidArgument,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUOW := mocks.NewUnitOfWork(t)
			mockTx := mocks.NewTransaction(t)
			mockUserRepo := mocks.NewUserRepository(t)
			mockTokens := mocks.NewTokenManager(t)
			mockHasher := mocks.NewPasswordHasher(t)
			log := logger.New("dev")
			if tt.setup != nil {
				tt.setup(mockUOW, mockTx, mockUserRepo, mockTokens, mockHasher)
			}
			svc := app.NewService(mockUOW, mockTokens, mockHasher, log)
			u, token, err := svc.Login(ctx, tt.email, tt.password)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, u)
				require.Empty(t, token)
			} else {
				require.NoError(t, err)
				require.Equal(t, uid, u.ID)
				require.Equal(t, "tok", token)
			}
		})
	}
}

func TestAuthService_Authenticate(t *testing.T) {
	ctx := context.Background()
	uid := uuid.New()
	stored := &models.User{ID: uid, Name: "Alice", Email: "alice@example.com", Role: models.RoleDeveloper}

	tests := []struct {
		name    string
		token   string
		setup   func(uow *mocks.UnitOfWork, tx *mocks.Transaction, urepo *mocks.UserRepository, tokens *mocks.TokenManager)
		wantErr error
	}{
		{
			name:  "happy",
			token: "tok",
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, urepo *mocks.UserRepository, tokens *mocks.TokenManager) {
				tokens.EXPECT().Verify("tok").Return(uid, nil)
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(urepo)
				urepo.EXPECT().GetUserByID(ctx, uid).Return(stored, nil)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
		},
		{
			name:  "bad token",
			token: "garbage",
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, urepo *mocks.UserRepository, tokens *mocks.TokenManager) {
				tokens.EXPECT().Verify("garbage").Return(uuid.Nil, utils.ErrUnauthenticated)
			},
			wantErr: utils.ErrUnauthenticated,
		},
		{
			name:  "user deleted after issue",
			token: "tok",
			setup: func(uow *mocks.UnitOfWork, tx *mocks.Transaction, urepo *mocks.UserRepository, tokens *mocks.TokenManager) {
				tokens.EXPECT().Verify("tok").Return(uid, nil)
				uow.EXPECT().Begin(ctx).Return(tx, nil)
				tx.EXPECT().UserRepository().Return(urepo)
				urepo.EXPECT().GetUserByID(ctx, uid).Return(nil, utils.ErrUserNotFound)
				tx.EXPECT().Rollback(ctx).Return(nil)
			},
			wantErr: utils.ErrUnauthenticated,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockUOW := mocks.NewUnitOfWork(t)
			mockTx := mocks.NewTransaction(t)
			mockUserRepo := mocks.NewUserRepository(t)
			mockTokens := mocks.NewTokenManager(t)
			mockHasher := mocks.NewPasswordHasher(t)
			log := logger.New("dev")
			if tt.setup != nil {
				tt.setup(mockUOW, mockTx, mockUserRepo, mockTokens)
			}
			svc := app.NewService(mockUOW, mockTokens, mockHasher, log)
			u, err := svc.Authenticate(ctx, tt.token)
			if tt.wantErr != nil {
				require.Error(t, err)
				require.ErrorIs(t, err, tt.wantErr)
				require.Nil(t, u)
			} else {
				require.NoError(t, err)
				require.Equal(t, uid, u.ID)
			}
		})
	}
}
