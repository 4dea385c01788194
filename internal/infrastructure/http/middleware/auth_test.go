package middlewares_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"prreview-service/internal/domain/models"
	middlewares "prreview-service/internal/infrastructure/http/middleware"
	"prreview-service/internal/infrastructure/logger"
	"prreview-service/internal/utils"
	"prreview-service/mocks"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthenticate(t *testing.T) {
	caller := &models.User{ID: uuid.New(), Name: "Alice", Role: models.RoleDeveloper}

	tests := []struct {
		name       string
		header     string
		setup      func(auth *mocks.AuthInputPort)
		wantStatus int
		wantCaller bool
	}{
		{
			name:   "valid token",
			header: "Bearer tok",
			setup: func(auth *mocks.AuthInputPort) {
				auth.EXPECT().Authenticate(mock.Anything, "tok").Return(caller, nil)
			},
			wantStatus: http.StatusOK,
			wantCaller: true,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "not bearer",
			header:     "Basic dXNlcjpwYXNz",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:   "bad token",
			header: "Bearer garbage",
			setup: func(auth *mocks.AuthInputPort) {
				auth.EXPECT().Authenticate(mock.Anything, "garbage").Return(nil, utils.ErrUnauthenticated)
			},
			wantStatus: http.StatusUnauthorized,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := mocks.NewAuthInputPort(t)
			if tt.setup != nil {
				tt.setup(auth)
			}

			var gotCaller *models.User
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotCaller, _ = middlewares.CallerFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})
			handler := middlewares.Authenticate(auth, logger.New("dev"))(next)

			req := httptest.NewRequest(http.MethodGet, "/pull-requests", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantCaller {
				require.Equal(t, caller, gotCaller)
			}
		})
	}
}

func TestRequireRole(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	handler := middlewares.RequireRole(logger.New("dev"), models.RoleDeveloper)(next)

	t.Run("developer passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/pull-requests", nil)
		ctx := middlewares.ContextWithCaller(req.Context(), &models.User{ID: uuid.New(), Role: models.RoleDeveloper})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("reviewer forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/pull-requests", nil)
		ctx := middlewares.ContextWithCaller(req.Context(), &models.User{ID: uuid.New(), Role: models.RoleReviewer})
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req.WithContext(ctx))
		require.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("no caller in context", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/pull-requests", nil)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})
}
