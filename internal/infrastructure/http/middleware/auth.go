package middlewares

import (
	"context"
	"net/http"
	"strings"

	"prreview-service/internal/domain/models"
	"prreview-service/internal/domain/ports/input"
	ports "prreview-service/internal/domain/ports/output"
	"prreview-service/internal/utils"
)

type contextKey string

const callerKey contextKey = "caller"

// Authenticate resolves the Authorization bearer token to a user and stores
// it in the request context. Missing, malformed or expired tokens get 401.
func Authenticate(authService input.AuthInputPort, log ports.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" || !strings.HasPrefix(header, "Bearer ") {
				_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthenticated.Error())
				return
			}
			token := strings.TrimPrefix(header, "Bearer ")

			caller, err := authService.Authenticate(r.Context(), token)
			if err != nil {
				_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthenticated.Error())
				return
			}

			ctx := context.WithValue(r.Context(), callerKey, caller)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole guards a subtree to callers holding one of the given roles.
func RequireRole(log ports.Logger, roles ...models.Role) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			caller, ok := CallerFromContext(r.Context())
			if !ok {
				_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthenticated.Error())
				return
			}
			for _, role := range roles {
				if caller.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			log.Warn("role check failed", "user_id", caller.ID, "role", string(caller.Role), "path", r.URL.Path)
			_ = utils.WriteError(w, http.StatusForbidden, utils.HTTPCodeConverter(http.StatusForbidden), utils.ErrForbidden.Error())
		})
	}
}

func CallerFromContext(ctx context.Context) (*models.User, bool) {
	caller, ok := ctx.Value(callerKey).(*models.User)
	return caller, ok
}

// ContextWithCaller is exported for handler tests.
func ContextWithCaller(ctx context.Context, caller *models.User) context.Context {
	return context.WithValue(ctx, callerKey, caller)
}
