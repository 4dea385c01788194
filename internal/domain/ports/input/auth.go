package input

import (
	"context"

	"prreview-service/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name AuthInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename AuthInputPort.go

type AuthInputPort interface {
	// Register creates the user and returns it with a fresh session token.
	Register(ctx context.Context, name, email, password string, role models.Role) (*models.User, string, error)
	// Login fails uniformly with ErrInvalidCredentials for unknown email and
	// wrong password alike.
	Login(ctx context.Context, email, password string) (*models.User, string, error)
	// Authenticate resolves a bearer token to a live user.
	Authenticate(ctx context.Context, token string) (*models.User, error)
	GetProfile(ctx context.Context, userID uuid.UUID) (*models.User, error)
}
