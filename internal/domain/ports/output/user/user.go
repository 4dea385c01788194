package user

import (
	"context"

	"prreview-service/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name UserRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename UserRepository.go

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// GetUserByEmail matches case-insensitively and includes the password hash.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	ListReviewers(ctx context.Context) ([]*models.User, error)
}
