package pr

import (
	"context"

	"prreview-service/internal/domain/models"

	"github.com/google/uuid"
)

//go:generate mockery --name PRRepository --dir . --output ../../../../../mocks --outpkg mocks --with-expecter --filename PRRepository.go

// ListFilter narrows participant listings. Nil fields match everything.
type ListFilter struct {
	ProjectID *uuid.UUID
	Status    *models.PRStatus
}

type PRRepository interface {
	CreatePR(ctx context.Context, pr *models.PullRequest) error
	GetPRByID(ctx context.Context, id uuid.UUID) (*models.PullRequest, error)
	// LockPRByID reads the row FOR UPDATE so a concurrent approve/reject on the
	// same pull request serializes behind the transaction.
	LockPRByID(ctx context.Context, id uuid.UUID) (*models.PullRequest, error)
	UpdateStatus(ctx context.Context, prID uuid.UUID, status models.PRStatus) error
	// GetPRDetailed resolves project, author and reviewer display fields.
	GetPRDetailed(ctx context.Context, id uuid.UUID) (*models.PullRequest, error)
	// ListPRsByParticipant returns pull requests where the user is author or
	// reviewer, newest first, with relations resolved.
	ListPRsByParticipant(ctx context.Context, userID uuid.UUID, filter ListFilter) ([]*models.PullRequest, error)
}
