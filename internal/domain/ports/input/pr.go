package input

import (
	"context"

	"prreview-service/internal/domain/models"
	pr_port "prreview-service/internal/domain/ports/output/pr"

	"github.com/google/uuid"
)

//go:generate mockery --name PRInputPort --dir . --output ../../../../mocks --outpkg mocks --with-expecter --filename PRInputPort.go

type CreatePRInput struct {
	Title       string
	Description string
	Branch      string
	ProjectID   uuid.UUID
	ReviewerID  uuid.UUID
	Attachments []string
}

type PRInputPort interface {
	CreatePR(ctx context.Context, authorID uuid.UUID, in CreatePRInput) (*models.PullRequest, error)
	ApprovePR(ctx context.Context, actorID uuid.UUID, prID uuid.UUID) (*models.PullRequest, error)
	RejectPR(ctx context.Context, actorID uuid.UUID, prID uuid.UUID) (*models.PullRequest, error)
	StartReview(ctx context.Context, actorID uuid.UUID, prID uuid.UUID) (*models.PullRequest, error)
	ListPRs(ctx context.Context, callerID uuid.UUID, filter pr_port.ListFilter) ([]*models.PullRequest, error)
	ListReviewers(ctx context.Context) ([]*models.User, error)
}
