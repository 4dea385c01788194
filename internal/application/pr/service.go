package pr

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"prreview-service/internal/domain/models"
	"prreview-service/internal/domain/ports/input"
	ports "prreview-service/internal/domain/ports/output"
	pr_port "prreview-service/internal/domain/ports/output/pr"
	uow "prreview-service/internal/domain/ports/output/uow"
	"prreview-service/internal/utils"

	"github.com/google/uuid"
)

const maxTitleLength = 200

type Service struct {
	uow uow.UnitOfWork
	log ports.Logger
}

func NewService(uow uow.UnitOfWork, log ports.Logger) input.PRInputPort {
	return &Service{uow: uow, log: log}
}

func (s *Service) CreatePR(ctx context.Context, authorID uuid.UUID, in input.CreatePRInput) (*models.PullRequest, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" || len(title) > maxTitleLength {
		return nil, utils.ErrInvalidArgument
	}
	if strings.TrimSpace(in.Description) == "" || strings.TrimSpace(in.Branch) == "" {
		return nil, utils.ErrInvalidArgument
	}
	if in.ProjectID == uuid.Nil || in.ReviewerID == uuid.Nil || authorID == uuid.Nil {
		return nil, utils.ErrInvalidArgument
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("CreatePR begin tx failed", "err", err, "author_id", authorID)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	if _, err := tx.ProjectRepository().GetProjectByID(ctx, in.ProjectID); err != nil {
		return nil, err
	}
	reviewer, err := tx.UserRepository().GetUserByID(ctx, in.ReviewerID)
	if err != nil {
		if errors.Is(err, utils.ErrUserNotFound) {
			return nil, utils.ErrInvalidReviewer
		}
		return nil, err
	}
	if reviewer.Role != models.RoleReviewer {
		return nil, utils.ErrInvalidReviewer
	}

	prRepo := tx.PRRepository()
	pr := &models.PullRequest{
		ID:          uuid.New(),
		Title:       title,
		Description: strings.TrimSpace(in.Description),
		Branch:      strings.TrimSpace(in.Branch),
		ProjectID:   in.ProjectID,
		AuthorID:    authorID,
		ReviewerID:  in.ReviewerID,
		Attachments: in.Attachments,
	}
	if err := prRepo.CreatePR(ctx, pr); err != nil {
		s.log.Error("CreatePR repo failed", "err", err, "author_id", authorID)
		return nil, err
	}

	detailed, err := prRepo.GetPRDetailed(ctx, pr.ID)
	if err != nil {
		return nil, err
	}

	// The assignment notification rides the same transaction as the insert.
	n := &models.Notification{
		ID:            uuid.New(),
		UserID:        pr.ReviewerID,
		PullRequestID: pr.ID,
		Type:          models.NotificationAssigned,
		Title:         "New Pull Request Assigned",
		Message:       fmt.Sprintf("You have been assigned to review %q by %s", detailed.Title, detailed.Author.Name),
	}
	if err := tx.NotificationRepository().CreateNotification(ctx, n); err != nil {
		s.log.Error("CreatePR notification failed", "pr_id", pr.ID, "err", err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("CreatePR commit failed", "pr_id", pr.ID, "err", err)
		return nil, err
	}
	commit = true
	return detailed, nil
}

func (s *Service) ApprovePR(ctx context.Context, actorID uuid.UUID, prID uuid.UUID) (*models.PullRequest, error) {
	return s.resolve(ctx, actorID, prID, models.StatusApproved)
}

func (s *Service) RejectPR(ctx context.Context, actorID uuid.UUID, prID uuid.UUID) (*models.PullRequest, error) {
	return s.resolve(ctx, actorID, prID, models.StatusRejected)
}

// resolve moves a pull request into a terminal state and notifies the author,
// both inside one transaction. The row lock taken before the check serializes
// a concurrent approve/reject race so the loser fails deterministically.
func (s *Service) resolve(ctx context.Context, actorID uuid.UUID, prID uuid.UUID, target models.PRStatus) (*models.PullRequest, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("resolve begin tx failed", "err", err, "pr_id", prID)
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	prRepo := tx.PRRepository()
	pr, err := prRepo.LockPRByID(ctx, prID)
	if err != nil {
		return nil, err
	}
	// Identity check, not a role check: an unassigned reviewer is rejected too.
	if pr.ReviewerID != actorID {
		return nil, utils.ErrForbidden
	}
	if pr.Status.Terminal() {
		return nil, utils.ErrPRAlreadyResolved
	}
	if !pr.Status.CanTransitionTo(target) {
		return nil, utils.ErrInvalidTransition
	}

	if err := prRepo.UpdateStatus(ctx, prID, target); err != nil {
		return nil, err
	}
	detailed, err := prRepo.GetPRDetailed(ctx, prID)
	if err != nil {
		return nil, err
	}

	var (
		nType  models.NotificationType
		nTitle string
		verb   string
	)
	switch target {
	case models.StatusApproved:
		nType, nTitle, verb = models.NotificationApproved, "Pull Request Approved", "approved"
	default:
		nType, nTitle, verb = models.NotificationRejected, "Pull Request Rejected", "rejected"
	}
	n := &models.Notification{
		ID:            uuid.New(),
		UserID:        detailed.AuthorID,
		PullRequestID: detailed.ID,
		Type:          nType,
		Title:         nTitle,
		Message:       fmt.Sprintf("Your pull request %q has been %s by %s", detailed.Title, verb, detailed.Reviewer.Name),
	}
	if err := tx.NotificationRepository().CreateNotification(ctx, n); err != nil {
		s.log.Error("resolve notification failed", "pr_id", prID, "err", err)
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		s.log.Error("resolve commit failed", "pr_id", prID, "err", err)
		return nil, err
	}
	commit = true

	s.log.Info("pull request resolved", "pr_id", prID, "status", string(target), "reviewer_id", actorID)
	return detailed, nil
}

func (s *Service) StartReview(ctx context.Context, actorID uuid.UUID, prID uuid.UUID) (*models.PullRequest, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	var commit bool
	defer func() {
		if !commit {
			_ = tx.Rollback(ctx)
		}
	}()

	prRepo := tx.PRRepository()
	pr, err := prRepo.LockPRByID(ctx, prID)
	if err != nil {
		return nil, err
	}
	if pr.ReviewerID != actorID {
		return nil, utils.ErrForbidden
	}
	if pr.Status.Terminal() {
		return nil, utils.ErrPRAlreadyResolved
	}
	if !pr.Status.CanTransitionTo(models.StatusInReview) {
		return nil, utils.ErrInvalidTransition
	}

	if err := prRepo.UpdateStatus(ctx, prID, models.StatusInReview); err != nil {
		return nil, err
	}
	detailed, err := prRepo.GetPRDetailed(ctx, prID)
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	commit = true
	return detailed, nil
}

func (s *Service) ListPRs(ctx context.Context, callerID uuid.UUID, filter pr_port.ListFilter) ([]*models.PullRequest, error) {
	if callerID == uuid.Nil {
		return nil, utils.ErrInvalidArgument
	}
	if filter.Status != nil && !filter.Status.Valid() {
		return nil, utils.ErrInvalidArgument
	}

	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return tx.PRRepository().ListPRsByParticipant(ctx, callerID, filter)
}

func (s *Service) ListReviewers(ctx context.Context) ([]*models.User, error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	return tx.UserRepository().ListReviewers(ctx)
}
