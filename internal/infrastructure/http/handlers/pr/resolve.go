package pr

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"prreview-service/internal/domain/models"
	"prreview-service/internal/infrastructure/http/handlers/dto"
	middlewares "prreview-service/internal/infrastructure/http/middleware"
	"prreview-service/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func (h *PRHandler) ApprovePR(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.prService.ApprovePR, "Pull request approved successfully")
}

func (h *PRHandler) RejectPR(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.prService.RejectPR, "Pull request rejected successfully")
}

func (h *PRHandler) StartReview(w http.ResponseWriter, r *http.Request) {
	h.transition(w, r, h.prService.StartReview, "Pull request moved to review")
}

func (h *PRHandler) transition(w http.ResponseWriter, r *http.Request,
	op func(ctx context.Context, actorID uuid.UUID, prID uuid.UUID) (*models.PullRequest, error), message string) {

	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthenticated.Error())
		return
	}
	prID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid pull request id")
		return
	}

	updated, err := op(r.Context(), caller.ID, prID)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrPRNotFound):
			_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPCodeConverter(http.StatusNotFound), err.Error())
			return
		case errors.Is(err, utils.ErrForbidden):
			_ = utils.WriteError(w, http.StatusForbidden, utils.HTTPCodeConverter(http.StatusForbidden), "you are not the assigned reviewer of this pull request")
			return
		case errors.Is(err, utils.ErrPRAlreadyResolved), errors.Is(err, utils.ErrInvalidTransition):
			_ = utils.WriteError(w, http.StatusConflict, utils.HTTPCodeConverter(http.StatusConflict, err), err.Error())
			return
		default:
			h.log.Error("transition failed", slog.Any("err", err), slog.String("pr_id", prID.String()))
			_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
			return
		}
	}

	_ = utils.WriteJSON(w, http.StatusOK, PRResponse{PullRequest: dto.ToPRDTO(updated)}, message)
}
