package pr

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"prreview-service/internal/domain/ports/input"
	"prreview-service/internal/infrastructure/http/handlers/dto"
	middlewares "prreview-service/internal/infrastructure/http/middleware"
	"prreview-service/internal/utils"

	"github.com/google/uuid"
)

type CreatePRRequest struct {
	Title       string   `json:"title" validate:"required,max=200"`
	Description string   `json:"description" validate:"required"`
	Branch      string   `json:"branch" validate:"required"`
	ProjectID   string   `json:"projectId" validate:"required,uuid"`
	ReviewerID  string   `json:"reviewerId" validate:"required,uuid"`
	Attachments []string `json:"attachments"`
}

type PRResponse struct {
	PullRequest dto.PRDTO `json:"pullRequest"`
}

func (h *PRHandler) CreatePR(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthenticated.Error())
		return
	}

	var req CreatePRRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid json body")
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
		return
	}
	projectID, err := uuid.Parse(req.ProjectID)
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid projectId")
		return
	}
	reviewerID, err := uuid.Parse(req.ReviewerID)
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid reviewerId")
		return
	}

	h.log.Info("CreatePR request", slog.String("author_id", caller.ID.String()), slog.String("project_id", projectID.String()))

	created, err := h.prService.CreatePR(r.Context(), caller.ID, input.CreatePRInput{
		Title:       req.Title,
		Description: req.Description,
		Branch:      req.Branch,
		ProjectID:   projectID,
		ReviewerID:  reviewerID,
		Attachments: req.Attachments,
	})
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrProjectNotFound):
			_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPCodeConverter(http.StatusNotFound), err.Error())
			return
		case errors.Is(err, utils.ErrInvalidReviewer):
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest, err), err.Error())
			return
		case errors.Is(err, utils.ErrInvalidArgument):
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
			return
		default:
			h.log.Error("CreatePR failed", slog.Any("err", err), slog.String("author_id", caller.ID.String()))
			_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
			return
		}
	}

	_ = utils.WriteJSON(w, http.StatusCreated, PRResponse{PullRequest: dto.ToPRDTO(created)}, "Pull request created successfully")
}
