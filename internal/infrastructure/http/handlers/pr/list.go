package pr

import (
	"log/slog"
	"net/http"

	"prreview-service/internal/domain/models"
	pr_port "prreview-service/internal/domain/ports/output/pr"
	"prreview-service/internal/infrastructure/http/handlers/dto"
	middlewares "prreview-service/internal/infrastructure/http/middleware"
	"prreview-service/internal/utils"

	"github.com/google/uuid"
)

type ListPRsResponse struct {
	PullRequests []dto.PRDTO `json:"pullRequests"`
}

func (h *PRHandler) ListPRs(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthenticated.Error())
		return
	}

	var filter pr_port.ListFilter
	if raw := r.URL.Query().Get("projectId"); raw != "" {
		projectID, err := uuid.Parse(raw)
		if err != nil {
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid projectId")
			return
		}
		filter.ProjectID = &projectID
	}
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := models.PRStatus(raw)
		if !status.Valid() {
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid status")
			return
		}
		filter.Status = &status
	}

	prs, err := h.prService.ListPRs(r.Context(), caller.ID, filter)
	if err != nil {
		h.log.Error("ListPRs failed", slog.Any("err", err), slog.String("user_id", caller.ID.String()))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}

	_ = utils.WriteJSON(w, http.StatusOK, ListPRsResponse{PullRequests: dto.ToPRDTOs(prs)}, "")
}
