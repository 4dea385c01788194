package pr

import (
	"log/slog"
	"net/http"

	"prreview-service/internal/infrastructure/http/handlers/dto"
	"prreview-service/internal/utils"
)

type ListReviewersResponse struct {
	Reviewers []dto.ReviewerDTO `json:"reviewers"`
}

func (h *PRHandler) ListReviewers(w http.ResponseWriter, r *http.Request) {
	reviewers, err := h.prService.ListReviewers(r.Context())
	if err != nil {
		h.log.Error("ListReviewers failed", slog.Any("err", err))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, ListReviewersResponse{Reviewers: dto.ToReviewerDTOs(reviewers)}, "")
}
