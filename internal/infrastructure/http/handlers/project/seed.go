package project

import (
	"log/slog"
	"net/http"

	"prreview-service/internal/utils"
)

type SeedResponse struct {
	Projects int `json:"projects"`
	Files    int `json:"files"`
}

func (h *ProjectHandler) Seed(w http.ResponseWriter, r *http.Request) {
	result, err := h.projectService.SeedSampleData(r.Context())
	if err != nil {
		h.log.Error("Seed failed", slog.Any("err", err))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}

	h.log.Info("sample data reseeded", slog.Int("projects", result.Projects), slog.Int("files", result.Files))
	_ = utils.WriteJSON(w, http.StatusOK, SeedResponse{Projects: result.Projects, Files: result.Files}, "Sample data seeded successfully")
}
