package project

import (
	"errors"
	"log/slog"
	"net/http"

	"prreview-service/internal/infrastructure/http/handlers/dto"
	"prreview-service/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type ListProjectsResponse struct {
	Projects []dto.ProjectDTO `json:"projects"`
}

type ProjectResponse struct {
	Project dto.ProjectDTO `json:"project"`
}

type ProjectFilesResponse struct {
	Files []dto.ProjectFileDTO `json:"files"`
}

func (h *ProjectHandler) ListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projectService.ListProjects(r.Context())
	if err != nil {
		h.log.Error("ListProjects failed", slog.Any("err", err))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, ListProjectsResponse{Projects: dto.ToProjectDTOs(projects)}, "")
}

func (h *ProjectHandler) GetProject(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid project id")
		return
	}

	project, err := h.projectService.GetProject(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrProjectNotFound) {
			_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPCodeConverter(http.StatusNotFound), err.Error())
			return
		}
		h.log.Error("GetProject failed", slog.Any("err", err), slog.String("project_id", id.String()))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, ProjectResponse{Project: dto.ToProjectDTO(project)}, "")
}

func (h *ProjectHandler) ListProjectFiles(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid project id")
		return
	}

	files, err := h.projectService.ListProjectFiles(r.Context(), id)
	if err != nil {
		if errors.Is(err, utils.ErrProjectNotFound) {
			_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPCodeConverter(http.StatusNotFound), err.Error())
			return
		}
		h.log.Error("ListProjectFiles failed", slog.Any("err", err), slog.String("project_id", id.String()))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, ProjectFilesResponse{Files: dto.ToProjectFileDTOs(files)}, "")
}
