package dto

import (
	"time"

	"prreview-service/internal/domain/models"
)

type ProjectDTO struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ToProjectDTO(p *models.Project) ProjectDTO {
	return ProjectDTO{
		ID:          p.ID.String(),
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func ToProjectDTOs(projects []*models.Project) []ProjectDTO {
	res := make([]ProjectDTO, 0, len(projects))
	for _, p := range projects {
		res = append(res, ToProjectDTO(p))
	}
	return res
}

type ProjectFileDTO struct {
	ID        string  `json:"id"`
	ProjectID string  `json:"projectId"`
	Name      string  `json:"name"`
	Type      string  `json:"type"`
	ParentID  *string `json:"parentId"`
	Content   *string `json:"content,omitempty"`
}

func ToProjectFileDTOs(files []*models.ProjectFile) []ProjectFileDTO {
	res := make([]ProjectFileDTO, 0, len(files))
	for _, f := range files {
		d := ProjectFileDTO{
			ID:        f.ID.String(),
			ProjectID: f.ProjectID.String(),
			Name:      f.Name,
			Type:      string(f.Type),
			Content:   f.Content,
		}
		if f.ParentID != nil {
			parent := f.ParentID.String()
			d.ParentID = &parent
		}
		res = append(res, d)
	}
	return res
}
