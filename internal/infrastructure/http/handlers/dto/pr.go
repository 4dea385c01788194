package dto

import (
	"time"

	"prreview-service/internal/domain/models"
)

type ProjectRefDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

type UserRefDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type PRDTO struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Branch      string         `json:"branch"`
	Project     *ProjectRefDTO `json:"project,omitempty"`
	Author      *UserRefDTO    `json:"author,omitempty"`
	Reviewer    *UserRefDTO    `json:"reviewer,omitempty"`
	Attachments []string       `json:"attachments"`
	Status      string         `json:"status"`
	CreatedAt   time.Time      `json:"createdAt"`
	UpdatedAt   time.Time      `json:"updatedAt"`
}

func ToPRDTO(pr *models.PullRequest) PRDTO {
	attachments := pr.Attachments
	if attachments == nil {
		attachments = []string{}
	}
	d := PRDTO{
		ID:          pr.ID.String(),
		Title:       pr.Title,
		Description: pr.Description,
		Branch:      pr.Branch,
		Attachments: attachments,
		Status:      string(pr.Status),
		CreatedAt:   pr.CreatedAt,
		UpdatedAt:   pr.UpdatedAt,
	}
	if pr.Project != nil {
		d.Project = &ProjectRefDTO{ID: pr.Project.ID.String(), Name: pr.Project.Name, Description: pr.Project.Description}
	}
	if pr.Author != nil {
		d.Author = &UserRefDTO{ID: pr.Author.ID.String(), Name: pr.Author.Name, Email: pr.Author.Email}
	}
	if pr.Reviewer != nil {
		d.Reviewer = &UserRefDTO{ID: pr.Reviewer.ID.String(), Name: pr.Reviewer.Name, Email: pr.Reviewer.Email}
	}
	return d
}

func ToPRDTOs(prs []*models.PullRequest) []PRDTO {
	res := make([]PRDTO, 0, len(prs))
	for _, pr := range prs {
		res = append(res, ToPRDTO(pr))
	}
	return res
}
