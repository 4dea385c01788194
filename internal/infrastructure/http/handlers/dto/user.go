package dto

import "prreview-service/internal/domain/models"

type UserDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func ToUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:    u.ID.String(),
		Name:  u.Name,
		Email: u.Email,
		Role:  string(u.Role),
	}
}

// ReviewerDTO exposes only name and email besides the id.
type ReviewerDTO struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

func ToReviewerDTOs(users []*models.User) []ReviewerDTO {
	res := make([]ReviewerDTO, 0, len(users))
	for _, u := range users {
		res = append(res, ReviewerDTO{ID: u.ID.String(), Name: u.Name, Email: u.Email})
	}
	return res
}
