package dto

import (
	"time"

	"prreview-service/internal/domain/models"
)

type NotificationDTO struct {
	ID            string    `json:"id"`
	PullRequestID string    `json:"pullRequestId"`
	PRTitle       string    `json:"pullRequestTitle"`
	ProjectID     string    `json:"projectId"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	Read          bool      `json:"read"`
	CreatedAt     time.Time `json:"createdAt"`
}

func ToNotificationDTOs(notifications []*models.Notification) []NotificationDTO {
	res := make([]NotificationDTO, 0, len(notifications))
	for _, n := range notifications {
		res = append(res, NotificationDTO{
			ID:            n.ID.String(),
			PullRequestID: n.PullRequestID.String(),
			PRTitle:       n.PRTitle,
			ProjectID:     n.ProjectID.String(),
			Type:          string(n.Type),
			Title:         n.Title,
			Message:       n.Message,
			Read:          n.Read,
			CreatedAt:     n.CreatedAt,
		})
	}
	return res
}
