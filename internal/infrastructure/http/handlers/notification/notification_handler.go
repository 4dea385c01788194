package notification

import (
	"prreview-service/internal/domain/ports/input"
	ports "prreview-service/internal/domain/ports/output"
)

type NotificationHandler struct {
	notificationService input.NotificationInputPort
	log                 ports.Logger
}

func NewNotificationHandler(s input.NotificationInputPort, log ports.Logger) *NotificationHandler {
	return &NotificationHandler{notificationService: s, log: log}
}
