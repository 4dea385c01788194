package notification

import (
	"log/slog"
	"net/http"

	"prreview-service/internal/infrastructure/http/handlers/dto"
	middlewares "prreview-service/internal/infrastructure/http/middleware"
	"prreview-service/internal/utils"
)

type ListNotificationsResponse struct {
	Notifications []dto.NotificationDTO `json:"notifications"`
}

type UnreadCountResponse struct {
	UnreadCount int `json:"unreadCount"`
}

func (h *NotificationHandler) ListNotifications(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthenticated.Error())
		return
	}

	notifications, err := h.notificationService.ListNotifications(r.Context(), caller.ID)
	if err != nil {
		h.log.Error("ListNotifications failed", slog.Any("err", err), slog.String("user_id", caller.ID.String()))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, ListNotificationsResponse{Notifications: dto.ToNotificationDTOs(notifications)}, "")
}

func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthenticated.Error())
		return
	}

	count, err := h.notificationService.UnreadCount(r.Context(), caller.ID)
	if err != nil {
		h.log.Error("UnreadCount failed", slog.Any("err", err), slog.String("user_id", caller.ID.String()))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, UnreadCountResponse{UnreadCount: count}, "")
}
