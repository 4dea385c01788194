package notification

import (
	"errors"
	"log/slog"
	"net/http"

	middlewares "prreview-service/internal/infrastructure/http/middleware"
	"prreview-service/internal/utils"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

type MarkAllReadResponse struct {
	Updated int64 `json:"updated"`
}

func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthenticated.Error())
		return
	}
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid notification id")
		return
	}

	if err := h.notificationService.MarkRead(r.Context(), caller.ID, id); err != nil {
		if errors.Is(err, utils.ErrNotificationNotFound) {
			_ = utils.WriteError(w, http.StatusNotFound, utils.HTTPCodeConverter(http.StatusNotFound), err.Error())
			return
		}
		h.log.Error("MarkRead failed", slog.Any("err", err), slog.String("notification_id", id.String()))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, nil, "Notification marked as read")
}

func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthenticated.Error())
		return
	}

	updated, err := h.notificationService.MarkAllRead(r.Context(), caller.ID)
	if err != nil {
		h.log.Error("MarkAllRead failed", slog.Any("err", err), slog.String("user_id", caller.ID.String()))
		_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, MarkAllReadResponse{Updated: updated}, "All notifications marked as read")
}
