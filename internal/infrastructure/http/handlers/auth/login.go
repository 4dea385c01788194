package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"prreview-service/internal/infrastructure/http/handlers/dto"
	"prreview-service/internal/utils"
)

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid json body")
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
		return
	}

	user, token, err := h.authService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrInvalidCredentials):
			_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized, err), err.Error())
			return
		case errors.Is(err, utils.ErrInvalidArgument):
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
			return
		default:
			h.log.Error("Login failed", slog.Any("err", err))
			_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
			return
		}
	}

	_ = utils.WriteJSON(w, http.StatusOK, AuthResponse{User: dto.ToUserDTO(user), Token: token}, "")
}
