package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"prreview-service/internal/domain/models"
	"prreview-service/internal/infrastructure/http/handlers/dto"
	"prreview-service/internal/utils"
)

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=developer reviewer"`
}

type AuthResponse struct {
	User  dto.UserDTO `json:"user"`
	Token string      `json:"token"`
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), "invalid json body")
		return
	}
	if err := utils.Validate(req); err != nil {
		_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
		return
	}

	user, token, err := h.authService.Register(r.Context(), req.Name, req.Email, req.Password, models.Role(req.Role))
	if err != nil {
		switch {
		case errors.Is(err, utils.ErrEmailExists):
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest, err), err.Error())
			return
		case errors.Is(err, utils.ErrInvalidArgument):
			_ = utils.WriteError(w, http.StatusBadRequest, utils.HTTPCodeConverter(http.StatusBadRequest), err.Error())
			return
		default:
			h.log.Error("Register failed", slog.Any("err", err))
			_ = utils.WriteError(w, http.StatusInternalServerError, utils.HTTPCodeConverter(http.StatusInternalServerError), utils.ErrInternal.Error())
			return
		}
	}

	h.log.Info("user registered", slog.String("user_id", user.ID.String()), slog.String("role", string(user.Role)))
	_ = utils.WriteJSON(w, http.StatusCreated, AuthResponse{User: dto.ToUserDTO(user), Token: token}, "User registered successfully")
}
