package auth

import (
	"net/http"

	"prreview-service/internal/infrastructure/http/handlers/dto"
	middlewares "prreview-service/internal/infrastructure/http/middleware"
	"prreview-service/internal/utils"
)

type MeResponse struct {
	User dto.UserDTO `json:"user"`
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	caller, ok := middlewares.CallerFromContext(r.Context())
	if !ok {
		_ = utils.WriteError(w, http.StatusUnauthorized, utils.HTTPCodeConverter(http.StatusUnauthorized), utils.ErrUnauthenticated.Error())
		return
	}
	_ = utils.WriteJSON(w, http.StatusOK, MeResponse{User: dto.ToUserDTO(caller)}, "")
}
