package auth

import (
	"prreview-service/internal/domain/ports/input"
	ports "prreview-service/internal/domain/ports/output"
)

type AuthHandler struct {
	authService input.AuthInputPort
	log         ports.Logger
}

func NewAuthHandler(s input.AuthInputPort, log ports.Logger) *AuthHandler {
	return &AuthHandler{authService: s, log: log}
}
