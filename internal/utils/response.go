package utils

import (
	"encoding/json"
	"errors"
	"net/http"
)

type ErrorDetails struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Response is the envelope every endpoint answers with.
type Response struct {
	Success bool          `json:"success"`
	Data    any           `json:"data,omitempty"`
	Message string        `json:"message,omitempty"`
	Error   *ErrorDetails `json:"error,omitempty"`
}

func HTTPCodeConverter(status int, errs ...error) string {
	if len(errs) > 0 && errs[0] != nil {
		err := errs[0]
		switch {
		case errors.Is(err, ErrEmailExists):
			return "EMAIL_EXISTS"
		case errors.Is(err, ErrInvalidReviewer):
			return "INVALID_REVIEWER"
		case errors.Is(err, ErrPRAlreadyResolved):
			return "PR_RESOLVED"
		case errors.Is(err, ErrInvalidCredentials):
			return "INVALID_CREDENTIALS"
		}
	}
	switch status {
	case http.StatusNotFound:
		return "NOT_FOUND"
	case http.StatusConflict:
		return "CONFLICT"
	case http.StatusBadRequest:
		return "BAD_REQUEST"
	case http.StatusUnauthorized:
		return "UNAUTHORIZED"
	case http.StatusForbidden:
		return "FORBIDDEN"
	case http.StatusServiceUnavailable:
		return "UNAVAILABLE"
	default:
		return "INTERNAL"
	}
}

func WriteJSON(w http.ResponseWriter, status int, data any, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(Response{Success: true, Data: data, Message: message})
}

func WriteError(w http.ResponseWriter, status int, code, message string) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	resp := Response{Success: false, Error: &ErrorDetails{Code: code, Message: message}}
	return json.NewEncoder(w).Encode(resp)
}
