package services

import "github.com/google/uuid"

//go:generate mockery --name TokenManager --dir . --output ../../../mocks --outpkg mocks --with-expecter --filename TokenManager.go

// TokenManager issues and verifies signed session tokens carrying the subject
// user id and an expiry.
type TokenManager interface {
	Issue(userID uuid.UUID) (string, error)
	Verify(token string) (uuid.UUID, error)
}
