package utils

import "errors"

var (
	ErrUserNotFound         = errors.New("user not found")
	ErrEmailExists          = errors.New("user already exists with this email")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnauthenticated      = errors.New("not authorized to access this route")
	ErrForbidden            = errors.New("forbidden")
	ErrProjectNotFound      = errors.New("project not found")
	ErrPRNotFound           = errors.New("pull request not found")
	ErrInvalidReviewer      = errors.New("invalid reviewer: user must have reviewer role")
	ErrPRAlreadyResolved    = errors.New("pull request already approved or rejected")
	ErrInvalidTransition    = errors.New("invalid status transition")
	ErrNotificationNotFound = errors.New("notification not found")
	ErrNotFound             = errors.New("not found")
	ErrInvalidArgument      = errors.New("invalid argument")
	ErrInternal             = errors.New("internal error")
)
