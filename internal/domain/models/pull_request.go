package models

import (
	"time"

	"github.com/google/uuid"
)

type PRStatus string

const (
	StatusPending  PRStatus = "pending"
	StatusInReview PRStatus = "in_review"
	StatusApproved PRStatus = "approved"
	StatusRejected PRStatus = "rejected"
)

// transitions is the exhaustive table of allowed status changes. Approved and
// rejected are terminal.
var transitions = map[PRStatus]map[PRStatus]struct{}{
	StatusPending: {
		StatusInReview: {},
		StatusApproved: {},
		StatusRejected: {},
	},
	StatusInReview: {
		StatusApproved: {},
		StatusRejected: {},
	},
	StatusApproved: {},
	StatusRejected: {},
}

func (s PRStatus) Valid() bool {
	_, ok := transitions[s]
	return ok
}

func (s PRStatus) CanTransitionTo(next PRStatus) bool {
	allowed, ok := transitions[s]
	if !ok {
		return false
	}
	_, ok = allowed[next]
	return ok
}

func (s PRStatus) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

type PullRequest struct {
	ID          uuid.UUID
	Title       string
	Description string
	Branch      string
	ProjectID   uuid.UUID
	AuthorID    uuid.UUID
	ReviewerID  uuid.UUID
	Attachments []string
	Status      PRStatus
	CreatedAt   time.Time
	UpdatedAt   time.Time

	// Resolved relations, populated by detailed queries only.
	Project  *ProjectRef
	Author   *UserRef
	Reviewer *UserRef
}
