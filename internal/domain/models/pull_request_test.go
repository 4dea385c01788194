package models_test

import (
	"testing"

	"prreview-service/internal/domain/models"

	"github.com/stretchr/testify/require"
)

func TestPRStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from models.PRStatus
		to   models.PRStatus
		want bool
	}{
		{models.StatusPending, models.StatusInReview, true},
		{models.StatusPending, models.StatusApproved, true},
		{models.StatusPending, models.StatusRejected, true},
		{models.StatusInReview, models.StatusApproved, true},
		{models.StatusInReview, models.StatusRejected, true},
		{models.StatusInReview, models.StatusPending, false},
		{models.StatusApproved, models.StatusRejected, false},
		{models.StatusApproved, models.StatusPending, false},
		{models.StatusRejected, models.StatusApproved, false},
		{models.StatusPending, models.StatusPending, false},
		{models.PRStatus("merged"), models.StatusApproved, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"_to_"+string(tt.to), func(t *testing.T) {
			require.Equal(t, tt.want, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPRStatus_Terminal(t *testing.T) {
	require.False(t, models.StatusPending.Terminal())
	require.False(t, models.StatusInReview.Terminal())
	require.True(t, models.StatusApproved.Terminal())
	require.True(t, models.StatusRejected.Terminal())
}

func TestPRStatus_Valid(t *testing.T) {
	for _, s := range []models.PRStatus{models.StatusPending, models.StatusInReview, models.StatusApproved, models.StatusRejected} {
		require.True(t, s.Valid())
	}
	require.False(t, models.PRStatus("merged").Valid())
	require.False(t, models.PRStatus("").Valid())
}
