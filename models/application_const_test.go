package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestApplicationStatusFlow(t *testing.T) {
	cases := []struct {
		from    ApplicationStatus
		to      ApplicationStatus
		allowed bool
	}{
		{ApplicationApplied, ApplicationInReview, true},
		{ApplicationApplied, ApplicationRejected, true},
		{ApplicationApplied, ApplicationOffered, false},
		{ApplicationInReview, ApplicationInterview, true},
		{ApplicationInReview, ApplicationApplied, false},
		{ApplicationInterview, ApplicationOffered, true},
		{ApplicationInterview, ApplicationHired, false},
		{ApplicationOffered, ApplicationHired, true},
		{ApplicationOffered, ApplicationInterview, false},
	}
	for _, c := range cases {
		require.Equal(t, c.allowed, c.from.IsAllowChange(c.to), "%v -> %v", c.from, c.to)
	}
}

func TestApplicationStatusTerminal(t *testing.T) {
	all := []ApplicationStatus{
		ApplicationApplied, ApplicationInReview, ApplicationInterview,
		ApplicationOffered, ApplicationHired, ApplicationRejected,
	}
	for _, next := range all {
		require.False(t, ApplicationHired.IsAllowChange(next))
		require.False(t, ApplicationRejected.IsAllowChange(next))
	}
}

func TestApplicationStatusValidate(t *testing.T) {
	require.NoError(t, ApplicationInterview.Validate())
	require.Error(t, ApplicationStatus("unknown").Validate())
}

func TestDecisionToStatus(t *testing.T) {
	require.Equal(t, StageApproved, DecisionApprove.ToStatus())
	require.Equal(t, StageRejected, DecisionReject.ToStatus())
	require.Error(t, Decision("maybe").Validate())
}
