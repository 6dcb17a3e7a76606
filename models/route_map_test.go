package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRouteFor(t *testing.T) {
	require.Equal(t, "/hod/requisitions", RouteFor(HodRole, PushReqAwaitingStage))
	require.Equal(t, "/recruiter/onboarding", RouteFor(RecruiterRole, PushOnboardingDoc))
	require.Equal(t, "/interviewer/schedule", RouteFor(InterviewerRole, PushInterviewAssigned))

	// нет маршрута под код - домашняя страница роли
	require.Equal(t, "/coo", RouteFor(CooRole, PushApplicationNew))
	require.Equal(t, "/admin", RouteFor(AdminRole, ""))

	// неизвестная роль
	require.Equal(t, "/", RouteFor(UserRole("ghost"), PushReqApproved))
}
