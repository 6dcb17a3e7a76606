package models

// Единая таблица маршрутов по ролям: куда ведет клик по уведомлению.
// Все интерфейсы (web, письма) берут маршрут отсюда, а не строят его сами.
var roleHomeRoute = map[UserRole]string{
	AdminRole:       "/admin",
	RecruiterRole:   "/recruiter",
	HodRole:         "/hod",
	CooRole:         "/coo",
	InterviewerRole: "/interviewer",
	ApplicantRole:   "/applicant",
}

var rolePushRoute = map[UserRole]map[PushCode]string{
	HodRole: {
		PushReqAwaitingStage:   "/hod/requisitions",
		PushOfferAwaitingStage: "/hod/offers",
	},
	RecruiterRole: {
		PushReqAwaitingStage: "/recruiter/requisitions",
		PushReqApproved:      "/recruiter/requisitions",
		PushReqRejected:      "/recruiter/requisitions",
		PushOfferApproved:    "/recruiter/offers",
		PushOfferRejected:    "/recruiter/offers",
		PushApplicationNew:   "/recruiter/applications",
		PushOnboardingDoc:    "/recruiter/onboarding",
	},
	CooRole: {
		PushReqAwaitingStage:   "/coo/requisitions",
		PushOfferAwaitingStage: "/coo/offers",
	},
	InterviewerRole: {
		PushInterviewAssigned: "/interviewer/schedule",
	},
	ApplicantRole: {
		PushOfferApproved: "/applicant/offers",
	},
}

// RouteFor - маршрут перехода для уведомления с учетом роли получателя.
func RouteFor(role UserRole, code PushCode) string {
	if routes, exist := rolePushRoute[role]; exist {
		if route, exist := routes[code]; exist {
			return route
		}
	}
	if route, exist := roleHomeRoute[role]; exist {
		return route
	}
	return "/"
}
