package models

// ApplicationStatus - этап кандидата в воронке отбора.
type ApplicationStatus string

const (
	ApplicationApplied   ApplicationStatus = "applied"
	ApplicationInReview  ApplicationStatus = "in_review"
	ApplicationInterview ApplicationStatus = "interview"
	ApplicationOffered   ApplicationStatus = "offered"
	ApplicationHired     ApplicationStatus = "hired"
	ApplicationRejected  ApplicationStatus = "rejected"
)

var applicationStatusHumanName = map[ApplicationStatus]string{
	ApplicationApplied:   "Отклик получен",
	ApplicationInReview:  "На рассмотрении",
	ApplicationInterview: "Интервью",
	ApplicationOffered:   "Оффер",
	ApplicationHired:     "Принят",
	ApplicationRejected:  "Отказ",
}

func (s ApplicationStatus) ToHuman() string {
	if human, exist := applicationStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}

func (s ApplicationStatus) Validate() error {
	if _, exist := applicationStatusHumanName[s]; !exist {
		return NewEnumError("статус отклика", string(s))
	}
	return nil
}

// IsAllowChange - допустимые переходы по воронке.
// Терминальные статусы (hired/rejected) не меняются.
func (s ApplicationStatus) IsAllowChange(next ApplicationStatus) bool {
	allowed, exist := applicationStatusFlow[s]
	if !exist {
		return false
	}
	for _, item := range allowed {
		if item == next {
			return true
		}
	}
	return false
}

var applicationStatusFlow = map[ApplicationStatus][]ApplicationStatus{
	ApplicationApplied:   {ApplicationInReview, ApplicationRejected},
	ApplicationInReview:  {ApplicationInterview, ApplicationRejected},
	ApplicationInterview: {ApplicationOffered, ApplicationRejected},
	ApplicationOffered:   {ApplicationHired, ApplicationRejected},
}

// InterviewRecommendation - рекомендация интервьюера по итогам встречи.
type InterviewRecommendation string

const (
	RecommendAdvance InterviewRecommendation = "advance"
	RecommendReject  InterviewRecommendation = "reject"
)

func (r InterviewRecommendation) Validate() error {
	if r != RecommendAdvance && r != RecommendReject {
		return NewEnumError("рекомендация", string(r))
	}
	return nil
}

// OnboardingDocStatus - статус документа в чек-листе оформления.
type OnboardingDocStatus string

const (
	DocSubmitted OnboardingDocStatus = "submitted"
	DocVerified  OnboardingDocStatus = "verified"
)

// Документы, запрашиваемые у кандидата при оформлении по умолчанию.
var DefaultOnboardingDocs = []string{
	"паспорт",
	"СНИЛС",
	"ИНН",
	"трудовая книжка",
	"диплом",
}
