package models

type UserRole string

const (
	AdminRole       UserRole = "ADMIN_ROLE"
	RecruiterRole   UserRole = "RECRUITER_ROLE"
	HodRole         UserRole = "HOD_ROLE"
	CooRole         UserRole = "COO_ROLE"
	InterviewerRole UserRole = "INTERVIEWER_ROLE"
	ApplicantRole   UserRole = "APPLICANT_ROLE"
)

var roleHumanName = map[UserRole]string{
	AdminRole:       "Администратор",
	RecruiterRole:   "Рекрутер",
	HodRole:         "Руководитель подразделения",
	CooRole:         "Операционный директор",
	InterviewerRole: "Интервьюер",
	ApplicantRole:   "Кандидат",
}

func (r UserRole) ToHuman() string {
	if human, exist := roleHumanName[r]; exist {
		return human
	}
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == AdminRole
}

func (r UserRole) IsStaff() bool {
	switch r {
	case AdminRole, RecruiterRole, HodRole, CooRole, InterviewerRole:
		return true
	}
	return false
}

func (r UserRole) Validate() error {
	if _, exist := roleHumanName[r]; !exist {
		return NewEnumError("роль", string(r))
	}
	return nil
}

const SystemUser = "Система"
