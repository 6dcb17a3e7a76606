package models

// ReqType - тип заявки на подбор.
type ReqType string

const (
	ReqTypeNew         ReqType = "new"
	ReqTypeReplacement ReqType = "replacement"
)

var reqTypeHumanName = map[ReqType]string{
	ReqTypeNew:         "Новая позиция",
	ReqTypeReplacement: "Замена",
}

func (t ReqType) ToHuman() string {
	if human, exist := reqTypeHumanName[t]; exist {
		return human
	}
	return string(t)
}

func (t ReqType) Validate() error {
	if _, exist := reqTypeHumanName[t]; !exist {
		return NewEnumError("тип заявки", string(t))
	}
	return nil
}

// JobStatus - статус вакансии, созданной из согласованной заявки.
type JobStatus string

const (
	JobStatusOpen   JobStatus = "open"
	JobStatusClosed JobStatus = "closed"
)

var jobStatusHumanName = map[JobStatus]string{
	JobStatusOpen:   "Открыта",
	JobStatusClosed: "Закрыта",
}

func (s JobStatus) ToHuman() string {
	if human, exist := jobStatusHumanName[s]; exist {
		return human
	}
	return string(s)
}
