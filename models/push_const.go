package models

import "fmt"

type PushCode string

const (
	PushReqAwaitingStage PushCode = "PushReqAwaitingStage"
	PushReqApproved      PushCode = "PushReqApproved"
	PushReqRejected      PushCode = "PushReqRejected"

	PushOfferAwaitingStage PushCode = "PushOfferAwaitingStage"
	PushOfferApproved      PushCode = "PushOfferApproved"
	PushOfferRejected      PushCode = "PushOfferRejected"

	PushInterviewAssigned PushCode = "PushInterviewAssigned"
	PushApplicationNew    PushCode = "PushApplicationNew"
	PushOnboardingDoc     PushCode = "PushOnboardingDoc"
)

type PushTpl struct {
	Title string
	Msg   string
}

var pushCodeMap = map[PushCode]PushTpl{
	PushReqAwaitingStage: {Title: "Заявка ожидает согласования", Msg: "Заявка «%v» ожидает вашего решения на этапе «%v»."},
	PushReqApproved:      {Title: "Заявка согласована", Msg: "Заявка «%v» полностью согласована, можно создать вакансию."},
	PushReqRejected:      {Title: "Заявка отклонена", Msg: "Заявка «%v» отклонена на этапе «%v». Причина: %v."},

	PushOfferAwaitingStage: {Title: "Оффер ожидает согласования", Msg: "Оффер по кандидату %v ожидает вашего решения на этапе «%v»."},
	PushOfferApproved:      {Title: "Оффер согласован", Msg: "Оффер по кандидату %v полностью согласован."},
	PushOfferRejected:      {Title: "Оффер отклонен", Msg: "Оффер по кандидату %v отклонен на этапе «%v». Причина: %v."},

	PushInterviewAssigned: {Title: "Назначено интервью", Msg: "Вам назначено интервью с кандидатом %v по вакансии «%v»."},
	PushApplicationNew:    {Title: "Новый отклик", Msg: "На вакансию «%v» пришел отклик от кандидата %v."},
	PushOnboardingDoc:     {Title: "Документ загружен", Msg: "Кандидат %v загрузил документ «%v»."},
}

type NotificationData struct {
	Code  PushCode
	Title string
	Msg   string
}

func NewPush(code PushCode, args ...interface{}) NotificationData {
	tpl := pushCodeMap[code]
	return NotificationData{
		Code:  code,
		Title: tpl.Title,
		Msg:   fmt.Sprintf(tpl.Msg, args...),
	}
}
