package offerapimodels

import (
	"time"

	"github.com/pkg/errors"

	"recruit-flow-backend/models"
	apimodels "recruit-flow-backend/models/api"
	reqapimodels "recruit-flow-backend/models/api/requisition"
	dbmodels "recruit-flow-backend/models/db"
)

type OfferFilter struct {
	apimodels.Pagination
	ApprovalStatus models.OfferApprovalStatus `json:"approval_status"`
}

type OfferCreateData struct {
	ApplicationID string    `json:"application_id"`
	PositionTitle string    `json:"position_title"`
	GradeBand     string    `json:"grade_band"`
	Salary        int       `json:"salary"`
	StartDate     time.Time `json:"start_date"`
}

func (v OfferCreateData) Validate() error {
	if v.ApplicationID == "" {
		return errors.New("отсутсвует идентификатор отклика")
	}
	if v.PositionTitle == "" {
		return errors.New("отсутсвует название позиции")
	}
	if v.Salary <= 0 {
		return errors.New("не указан оклад")
	}
	if v.StartDate.IsZero() {
		return errors.New("не указана дата выхода")
	}
	return nil
}

type OfferView struct {
	ID                 string                     `json:"id"`
	ApplicationID      string                     `json:"application_id"`
	ApplicantFio       string                     `json:"applicant_fio,omitempty"`
	PositionTitle      string                     `json:"position_title"`
	GradeBand          string                     `json:"grade_band"`
	Salary             int                        `json:"salary"`
	StartDate          time.Time                  `json:"start_date"`
	ApprovalStatus     models.OfferApprovalStatus `json:"approval_status"`
	ApprovalStatusName string                     `json:"approval_status_name"`
	Stages             []reqapimodels.StageView   `json:"stages"`
	SentAt             *time.Time                 `json:"sent_at,omitempty"`
	AcceptedAt         *time.Time                 `json:"accepted_at,omitempty"`
	CreationDate       time.Time                  `json:"creation_date"`
}

func OfferConvert(rec dbmodels.Offer) OfferView {
	result := OfferView{
		ID:                 rec.ID,
		ApplicationID:      rec.ApplicationID,
		PositionTitle:      rec.PositionTitle,
		GradeBand:          rec.GradeBand,
		Salary:             rec.Salary,
		StartDate:          rec.StartDate,
		ApprovalStatus:     rec.ApprovalStatus,
		ApprovalStatusName: rec.ApprovalStatus.ToHuman(),
		SentAt:             rec.SentAt,
		AcceptedAt:         rec.AcceptedAt,
		CreationDate:       rec.CreatedAt,
	}
	if rec.Application != nil && rec.Application.Applicant != nil {
		result.ApplicantFio = rec.Application.Applicant.GetFio()
	}
	for _, snap := range rec.StageList() {
		result.Stages = append(result.Stages, reqapimodels.StageConvert(snap))
	}
	return result
}
