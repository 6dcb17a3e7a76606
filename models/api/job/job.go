package jobapimodels

import (
	"time"

	"github.com/pkg/errors"

	"recruit-flow-backend/models"
	apimodels "recruit-flow-backend/models/api"
	dbmodels "recruit-flow-backend/models/db"
)

type JobCreateData struct {
	RequisitionNumber string `json:"requisition_number"` // человекочитаемый номер заявки
	Description       string `json:"description"`
	Requirements      string `json:"requirements"`
}

func (v JobCreateData) Validate() error {
	if v.RequisitionNumber == "" {
		return errors.New("отсутсвует номер заявки")
	}
	return nil
}

type JobView struct {
	ID                string           `json:"id"`
	RequisitionID     string           `json:"requisition_id"`
	RequisitionNumber string           `json:"requisition_number,omitempty"`
	Title             string           `json:"title"`
	Department        string           `json:"department"`
	Location          string           `json:"location"`
	GradeBand         string           `json:"grade_band"`
	SalaryFrom        int              `json:"salary_from"`
	SalaryTo          int              `json:"salary_to"`
	Description       string           `json:"description"`
	Requirements      string           `json:"requirements"`
	Status            models.JobStatus `json:"status"`
	CreationDate      time.Time        `json:"creation_date"`
}

func JobConvert(rec dbmodels.Job) JobView {
	result := JobView{
		ID:            rec.ID,
		RequisitionID: rec.RequisitionID,
		Title:         rec.Title,
		Department:    rec.Department,
		Location:      rec.Location,
		GradeBand:     rec.GradeBand,
		SalaryFrom:    rec.SalaryFrom,
		SalaryTo:      rec.SalaryTo,
		Description:   rec.Description,
		Requirements:  rec.Requirements,
		Status:        rec.Status,
		CreationDate:  rec.CreatedAt,
	}
	if rec.Requisition != nil {
		result.RequisitionNumber = rec.Requisition.Number
	}
	return result
}

type JobFilter struct {
	apimodels.Pagination
	Search     string           `json:"search"`
	Department string           `json:"department"`
	Status     models.JobStatus `json:"status"`
}
