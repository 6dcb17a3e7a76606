package onboardingapimodels

import (
	"time"

	dbmodels "recruit-flow-backend/models/db"
	"recruit-flow-backend/models"
)

type OnboardingView struct {
	ID            string    `json:"id"`
	ApplicationID string    `json:"application_id"`
	ApplicantFio  string    `json:"applicant_fio,omitempty"`
	RequiredDocs  []string  `json:"required_docs"`
	Completed     bool      `json:"completed"`
	Documents     []DocView `json:"documents"`
	CreationDate  time.Time `json:"creation_date"`
}

type DocView struct {
	ID      string                     `json:"id"`
	DocType string                     `json:"doc_type"`
	FileID  string                     `json:"file_id"`
	Status  models.OnboardingDocStatus `json:"status"`
}

func OnboardingConvert(rec dbmodels.OnboardingRecord) OnboardingView {
	result := OnboardingView{
		ID:            rec.ID,
		ApplicationID: rec.ApplicationID,
		RequiredDocs:  rec.RequiredDocs,
		Completed:     rec.Completed,
		Documents:     make([]DocView, 0, len(rec.Documents)),
		CreationDate:  rec.CreatedAt,
	}
	if rec.Application != nil && rec.Application.Applicant != nil {
		result.ApplicantFio = rec.Application.Applicant.GetFio()
	}
	for _, doc := range rec.Documents {
		result.Documents = append(result.Documents, DocView{
			ID:      doc.ID,
			DocType: doc.DocType,
			FileID:  doc.FileID,
			Status:  doc.Status,
		})
	}
	return result
}
