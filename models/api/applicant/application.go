package applicantapimodels

import (
	"time"

	"github.com/pkg/errors"

	"recruit-flow-backend/models"
	apimodels "recruit-flow-backend/models/api"
	dbmodels "recruit-flow-backend/models/db"
)

type ApplicationCreateData struct {
	JobID       string `json:"job_id"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
	CoverNote   string `json:"cover_note"`
}

func (v ApplicationCreateData) Validate() error {
	if v.JobID == "" {
		return errors.New("отсутсвует идентификатор вакансии")
	}
	if v.FirstName == "" || v.LastName == "" {
		return errors.New("отсутсвует имя кандидата")
	}
	if v.Email == "" {
		return errors.New("отсутсвует email кандидата")
	}
	return nil
}

type ApplicationView struct {
	ID           string                   `json:"id"`
	JobID        string                   `json:"job_id"`
	JobTitle     string                   `json:"job_title,omitempty"`
	ApplicantID  string                   `json:"applicant_id"`
	ApplicantFio string                   `json:"applicant_fio,omitempty"`
	Email        string                   `json:"email,omitempty"`
	PhoneNumber  string                   `json:"phone_number,omitempty"`
	Status       models.ApplicationStatus `json:"status"`
	StatusName   string                   `json:"status_name"`
	ResumeFileID string                   `json:"resume_file_id,omitempty"`
	CoverNote    string                   `json:"cover_note,omitempty"`
	CreationDate time.Time                `json:"creation_date"`
	Interviews   []InterviewView          `json:"interviews,omitempty"`
}

func ApplicationConvert(rec dbmodels.Application) ApplicationView {
	result := ApplicationView{
		ID:           rec.ID,
		JobID:        rec.JobID,
		ApplicantID:  rec.ApplicantID,
		Status:       rec.Status,
		StatusName:   rec.Status.ToHuman(),
		CoverNote:    rec.CoverNote,
		CreationDate: rec.CreatedAt,
	}
	if rec.Job != nil {
		result.JobTitle = rec.Job.Title
	}
	if rec.Applicant != nil {
		result.ApplicantFio = rec.Applicant.GetFio()
		result.Email = rec.Applicant.Email
		result.PhoneNumber = rec.Applicant.PhoneNumber
	}
	if rec.ResumeFileID != nil {
		result.ResumeFileID = *rec.ResumeFileID
	}
	for _, item := range rec.Interviews {
		result.Interviews = append(result.Interviews, InterviewConvert(item))
	}
	return result
}

type ApplicationFilter struct {
	apimodels.Pagination
	JobID  string                   `json:"job_id"`
	Status models.ApplicationStatus `json:"status"`
	Search string                   `json:"search"`
}

type StatusChangeData struct {
	Status models.ApplicationStatus `json:"status"`
}

func (v StatusChangeData) Validate() error {
	return v.Status.Validate()
}
