package applicantapimodels

import (
	"time"

	"github.com/pkg/errors"

	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

type InterviewAssignData struct {
	InterviewerID string    `json:"interviewer_id"`
	ScheduledAt   time.Time `json:"scheduled_at"`
}

func (v InterviewAssignData) Validate() error {
	if v.InterviewerID == "" {
		return errors.New("отсутсвует идентификатор интервьюера")
	}
	if v.ScheduledAt.IsZero() {
		return errors.New("не указано время интервью")
	}
	return nil
}

type InterviewFeedbackData struct {
	Feedback       string                         `json:"feedback"`
	Recommendation models.InterviewRecommendation `json:"recommendation"`
}

func (v InterviewFeedbackData) Validate() error {
	if v.Feedback == "" {
		return errors.New("отсутсвует отзыв по интервью")
	}
	return v.Recommendation.Validate()
}

type InterviewView struct {
	ID             string                         `json:"id"`
	ApplicationID  string                         `json:"application_id"`
	InterviewerID  string                         `json:"interviewer_id"`
	InterviewerFio string                         `json:"interviewer_fio,omitempty"`
	ScheduledAt    time.Time                      `json:"scheduled_at"`
	Feedback       string                         `json:"feedback,omitempty"`
	Recommendation models.InterviewRecommendation `json:"recommendation,omitempty"`
	DecidedAt      *time.Time                     `json:"decided_at,omitempty"`
}

func InterviewConvert(rec dbmodels.Interview) InterviewView {
	result := InterviewView{
		ID:             rec.ID,
		ApplicationID:  rec.ApplicationID,
		InterviewerID:  rec.InterviewerID,
		ScheduledAt:    rec.ScheduledAt,
		Feedback:       rec.Feedback,
		Recommendation: rec.Recommendation,
		DecidedAt:      rec.DecidedAt,
	}
	if rec.Interviewer != nil {
		result.InterviewerFio = rec.Interviewer.GetFullName()
	}
	return result
}
