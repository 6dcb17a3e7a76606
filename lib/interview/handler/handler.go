package interviewhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/db"
	applicationstore "recruit-flow-backend/lib/application/store"
	interviewstore "recruit-flow-backend/lib/interview/store"
	notificationhandler "recruit-flow-backend/lib/notification/handler"
	userstore "recruit-flow-backend/lib/users/store"
	"recruit-flow-backend/lib/utils/apperrs"
	"recruit-flow-backend/models"
	applicantapimodels "recruit-flow-backend/models/api/applicant"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Assign(applicationID string, data applicantapimodels.InterviewAssignData) (applicantapimodels.InterviewView, error)
	SubmitFeedback(id, interviewerID string, data applicantapimodels.InterviewFeedbackData) error
	ListByInterviewer(interviewerID string) ([]applicantapimodels.InterviewView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:            interviewstore.NewInstance(db.DB),
		applicationStore: applicationstore.NewInstance(db.DB),
		userStore:        userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store            interviewstore.Provider
	applicationStore applicationstore.Provider
	userStore        userstore.Provider
}

// Assign назначает интервью по отклику в статусе "Интервью".
func (i impl) Assign(applicationID string, data applicantapimodels.InterviewAssignData) (applicantapimodels.InterviewView, error) {
	logger := log.
		WithField("application_id", applicationID).
		WithField("interviewer_id", data.InterviewerID)
	application, err := i.applicationStore.GetByID(applicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения отклика")
		return applicantapimodels.InterviewView{}, err
	}
	if application == nil {
		return applicantapimodels.InterviewView{}, apperrs.NotFound("отклик не найден")
	}
	if application.Status != models.ApplicationInterview {
		return applicantapimodels.InterviewView{}, apperrs.InvalidState("отклик не на этапе интервью")
	}
	interviewer, err := i.userStore.GetByID(data.InterviewerID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения интервьюера")
		return applicantapimodels.InterviewView{}, err
	}
	if interviewer == nil || !interviewer.IsActive {
		return applicantapimodels.InterviewView{}, apperrs.NotFound("интервьюер не найден")
	}
	rec := dbmodels.Interview{
		ApplicationID: applicationID,
		InterviewerID: data.InterviewerID,
		ScheduledAt:   data.ScheduledAt,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка назначения интервью")
		return applicantapimodels.InterviewView{}, err
	}
	applicantFio := ""
	if application.Applicant != nil {
		applicantFio = application.Applicant.GetFio()
	}
	jobTitle := ""
	if application.Job != nil {
		jobTitle = application.Job.Title
	}
	go notificationhandler.Instance.SendToUser(data.InterviewerID,
		models.NewPush(models.PushInterviewAssigned, applicantFio, jobTitle))
	saved, err := i.store.GetByID(id)
	if err != nil || saved == nil {
		return applicantapimodels.InterviewView{}, err
	}
	return applicantapimodels.InterviewConvert(*saved), nil
}

// SubmitFeedback принимает отзыв: только назначенный интервьюер,
// повторная подача блокируется.
func (i impl) SubmitFeedback(id, interviewerID string, data applicantapimodels.InterviewFeedbackData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения интервью")
		return err
	}
	if rec == nil {
		return apperrs.NotFound("интервью не найдено")
	}
	if rec.InterviewerID != interviewerID {
		return apperrs.Forbidden("отзыв оставляет назначенный интервьюер")
	}
	if rec.DecidedAt != nil {
		return apperrs.InvalidState("отзыв по интервью уже оставлен")
	}
	updMap := map[string]interface{}{
		"feedback":       data.Feedback,
		"recommendation": data.Recommendation,
		"decided_at":     time.Now(),
	}
	return i.store.Update(id, updMap)
}

func (i impl) ListByInterviewer(interviewerID string) ([]applicantapimodels.InterviewView, error) {
	recList, err := i.store.ListByInterviewer(interviewerID)
	if err != nil {
		return nil, err
	}
	list := make([]applicantapimodels.InterviewView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicantapimodels.InterviewConvert(rec))
	}
	return list, nil
}
