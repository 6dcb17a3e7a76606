package applicationhandler

import (
	"context"

	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/db"
	applicationstore "recruit-flow-backend/lib/application/store"
	filestorage "recruit-flow-backend/lib/file-storage"
	jobstore "recruit-flow-backend/lib/job/store"
	notificationhandler "recruit-flow-backend/lib/notification/handler"
	"recruit-flow-backend/lib/utils/apperrs"
	"recruit-flow-backend/models"
	applicantapimodels "recruit-flow-backend/models/api/applicant"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Apply(ctx context.Context, data applicantapimodels.ApplicationCreateData, resumeName string, resume []byte) (applicantapimodels.ApplicationView, error)
	GetByID(id string) (applicantapimodels.ApplicationView, error)
	List(filter applicantapimodels.ApplicationFilter) (list []applicantapimodels.ApplicationView, rowCount int64, err error)
	ChangeStatus(id string, status models.ApplicationStatus) error
	GetResume(ctx context.Context, id string) (fileName string, body []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:    applicationstore.NewInstance(db.DB),
		jobStore: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store    applicationstore.Provider
	jobStore jobstore.Provider
}

// Apply регистрирует отклик кандидата на открытую вакансию.
// Кандидат с той же почтой переиспользуется, резюме уходит в хранилище.
func (i impl) Apply(ctx context.Context, data applicantapimodels.ApplicationCreateData, resumeName string, resume []byte) (applicantapimodels.ApplicationView, error) {
	logger := log.
		WithField("job_id", data.JobID).
		WithField("email", data.Email)
	job, err := i.jobStore.GetByID(data.JobID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения вакансии")
		return applicantapimodels.ApplicationView{}, err
	}
	if job == nil {
		return applicantapimodels.ApplicationView{}, apperrs.NotFound("вакансия не найдена")
	}
	if job.Status != models.JobStatusOpen {
		return applicantapimodels.ApplicationView{}, apperrs.InvalidState("вакансия закрыта")
	}
	applicant, err := i.store.FindApplicantByEmail(data.Email)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска кандидата")
		return applicantapimodels.ApplicationView{}, err
	}
	applicantID := ""
	if applicant != nil {
		applicantID = applicant.ID
	} else {
		applicantID, err = i.store.CreateApplicant(dbmodels.Applicant{
			FirstName:   data.FirstName,
			LastName:    data.LastName,
			Email:       data.Email,
			PhoneNumber: data.PhoneNumber,
		})
		if err != nil {
			logger.WithError(err).Error("ошибка создания кандидата")
			return applicantapimodels.ApplicationView{}, err
		}
	}
	rec := dbmodels.Application{
		JobID:       data.JobID,
		ApplicantID: applicantID,
		Status:      models.ApplicationApplied,
		CoverNote:   data.CoverNote,
	}
	if len(resume) > 0 {
		fileID, err := filestorage.Instance.UploadFile(ctx, dbmodels.ApplicantResume, applicantID, resumeName, "", resume)
		if err != nil {
			logger.WithError(err).Error("ошибка загрузки резюме")
			return applicantapimodels.ApplicationView{}, err
		}
		rec.ResumeFileID = &fileID
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания отклика")
		return applicantapimodels.ApplicationView{}, err
	}
	logger.WithField("rec_id", id).Info("получен отклик на вакансию")
	go notificationhandler.Instance.SendToRole(models.RecruiterRole,
		models.NewPush(models.PushApplicationNew, job.Title, data.FirstName+" "+data.LastName))
	return i.GetByID(id)
}

func (i impl) GetByID(id string) (applicantapimodels.ApplicationView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения отклика")
		return applicantapimodels.ApplicationView{}, err
	}
	if rec == nil {
		return applicantapimodels.ApplicationView{}, apperrs.NotFound("отклик не найден")
	}
	return applicantapimodels.ApplicationConvert(*rec), nil
}

func (i impl) List(filter applicantapimodels.ApplicationFilter) ([]applicantapimodels.ApplicationView, int64, error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list := make([]applicantapimodels.ApplicationView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, applicantapimodels.ApplicationConvert(rec))
	}
	return list, rowCount, nil
}

// ChangeStatus двигает отклик по воронке, переходы ограничены
// (см. ApplicationStatus.IsAllowChange).
func (i impl) ChangeStatus(id string, status models.ApplicationStatus) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrs.NotFound("отклик не найден")
	}
	if !rec.Status.IsAllowChange(status) {
		return apperrs.Newf(apperrs.KindInvalidState, "переход из статуса «%v» в «%v» недопустим", rec.Status.ToHuman(), status.ToHuman())
	}
	return i.store.Update(id, map[string]interface{}{"status": status})
}

func (i impl) GetResume(ctx context.Context, id string) (string, []byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, apperrs.NotFound("отклик не найден")
	}
	if rec.ResumeFileID == nil {
		return "", nil, apperrs.NotFound("резюме не загружено")
	}
	file, body, err := filestorage.Instance.GetFile(ctx, *rec.ResumeFileID)
	if err != nil {
		return "", nil, err
	}
	return file.Name, body, nil
}
