package offerhandler

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"recruit-flow-backend/db"
	applicationstore "recruit-flow-backend/lib/application/store"
	"recruit-flow-backend/lib/approval"
	pdfexport "recruit-flow-backend/lib/export/pdf"
	filestorage "recruit-flow-backend/lib/file-storage"
	notificationhandler "recruit-flow-backend/lib/notification/handler"
	offerstore "recruit-flow-backend/lib/offer/store"
	onboardingstore "recruit-flow-backend/lib/onboarding/store"
	"recruit-flow-backend/lib/smtp"
	"recruit-flow-backend/lib/utils/apperrs"
	"recruit-flow-backend/models"
	offerapimodels "recruit-flow-backend/models/api/offer"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(author approval.Actor, data offerapimodels.OfferCreateData) (offerapimodels.OfferView, error)
	GetByID(id string) (offerapimodels.OfferView, error)
	List(filter offerapimodels.OfferFilter) (list []offerapimodels.OfferView, rowCount int64, err error)
	Approve(id string, stage models.StageName, actor approval.Actor, comments string) (offerapimodels.OfferView, error)
	Reject(id string, stage models.StageName, actor approval.Actor, comments string) (offerapimodels.OfferView, error)
	Send(ctx context.Context, id string) error
	Accept(id string) error
	GetLetter(ctx context.Context, id string) (fileName string, body []byte, err error)
}

var Instance Provider

func NewHandler() {
	store := offerstore.NewInstance(db.DB)
	Instance = impl{
		store:            store,
		applicationStore: applicationstore.NewInstance(db.DB),
		engine:           approval.NewEngine("offer", models.OfferChain, store, offerSink{store: store}),
	}
}

type impl struct {
	store            offerstore.Provider
	applicationStore applicationstore.Provider
	engine           approval.Engine
}

// Create открывает согласование оффера по отклику на этапе "Оффер".
// Один отклик - один оффер.
func (i impl) Create(author approval.Actor, data offerapimodels.OfferCreateData) (offerapimodels.OfferView, error) {
	logger := log.
		WithField("application_id", data.ApplicationID).
		WithField("user_id", author.UserID)
	application, err := i.applicationStore.GetByID(data.ApplicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения отклика")
		return offerapimodels.OfferView{}, err
	}
	if application == nil {
		return offerapimodels.OfferView{}, apperrs.NotFound("отклик не найден")
	}
	if application.Status != models.ApplicationOffered {
		return offerapimodels.OfferView{}, apperrs.InvalidState("отклик не на этапе оффера")
	}
	existedRec, err := i.store.FindByApplication(data.ApplicationID)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска оффера")
		return offerapimodels.OfferView{}, err
	}
	if existedRec != nil {
		return offerapimodels.OfferView{}, apperrs.InvalidState("по отклику уже создан оффер")
	}
	rec := dbmodels.Offer{
		ApplicationID:  data.ApplicationID,
		AuthorID:       author.UserID,
		PositionTitle:  data.PositionTitle,
		GradeBand:      data.GradeBand,
		Salary:         data.Salary,
		StartDate:      data.StartDate,
		ApprovalStatus: models.OfferPendingHod,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания оффера")
		return offerapimodels.OfferView{}, err
	}
	logger.WithField("rec_id", id).Info("оффер отправлен на согласование")
	applicantFio := ""
	if application.Applicant != nil {
		applicantFio = application.Applicant.GetFio()
	}
	go notificationhandler.Instance.SendToRole(models.OfferChain[0].Role,
		models.NewPush(models.PushOfferAwaitingStage, applicantFio, models.OfferChain[0].Name.ToHuman()))
	return i.GetByID(id)
}

func (i impl) GetByID(id string) (offerapimodels.OfferView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения оффера")
		return offerapimodels.OfferView{}, err
	}
	if rec == nil {
		return offerapimodels.OfferView{}, apperrs.NotFound("оффер не найден")
	}
	return offerapimodels.OfferConvert(*rec), nil
}

func (i impl) List(filter offerapimodels.OfferFilter) ([]offerapimodels.OfferView, int64, error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list := make([]offerapimodels.OfferView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, offerapimodels.OfferConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) Approve(id string, stage models.StageName, actor approval.Actor, comments string) (offerapimodels.OfferView, error) {
	if _, err := i.engine.SubmitStageDecision(id, stage, actor, models.DecisionApprove, comments); err != nil {
		return offerapimodels.OfferView{}, err
	}
	return i.GetByID(id)
}

func (i impl) Reject(id string, stage models.StageName, actor approval.Actor, comments string) (offerapimodels.OfferView, error) {
	if _, err := i.engine.SubmitStageDecision(id, stage, actor, models.DecisionReject, comments); err != nil {
		return offerapimodels.OfferView{}, err
	}
	return i.GetByID(id)
}

// Send формирует письмо с предложением и отправляет его кандидату.
// Доступно только для полностью согласованного оффера, повторная
// отправка блокируется.
func (i impl) Send(ctx context.Context, id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения оффера")
		return err
	}
	if rec == nil {
		return apperrs.NotFound("оффер не найден")
	}
	if rec.ApprovalStatus != models.OfferApproved {
		return apperrs.InvalidState("оффер не прошел согласование")
	}
	if rec.SentAt != nil {
		return apperrs.InvalidState("оффер уже отправлен кандидату")
	}
	applicantFio := ""
	applicantEmail := ""
	if rec.Application != nil && rec.Application.Applicant != nil {
		applicantFio = rec.Application.Applicant.GetFio()
		applicantEmail = rec.Application.Applicant.Email
	}
	letter, err := pdfexport.GenerateOfferLetter(pdfexport.OfferLetterData{
		CompanyName:   "Recruit Flow",
		ApplicantFio:  applicantFio,
		PositionTitle: rec.PositionTitle,
		GradeBand:     rec.GradeBand,
		Salary:        rec.Salary,
		StartDate:     rec.StartDate.Format("02.01.2006"),
	})
	if err != nil {
		logger.WithError(err).Error("ошибка формирования письма с предложением")
		return err
	}
	_, err = filestorage.Instance.UploadFile(ctx, dbmodels.OfferLetter, rec.ID, "offer.pdf", "application/pdf", letter)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения письма с предложением")
		return err
	}
	if applicantEmail != "" {
		err = smtp.Instance.SendEMail(applicantEmail, "Предложение о работе",
			fmt.Sprintf("Вам направлено предложение на позицию «%v». Письмо доступно в личном кабинете.", rec.PositionTitle))
		if err != nil {
			logger.WithError(err).Error("ошибка отправки письма кандидату")
		}
	}
	err = i.store.Update(id, map[string]interface{}{"sent_at": time.Now()})
	if err != nil {
		return err
	}
	logger.Info("оффер отправлен кандидату")
	return nil
}

// Accept фиксирует согласие кандидата: отклик переходит в "Принят",
// заводится чек-лист оформления. Все в одной транзакции.
func (i impl) Accept(id string) error {
	logger := log.WithField("rec_id", id)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения оффера")
		return err
	}
	if rec == nil {
		return apperrs.NotFound("оффер не найден")
	}
	if rec.SentAt == nil {
		return apperrs.InvalidState("оффер еще не отправлен кандидату")
	}
	if rec.AcceptedAt != nil {
		return apperrs.InvalidState("оффер уже принят")
	}
	err = db.DB.Transaction(func(tx *gorm.DB) error {
		txOfferStore := offerstore.NewInstance(tx)
		txApplicationStore := applicationstore.NewInstance(tx)
		txOnboardingStore := onboardingstore.NewInstance(tx)
		err := txOfferStore.Update(id, map[string]interface{}{"accepted_at": time.Now()})
		if err != nil {
			return err
		}
		err = txApplicationStore.Update(rec.ApplicationID, map[string]interface{}{"status": models.ApplicationHired})
		if err != nil {
			return err
		}
		_, err = txOnboardingStore.Create(dbmodels.OnboardingRecord{
			ApplicationID: rec.ApplicationID,
			RequiredDocs:  models.DefaultOnboardingDocs,
		})
		return err
	})
	if err != nil {
		logger.WithError(err).Error("ошибка фиксации согласия по офферу")
		return err
	}
	logger.Info("оффер принят кандидатом, запущено оформление")
	return nil
}

func (i impl) GetLetter(ctx context.Context, id string) (string, []byte, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return "", nil, err
	}
	if rec == nil {
		return "", nil, apperrs.NotFound("оффер не найден")
	}
	file, body, err := filestorage.Instance.FindByOwner(ctx, rec.ID, dbmodels.OfferLetter)
	if err != nil {
		return "", nil, err
	}
	return file.Name, body, nil
}

// offerSink доводит события согласования оффера до участников.
type offerSink struct {
	store offerstore.Provider
}

func (s offerSink) Notify(event approval.Event) {
	logger := log.
		WithField("rec_id", event.EntityID).
		WithField("stage", event.Stage)
	rec, err := s.store.GetByID(event.EntityID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения оффера для уведомления")
		return
	}
	if rec == nil {
		return
	}
	applicantFio := ""
	if rec.Application != nil && rec.Application.Applicant != nil {
		applicantFio = rec.Application.Applicant.GetFio()
	}
	switch {
	case event.NextStage != nil:
		notificationhandler.Instance.SendToRole(event.NextStage.Role,
			models.NewPush(models.PushOfferAwaitingStage, applicantFio, event.NextStage.Name.ToHuman()))
	case event.Decision == models.DecisionApprove:
		notificationhandler.Instance.SendToUser(rec.AuthorID,
			models.NewPush(models.PushOfferApproved, applicantFio))
		notificationhandler.Instance.SendToRole(models.RecruiterRole,
			models.NewPush(models.PushOfferApproved, applicantFio))
	default:
		notificationhandler.Instance.SendToUser(rec.AuthorID,
			models.NewPush(models.PushOfferRejected, applicantFio, event.Stage.ToHuman(), event.Comments))
	}
}
