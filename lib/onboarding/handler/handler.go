package onboardinghandler

import (
	"context"

	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/db"
	filestorage "recruit-flow-backend/lib/file-storage"
	notificationhandler "recruit-flow-backend/lib/notification/handler"
	onboardingstore "recruit-flow-backend/lib/onboarding/store"
	"recruit-flow-backend/lib/utils/apperrs"
	"recruit-flow-backend/models"
	onboardingapimodels "recruit-flow-backend/models/api/onboarding"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	GetByID(id string) (onboardingapimodels.OnboardingView, error)
	List() ([]onboardingapimodels.OnboardingView, error)
	UploadDoc(ctx context.Context, id, docType, fileName string, body []byte) (onboardingapimodels.OnboardingView, error)
	VerifyDoc(docID string) error
	GetDocFile(ctx context.Context, docID string) (fileName string, body []byte, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: onboardingstore.NewInstance(db.DB),
	}
}

type impl struct {
	store onboardingstore.Provider
}

func (i impl) GetByID(id string) (onboardingapimodels.OnboardingView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения записи оформления")
		return onboardingapimodels.OnboardingView{}, err
	}
	if rec == nil {
		return onboardingapimodels.OnboardingView{}, apperrs.NotFound("запись оформления не найдена")
	}
	return onboardingapimodels.OnboardingConvert(*rec), nil
}

func (i impl) List() ([]onboardingapimodels.OnboardingView, error) {
	recList, err := i.store.List()
	if err != nil {
		return nil, err
	}
	list := make([]onboardingapimodels.OnboardingView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, onboardingapimodels.OnboardingConvert(rec))
	}
	return list, nil
}

// UploadDoc принимает документ кандидата из чек-листа. Повторная
// загрузка того же типа заменяет прежний файл новым документом.
func (i impl) UploadDoc(ctx context.Context, id, docType, fileName string, body []byte) (onboardingapimodels.OnboardingView, error) {
	logger := log.
		WithField("rec_id", id).
		WithField("doc_type", docType)
	rec, err := i.store.GetByID(id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения записи оформления")
		return onboardingapimodels.OnboardingView{}, err
	}
	if rec == nil {
		return onboardingapimodels.OnboardingView{}, apperrs.NotFound("запись оформления не найдена")
	}
	if !docRequired(rec.RequiredDocs, docType) {
		return onboardingapimodels.OnboardingView{}, apperrs.Validation("документ не входит в чек-лист")
	}
	if len(body) == 0 {
		return onboardingapimodels.OnboardingView{}, apperrs.Validation("пустой файл")
	}
	fileID, err := filestorage.Instance.UploadFile(ctx, dbmodels.OnboardingFile, rec.ID, fileName, "", body)
	if err != nil {
		logger.WithError(err).Error("ошибка загрузки документа")
		return onboardingapimodels.OnboardingView{}, err
	}
	_, err = i.store.CreateDoc(dbmodels.OnboardingDoc{
		OnboardingID: rec.ID,
		DocType:      docType,
		FileID:       fileID,
		Status:       models.DocSubmitted,
	})
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения документа")
		return onboardingapimodels.OnboardingView{}, err
	}
	applicantFio := ""
	if rec.Application != nil && rec.Application.Applicant != nil {
		applicantFio = rec.Application.Applicant.GetFio()
	}
	go notificationhandler.Instance.SendToRole(models.RecruiterRole,
		models.NewPush(models.PushOnboardingDoc, applicantFio, docType))
	return i.GetByID(id)
}

// VerifyDoc подтверждает документ; когда подтверждены все документы
// чек-листа, запись оформления закрывается.
func (i impl) VerifyDoc(docID string) error {
	doc, err := i.store.GetDocByID(docID)
	if err != nil {
		return err
	}
	if doc == nil {
		return apperrs.NotFound("документ не найден")
	}
	if doc.Status == models.DocVerified {
		return apperrs.InvalidState("документ уже подтвержден")
	}
	err = i.store.UpdateDoc(docID, map[string]interface{}{"status": models.DocVerified})
	if err != nil {
		return err
	}
	rec, err := i.store.GetByID(doc.OnboardingID)
	if err != nil || rec == nil {
		return err
	}
	if allDocsVerified(*rec) {
		return i.store.Update(rec.ID, map[string]interface{}{"completed": true})
	}
	return nil
}

func (i impl) GetDocFile(ctx context.Context, docID string) (string, []byte, error) {
	doc, err := i.store.GetDocByID(docID)
	if err != nil {
		return "", nil, err
	}
	if doc == nil {
		return "", nil, apperrs.NotFound("документ не найден")
	}
	file, body, err := filestorage.Instance.GetFile(ctx, doc.FileID)
	if err != nil {
		return "", nil, err
	}
	return file.Name, body, nil
}

func docRequired(required []string, docType string) bool {
	for _, item := range required {
		if item == docType {
			return true
		}
	}
	return false
}

func allDocsVerified(rec dbmodels.OnboardingRecord) bool {
	verified := map[string]bool{}
	for _, doc := range rec.Documents {
		if doc.Status == models.DocVerified {
			verified[doc.DocType] = true
		}
	}
	for _, docType := range rec.RequiredDocs {
		if !verified[docType] {
			return false
		}
	}
	return len(rec.RequiredDocs) > 0
}
