package jobhandler

import (
	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/db"
	jobstore "recruit-flow-backend/lib/job/store"
	"recruit-flow-backend/lib/utils/apperrs"
	"recruit-flow-backend/models"
	jobapimodels "recruit-flow-backend/models/api/job"
)

type Provider interface {
	GetByID(id string) (jobapimodels.JobView, error)
	List(filter jobapimodels.JobFilter) (list []jobapimodels.JobView, rowCount int64, err error)
	ListOpen() (list []jobapimodels.JobView, err error)
	Close(id string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: jobstore.NewInstance(db.DB),
	}
}

type impl struct {
	store jobstore.Provider
}

func (i impl) GetByID(id string) (jobapimodels.JobView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("job_id", id).WithError(err).Error("ошибка получения вакансии")
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, apperrs.NotFound("вакансия не найдена")
	}
	return jobapimodels.JobConvert(*rec), nil
}

func (i impl) List(filter jobapimodels.JobFilter) ([]jobapimodels.JobView, int64, error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list := make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, jobapimodels.JobConvert(rec))
	}
	return list, rowCount, nil
}

func (i impl) ListOpen() ([]jobapimodels.JobView, error) {
	recList, err := i.store.ListOpen()
	if err != nil {
		return nil, err
	}
	list := make([]jobapimodels.JobView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, jobapimodels.JobConvert(rec))
	}
	return list, nil
}

func (i impl) Close(id string) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrs.NotFound("вакансия не найдена")
	}
	if rec.Status == models.JobStatusClosed {
		return apperrs.InvalidState("вакансия уже закрыта")
	}
	return i.store.Update(id, map[string]interface{}{"status": models.JobStatusClosed})
}
