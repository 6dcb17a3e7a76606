package dashboard

import (
	"recruit-flow-backend/db"
	dashboardstore "recruit-flow-backend/lib/dashboard/store"
	dashboardapimodels "recruit-flow-backend/models/api/dashboard"

	"github.com/pkg/errors"
)

type Provider interface {
	Summary() (dashboardapimodels.SummaryView, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: dashboardstore.NewInstance(db.DB),
	}
}

type impl struct {
	store dashboardstore.Provider
}

func (i impl) Summary() (dashboardapimodels.SummaryView, error) {
	result := dashboardapimodels.SummaryView{}
	requisitions, err := i.store.RequisitionCounts()
	if err != nil {
		return result, errors.Wrap(err, "ошибка подсчета заявок")
	}
	applications, err := i.store.ApplicationCounts()
	if err != nil {
		return result, errors.Wrap(err, "ошибка подсчета откликов")
	}
	openJobs, err := i.store.OpenJobCount()
	if err != nil {
		return result, errors.Wrap(err, "ошибка подсчета вакансий")
	}
	result.Requisitions = requisitions
	result.Applications = applications
	result.OpenJobs = openJobs
	return result, nil
}
