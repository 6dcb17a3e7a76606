package requisitionhandler

import (
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"recruit-flow-backend/config"
	"recruit-flow-backend/db"
	"recruit-flow-backend/lib/approval"
	jobstore "recruit-flow-backend/lib/job/store"
	notificationhandler "recruit-flow-backend/lib/notification/handler"
	requisitionstore "recruit-flow-backend/lib/requisition/store"
	"recruit-flow-backend/lib/utils/apperrs"
	"recruit-flow-backend/models"
	jobapimodels "recruit-flow-backend/models/api/job"
	reqapimodels "recruit-flow-backend/models/api/requisition"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(author approval.Actor, data reqapimodels.RequisitionData) (reqapimodels.RequisitionView, error)
	GetByID(id string) (reqapimodels.RequisitionView, error)
	Update(id string, data reqapimodels.RequisitionData) error
	List(filter reqapimodels.ReqFilter) (list []reqapimodels.RequisitionView, rowCount int64, err error)
	ListAll(filter reqapimodels.ReqFilter) ([]reqapimodels.RequisitionView, error)
	Approve(id string, stage models.StageName, actor approval.Actor, comments string) (reqapimodels.RequisitionView, error)
	Reject(id string, stage models.StageName, actor approval.Actor, comments string) (reqapimodels.RequisitionView, error)
	CreateJob(actorID string, data jobapimodels.JobCreateData) (jobapimodels.JobView, error)
}

var Instance Provider

func NewHandler() {
	store := requisitionstore.NewInstance(db.DB)
	Instance = impl{
		store:    store,
		jobStore: jobstore.NewInstance(db.DB),
		engine:   approval.NewEngine("requisition", models.RequisitionChain, store, reqSink{store: store}),
		runInTx: func(fn func(jobs jobstore.Provider, reqs requisitionstore.Provider) error) error {
			return db.DB.Transaction(func(tx *gorm.DB) error {
				return fn(jobstore.NewInstance(tx), requisitionstore.NewInstance(tx))
			})
		},
	}
}

type impl struct {
	store    requisitionstore.Provider
	jobStore jobstore.Provider
	engine   approval.Engine
	runInTx  func(fn func(jobs jobstore.Provider, reqs requisitionstore.Provider) error) error
}

func (i impl) Create(author approval.Actor, data reqapimodels.RequisitionData) (reqapimodels.RequisitionView, error) {
	logger := log.WithField("user_id", author.UserID)
	number, err := i.store.NextNumber(config.Conf.App.OrgCode)
	if err != nil {
		logger.WithError(err).Error("ошибка получения номера заявки")
		return reqapimodels.RequisitionView{}, err
	}
	rec := dbmodels.Requisition{
		Number:          number,
		AuthorID:        author.UserID,
		PositionTitle:   data.PositionTitle,
		Department:      data.Department,
		Location:        data.Location,
		ReqType:         data.ReqType,
		GradeBand:       data.GradeBand,
		SalaryFrom:      data.SalaryFrom,
		SalaryTo:        data.SalaryTo,
		OpenedPositions: data.OpenedPositions,
		Justification:   data.Justification,
	}
	id, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка создания заявки")
		return reqapimodels.RequisitionView{}, err
	}
	logger.WithField("rec_id", id).WithField("number", number).Info("заявка на подбор создана")
	go notificationhandler.Instance.SendToRole(models.RequisitionChain[0].Role,
		models.NewPush(models.PushReqAwaitingStage, number, models.RequisitionChain[0].Name.ToHuman()))
	return i.GetByID(id)
}

func (i impl) GetByID(id string) (reqapimodels.RequisitionView, error) {
	rec, err := i.store.GetByID(id)
	if err != nil {
		log.WithField("rec_id", id).WithError(err).Error("ошибка получения заявки")
		return reqapimodels.RequisitionView{}, err
	}
	if rec == nil {
		return reqapimodels.RequisitionView{}, apperrs.NotFound("заявка не найдена")
	}
	return reqapimodels.RequisitionConvert(*rec, approval.OverallStatus(rec.StageList())), nil
}

// Update меняет содержимое заявки, пока согласование не началось.
func (i impl) Update(id string, data reqapimodels.RequisitionData) error {
	rec, err := i.store.GetByID(id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrs.NotFound("заявка не найдена")
	}
	for _, snap := range rec.StageList() {
		if snap.Record.Status.IsDecided() {
			return apperrs.InvalidState("заявка уже в согласовании, изменение недоступно")
		}
	}
	updMap := map[string]interface{}{
		"position_title":   data.PositionTitle,
		"department":       data.Department,
		"location":         data.Location,
		"req_type":         data.ReqType,
		"grade_band":       data.GradeBand,
		"salary_from":      data.SalaryFrom,
		"salary_to":        data.SalaryTo,
		"opened_positions": data.OpenedPositions,
		"justification":    data.Justification,
	}
	return i.store.Update(id, updMap)
}

func (i impl) List(filter reqapimodels.ReqFilter) ([]reqapimodels.RequisitionView, int64, error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list := make([]reqapimodels.RequisitionView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, reqapimodels.RequisitionConvert(rec, approval.OverallStatus(rec.StageList())))
	}
	return list, rowCount, nil
}

// ListAll выгружает реестр целиком, постранично, без верхнего предела.
func (i impl) ListAll(filter reqapimodels.ReqFilter) ([]reqapimodels.RequisitionView, error) {
	const pageSize = 100
	filter.Limit = pageSize
	list := []reqapimodels.RequisitionView{}
	for page := 1; ; page++ {
		filter.Page = page
		recList, _, err := i.store.List(filter)
		if err != nil {
			return nil, err
		}
		for _, rec := range recList {
			list = append(list, reqapimodels.RequisitionConvert(rec, approval.OverallStatus(rec.StageList())))
		}
		if len(recList) < pageSize {
			return list, nil
		}
	}
}

func (i impl) Approve(id string, stage models.StageName, actor approval.Actor, comments string) (reqapimodels.RequisitionView, error) {
	if _, err := i.engine.SubmitStageDecision(id, stage, actor, models.DecisionApprove, comments); err != nil {
		return reqapimodels.RequisitionView{}, err
	}
	return i.GetByID(id)
}

func (i impl) Reject(id string, stage models.StageName, actor approval.Actor, comments string) (reqapimodels.RequisitionView, error) {
	if _, err := i.engine.SubmitStageDecision(id, stage, actor, models.DecisionReject, comments); err != nil {
		return reqapimodels.RequisitionView{}, err
	}
	return i.GetByID(id)
}

// CreateJob создает вакансию из полностью согласованной заявки.
// Заявка расходуется однократно: вакансия и отметка job_id пишутся
// в одной транзакции, конкурирующий запрос откатывается.
func (i impl) CreateJob(actorID string, data jobapimodels.JobCreateData) (jobapimodels.JobView, error) {
	logger := log.
		WithField("user_id", actorID).
		WithField("number", data.RequisitionNumber)
	rec, err := i.store.FindByNumber(data.RequisitionNumber)
	if err != nil {
		logger.WithError(err).Error("ошибка поиска заявки")
		return jobapimodels.JobView{}, err
	}
	if rec == nil {
		return jobapimodels.JobView{}, apperrs.NotFound("заявка не найдена")
	}
	if !approval.IsFullyApproved(rec.StageList()) {
		return jobapimodels.JobView{}, apperrs.InvalidState("заявка не прошла согласование")
	}
	if rec.IsConsumed() {
		return jobapimodels.JobView{}, apperrs.AlreadyConsumed("по заявке уже создана вакансия")
	}
	var jobID string
	err = i.runInTx(func(txJobStore jobstore.Provider, txReqStore requisitionstore.Provider) error {
		job := dbmodels.Job{
			RequisitionID: rec.ID,
			AuthorID:      actorID,
			Title:         rec.PositionTitle,
			Department:    rec.Department,
			Location:      rec.Location,
			GradeBand:     rec.GradeBand,
			SalaryFrom:    rec.SalaryFrom,
			SalaryTo:      rec.SalaryTo,
			Description:   data.Description,
			Requirements:  data.Requirements,
			Status:        models.JobStatusOpen,
		}
		jobID, err = txJobStore.Create(job)
		if err != nil {
			return err
		}
		consumed, err := txReqStore.ConsumeForJob(rec.ID, jobID)
		if err != nil {
			return err
		}
		if !consumed {
			return apperrs.AlreadyConsumed("по заявке уже создана вакансия")
		}
		return nil
	})
	if err != nil {
		if apperrs.KindOf(err) == "" {
			logger.WithError(err).Error("ошибка создания вакансии из заявки")
		}
		return jobapimodels.JobView{}, err
	}
	logger.WithField("job_id", jobID).Info("вакансия создана из заявки")
	job, err := i.jobStore.GetByID(jobID)
	if err != nil || job == nil {
		return jobapimodels.JobView{}, err
	}
	return jobapimodels.JobConvert(*job), nil
}

// reqSink доводит события согласования заявки до участников.
type reqSink struct {
	store requisitionstore.Provider
}

func (s reqSink) Notify(event approval.Event) {
	logger := log.
		WithField("rec_id", event.EntityID).
		WithField("stage", event.Stage)
	rec, err := s.store.GetByID(event.EntityID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения заявки для уведомления")
		return
	}
	if rec == nil {
		return
	}
	switch {
	case event.NextStage != nil:
		notificationhandler.Instance.SendToRole(event.NextStage.Role,
			models.NewPush(models.PushReqAwaitingStage, rec.Number, event.NextStage.Name.ToHuman()))
	case event.Decision == models.DecisionApprove:
		notificationhandler.Instance.SendToUser(rec.AuthorID,
			models.NewPush(models.PushReqApproved, rec.Number))
		notificationhandler.Instance.SendToRole(models.RecruiterRole,
			models.NewPush(models.PushReqApproved, rec.Number))
	default:
		notificationhandler.Instance.SendToUser(rec.AuthorID,
			models.NewPush(models.PushReqRejected, rec.Number, event.Stage.ToHuman(), event.Comments))
	}
}
