package requisitionhandler

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"recruit-flow-backend/lib/approval"
	jobstore "recruit-flow-backend/lib/job/store"
	requisitionstore "recruit-flow-backend/lib/requisition/store"
	"recruit-flow-backend/lib/utils/apperrs"
	"recruit-flow-backend/models"
	jobapimodels "recruit-flow-backend/models/api/job"
	reqapimodels "recruit-flow-backend/models/api/requisition"
	dbmodels "recruit-flow-backend/models/db"
)

type fakeReqStore struct {
	recs        map[string]*dbmodels.Requisition // key: number
	consumeFail bool
	listPages   [][]dbmodels.Requisition
}

func (s *fakeReqStore) Create(rec dbmodels.Requisition) (string, error) { return rec.ID, nil }

func (s *fakeReqStore) GetByID(id string) (*dbmodels.Requisition, error) {
	for _, rec := range s.recs {
		if rec.ID == id {
			return rec, nil
		}
	}
	return nil, nil
}

func (s *fakeReqStore) FindByNumber(number string) (*dbmodels.Requisition, error) {
	return s.recs[number], nil
}

func (s *fakeReqStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (s *fakeReqStore) List(filter reqapimodels.ReqFilter) ([]dbmodels.Requisition, int64, error) {
	page, _ := filter.GetPage()
	if page > len(s.listPages) {
		return nil, 0, nil
	}
	return s.listPages[page-1], 0, nil
}

func (s *fakeReqStore) NextNumber(orgCode string) (string, error) {
	return fmt.Sprintf("%s-Req-00001", orgCode), nil
}

func (s *fakeReqStore) ConsumeForJob(id, jobID string) (bool, error) {
	if s.consumeFail {
		return false, nil
	}
	for _, rec := range s.recs {
		if rec.ID == id && !rec.IsConsumed() {
			rec.JobID = &jobID
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeReqStore) GetStages(id string) ([]dbmodels.StageSnapshot, error) {
	rec, _ := s.GetByID(id)
	if rec == nil {
		return nil, nil
	}
	return rec.StageList(), nil
}

func (s *fakeReqStore) DecideStage(id string, stage models.StageName, upd approval.StageUpdate) (bool, error) {
	return false, nil
}

type fakeJobStore struct {
	jobs map[string]*dbmodels.Job
	seq  int
}

func (s *fakeJobStore) Create(rec dbmodels.Job) (string, error) {
	s.seq++
	rec.ID = fmt.Sprintf("job-%d", s.seq)
	s.jobs[rec.ID] = &rec
	return rec.ID, nil
}

func (s *fakeJobStore) GetByID(id string) (*dbmodels.Job, error) { return s.jobs[id], nil }

func (s *fakeJobStore) Update(id string, updMap map[string]interface{}) error { return nil }

func (s *fakeJobStore) List(filter jobapimodels.JobFilter) ([]dbmodels.Job, int64, error) {
	return nil, 0, nil
}

func (s *fakeJobStore) ListOpen() ([]dbmodels.Job, error) { return nil, nil }

func newTestHandler(reqStore *fakeReqStore, jobStore *fakeJobStore) impl {
	return impl{
		store:    reqStore,
		jobStore: jobStore,
		runInTx: func(fn func(jobs jobstore.Provider, reqs requisitionstore.Provider) error) error {
			return fn(jobStore, reqStore)
		},
	}
}

func approvedRequisition(id, number string) *dbmodels.Requisition {
	rec := &dbmodels.Requisition{
		Number:        number,
		PositionTitle: "Инженер",
		Department:    "Разработка",
	}
	rec.ID = id
	rec.DepartmentHead = dbmodels.StageRecord{Status: models.StageApproved}
	rec.Hr = dbmodels.StageRecord{Status: models.StageApproved}
	rec.Coo = dbmodels.StageRecord{Status: models.StageApproved}
	return rec
}

func TestCreateJob(t *testing.T) {
	t.Run(`not approved requisition is rejected`, func(t *testing.T) {
		rec := approvedRequisition("r1", "ORG-Req-00001")
		rec.Coo = dbmodels.StageRecord{Status: models.StagePending}
		reqStore := &fakeReqStore{recs: map[string]*dbmodels.Requisition{rec.Number: rec}}
		handler := newTestHandler(reqStore, &fakeJobStore{jobs: map[string]*dbmodels.Job{}})

		_, err := handler.CreateJob("u1", jobapimodels.JobCreateData{RequisitionNumber: rec.Number})
		require.Equal(t, apperrs.KindInvalidState, apperrs.KindOf(err))
	})

	t.Run(`unknown number`, func(t *testing.T) {
		handler := newTestHandler(&fakeReqStore{recs: map[string]*dbmodels.Requisition{}},
			&fakeJobStore{jobs: map[string]*dbmodels.Job{}})
		_, err := handler.CreateJob("u1", jobapimodels.JobCreateData{RequisitionNumber: "нет такой"})
		require.Equal(t, apperrs.KindNotFound, apperrs.KindOf(err))
	})

	t.Run(`requisition is consumed exactly once`, func(t *testing.T) {
		rec := approvedRequisition("r2", "ORG-Req-00002")
		reqStore := &fakeReqStore{recs: map[string]*dbmodels.Requisition{rec.Number: rec}}
		jobStore := &fakeJobStore{jobs: map[string]*dbmodels.Job{}}
		handler := newTestHandler(reqStore, jobStore)

		job, err := handler.CreateJob("u1", jobapimodels.JobCreateData{RequisitionNumber: rec.Number})
		require.Nil(t, err)
		require.Equal(t, rec.ID, job.RequisitionID)
		require.Equal(t, models.JobStatusOpen, job.Status)
		require.Equal(t, rec.PositionTitle, job.Title)
		require.True(t, rec.IsConsumed())

		// повторная попытка по той же заявке
		_, err = handler.CreateJob("u1", jobapimodels.JobCreateData{RequisitionNumber: rec.Number})
		require.Equal(t, apperrs.KindAlreadyConsumed, apperrs.KindOf(err))
		require.Len(t, jobStore.jobs, 1)
	})

	t.Run(`concurrent consume loses inside transaction`, func(t *testing.T) {
		rec := approvedRequisition("r3", "ORG-Req-00003")
		reqStore := &fakeReqStore{
			recs:        map[string]*dbmodels.Requisition{rec.Number: rec},
			consumeFail: true, // конкурент успел расходовать заявку после предварительной проверки
		}
		handler := newTestHandler(reqStore, &fakeJobStore{jobs: map[string]*dbmodels.Job{}})

		_, err := handler.CreateJob("u1", jobapimodels.JobCreateData{RequisitionNumber: rec.Number})
		require.Equal(t, apperrs.KindAlreadyConsumed, apperrs.KindOf(err))
	})
}

func TestListAll(t *testing.T) {
	page := func(n, size int) []dbmodels.Requisition {
		list := make([]dbmodels.Requisition, 0, size)
		for k := 0; k < size; k++ {
			rec := dbmodels.Requisition{Number: fmt.Sprintf("ORG-Req-%05d", n*1000+k)}
			rec.ID = rec.Number
			list = append(list, rec)
		}
		return list
	}
	reqStore := &fakeReqStore{listPages: [][]dbmodels.Requisition{page(1, 100), page(2, 100), page(3, 50)}}
	handler := newTestHandler(reqStore, &fakeJobStore{jobs: map[string]*dbmodels.Job{}})

	list, err := handler.ListAll(reqapimodels.ReqFilter{})
	require.Nil(t, err)
	// выгрузка не обрезается постраничным пределом
	require.Len(t, list, 250)
	require.Equal(t, "ORG-Req-01000", list[0].Number)
	require.Equal(t, "ORG-Req-03049", list[249].Number)
}
