package approval

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	apperrs "recruit-flow-backend/lib/utils/apperrs"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

type fakeStore struct {
	mu     sync.Mutex
	chain  models.Chain
	states map[string]map[models.StageName]dbmodels.StageRecord
}

func newFakeStore(chain models.Chain, ids ...string) *fakeStore {
	s := &fakeStore{
		chain:  chain,
		states: map[string]map[models.StageName]dbmodels.StageRecord{},
	}
	for _, id := range ids {
		stages := map[models.StageName]dbmodels.StageRecord{}
		for _, def := range chain {
			stages[def.Name] = dbmodels.StageRecord{Status: models.StagePending}
		}
		s.states[id] = stages
	}
	return s
}

func (s *fakeStore) GetStages(id string) ([]dbmodels.StageSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stages, ok := s.states[id]
	if !ok {
		return nil, nil
	}
	result := make([]dbmodels.StageSnapshot, 0, len(s.chain))
	for _, def := range s.chain {
		result = append(result, dbmodels.StageSnapshot{Name: def.Name, Record: stages[def.Name]})
	}
	return result, nil
}

func (s *fakeStore) DecideStage(id string, stage models.StageName, upd StageUpdate) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stages, ok := s.states[id]
	if !ok {
		return false, nil
	}
	current := stages[stage]
	if current.Status != models.StagePending {
		return false, nil
	}
	reviewerID := upd.ReviewerID
	reviewedAt := upd.ReviewedAt
	stages[stage] = dbmodels.StageRecord{
		Status:      upd.Status,
		ReviewerID:  &reviewerID,
		ReviewerFio: upd.ReviewerFio,
		ReviewedAt:  &reviewedAt,
		Comments:    upd.Comments,
	}
	return true, nil
}

type sinkRecorder struct {
	mu     sync.Mutex
	events []Event
	done   chan struct{}
}

func newSinkRecorder() *sinkRecorder {
	return &sinkRecorder{done: make(chan struct{}, 16)}
}

func (s *sinkRecorder) Notify(event Event) {
	s.mu.Lock()
	s.events = append(s.events, event)
	s.mu.Unlock()
	s.done <- struct{}{}
}

func (s *sinkRecorder) wait(t *testing.T) Event {
	t.Helper()
	<-s.done
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.events[len(s.events)-1]
}

var (
	hodActor = Actor{UserID: "u-hod", Fio: "Петров П.", Role: models.HodRole}
	hrActor  = Actor{UserID: "u-hr", Fio: "Иванова И.", Role: models.RecruiterRole}
	cooActor = Actor{UserID: "u-coo", Fio: "Сидоров С.", Role: models.CooRole}
)

func snapshot(statuses ...models.StageStatus) []dbmodels.StageSnapshot {
	names := []models.StageName{models.StageDepartmentHead, models.StageHr, models.StageCoo}
	result := make([]dbmodels.StageSnapshot, 0, len(statuses))
	for i, status := range statuses {
		result = append(result, dbmodels.StageSnapshot{Name: names[i], Record: dbmodels.StageRecord{Status: status}})
	}
	return result
}

func TestOverallStatus(t *testing.T) {
	t.Run(`any rejected stage gives rejected`, func(t *testing.T) {
		require.Equal(t, models.StageRejected, OverallStatus(snapshot(models.StagePending, models.StageRejected, models.StagePending)))
		require.Equal(t, models.StageRejected, OverallStatus(snapshot(models.StageApproved, models.StageApproved, models.StageRejected)))
		require.Equal(t, models.StageRejected, OverallStatus(snapshot(models.StageRejected, models.StagePending, models.StagePending)))
	})

	t.Run(`approved only when every stage approved`, func(t *testing.T) {
		require.Equal(t, models.StageApproved, OverallStatus(snapshot(models.StageApproved, models.StageApproved, models.StageApproved)))
		require.Equal(t, models.StagePending, OverallStatus(snapshot(models.StageApproved, models.StageApproved, models.StagePending)))
		require.Equal(t, models.StagePending, OverallStatus(snapshot(models.StagePending, models.StagePending, models.StagePending)))
	})

	t.Run(`order independent read`, func(t *testing.T) {
		// заведомо "невозможное" при последовательной записи состояние:
		// решенные этапы после нерешенных - чтение не должно полагаться
		// на порядок записи
		require.Equal(t, models.StagePending, OverallStatus(snapshot(models.StagePending, models.StageApproved, models.StageApproved)))
	})

	t.Run(`empty stage set is pending`, func(t *testing.T) {
		require.Equal(t, models.StagePending, OverallStatus(nil))
	})
}

func TestCheckDecision(t *testing.T) {
	chain := models.RequisitionChain

	t.Run(`wrong role is forbidden`, func(t *testing.T) {
		err := CheckDecision(chain, snapshot(models.StagePending, models.StagePending, models.StagePending),
			models.StageDepartmentHead, models.RecruiterRole, models.DecisionApprove, "")
		require.Equal(t, apperrs.KindForbidden, apperrs.KindOf(err))
	})

	t.Run(`decided stage can not be decided again`, func(t *testing.T) {
		err := CheckDecision(chain, snapshot(models.StageApproved, models.StagePending, models.StagePending),
			models.StageDepartmentHead, models.HodRole, models.DecisionApprove, "")
		require.Equal(t, apperrs.KindInvalidState, apperrs.KindOf(err))

		err = CheckDecision(chain, snapshot(models.StageRejected, models.StagePending, models.StagePending),
			models.StageDepartmentHead, models.HodRole, models.DecisionReject, "причина")
		require.Equal(t, apperrs.KindInvalidState, apperrs.KindOf(err))
	})

	t.Run(`out of order attempt`, func(t *testing.T) {
		err := CheckDecision(chain, snapshot(models.StagePending, models.StagePending, models.StagePending),
			models.StageHr, models.RecruiterRole, models.DecisionApprove, "")
		require.Equal(t, apperrs.KindInvalidState, apperrs.KindOf(err))

		err = CheckDecision(chain, snapshot(models.StageApproved, models.StagePending, models.StagePending),
			models.StageCoo, models.CooRole, models.DecisionApprove, "")
		require.Equal(t, apperrs.KindInvalidState, apperrs.KindOf(err))
	})

	t.Run(`reject requires comment`, func(t *testing.T) {
		err := CheckDecision(chain, snapshot(models.StagePending, models.StagePending, models.StagePending),
			models.StageDepartmentHead, models.HodRole, models.DecisionReject, "   ")
		require.Equal(t, apperrs.KindValidation, apperrs.KindOf(err))

		err = CheckDecision(chain, snapshot(models.StagePending, models.StagePending, models.StagePending),
			models.StageDepartmentHead, models.HodRole, models.DecisionReject, "бюджет заморожен")
		require.Nil(t, err)
	})

	t.Run(`unknown stage`, func(t *testing.T) {
		err := CheckDecision(chain, snapshot(models.StagePending, models.StagePending, models.StagePending),
			models.StageName("security"), models.HodRole, models.DecisionApprove, "")
		require.Equal(t, apperrs.KindNotFound, apperrs.KindOf(err))
	})
}

func TestSubmitStageDecision(t *testing.T) {
	t.Run(`missing entity`, func(t *testing.T) {
		store := newFakeStore(models.RequisitionChain, "r1")
		engine := NewEngine("requisition", models.RequisitionChain, store, nil)
		_, err := engine.SubmitStageDecision("missing", models.StageDepartmentHead, hodActor, models.DecisionApprove, "")
		require.Equal(t, apperrs.KindNotFound, apperrs.KindOf(err))
	})

	t.Run(`failed precondition leaves entity unmodified`, func(t *testing.T) {
		store := newFakeStore(models.RequisitionChain, "r1")
		engine := NewEngine("requisition", models.RequisitionChain, store, nil)
		_, err := engine.SubmitStageDecision("r1", models.StageHr, hrActor, models.DecisionApprove, "")
		require.Equal(t, apperrs.KindInvalidState, apperrs.KindOf(err))
		stages, getErr := store.GetStages("r1")
		require.Nil(t, getErr)
		for _, stage := range stages {
			require.Equal(t, models.StagePending, stage.Record.Status)
		}
	})

	t.Run(`sequential approval chain R2`, func(t *testing.T) {
		store := newFakeStore(models.RequisitionChain, "r2")
		sink := newSinkRecorder()
		engine := NewEngine("requisition", models.RequisitionChain, store, sink)

		decided, err := engine.SubmitStageDecision("r2", models.StageDepartmentHead, hodActor, models.DecisionApprove, "")
		require.Nil(t, err)
		// ответ отражает только что записанное решение
		require.Equal(t, models.StageApproved, decided[0].Record.Status)
		require.Equal(t, hodActor.UserID, *decided[0].Record.ReviewerID)
		require.Equal(t, models.StagePending, decided[1].Record.Status)
		event := sink.wait(t)
		require.NotNil(t, event.NextStage)
		require.Equal(t, models.StageHr, event.NextStage.Name)
		require.False(t, event.Final)

		decided, err = engine.SubmitStageDecision("r2", models.StageHr, hrActor, models.DecisionApprove, "")
		require.Nil(t, err)
		require.Equal(t, models.StageApproved, decided[1].Record.Status)
		event = sink.wait(t)
		require.Equal(t, models.StageCoo, event.NextStage.Name)

		decided, err = engine.SubmitStageDecision("r2", models.StageCoo, cooActor, models.DecisionApprove, "")
		require.Nil(t, err)
		require.True(t, IsFullyApproved(decided))
		event = sink.wait(t)
		require.Nil(t, event.NextStage)
		require.True(t, event.Final)

		stages, err := store.GetStages("r2")
		require.Nil(t, err)
		require.True(t, IsFullyApproved(stages))
	})

	t.Run(`rejection scenario R1`, func(t *testing.T) {
		store := newFakeStore(models.RequisitionChain, "r1")
		sink := newSinkRecorder()
		engine := NewEngine("requisition", models.RequisitionChain, store, sink)

		_, err := engine.SubmitStageDecision("r1", models.StageDepartmentHead, hodActor, models.DecisionApprove, "")
		require.Nil(t, err)
		sink.wait(t)
		stages, err := store.GetStages("r1")
		require.Nil(t, err)
		require.Equal(t, models.StagePending, OverallStatus(stages))
		current, ok := CurrentStage(models.RequisitionChain, stages)
		require.True(t, ok)
		require.Equal(t, models.StageHr, current.Name)

		decided, err := engine.SubmitStageDecision("r1", models.StageHr, hrActor, models.DecisionReject, "бюджет заморожен")
		require.Nil(t, err)
		require.Equal(t, models.StageRejected, decided[1].Record.Status)
		require.Equal(t, "бюджет заморожен", decided[1].Record.Comments)
		event := sink.wait(t)
		require.True(t, event.Final)
		require.Equal(t, "бюджет заморожен", event.Comments)

		stages, err = store.GetStages("r1")
		require.Nil(t, err)
		require.Equal(t, models.StageRejected, OverallStatus(stages))
		require.False(t, IsFullyApproved(stages))
		// этап COO больше не доступен
		_, ok = CurrentStage(models.RequisitionChain, stages)
		require.False(t, ok)
		_, err = engine.SubmitStageDecision("r1", models.StageCoo, cooActor, models.DecisionApprove, "")
		require.Equal(t, apperrs.KindInvalidState, apperrs.KindOf(err))
	})

	t.Run(`hod plus hr approved is not fully approved`, func(t *testing.T) {
		stages := snapshot(models.StageApproved, models.StageApproved, models.StagePending)
		require.False(t, IsFullyApproved(stages))
	})

	t.Run(`concurrent decisions on one stage`, func(t *testing.T) {
		store := newFakeStore(models.RequisitionChain, "r3")
		engine := NewEngine("requisition", models.RequisitionChain, store, nil)

		const workers = 8
		errCh := make(chan error, workers)
		wg := sync.WaitGroup{}
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := engine.SubmitStageDecision("r3", models.StageDepartmentHead, hodActor, models.DecisionApprove, "")
				errCh <- err
			}()
		}
		wg.Wait()
		close(errCh)

		okCount, raceCount := 0, 0
		for err := range errCh {
			if err == nil {
				okCount++
				continue
			}
			require.Equal(t, apperrs.KindInvalidState, apperrs.KindOf(err))
			raceCount++
		}
		require.Equal(t, 1, okCount)
		require.Equal(t, workers-1, raceCount)
	})

	t.Run(`offer chain has no hr stage`, func(t *testing.T) {
		store := newFakeStore(models.OfferChain, "o1")
		sink := newSinkRecorder()
		engine := NewEngine("offer", models.OfferChain, store, sink)

		_, err := engine.SubmitStageDecision("o1", models.StageHr, hrActor, models.DecisionApprove, "")
		require.Equal(t, apperrs.KindNotFound, apperrs.KindOf(err))

		_, err = engine.SubmitStageDecision("o1", models.StageHod, hodActor, models.DecisionApprove, "")
		require.Nil(t, err)
		event := sink.wait(t)
		require.Equal(t, models.StageCoo, event.NextStage.Name)
		decided, err := engine.SubmitStageDecision("o1", models.StageCoo, cooActor, models.DecisionApprove, "")
		require.Nil(t, err)
		require.True(t, IsFullyApproved(decided))
		event = sink.wait(t)
		require.True(t, event.Final)
	})
}
