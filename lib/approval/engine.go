package approval

import (
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	apperrs "recruit-flow-backend/lib/utils/apperrs"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

// StageStore - хранилище этапов согласования одной сущности
// (заявка, оффер). Решение по этапу выполняется одним условным
// UPDATE со сверкой текущего статуса (см. DecideStage).
type StageStore interface {
	// GetStages возвращает этапы в порядке цепочки, nil - запись не найдена.
	GetStages(id string) ([]dbmodels.StageSnapshot, error)
	// DecideStage записывает все поля этапа одним условным обновлением
	// "только если этап все еще pending". updated=false - условие не
	// выполнилось (этап уже решен параллельным запросом).
	DecideStage(id string, stage models.StageName, upd StageUpdate) (updated bool, err error)
}

type StageUpdate struct {
	Status      models.StageStatus
	ReviewerID  string
	ReviewerFio string
	ReviewedAt  time.Time
	Comments    string
}

// Actor - действующий пользователь; роль берется из сессии, не из запроса.
type Actor struct {
	UserID string
	Fio    string
	Role   models.UserRole
}

// Event - событие перехода, передается в sink после успешного решения.
type Event struct {
	EntityID string
	Stage    models.StageName
	Decision models.Decision
	Actor    Actor
	Comments string
	// NextStage - следующий этап цепочки, если решение "согласовано"
	// и цепочка не завершена.
	NextStage *models.StageDef
	// Final - решение завершило цепочку (последний этап согласован
	// или любой этап отклонен).
	Final bool
}

// Sink - потребитель событий перехода. Вызывается в отдельной горутине,
// его ошибки не откатывают и не блокируют решение по этапу.
type Sink interface {
	Notify(event Event)
}

type Engine struct {
	entity string
	chain  models.Chain
	store  StageStore
	sink   Sink
}

func NewEngine(entity string, chain models.Chain, store StageStore, sink Sink) Engine {
	return Engine{
		entity: entity,
		chain:  chain,
		store:  store,
		sink:   sink,
	}
}

// SubmitStageDecision - решение согласующего по этапу.
// Проверки выполняются строго по порядку: роль -> этап не решен ->
// очередность -> комментарий при отклонении; каждая нарушенная
// возвращается отдельным классом ошибки.
// При успехе возвращает этапы с учетом записанного решения.
func (e Engine) SubmitStageDecision(id string, stage models.StageName, actor Actor, decision models.Decision, comments string) ([]dbmodels.StageSnapshot, error) {
	logger := log.
		WithField("entity", e.entity).
		WithField("rec_id", id).
		WithField("stage", stage).
		WithField("user_id", actor.UserID)
	if err := decision.Validate(); err != nil {
		return nil, apperrs.Validation(err.Error())
	}
	stages, err := e.store.GetStages(id)
	if err != nil {
		logger.WithError(err).Error("ошибка получения этапов согласования")
		return nil, err
	}
	if stages == nil {
		return nil, apperrs.NotFound("запись не найдена")
	}
	if err = CheckDecision(e.chain, stages, stage, actor.Role, decision, comments); err != nil {
		return nil, err
	}
	upd := StageUpdate{
		Status:      decision.ToStatus(),
		ReviewerID:  actor.UserID,
		ReviewerFio: actor.Fio,
		ReviewedAt:  time.Now(),
		Comments:    strings.TrimSpace(comments),
	}
	updated, err := e.store.DecideStage(id, stage, upd)
	if err != nil {
		logger.WithError(err).Error("ошибка записи решения по этапу")
		return nil, err
	}
	if !updated {
		// Конкурирующее решение успело раньше - проигравший запрос
		// получает тот же класс ошибки, что и повторная подача.
		return nil, apperrs.InvalidState("по этапу уже принято решение")
	}
	logger.WithField("decision", decision).Info("решение по этапу согласования принято")

	// условный UPDATE гарантировал, что этап был pending:
	// состояние после записи восстанавливается без повторного чтения
	refreshed := make([]dbmodels.StageSnapshot, len(stages))
	copy(refreshed, stages)
	for idx := range refreshed {
		if refreshed[idx].Name == stage {
			reviewerID := upd.ReviewerID
			reviewedAt := upd.ReviewedAt
			refreshed[idx].Record = dbmodels.StageRecord{
				Status:      upd.Status,
				ReviewerID:  &reviewerID,
				ReviewerFio: upd.ReviewerFio,
				ReviewedAt:  &reviewedAt,
				Comments:    upd.Comments,
			}
		}
	}

	event := Event{
		EntityID: id,
		Stage:    stage,
		Decision: decision,
		Actor:    actor,
		Comments: upd.Comments,
	}
	if decision == models.DecisionApprove {
		idx := e.chain.IndexOf(stage)
		if idx >= 0 && idx+1 < len(e.chain) {
			next := e.chain[idx+1]
			event.NextStage = &next
		} else {
			event.Final = true
		}
	} else {
		event.Final = true
	}
	if e.sink != nil {
		go e.sink.Notify(event)
	}
	return refreshed, nil
}

// CheckDecision - чистые предварительные проверки решения по этапу.
func CheckDecision(chain models.Chain, stages []dbmodels.StageSnapshot, stage models.StageName, role models.UserRole, decision models.Decision, comments string) error {
	idx := chain.IndexOf(stage)
	if idx < 0 {
		return apperrs.Newf(apperrs.KindNotFound, "этап «%v» отсутствует в цепочке согласования", stage)
	}
	stageRole := chain[idx].Role
	if role != stageRole {
		return apperrs.Newf(apperrs.KindForbidden, "решение по этапу «%v» принимает роль %v", stage.ToHuman(), stageRole.ToHuman())
	}
	current, found := findStage(stages, stage)
	if !found {
		return apperrs.Newf(apperrs.KindNotFound, "этап «%v» отсутствует в записи", stage)
	}
	if current.Record.Status != models.StagePending {
		return apperrs.InvalidState("по этапу уже принято решение")
	}
	for i := 0; i < idx; i++ {
		prev, found := findStage(stages, chain[i].Name)
		if !found || prev.Record.Status != models.StageApproved {
			return apperrs.Newf(apperrs.KindInvalidState, "этап «%v» еще не согласован", chain[i].Name.ToHuman())
		}
	}
	if decision == models.DecisionReject && strings.TrimSpace(comments) == "" {
		return apperrs.Validation("при отклонении комментарий обязателен")
	}
	return nil
}

// OverallStatus - агрегатный статус по всем этапам. Чистая функция,
// не зависит от порядка этапов: любой rejected дает rejected,
// approved - только когда согласованы все.
func OverallStatus(stages []dbmodels.StageSnapshot) models.StageStatus {
	allApproved := len(stages) > 0
	for _, stage := range stages {
		switch stage.Record.Status {
		case models.StageRejected:
			return models.StageRejected
		case models.StageApproved:
		default:
			allApproved = false
		}
	}
	if allApproved {
		return models.StageApproved
	}
	return models.StagePending
}

func IsFullyApproved(stages []dbmodels.StageSnapshot) bool {
	return OverallStatus(stages) == models.StageApproved
}

// CurrentStage - первый нерешенный этап цепочки, false - цепочка завершена
// (все согласовано или есть отклонение).
func CurrentStage(chain models.Chain, stages []dbmodels.StageSnapshot) (models.StageDef, bool) {
	if OverallStatus(stages) != models.StagePending {
		return models.StageDef{}, false
	}
	for _, def := range chain {
		current, found := findStage(stages, def.Name)
		if !found {
			return models.StageDef{}, false
		}
		if current.Record.Status == models.StagePending {
			return def, true
		}
	}
	return models.StageDef{}, false
}

func findStage(stages []dbmodels.StageSnapshot, name models.StageName) (dbmodels.StageSnapshot, bool) {
	for _, stage := range stages {
		if stage.Name == name {
			return stage, true
		}
	}
	return dbmodels.StageSnapshot{}, false
}
