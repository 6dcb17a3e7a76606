package reqapimodels

import (
	"time"

	"github.com/pkg/errors"

	apimodels "recruit-flow-backend/models/api"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

type RequisitionData struct {
	PositionTitle   string         `json:"position_title"`   // название позиции
	Department      string         `json:"department"`       // подразделение
	Location        string         `json:"location"`         // локация
	ReqType         models.ReqType `json:"req_type"`         // тип заявки (new/replacement)
	GradeBand       string         `json:"grade_band"`       // грейд
	SalaryFrom      int            `json:"salary_from"`      // вилка от
	SalaryTo        int            `json:"salary_to"`        // вилка до
	OpenedPositions int            `json:"opened_positions"` // кол-во позиций
	Justification   string         `json:"justification"`    // обоснование потребности
}

func (v RequisitionData) Validate() error {
	if v.PositionTitle == "" {
		return errors.New("отсутсвует название позиции")
	}
	if v.Department == "" {
		return errors.New("отсутсвует подразделение")
	}
	if v.OpenedPositions <= 0 {
		return errors.New("не указано количество вакантных позиций")
	}
	if err := v.ReqType.Validate(); err != nil {
		return err
	}
	if v.SalaryFrom > v.SalaryTo {
		return errors.New("некорректная зарплатная вилка")
	}
	return nil
}

type StageView struct {
	Stage       models.StageName   `json:"stage"`
	StageName   string             `json:"stage_name"`
	Status      models.StageStatus `json:"status"`
	ReviewerID  string             `json:"reviewer_id,omitempty"`
	ReviewerFio string             `json:"reviewer_fio,omitempty"`
	ReviewedAt  *time.Time         `json:"reviewed_at,omitempty"`
	Comments    string             `json:"comments,omitempty"`
}

func StageConvert(snap dbmodels.StageSnapshot) StageView {
	view := StageView{
		Stage:       snap.Name,
		StageName:   snap.Name.ToHuman(),
		Status:      snap.Record.Status,
		ReviewerFio: snap.Record.ReviewerFio,
		ReviewedAt:  snap.Record.ReviewedAt,
		Comments:    snap.Record.Comments,
	}
	if snap.Record.ReviewerID != nil {
		view.ReviewerID = *snap.Record.ReviewerID
	}
	return view
}

type RequisitionView struct {
	RequisitionData
	ID            string             `json:"id"`
	Number        string             `json:"number"`
	CreationDate  time.Time          `json:"creation_date"`
	AuthorID      string             `json:"author_id"`
	AuthorFio     string             `json:"author_fio,omitempty"`
	OverallStatus models.StageStatus `json:"overall_status"`
	Stages        []StageView        `json:"stages"`
	JobID         string             `json:"job_id,omitempty"`
	Consumed      bool               `json:"consumed"`
}

// RequisitionConvert - представление заявки: агрегатный статус не хранится,
// а вычисляется из этапов конвертером по переданному значению.
func RequisitionConvert(rec dbmodels.Requisition, overall models.StageStatus) RequisitionView {
	result := RequisitionView{
		RequisitionData: RequisitionData{
			PositionTitle:   rec.PositionTitle,
			Department:      rec.Department,
			Location:        rec.Location,
			ReqType:         rec.ReqType,
			GradeBand:       rec.GradeBand,
			SalaryFrom:      rec.SalaryFrom,
			SalaryTo:        rec.SalaryTo,
			OpenedPositions: rec.OpenedPositions,
			Justification:   rec.Justification,
		},
		ID:            rec.ID,
		Number:        rec.Number,
		CreationDate:  rec.CreatedAt,
		AuthorID:      rec.AuthorID,
		OverallStatus: overall,
		Consumed:      rec.IsConsumed(),
	}
	if rec.Author != nil {
		result.AuthorFio = rec.Author.GetFullName()
	}
	if rec.JobID != nil {
		result.JobID = *rec.JobID
	}
	for _, snap := range rec.StageList() {
		result.Stages = append(result.Stages, StageConvert(snap))
	}
	return result
}

type ReqFilter struct {
	apimodels.Pagination
	Search        string             `json:"search"`         // поиск по номеру/названию
	Department    string             `json:"department"`     // фильтр по подразделению
	OverallStatus models.StageStatus `json:"overall_status"` // агрегатный статус (вычисляется по этапам)
	AuthorID      string             `json:"author_id"`
}

func (v ReqFilter) Validate() error {
	switch v.OverallStatus {
	case "", models.StagePending, models.StageApproved, models.StageRejected:
		return nil
	}
	return models.NewEnumError("агрегатный статус", string(v.OverallStatus))
}

type DecisionData struct {
	Comments string `json:"comments"` // обязателен при отклонении
}

type RejectData struct {
	DecisionData
}

func (v RejectData) Validate() error {
	if v.Comments == "" {
		return errors.New("при отклонении комментарий обязателен")
	}
	return nil
}
