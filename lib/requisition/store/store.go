package requisitionstore

import (
	"fmt"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"recruit-flow-backend/lib/approval"
	"recruit-flow-backend/models"
	reqapimodels "recruit-flow-backend/models/api/requisition"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Requisition) (id string, err error)
	GetByID(id string) (rec *dbmodels.Requisition, err error)
	FindByNumber(number string) (rec *dbmodels.Requisition, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter reqapimodels.ReqFilter) (list []dbmodels.Requisition, rowCount int64, err error)
	NextNumber(orgCode string) (number string, err error)
	ConsumeForJob(id, jobID string) (consumed bool, err error)

	// approval.StageStore
	GetStages(id string) ([]dbmodels.StageSnapshot, error)
	DecideStage(id string, stage models.StageName, upd approval.StageUpdate) (updated bool, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

// Префиксы встроенных колонок этапов.
var stageColumnPrefix = map[models.StageName]string{
	models.StageDepartmentHead: "department_head_",
	models.StageHr:             "hr_",
	models.StageCoo:            "coo_",
}

func (i impl) Create(rec dbmodels.Requisition) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Requisition, error) {
	rec := dbmodels.Requisition{}
	err := i.db.
		Where("id = ?", id).
		Preload("Author").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) FindByNumber(number string) (*dbmodels.Requisition, error) {
	rec := dbmodels.Requisition{}
	err := i.db.
		Where("number = ?", number).
		Preload("Author").
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (i impl) Update(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.Requisition{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись не найдена")
	}
	return nil
}

func (i impl) List(filter reqapimodels.ReqFilter) ([]dbmodels.Requisition, int64, error) {
	list := []dbmodels.Requisition{}
	tx := i.db.Model(&dbmodels.Requisition{})
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx = tx.Where("number ilike ? or position_title ilike ?", search, search)
	}
	if filter.Department != "" {
		tx = tx.Where("department = ?", filter.Department)
	}
	if filter.AuthorID != "" {
		tx = tx.Where("author_id = ?", filter.AuthorID)
	}
	// Агрегатный статус не хранится, фильтр выражается через колонки этапов.
	switch filter.OverallStatus {
	case models.StageRejected:
		tx = tx.Where("department_head_status = 'rejected' or hr_status = 'rejected' or coo_status = 'rejected'")
	case models.StageApproved:
		tx = tx.Where("department_head_status = 'approved' and hr_status = 'approved' and coo_status = 'approved'")
	case models.StagePending:
		tx = tx.
			Where("department_head_status <> 'rejected' and hr_status <> 'rejected' and coo_status <> 'rejected'").
			Where("department_head_status = 'pending' or hr_status = 'pending' or coo_status = 'pending'")
	}
	var rowCount int64
	err := tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Preload("Author").
		Order("created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}

// NextNumber выдает следующий номер заявки. Счетчик блокируется
// FOR UPDATE, поэтому параллельные создания получают разные номера.
func (i impl) NextNumber(orgCode string) (string, error) {
	var counter int64
	err := i.db.Transaction(func(tx *gorm.DB) error {
		seq := dbmodels.NumberSequence{}
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("name = ?", dbmodels.RequisitionSeqName).
			First(&seq).
			Error
		if err != nil {
			return errors.Wrap(err, "ошибка получения счетчика заявок")
		}
		seq.Counter++
		counter = seq.Counter
		return tx.Save(&seq).Error
	})
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s-Req-%05d", orgCode, counter), nil
}

// ConsumeForJob помечает заявку израсходованной. Условие job_id IS NULL
// гарантирует однократность: второй конкурирующий запрос получит
// consumed=false.
func (i impl) ConsumeForJob(id, jobID string) (bool, error) {
	tx := i.db.
		Model(&dbmodels.Requisition{}).
		Where("id = ?", id).
		Where("job_id IS NULL").
		Update("job_id", jobID)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}

func (i impl) GetStages(id string) ([]dbmodels.StageSnapshot, error) {
	rec := dbmodels.Requisition{}
	err := i.db.
		Where("id = ?", id).
		First(&rec).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return rec.StageList(), nil
}

// DecideStage записывает решение одним условным UPDATE: все поля этапа
// обновляются только пока этап pending.
func (i impl) DecideStage(id string, stage models.StageName, upd approval.StageUpdate) (bool, error) {
	prefix, ok := stageColumnPrefix[stage]
	if !ok {
		return false, errors.Errorf("неизвестный этап: %v", stage)
	}
	updMap := map[string]interface{}{
		prefix + "status":       upd.Status,
		prefix + "reviewer_id":  upd.ReviewerID,
		prefix + "reviewer_fio": upd.ReviewerFio,
		prefix + "reviewed_at":  upd.ReviewedAt,
		prefix + "comments":     upd.Comments,
	}
	tx := i.db.
		Model(&dbmodels.Requisition{}).
		Where("id = ?", id).
		Where(prefix+"status = ?", models.StagePending).
		Updates(updMap)
	if tx.Error != nil {
		return false, tx.Error
	}
	return tx.RowsAffected > 0, nil
}
