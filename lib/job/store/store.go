package jobstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"recruit-flow-backend/models"
	jobapimodels "recruit-flow-backend/models/api/job"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Job) (id string, err error)
	GetByID(id string) (rec *dbmodels.Job, err error)
	Update(id string, updMap map[string]interface{}) error
	List(filter jobapimodels.JobFilter) (list []dbmodels.Job, rowCount int64, err error)
	ListOpen() (list []dbmodels.Job, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Job) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Job, error) {
	rec := dbmodels.Job{}
	err := i.db.
		Where("id = ?", id).
		Preload("Requisition").
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
		Model(&dbmodels.Job{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("вакансия не найдена")
	}
	return nil
}

func (i impl) List(filter jobapimodels.JobFilter) ([]dbmodels.Job, int64, error) {
	list := []dbmodels.Job{}
	tx := i.db.Model(&dbmodels.Job{})
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx = tx.Where("title ilike ?", search)
	}
	if filter.Department != "" {
		tx = tx.Where("department = ?", filter.Department)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	var rowCount int64
	err := tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Preload("Requisition").
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

func (i impl) ListOpen() ([]dbmodels.Job, error) {
	list := []dbmodels.Job{}
	err := i.db.
		Where("status = ?", models.JobStatusOpen).
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
