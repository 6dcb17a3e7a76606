package interviewstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Interview) (id string, err error)
	GetByID(id string) (*dbmodels.Interview, error)
	Update(id string, updMap map[string]interface{}) error
	ListByInterviewer(interviewerID string) ([]dbmodels.Interview, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.Interview) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Interview, error) {
	rec := dbmodels.Interview{}
	err := i.db.
		Where("id = ?", id).
		Preload("Application").
		Preload("Application.Applicant").
		Preload("Application.Job").
		Preload("Interviewer").
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
		Model(&dbmodels.Interview{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("интервью не найдено")
	}
	return nil
}

func (i impl) ListByInterviewer(interviewerID string) ([]dbmodels.Interview, error) {
	list := []dbmodels.Interview{}
	err := i.db.
		Where("interviewer_id = ?", interviewerID).
		Preload("Application").
		Preload("Application.Applicant").
		Preload("Application.Job").
		Order("scheduled_at asc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}
