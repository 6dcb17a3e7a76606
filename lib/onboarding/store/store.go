package onboardingstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.OnboardingRecord) (id string, err error)
	GetByID(id string) (*dbmodels.OnboardingRecord, error)
	FindByApplication(applicationID string) (*dbmodels.OnboardingRecord, error)
	Update(id string, updMap map[string]interface{}) error
	List() ([]dbmodels.OnboardingRecord, error)
	CreateDoc(rec dbmodels.OnboardingDoc) (id string, err error)
	GetDocByID(id string) (*dbmodels.OnboardingDoc, error)
	UpdateDoc(id string, updMap map[string]interface{}) error
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) Create(rec dbmodels.OnboardingRecord) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.OnboardingRecord, error) {
	rec := dbmodels.OnboardingRecord{}
	err := i.db.
		Where("id = ?", id).
		Preload("Application").
		Preload("Application.Applicant").
		Preload("Documents").
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

func (i impl) FindByApplication(applicationID string) (*dbmodels.OnboardingRecord, error) {
	rec := dbmodels.OnboardingRecord{}
	err := i.db.
		Where("application_id = ?", applicationID).
		Preload("Documents").
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
		Model(&dbmodels.OnboardingRecord{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("запись оформления не найдена")
	}
	return nil
}

func (i impl) List() ([]dbmodels.OnboardingRecord, error) {
	list := []dbmodels.OnboardingRecord{}
	err := i.db.
		Preload("Application").
		Preload("Application.Applicant").
		Preload("Documents").
		Order("created_at desc").
		Find(&list).
		Error
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (i impl) CreateDoc(rec dbmodels.OnboardingDoc) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetDocByID(id string) (*dbmodels.OnboardingDoc, error) {
	rec := dbmodels.OnboardingDoc{}
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
	return &rec, nil
}

func (i impl) UpdateDoc(id string, updMap map[string]interface{}) error {
	if len(updMap) == 0 {
		return nil
	}
	tx := i.db.
		Model(&dbmodels.OnboardingDoc{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("документ не найден")
	}
	return nil
}
