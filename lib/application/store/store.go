package applicationstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	applicantapimodels "recruit-flow-backend/models/api/applicant"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	CreateApplicant(rec dbmodels.Applicant) (id string, err error)
	FindApplicantByEmail(email string) (*dbmodels.Applicant, error)
	Create(rec dbmodels.Application) (id string, err error)
	GetByID(id string) (*dbmodels.Application, error)
	Update(id string, updMap map[string]interface{}) error
	List(filter applicantapimodels.ApplicationFilter) (list []dbmodels.Application, rowCount int64, err error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

func (i impl) CreateApplicant(rec dbmodels.Applicant) (id string, err error) {
	err = i.db.
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) FindApplicantByEmail(email string) (*dbmodels.Applicant, error) {
	rec := dbmodels.Applicant{}
	err := i.db.
		Where("email = ?", email).
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

func (i impl) Create(rec dbmodels.Application) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Application, error) {
	rec := dbmodels.Application{}
	err := i.db.
		Where("id = ?", id).
		Preload("Job").
		Preload("Applicant").
		Preload("Interviews").
		Preload("Interviews.Interviewer").
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
		Model(&dbmodels.Application{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("отклик не найден")
	}
	return nil
}

func (i impl) List(filter applicantapimodels.ApplicationFilter) ([]dbmodels.Application, int64, error) {
	list := []dbmodels.Application{}
	tx := i.db.Model(&dbmodels.Application{})
	if filter.JobID != "" {
		tx = tx.Where("job_id = ?", filter.JobID)
	}
	if filter.Status != "" {
		tx = tx.Where("status = ?", filter.Status)
	}
	if filter.Search != "" {
		search := "%" + filter.Search + "%"
		tx = tx.
			Joins("join applicants on applicants.id = applications.applicant_id").
			Where("applicants.first_name ilike ? or applicants.last_name ilike ? or applicants.email ilike ?", search, search, search)
	}
	var rowCount int64
	err := tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Preload("Job").
		Preload("Applicant").
		Order("applications.created_at desc").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&list).
		Error
	if err != nil {
		return nil, 0, err
	}
	return list, rowCount, nil
}
