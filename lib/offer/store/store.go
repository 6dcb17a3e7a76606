package offerstore

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"recruit-flow-backend/lib/approval"
	"recruit-flow-backend/models"
	offerapimodels "recruit-flow-backend/models/api/offer"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(rec dbmodels.Offer) (id string, err error)
	GetByID(id string) (*dbmodels.Offer, error)
	FindByApplication(applicationID string) (*dbmodels.Offer, error)
	Update(id string, updMap map[string]interface{}) error
	List(filter offerapimodels.OfferFilter) (list []dbmodels.Offer, rowCount int64, err error)

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

var stageColumnPrefix = map[models.StageName]string{
	models.StageHod: "hod_",
	models.StageCoo: "coo_",
}

func (i impl) Create(rec dbmodels.Offer) (id string, err error) {
	err = i.db.Omit(clause.Associations).
		Save(&rec).
		Error
	if err != nil {
		return "", err
	}
	return rec.ID, nil
}

func (i impl) GetByID(id string) (*dbmodels.Offer, error) {
	rec := dbmodels.Offer{}
	err := i.db.
		Where("id = ?", id).
		Preload("Application").
		Preload("Application.Applicant").
		Preload("Application.Job").
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

func (i impl) FindByApplication(applicationID string) (*dbmodels.Offer, error) {
	rec := dbmodels.Offer{}
	err := i.db.
		Where("application_id = ?", applicationID).
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
		Model(&dbmodels.Offer{}).
		Where("id = ?", id).
		Updates(updMap)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return errors.New("оффер не найден")
	}
	return nil
}

func (i impl) List(filter offerapimodels.OfferFilter) ([]dbmodels.Offer, int64, error) {
	list := []dbmodels.Offer{}
	tx := i.db.Model(&dbmodels.Offer{})
	if filter.ApprovalStatus != "" {
		tx = tx.Where("approval_status = ?", filter.ApprovalStatus)
	}
	var rowCount int64
	err := tx.Count(&rowCount).Error
	if err != nil {
		return nil, 0, err
	}
	page, limit := filter.GetPage()
	err = tx.
		Preload("Application").
		Preload("Application.Applicant").
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

func (i impl) GetStages(id string) ([]dbmodels.StageSnapshot, error) {
	rec := dbmodels.Offer{}
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

// DecideStage записывает решение условным UPDATE и в той же транзакции
// пересчитывает денормализованный approval_status.
func (i impl) DecideStage(id string, stage models.StageName, upd approval.StageUpdate) (bool, error) {
	prefix, ok := stageColumnPrefix[stage]
	if !ok {
		return false, errors.Errorf("неизвестный этап: %v", stage)
	}
	updated := false
	err := i.db.Transaction(func(tx *gorm.DB) error {
		updMap := map[string]interface{}{
			prefix + "status":       upd.Status,
			prefix + "reviewer_id":  upd.ReviewerID,
			prefix + "reviewer_fio": upd.ReviewerFio,
			prefix + "reviewed_at":  upd.ReviewedAt,
			prefix + "comments":     upd.Comments,
		}
		res := tx.
			Model(&dbmodels.Offer{}).
			Where("id = ?", id).
			Where(prefix+"status = ?", models.StagePending).
			Updates(updMap)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return nil
		}
		updated = true
		rec := dbmodels.Offer{}
		err := tx.
			Where("id = ?", id).
			First(&rec).
			Error
		if err != nil {
			return err
		}
		return tx.
			Model(&dbmodels.Offer{}).
			Where("id = ?", id).
			Update("approval_status", ApprovalStatusOf(rec.StageList())).
			Error
	})
	if err != nil {
		return false, err
	}
	return updated, nil
}

// ApprovalStatusOf - денормализованный статус оффера по этапам.
func ApprovalStatusOf(stages []dbmodels.StageSnapshot) models.OfferApprovalStatus {
	switch approval.OverallStatus(stages) {
	case models.StageRejected:
		return models.OfferRejected
	case models.StageApproved:
		return models.OfferApproved
	}
	current, ok := approval.CurrentStage(models.OfferChain, stages)
	if ok && current.Name == models.StageCoo {
		return models.OfferPendingCoo
	}
	return models.OfferPendingHod
}
