package dashboardstore

import (
	"gorm.io/gorm"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	RequisitionCounts() (map[string]int64, error)
	ApplicationCounts() (map[string]int64, error)
	OpenJobCount() (int64, error)
}

func NewInstance(DB *gorm.DB) Provider {
	return &impl{
		db: DB,
	}
}

type impl struct {
	db *gorm.DB
}

type countRow struct {
	Status string
	Count  int64
}

// Итоговый статус заявки не хранится, считаем его по колонкам этапов.
func (i impl) RequisitionCounts() (map[string]int64, error) {
	rows := []countRow{}
	err := i.db.Model(&dbmodels.Requisition{}).
		Select(`case
			when department_head_status = 'rejected' or hr_status = 'rejected' or coo_status = 'rejected' then 'rejected'
			when department_head_status = 'approved' and hr_status = 'approved' and coo_status = 'approved' then 'approved'
			else 'pending'
		end as status, count(*) as count`).
		Group("1").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toMap(rows), nil
}

func (i impl) ApplicationCounts() (map[string]int64, error) {
	rows := []countRow{}
	err := i.db.Model(&dbmodels.Application{}).
		Select("status, count(*) as count").
		Group("status").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	return toMap(rows), nil
}

func (i impl) OpenJobCount() (count int64, err error) {
	err = i.db.Model(&dbmodels.Job{}).
		Where("status = ?", models.JobStatusOpen).
		Count(&count).Error
	return count, err
}

func toMap(rows []countRow) map[string]int64 {
	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result
}
