package dbmodels

import (
	"recruit-flow-backend/models"
	"time"
)

// StageRecord - этап согласования, хранится встроенными колонками на
// родительской записи (не отдельной таблицей): состояние "все этапы pending"
// при создании - это просто значения колонок по умолчанию.
type StageRecord struct {
	Status      models.StageStatus `gorm:"type:varchar(20);default:'pending'"`
	ReviewerID  *string            `gorm:"type:varchar(36)"`
	ReviewerFio string             `gorm:"type:varchar(255)"`
	ReviewedAt  *time.Time
	Comments    string
}

// StageSnapshot - этап вместе с его именем в цепочке, для движка согласования.
type StageSnapshot struct {
	Name   models.StageName
	Record StageRecord
}

type Requisition struct {
	BaseModel
	Number        string `gorm:"type:varchar(20);uniqueIndex"`
	AuthorID      string `gorm:"type:varchar(36)"`
	Author        *User  `gorm:"foreignKey:AuthorID"`
	PositionTitle string `gorm:"type:varchar(255)"`
	Department    string `gorm:"type:varchar(255)"`
	Location      string `gorm:"type:varchar(255)"`
	ReqType       models.ReqType `gorm:"type:varchar(50)"`
	GradeBand     string         `gorm:"type:varchar(50)"`
	SalaryFrom    int
	SalaryTo      int
	OpenedPositions int
	Justification   string

	DepartmentHead StageRecord `gorm:"embedded;embeddedPrefix:department_head_"`
	Hr             StageRecord `gorm:"embedded;embeddedPrefix:hr_"`
	Coo            StageRecord `gorm:"embedded;embeddedPrefix:coo_"`

	// Непустой JobID - заявка однократно "израсходована" на создание вакансии.
	JobID *string `gorm:"type:varchar(36)"`
	Job   *Job    `gorm:"foreignKey:JobID"`
}

// StageList - этапы заявки в порядке цепочки согласования.
func (r Requisition) StageList() []StageSnapshot {
	return []StageSnapshot{
		{Name: models.StageDepartmentHead, Record: r.DepartmentHead},
		{Name: models.StageHr, Record: r.Hr},
		{Name: models.StageCoo, Record: r.Coo},
	}
}

func (r Requisition) IsConsumed() bool {
	return r.JobID != nil && *r.JobID != ""
}

const RequisitionSeqName = "requisition"

type NumberSequence struct {
	Name    string `gorm:"primaryKey;type:varchar(50)"`
	Counter int64
}
