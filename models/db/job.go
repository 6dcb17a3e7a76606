package dbmodels

import (
	"recruit-flow-backend/models"
)

type Job struct {
	BaseModel
	RequisitionID string       `gorm:"type:varchar(36);uniqueIndex"`
	Requisition   *Requisition `gorm:"foreignKey:RequisitionID"`
	AuthorID      string       `gorm:"type:varchar(36)"`
	Author        *User        `gorm:"foreignKey:AuthorID"`
	Title         string       `gorm:"type:varchar(255)"`
	Department    string       `gorm:"type:varchar(255)"`
	Location      string       `gorm:"type:varchar(255)"`
	GradeBand     string       `gorm:"type:varchar(50)"`
	SalaryFrom    int
	SalaryTo      int
	Description   string
	Requirements  string
	Status        models.JobStatus `gorm:"type:varchar(20)"`
	Applications  []Application    `gorm:"foreignKey:JobID"`
}
