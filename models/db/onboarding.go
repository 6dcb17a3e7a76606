package dbmodels

import (
	"github.com/lib/pq"
	"recruit-flow-backend/models"
)

type OnboardingRecord struct {
	BaseModel
	ApplicationID string         `gorm:"type:varchar(36);uniqueIndex"`
	Application   *Application   `gorm:"foreignKey:ApplicationID"`
	RequiredDocs  pq.StringArray `gorm:"type:text[]"`
	Completed     bool
	Documents     []OnboardingDoc `gorm:"foreignKey:OnboardingID"`
}

type OnboardingDoc struct {
	BaseModel
	OnboardingID string `gorm:"type:varchar(36);index"`
	DocType      string `gorm:"type:varchar(100)"`
	FileID       string `gorm:"type:varchar(36)"`
	Status       models.OnboardingDocStatus `gorm:"type:varchar(20)"`
}
