package dbmodels

import (
	"recruit-flow-backend/models"
	"time"
)

type Offer struct {
	BaseModel
	ApplicationID string       `gorm:"type:varchar(36);uniqueIndex"`
	Application   *Application `gorm:"foreignKey:ApplicationID"`
	AuthorID      string       `gorm:"type:varchar(36)"`
	Author        *User        `gorm:"foreignKey:AuthorID"`
	PositionTitle string       `gorm:"type:varchar(255)"`
	GradeBand     string       `gorm:"type:varchar(50)"`
	Salary        int
	StartDate     time.Time

	Hod StageRecord `gorm:"embedded;embeddedPrefix:hod_"`
	Coo StageRecord `gorm:"embedded;embeddedPrefix:coo_"`

	// Денормализованный стутус: какой этап ожидается сейчас.
	// Пересчитывается в той же транзакции, что и решение по этапу.
	ApprovalStatus models.OfferApprovalStatus `gorm:"type:varchar(20)"`

	SentAt     *time.Time
	AcceptedAt *time.Time
}

// StageList - этапы оффера в порядке цепочки согласования.
func (r Offer) StageList() []StageSnapshot {
	return []StageSnapshot{
		{Name: models.StageHod, Record: r.Hod},
		{Name: models.StageCoo, Record: r.Coo},
	}
}
