package dbmodels

import (
	"recruit-flow-backend/models"
)

type Notification struct {
	BaseModel
	UserID string          `gorm:"type:varchar(36);index"`
	Code   models.PushCode `gorm:"type:varchar(50)"`
	Title  string          `gorm:"type:varchar(255)"`
	Msg    string
	Route  string `gorm:"type:varchar(255)"`
	IsRead bool
}
