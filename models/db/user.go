package dbmodels

import (
	"fmt"
	"recruit-flow-backend/models"
	"time"
)

type User struct {
	BaseModel
	Password    string `gorm:"type:varchar(128)"`
	FirstName   string `gorm:"type:varchar(150)"`
	LastName    string `gorm:"type:varchar(150)"`
	Email       string `gorm:"type:varchar(255);uniqueIndex"`
	PhoneNumber string `gorm:"type:varchar(15)"`
	Role        models.UserRole `gorm:"type:varchar(50)"`
	Department  string          `gorm:"type:varchar(255)"`
	IsActive    bool
	LastLogin   time.Time
}

func (r User) GetFullName() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}
