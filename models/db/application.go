package dbmodels

import (
	"fmt"
	"recruit-flow-backend/models"
	"time"
)

type Applicant struct {
	BaseModel
	UserID      *string `gorm:"type:varchar(36)"`
	FirstName   string  `gorm:"type:varchar(150)"`
	LastName    string  `gorm:"type:varchar(150)"`
	Email       string  `gorm:"type:varchar(255)"`
	PhoneNumber string  `gorm:"type:varchar(15)"`
}

func (r Applicant) GetFio() string {
	return fmt.Sprintf("%s %s", r.FirstName, r.LastName)
}

type Application struct {
	BaseModel
	JobID       string     `gorm:"type:varchar(36);index"`
	Job         *Job       `gorm:"foreignKey:JobID"`
	ApplicantID string     `gorm:"type:varchar(36);index"`
	Applicant   *Applicant `gorm:"foreignKey:ApplicantID"`
	Status      models.ApplicationStatus `gorm:"type:varchar(30)"`
	ResumeFileID *string                 `gorm:"type:varchar(36)"`
	CoverNote    string
	Interviews   []Interview `gorm:"foreignKey:ApplicationID"`
}

type Interview struct {
	BaseModel
	ApplicationID string       `gorm:"type:varchar(36);index"`
	Application   *Application `gorm:"foreignKey:ApplicationID"`
	InterviewerID string       `gorm:"type:varchar(36)"`
	Interviewer   *User        `gorm:"foreignKey:InterviewerID"`
	ScheduledAt   time.Time
	Feedback      string
	Recommendation models.InterviewRecommendation `gorm:"type:varchar(20)"`
	DecidedAt      *time.Time
}
