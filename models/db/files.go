package dbmodels

type FileType string

const (
	ApplicantResume FileType = "applicant_resume"
	OnboardingFile  FileType = "onboarding_doc"
	OfferLetter     FileType = "offer_letter"
)

type FileStorage struct {
	BaseModel
	Name        string `gorm:"type:varchar(255)"`
	OwnerID     string `gorm:"type:varchar(36);index"`
	Type        FileType `gorm:"type:varchar(50)"`
	ContentType string   `gorm:"type:varchar(100)"`
}
