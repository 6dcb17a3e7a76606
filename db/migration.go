package db

import (
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	dbmodels "recruit-flow-backend/models/db"
)

func AutoMigrateDB() error {
	DB.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\";")
	log.Info("Запуск миграций")
	if err := DB.AutoMigrate(&dbmodels.User{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры User")
	}
	if err := DB.AutoMigrate(&dbmodels.NumberSequence{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры NumberSequence")
	}
	if err := DB.AutoMigrate(&dbmodels.Requisition{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Requisition")
	}
	if err := DB.AutoMigrate(&dbmodels.Job{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Job")
	}
	if err := DB.AutoMigrate(&dbmodels.Applicant{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Applicant")
	}
	if err := DB.AutoMigrate(&dbmodels.Application{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Application")
	}
	if err := DB.AutoMigrate(&dbmodels.Interview{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Interview")
	}
	if err := DB.AutoMigrate(&dbmodels.Offer{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Offer")
	}
	if err := DB.AutoMigrate(&dbmodels.OnboardingRecord{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры OnboardingRecord")
	}
	if err := DB.AutoMigrate(&dbmodels.OnboardingDoc{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры OnboardingDoc")
	}
	if err := DB.AutoMigrate(&dbmodels.Notification{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры Notification")
	}
	if err := DB.AutoMigrate(&dbmodels.FileStorage{}); err != nil {
		return errors.Wrap(err, "ошибка создания структуры FileStorage")
	}
	log.Info("Миграция прошла успешно")
	return nil
}
