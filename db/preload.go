package db

import (
	"recruit-flow-backend/config"
	userstore "recruit-flow-backend/lib/users/store"
	authutils "recruit-flow-backend/lib/utils/auth-utils"
	"recruit-flow-backend/models"
	dbmodels "recruit-flow-backend/models/db"

	log "github.com/sirupsen/logrus"
	"gorm.io/gorm/clause"
)

func InitPreload() {
	addAdmin()
	addReqNumberSeq()
}

func addAdmin() {
	if config.Conf.Admin.Email == "" || config.Conf.Admin.Password == "" {
		log.Warn("администратор не добавлен, отсутствуют настройки ADMIN_EMAIL/ADMIN_PASSWORD")
		return
	}
	store := userstore.NewInstance(DB)
	existedRec, err := store.FindByEmail(config.Conf.Admin.Email)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
		return
	}
	if existedRec != nil {
		return
	}
	rec := dbmodels.User{
		IsActive:  true,
		Role:      models.AdminRole,
		Password:  authutils.GetMD5Hash(config.Conf.Admin.Password),
		FirstName: "Админ",
		LastName:  "Системы",
		Email:     config.Conf.Admin.Email,
	}
	_, err = store.Create(rec)
	if err != nil {
		log.WithError(err).Error("ошибка добавления администратора")
	}
}

func addReqNumberSeq() {
	rec := dbmodels.NumberSequence{
		Name:    dbmodels.RequisitionSeqName,
		Counter: 0,
	}
	err := DB.Clauses(clause.OnConflict{DoNothing: true}).Create(&rec).Error
	if err != nil {
		log.WithError(err).Error("ошибка инициализации счетчика заявок")
	}
}
