package usershandler

import (
	"fmt"

	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/db"
	userstore "recruit-flow-backend/lib/users/store"
	connectionhub "recruit-flow-backend/lib/ws/hub/connection-hub"
	authutils "recruit-flow-backend/lib/utils/auth-utils"
	"recruit-flow-backend/lib/utils/apperrs"
	userapimodels "recruit-flow-backend/models/api/user"
	dbmodels "recruit-flow-backend/models/db"
)

type Provider interface {
	Create(request userapimodels.UserCreateData) (userID string, err error)
	Update(userID string, request userapimodels.UserData) error
	Deactivate(userID string) error
	GetByID(userID string) (userapimodels.UserView, error)
	List(filter userapimodels.UserFilter) (list []userapimodels.UserView, rowCount int64, err error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store userstore.Provider
}

func (i impl) Create(request userapimodels.UserCreateData) (string, error) {
	rec := dbmodels.User{
		Password:    authutils.GetMD5Hash(request.Password),
		FirstName:   request.FirstName,
		LastName:    request.LastName,
		Email:       request.Email,
		PhoneNumber: request.PhoneNumber,
		Role:        request.Role,
		Department:  request.Department,
		IsActive:    true,
	}
	userID, err := i.store.Create(rec)
	if err != nil {
		log.
			WithField("request", fmt.Sprintf("%+v", request)).
			WithError(err).
			Error("ошибка создания пользователя")
		return "", err
	}
	return userID, nil
}

func (i impl) Update(userID string, request userapimodels.UserData) error {
	updMap := map[string]interface{}{
		"email":        request.Email,
		"first_name":   request.FirstName,
		"last_name":    request.LastName,
		"phone_number": request.PhoneNumber,
		"role":         request.Role,
		"department":   request.Department,
	}
	return i.store.Update(userID, updMap)
}

func (i impl) Deactivate(userID string) error {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrs.NotFound("пользователь не найден")
	}
	if err = i.store.Update(userID, map[string]interface{}{"is_active": false}); err != nil {
		return err
	}
	// активная ws-сессия деактивированного пользователя закрывается
	if connectionhub.Instance != nil {
		connectionhub.Instance.SendClose(userID)
	}
	return nil
}

func (i impl) GetByID(userID string) (userapimodels.UserView, error) {
	rec, err := i.store.GetByID(userID)
	if err != nil {
		log.
			WithField("user_id", userID).
			WithError(err).
			Error("ошибка поиска пользователя")
		return userapimodels.UserView{}, err
	}
	if rec == nil {
		return userapimodels.UserView{}, apperrs.NotFound("пользователь не найден")
	}
	return userapimodels.UserConvert(*rec), nil
}

func (i impl) List(filter userapimodels.UserFilter) ([]userapimodels.UserView, int64, error) {
	recList, rowCount, err := i.store.List(filter)
	if err != nil {
		return nil, 0, err
	}
	list := make([]userapimodels.UserView, 0, len(recList))
	for _, rec := range recList {
		list = append(list, userapimodels.UserConvert(rec))
	}
	return list, rowCount, nil
}
