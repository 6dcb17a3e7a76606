package notificationhandler

import (
	"time"

	log "github.com/sirupsen/logrus"
	"recruit-flow-backend/db"
	notificationstore "recruit-flow-backend/lib/notification/store"
	"recruit-flow-backend/lib/smtp"
	userstore "recruit-flow-backend/lib/users/store"
	"recruit-flow-backend/lib/utils/apperrs"
	connectionhub "recruit-flow-backend/lib/ws/hub/connection-hub"
	"recruit-flow-backend/models"
	notificationapimodels "recruit-flow-backend/models/api/notification"
	dbmodels "recruit-flow-backend/models/db"
	wsmodels "recruit-flow-backend/models/ws"
)

type Provider interface {
	SendToUser(userID string, data models.NotificationData)
	SendToRole(role models.UserRole, data models.NotificationData)
	List(userID string) ([]notificationapimodels.NotificationView, error)
	UnreadCount(userID string) (int64, error)
	MarkRead(userID, id string) error
	MarkAllRead(userID string) error
}

var Instance Provider

func NewHandler() {
	Instance = impl{
		store:     notificationstore.NewInstance(db.DB),
		userStore: userstore.NewInstance(db.DB),
	}
}

type impl struct {
	store     notificationstore.Provider
	userStore userstore.Provider
}

func (i impl) getLogger(userID string, code models.PushCode) *log.Entry {
	return log.
		WithField("user_id", userID).
		WithField("event_code", string(code))
}

func (i impl) SendToUser(userID string, data models.NotificationData) {
	logger := i.getLogger(userID, data.Code)
	user, err := i.userStore.GetByID(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователя")
		return
	}
	if user == nil {
		logger.Error("пользователь не найден")
		return
	}
	i.send(*user, data)
}

func (i impl) SendToRole(role models.UserRole, data models.NotificationData) {
	logger := log.WithField("role", string(role)).WithField("event_code", string(data.Code))
	users, err := i.userStore.ListByRole(role)
	if err != nil {
		logger.WithError(err).Error("ошибка получения пользователей по роли")
		return
	}
	for _, user := range users {
		i.send(user, data)
	}
}

func (i impl) send(user dbmodels.User, data models.NotificationData) {
	logger := i.getLogger(user.ID, data.Code)
	route := models.RouteFor(user.Role, data.Code)
	rec := dbmodels.Notification{
		UserID: user.ID,
		Code:   data.Code,
		Title:  data.Title,
		Msg:    data.Msg,
		Route:  route,
	}
	_, err := i.store.Create(rec)
	if err != nil {
		logger.WithError(err).Error("ошибка сохранения уведомления")
		return
	}
	if connectionhub.Instance != nil && connectionhub.Instance.IsConnected(user.ID) {
		connectionhub.Instance.SendMessage(wsmodels.ServerMessage{
			ToUserID: user.ID,
			Time:     time.Now().Format("02.01.2006 15:04:05"),
			Code:     string(data.Code),
			Title:    data.Title,
			Msg:      data.Msg,
			Route:    route,
		})
	}
	if smtp.Instance != nil && user.Email != "" {
		err = smtp.Instance.SendEMail(user.Email, data.Title, data.Msg)
		if err != nil {
			logger.WithError(err).Error("ошибка отправки письма с уведомлением")
		}
	}
}

func (i impl) List(userID string) ([]notificationapimodels.NotificationView, error) {
	list, err := i.store.List(userID, 100)
	if err != nil {
		return nil, err
	}
	result := make([]notificationapimodels.NotificationView, 0, len(list))
	for _, rec := range list {
		result = append(result, notificationapimodels.NotificationConvert(rec))
	}
	return result, nil
}

func (i impl) UnreadCount(userID string) (int64, error) {
	return i.store.UnreadCount(userID)
}

func (i impl) MarkRead(userID, id string) error {
	rec, err := i.store.GetByID(userID, id)
	if err != nil {
		return err
	}
	if rec == nil {
		return apperrs.NotFound("уведомление не найдено")
	}
	return i.store.MarkRead(userID, id)
}

func (i impl) MarkAllRead(userID string) error {
	return i.store.MarkAllRead(userID)
}
