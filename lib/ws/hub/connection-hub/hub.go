package connectionhub

import (
	"sync"

	"recruit-flow-backend/db"
	notificationstore "recruit-flow-backend/lib/notification/store"
	wsmodels "recruit-flow-backend/models/ws"

	"github.com/gofiber/contrib/websocket"
	log "github.com/sirupsen/logrus"
)

type Provider interface {
	AddClient(userID string, conn *websocket.Conn)
	DeleteClient(userID string)
	SendMessage(msg wsmodels.ServerMessage)
	SendClose(userID string)
	IsConnected(userID string) bool
}

var Instance Provider

func Init() {
	Instance = &impl{
		clients: map[string]clientSession{},
		store:   notificationstore.NewInstance(db.DB),
	}
}

type impl struct {
	mx      sync.Mutex
	clients map[string]clientSession //map[userID]
	store   notificationstore.Provider
}

func (i *impl) DeleteClient(userID string) {
	i.mx.Lock()
	defer i.mx.Unlock()
	sess, ok := i.clients[userID]
	if !ok {
		return
	}
	delete(i.clients, userID)
	sess.stop()
	close(sess.sendCh)
}

func (i *impl) AddClient(userID string, conn *websocket.Conn) {
	i.mx.Lock()
	oldSess, ok := i.clients[userID]
	if ok {
		oldSess.stop()
	}
	i.clients[userID] = newSession(conn)
	i.mx.Unlock()
	go i.sendUnread(userID)
}

// SendMessage не ждет зависшего получателя: пуш либо помещается в буфер
// сессии, либо пропускается. Блокирующая отправка под общим mx остановила
// бы все операции хаба.
func (i *impl) SendMessage(msg wsmodels.ServerMessage) {
	i.mx.Lock()
	defer i.mx.Unlock()
	sess, ok := i.clients[msg.ToUserID]
	if !ok {
		return
	}
	select {
	case sess.sendCh <- msg:
	default:
		log.WithField("user_id", msg.ToUserID).Warn("клиент не читает сообщения, пуш пропущен")
	}
}

func (i *impl) SendClose(userID string) {
	i.mx.Lock()
	defer i.mx.Unlock()
	sess, ok := i.clients[userID]
	if ok {
		sess.stop()
	}
}

func (i *impl) IsConnected(userID string) bool {
	i.mx.Lock()
	defer i.mx.Unlock()
	sess, ok := i.clients[userID]
	if !ok || sess.conn == nil || sess.conn.Conn == nil {
		return false
	}
	return true
}

// sendUnread отправляет накопленные непрочитанные уведомления
// при подключении клиента.
func (i *impl) sendUnread(userID string) {
	logger := log.WithField("user_id", userID)
	list, err := i.store.ListUnread(userID)
	if err != nil {
		logger.WithError(err).Error("ошибка получения списка непрочитанных уведомлений")
		return
	}
	for _, item := range list {
		if !i.IsConnected(userID) {
			return
		}
		msg := wsmodels.ServerMessage{
			ToUserID: userID,
			Time:     item.CreatedAt.Format("02.01.2006 15:04:05"),
			Code:     string(item.Code),
			Title:    item.Title,
			Msg:      item.Msg,
			Route:    item.Route,
		}
		i.SendMessage(msg)
	}
}
