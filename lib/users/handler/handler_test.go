package usershandler

import (
	"testing"

	"github.com/gofiber/contrib/websocket"
	"github.com/stretchr/testify/require"

	"recruit-flow-backend/lib/utils/apperrs"
	connectionhub "recruit-flow-backend/lib/ws/hub/connection-hub"
	"recruit-flow-backend/models"
	userapimodels "recruit-flow-backend/models/api/user"
	wsmodels "recruit-flow-backend/models/ws"
	dbmodels "recruit-flow-backend/models/db"
)

type fakeUserStore struct {
	users  map[string]*dbmodels.User
	updMap map[string]interface{}
}

func (s *fakeUserStore) Create(rec dbmodels.User) (string, error) { return rec.ID, nil }

func (s *fakeUserStore) GetByID(userID string) (*dbmodels.User, error) {
	return s.users[userID], nil
}

func (s *fakeUserStore) FindByEmail(email string) (*dbmodels.User, error) { return nil, nil }

func (s *fakeUserStore) Update(userID string, updMap map[string]interface{}) error {
	s.updMap = updMap
	return nil
}

func (s *fakeUserStore) Delete(userID string) error { return nil }

func (s *fakeUserStore) List(filter userapimodels.UserFilter) ([]dbmodels.User, int64, error) {
	return nil, 0, nil
}

func (s *fakeUserStore) ListByRole(role models.UserRole) ([]dbmodels.User, error) {
	return nil, nil
}

type fakeHub struct {
	closedUserID string
}

func (h *fakeHub) AddClient(userID string, conn *websocket.Conn) {}
func (h *fakeHub) DeleteClient(userID string)                    {}
func (h *fakeHub) SendMessage(msg wsmodels.ServerMessage)        {}
func (h *fakeHub) SendClose(userID string)                       { h.closedUserID = userID }
func (h *fakeHub) IsConnected(userID string) bool                { return false }

func TestDeactivate(t *testing.T) {
	hub := &fakeHub{}
	prev := connectionhub.Instance
	connectionhub.Instance = hub
	defer func() { connectionhub.Instance = prev }()

	user := &dbmodels.User{IsActive: true}
	user.ID = "u1"
	store := &fakeUserStore{users: map[string]*dbmodels.User{"u1": user}}
	handler := impl{store: store}

	require.Nil(t, handler.Deactivate("u1"))
	require.Equal(t, false, store.updMap["is_active"])
	// ws-сессия деактивированного пользователя закрыта
	require.Equal(t, "u1", hub.closedUserID)
}

func TestDeactivateUnknownUser(t *testing.T) {
	handler := impl{store: &fakeUserStore{users: map[string]*dbmodels.User{}}}
	err := handler.Deactivate("нет такого")
	require.Equal(t, apperrs.KindNotFound, apperrs.KindOf(err))
}
