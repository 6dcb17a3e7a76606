package connectionhub

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	wsmodels "recruit-flow-backend/models/ws"
)

// Зависший клиент (потребитель не вычитывает канал) не должен
// останавливать хаб: отправка без ожидания, лишние пуши пропускаются.
func TestSendMessageStalledClient(t *testing.T) {
	hub := &impl{clients: map[string]clientSession{}}
	sess := clientSession{
		sendCh: make(chan any, 1),
		stop:   func() {},
	}
	hub.clients["u1"] = sess

	done := make(chan struct{})
	go func() {
		defer close(done)
		for k := 0; k < 5; k++ {
			hub.SendMessage(wsmodels.ServerMessage{ToUserID: "u1", Msg: "пуш"})
		}
		// хаб остается доступным для остальных операций
		require.False(t, hub.IsConnected("u2"))
		hub.SendMessage(wsmodels.ServerMessage{ToUserID: "u2", Msg: "пуш"})
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("отправка заблокировалась на зависшем клиенте")
	}
	// в буфере остался только первый пуш
	require.Len(t, sess.sendCh, 1)
	msg := <-sess.sendCh
	require.Equal(t, "пуш", msg.(wsmodels.ServerMessage).Msg)
}

func TestDeleteClientUnknownUser(t *testing.T) {
	hub := &impl{clients: map[string]clientSession{}}
	hub.DeleteClient("нет такого")
	require.False(t, hub.IsConnected("нет такого"))
}
