package apperrs

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	err := NotFound("заявка не найдена")
	require.Equal(t, KindNotFound, KindOf(err))
	require.Equal(t, "заявка не найдена", err.Error())

	wrapped := errors.Wrap(err, "ошибка получения заявки")
	require.Equal(t, KindNotFound, KindOf(wrapped))
	require.True(t, IsKind(wrapped, KindNotFound))
	require.False(t, IsKind(wrapped, KindForbidden))
}

func TestKindOfTechnical(t *testing.T) {
	require.Equal(t, Kind(""), KindOf(errors.New("соединение разорвано")))
}

func TestNewf(t *testing.T) {
	err := Newf(KindInvalidState, "переход из статуса «%v» недопустим", "hired")
	require.Equal(t, KindInvalidState, KindOf(err))
	require.Contains(t, err.Error(), "hired")
}
