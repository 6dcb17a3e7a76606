package apperrs

import (
	"github.com/pkg/errors"
)

// Kind - класс доменной ошибки. Каждый отказ движка согласования
// доводится до вызывающего как отдельный класс, без повторов и
// без сведения к общей ошибке.
type Kind string

const (
	KindNotFound        Kind = "NOT_FOUND"
	KindForbidden       Kind = "FORBIDDEN"
	KindInvalidState    Kind = "INVALID_STATE"
	KindValidation      Kind = "VALIDATION_ERROR"
	KindAlreadyConsumed Kind = "ALREADY_CONSUMED"
)

type Error struct {
	kind Kind
	msg  string
}

func (e *Error) Error() string {
	return e.msg
}

func (e *Error) Kind() Kind {
	return e.kind
}

func New(kind Kind, msg string) error {
	return &Error{kind: kind, msg: msg}
}

func Newf(kind Kind, format string, args ...interface{}) error {
	return &Error{kind: kind, msg: errors.Errorf(format, args...).Error()}
}

func NotFound(msg string) error {
	return New(KindNotFound, msg)
}

func Forbidden(msg string) error {
	return New(KindForbidden, msg)
}

func InvalidState(msg string) error {
	return New(KindInvalidState, msg)
}

func Validation(msg string) error {
	return New(KindValidation, msg)
}

func AlreadyConsumed(msg string) error {
	return New(KindAlreadyConsumed, msg)
}

// KindOf - класс ошибки с учетом оберток pkg/errors.
// Для технических ошибок возвращает пустой Kind.
func KindOf(err error) Kind {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr.kind
	}
	return ""
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
