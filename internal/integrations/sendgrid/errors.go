package sendgrid

import "errors"

var (
	// ErrSend возвращается, когда письмо не удалось отправить
	ErrSend = errors.New("sendgrid: failed to send email")

	// ErrRejected возвращается, когда API ответил кодом ошибки
	ErrRejected = errors.New("sendgrid: email rejected")
)
