package service

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind классифицирует ошибки, которые видит пользователь.
type Kind string

const (
	// KindValidation — локальная проверка не прошла, запрос к серверу не выполнялся.
	KindValidation Kind = "VALIDATION"
	// KindAuth — сервер ответил 403, локальная сессия сброшена.
	KindAuth Kind = "AUTH"
	// KindRequest — сетевая ошибка или ответ не удалось разобрать.
	KindRequest Kind = "REQUEST"
	// KindServer — сервер вернул ошибку с собственным сообщением.
	KindServer Kind = "SERVER"
)

// AppError описывает прикладную ошибку клиента:
// вид, сообщение для баннера, HTTP-статус ответа (если был) и вложенная ошибка.
type AppError struct {
	Kind    Kind
	Message string
	Status  int
	Err     error
}

// Error реализует интерфейс error для AppError.
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap возвращает вложенную ошибку для поддержки errors.Is/As.
func (e *AppError) Unwrap() error {
	return e.Err
}

// ErrValidation конструирует AppError для ошибок, обнаруженных до обращения к серверу.
func ErrValidation(msg string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Message: msg,
	}
}

// ErrAuth конструирует AppError для отказа в авторизации.
func ErrAuth(msg string) *AppError {
	return &AppError{
		Kind:    KindAuth,
		Message: msg,
		Status:  http.StatusForbidden,
	}
}

// ErrRequest конструирует AppError для сбоя запроса; err сохраняется для логов.
func ErrRequest(msg string, err error) *AppError {
	return &AppError{
		Kind:    KindRequest,
		Message: msg,
		Err:     err,
	}
}

// ErrServer конструирует AppError для ошибки, о которой сообщил сервер.
func ErrServer(status int, msg string) *AppError {
	return &AppError{
		Kind:    KindServer,
		Message: msg,
		Status:  status,
	}
}

// KindOf возвращает вид ошибки или пустую строку для посторонних ошибок.
func KindOf(err error) Kind {
	var app *AppError
	if errors.As(err, &app) {
		return app.Kind
	}
	return ""
}

// IsAuth помогает определить, что ошибка привела к сбросу сессии.
func IsAuth(err error) bool {
	return KindOf(err) == KindAuth
}

// MessageOf возвращает текст для пользователя; для посторонних ошибок — fallback.
func MessageOf(err error, fallback string) string {
	var app *AppError
	if errors.As(err, &app) && app.Message != "" {
		return app.Message
	}
	return fallback
}

// firstNonEmpty возвращает сообщение сервера или запасной текст.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
