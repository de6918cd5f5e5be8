package errors

import (
	"fmt"
	"net/http"
)

var (
	// JWT и токены
	ErrInvalidSigningMethod = fmt.Errorf("неверный метод подписи токена")
	ErrInvalidToken         = fmt.Errorf("недопустимый токен")
	ErrTokenExpired         = fmt.Errorf("срок действия токена истёк")
	ErrTokenIsNotAccess     = fmt.Errorf("токен не является access-токеном")

	// Авторизация
	ErrEmptyAuthHeader    = fmt.Errorf("заголовок авторизации отсутствует")
	ErrInvalidAuthHeader  = fmt.Errorf("неверный формат заголовка авторизации")
	ErrInvalidCredentials = fmt.Errorf("неверный логин или пароль")
	ErrUnauthorized       = fmt.Errorf("требуется авторизация")
	ErrForbidden          = fmt.Errorf("доступ запрещён")

	// Контекст
	ErrUserIDNotFoundInContext = fmt.Errorf("UserID не найден в контексте запроса")

	// Общие
	ErrNotFound   = fmt.Errorf("запись не найдена")
	ErrBadRequest = fmt.Errorf("неверный запрос")
	ErrConflict   = fmt.Errorf("запись уже существует")
)

// HttpError несёт HTTP-код, сообщение для клиента и первопричину для логов.
type HttpError struct {
	Code    int
	Message string
	Err     error
	Details interface{}
	Context map[string]interface{}
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error { return e.Err }

func NewHttpError(code int, message string, err error, details interface{}) *HttpError {
	return &HttpError{Code: code, Message: message, Err: err, Details: details}
}

func NewInternalError(message string) *HttpError {
	return &HttpError{Code: http.StatusInternalServerError, Message: message}
}

// NewAccessDeniedError — отказ в доступе к разделу отчётов с контекстом роль+раздел.
func NewAccessDeniedError(role, category string) *HttpError {
	return &HttpError{
		Code:    http.StatusForbidden,
		Message: fmt.Sprintf("у пользователей с ролью %q нет доступа к разделу отчётов %q", role, category),
		Err:     ErrForbidden,
		Context: map[string]interface{}{"role": role, "category": category},
	}
}

// NewAggregationError оборачивает сбой хранилища при расчёте статистики.
// Частичные агрегаты наружу не отдаются.
func NewAggregationError(cause error) *HttpError {
	return &HttpError{
		Code:    http.StatusInternalServerError,
		Message: "ошибка формирования статистики",
		Err:     cause,
	}
}

// NewRenderError — сбой экспорта (HTML-страница отчёта при этом должна жить).
func NewRenderError(cause error) *HttpError {
	return &HttpError{
		Code:    http.StatusInternalServerError,
		Message: "ошибка генерации PDF-отчёта",
		Err:     cause,
	}
}

type InvalidInputError struct {
	Message string
}

func (e *InvalidInputError) Error() string { return e.Message }

func NewInvalidInputError(format string, args ...interface{}) error {
	return &InvalidInputError{Message: fmt.Sprintf(format, args...)}
}
