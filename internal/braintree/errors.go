package braintree

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound возвращается, когда шлюз не знает запрошенный ресурс
var ErrNotFound = errors.New("braintree: resource not found")

// APIError представляет ответ шлюза с не-2xx статусом
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("braintree API status %d: %s", e.StatusCode, e.Message)
}

// Is позволяет сравнивать 404 с ErrNotFound через errors.Is
func (e *APIError) Is(target error) bool {
	return target == ErrNotFound && e.StatusCode == http.StatusNotFound
}

// Temporary сообщает, имеет ли смысл повторить запрос позже
func (e *APIError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// statusCoder - ошибки braintree-go, знающие HTTP статус ответа
type statusCoder interface {
	StatusCode() int
}

// translateError переводит ошибки braintree-go в APIError; сетевые ошибки только оборачиваются
func translateError(err error) error {
	var sc statusCoder
	if errors.As(err, &sc) {
		msg := err.Error()
		if msg == "" {
			msg = http.StatusText(sc.StatusCode())
		}
		return &APIError{StatusCode: sc.StatusCode(), Message: msg}
	}
	return fmt.Errorf("braintree: %w", err)
}
