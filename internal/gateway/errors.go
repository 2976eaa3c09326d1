package gateway

import (
	"errors"
	"fmt"
)

// ErrMissingData - общая причина для всех ошибок чтения неполных данных шлюза
var ErrMissingData = errors.New("missing gateway data")

// MissingDataError возвращается, когда в subject/response нет ожидаемого ключа или формы.
// Это ошибка интеграции: повторять вызов бессмысленно.
type MissingDataError struct {
	Field   string
	Message string
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Is позволяет проверять ошибку через errors.Is(err, ErrMissingData)
func (e *MissingDataError) Is(target error) bool {
	return target == ErrMissingData
}

// GatewayError - отказ шлюза при void/refund
type GatewayError struct {
	Op            string
	TransactionID string
	Err           error
}

func (e *GatewayError) Error() string {
	return fmt.Sprintf("gateway %s failed for transaction %s: %v", e.Op, e.TransactionID, e.Err)
}

func (e *GatewayError) Unwrap() error {
	return e.Err
}

// SearchFailedError - отказ шлюза при поиске транзакций (сеть, авторизация, rate limit)
type SearchFailedError struct {
	Err error
}

func (e *SearchFailedError) Error() string {
	return fmt.Sprintf("transaction search failed: %v", e.Err)
}

func (e *SearchFailedError) Unwrap() error {
	return e.Err
}
