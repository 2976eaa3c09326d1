package repository

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
)

// Payment - платёж заказа.
// AdditionalInformation - произвольные данные платёжного метода (например, paymentId/payerEmail PayPal).
type Payment struct {
	ID                    string
	OrderID               string
	Method                string
	Amount                decimal.Decimal
	Status                string
	TransactionID         string
	AdditionalInformation map[string]string
	UpdatedAt             time.Time
}

// SetAdditionalInformation записывает значение в additional information платежа
func (p *Payment) SetAdditionalInformation(key, value string) {
	if p.AdditionalInformation == nil {
		p.AdditionalInformation = make(map[string]string)
	}
	p.AdditionalInformation[key] = value
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PaymentRepository --dir=. --output=./mocks --outpkg=mocks

// PaymentRepository определяет интерфейс хранилища платежей
type PaymentRepository interface {
	// GetByID возвращает платёж; ErrNotFound, если платежа нет
	GetByID(ctx context.Context, id string) (Payment, error)

	// Save создаёт или обновляет платёж
	Save(ctx context.Context, payment Payment) error
}

// ErrNotFound возвращается, когда платёж не найден в хранилище
var ErrNotFound = errors.New("payment not found")
