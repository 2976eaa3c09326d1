package event

import (
	"time"

	"github.com/shopspring/decimal"
)

// TopicPayPalDetailsAttached - топик событий о привязке данных PayPal к платежу
const TopicPayPalDetailsAttached = "payment.paypal_details.attached"

// PayPalDetailsAttached - данные PayPal-транзакции записаны в платёж заказа
type PayPalDetailsAttached struct {
	PaymentID       string
	OrderID         string
	TransactionID   string
	PayPalPaymentID string
	PayerEmail      string
	Amount          decimal.Decimal
	Reversed        bool
	OccurredAt      time.Time
}
