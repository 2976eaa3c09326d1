package report

import (
	"strings"
	"time"

	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
)

// Document - запись отчёта: плоский набор атрибутов одной транзакции
type Document interface {
	ID() string
	Attribute(name string) any
	Attributes() map[string]any
}

// TransactionMap - Document поверх транзакции шлюза.
// Имена атрибутов совпадают с полями фильтров отчёта.
type TransactionMap struct {
	id         string
	attributes map[string]any
}

// NewTransactionMap раскладывает транзакцию в атрибуты отчёта
func NewTransactionMap(tx braintree.Transaction) *TransactionMap {
	attrs := map[string]any{
		"id":                       tx.ID,
		"merchantAccountId":        tx.MerchantAccountID,
		"orderId":                  tx.OrderID,
		"type":                     tx.Type,
		"status":                   tx.Status,
		"amount":                   tx.Amount.StringFixed(2),
		"currencyIsoCode":          tx.CurrencyISOCode,
		"paymentInstrumentType":    tx.PaymentInstrumentType,
		"settlementBatchId":        tx.SettlementBatchID,
		"refundIds":                strings.Join(tx.RefundIDs, ", "),
		"refundedTransactionId":    tx.RefundedTransactionID,
		"createdAt":                formatTime(tx.CreatedAt),
		"paypalDetails_paymentId":  "",
		"paypalDetails_payerEmail": "",
	}
	if tx.PayPalDetails != nil {
		attrs["paypalDetails_paymentId"] = tx.PayPalDetails.PaymentID
		attrs["paypalDetails_payerEmail"] = tx.PayPalDetails.PayerEmail
	}
	return &TransactionMap{id: tx.ID, attributes: attrs}
}

func (m *TransactionMap) ID() string {
	return m.id
}

// Attribute возвращает значение атрибута или nil, если его нет
func (m *TransactionMap) Attribute(name string) any {
	return m.attributes[name]
}

// Attributes возвращает копию всех атрибутов
func (m *TransactionMap) Attributes() map[string]any {
	out := make(map[string]any, len(m.attributes))
	for k, v := range m.attributes {
		out[k] = v
	}
	return out
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

// DocumentFactory создаёт TransactionMap для любого типа записи
type DocumentFactory struct{}

// NewDocumentFactory создаёт фабрику документов отчёта
func NewDocumentFactory() *DocumentFactory {
	return &DocumentFactory{}
}

// Create реализует EntityFactory
func (f *DocumentFactory) Create(_ string, tx braintree.Transaction) Document {
	return NewTransactionMap(tx)
}
