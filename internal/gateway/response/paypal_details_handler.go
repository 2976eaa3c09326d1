package response

import (
	"context"
	"fmt"

	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
	"github.com/shestoi/GoBigTech/braintree/internal/gateway"
)

// Ключи additional information платежа, которые заполняет PayPalDetailsHandler
const (
	PaymentIDKey  = "paymentId"
	PayerEmailKey = "payerEmail"
)

// Подписи для описания void/refund гибридной PayPal-транзакции
const (
	fundingSourcePayPal  = "PayPal"
	instrumentCreditCard = "Credit Card"
)

// Handler обрабатывает ответ шлюза в контексте платежа
type Handler interface {
	Handle(ctx context.Context, subject, response map[string]any) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=SubjectReader --dir=. --output=./mocks --outpkg=mocks

// SubjectReader читает платёж, транзакцию и PayPal-блок из subject/response
type SubjectReader interface {
	ReadPayment(subject map[string]any) (gateway.PaymentDataObject, error)
	ReadTransaction(response map[string]any) (*braintree.Transaction, error)
	ReadPayPal(tx *braintree.Transaction) (braintree.PayPalDetails, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=Reverser --dir=. --output=./mocks --outpkg=mocks

// Reverser отменяет или возвращает транзакцию на стороне шлюза
type Reverser interface {
	VoidOrRefund(ctx context.Context, tx *braintree.Transaction, fundingSource, instrument string) error
}

// PayPalDetailsHandler переносит данные PayPal из транзакции в платёж заказа.
// Если PayPal-транзакция профинансирована сохранённой картой (гибридный случай),
// транзакция отменяется или возвращается через шлюз.
type PayPalDetailsHandler struct {
	reader   SubjectReader
	reverser Reverser
}

// NewPayPalDetailsHandler создаёт обработчик
func NewPayPalDetailsHandler(reader SubjectReader, reverser Reverser) *PayPalDetailsHandler {
	return &PayPalDetailsHandler{
		reader:   reader,
		reverser: reverser,
	}
}

// Handle изменяет только ключи paymentId и payerEmail платежа.
// Ошибки чтения и шлюза возвращаются как есть, без повторов.
func (h *PayPalDetailsHandler) Handle(ctx context.Context, subject, response map[string]any) error {
	paymentDO, err := h.reader.ReadPayment(subject)
	if err != nil {
		return err
	}

	tx, err := h.reader.ReadTransaction(response)
	if err != nil {
		return err
	}

	if tx.PaymentInstrumentType == braintree.InstrumentCreditCard {
		if err := h.reverser.VoidOrRefund(ctx, tx, fundingSourcePayPal, instrumentCreditCard); err != nil {
			return fmt.Errorf("failed to reverse hybrid paypal transaction: %w", err)
		}
	}

	payPal, err := h.reader.ReadPayPal(tx)
	if err != nil {
		return err
	}

	payment := paymentDO.Payment()
	payment.SetAdditionalInformation(PaymentIDKey, payPal.PaymentID)
	payment.SetAdditionalInformation(PayerEmailKey, payPal.PayerEmail)

	return nil
}
