package braintree

import (
	"time"

	"github.com/shopspring/decimal"
)

// Типы платёжных инструментов, которыми может быть профинансирована транзакция
const (
	InstrumentCreditCard    = "credit_card"
	InstrumentPayPalAccount = "paypal_account"
	InstrumentApplePayCard  = "apple_pay_card"
	InstrumentAndroidPay    = "android_pay_card"
	InstrumentVenmoAccount  = "venmo_account"
	InstrumentUSBankAccount = "us_bank_account"
)

// Статусы транзакции в Braintree
const (
	StatusAuthorized             = "authorized"
	StatusAuthorizationExpired   = "authorization_expired"
	StatusSubmittedForSettlement = "submitted_for_settlement"
	StatusSettlementPending      = "settlement_pending"
	StatusSettling               = "settling"
	StatusSettled                = "settled"
	StatusVoided                 = "voided"
	StatusFailed                 = "failed"
	StatusGatewayRejected        = "gateway_rejected"
	StatusProcessorDeclined      = "processor_declined"
)

// Типы транзакций
const (
	TypeSale   = "sale"
	TypeCredit = "credit"
)

// PayPalDetails содержит данные PayPal-аккаунта, через который прошла транзакция
type PayPalDetails struct {
	PaymentID       string
	PayerEmail      string
	PayerID         string
	PayerFirstName  string
	PayerLastName   string
	AuthorizationID string
}

// Transaction представляет транзакцию платёжного шлюза.
// Принадлежит шлюзу, в сервисе используется только для чтения.
type Transaction struct {
	ID                    string
	Status                string
	Type                  string
	Amount                decimal.Decimal
	CurrencyISOCode       string
	OrderID               string
	MerchantAccountID     string
	PaymentInstrumentType string
	SettlementBatchID     string
	RefundIDs             []string
	RefundedTransactionID string
	CreatedAt             time.Time
	UpdatedAt             time.Time
	PayPalDetails         *PayPalDetails
}

// Result - ответ шлюза на операцию (void, refund, find).
// Success == false означает отказ шлюза по бизнес-правилам, Message содержит причину.
type Result struct {
	Success     bool
	Message     string
	Transaction *Transaction
}
