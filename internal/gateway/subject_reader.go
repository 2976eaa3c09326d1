package gateway

import (
	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
)

// SubjectReader достаёт типизированные данные из handling subject и response шлюза
type SubjectReader struct{}

// NewSubjectReader создаёт reader
func NewSubjectReader() *SubjectReader {
	return &SubjectReader{}
}

// ReadPayment возвращает ссылку на платёж из handling subject
func (r *SubjectReader) ReadPayment(subject map[string]any) (PaymentDataObject, error) {
	raw, ok := subject[SubjectKeyPayment]
	if !ok || raw == nil {
		return nil, &MissingDataError{Field: SubjectKeyPayment, Message: "payment data object should be provided"}
	}
	payment, ok := raw.(PaymentDataObject)
	if !ok || payment.Payment() == nil {
		return nil, &MissingDataError{Field: SubjectKeyPayment, Message: "payment data object should be provided"}
	}
	return payment, nil
}

// ReadTransaction возвращает транзакцию из ответа шлюза
func (r *SubjectReader) ReadTransaction(response map[string]any) (*braintree.Transaction, error) {
	raw, ok := response[ResponseKeyObject]
	if !ok || raw == nil {
		return nil, &MissingDataError{Field: ResponseKeyObject, Message: "response object does not exist"}
	}

	var tx *braintree.Transaction
	switch v := raw.(type) {
	case *braintree.Result:
		if v != nil {
			tx = v.Transaction
		}
	case *braintree.Transaction:
		tx = v
	}
	if tx == nil {
		return nil, &MissingDataError{Field: "transaction", Message: "response object is not a transaction result"}
	}
	return tx, nil
}

// ReadPayPal возвращает PayPal-блок транзакции; paymentId и payerEmail обязательны
func (r *SubjectReader) ReadPayPal(tx *braintree.Transaction) (braintree.PayPalDetails, error) {
	if tx == nil || tx.PayPalDetails == nil {
		return braintree.PayPalDetails{}, &MissingDataError{Field: "paypal", Message: "transaction has no paypal attribute"}
	}

	details := *tx.PayPalDetails
	if details.PaymentID == "" {
		return braintree.PayPalDetails{}, &MissingDataError{Field: "paypal.paymentId", Message: "paypal payment id is missing"}
	}
	if details.PayerEmail == "" {
		return braintree.PayPalDetails{}, &MissingDataError{Field: "paypal.payerEmail", Message: "paypal payer email is missing"}
	}
	return details, nil
}
