package response

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
	"github.com/shestoi/GoBigTech/braintree/internal/gateway"
	"github.com/shestoi/GoBigTech/braintree/internal/gateway/response/mocks"
)

type paymentRecord struct {
	info map[string]string
}

func (p *paymentRecord) SetAdditionalInformation(key, value string) {
	p.info[key] = value
}

func newPaymentRecord() *paymentRecord {
	return &paymentRecord{info: map[string]string{"method_title": "PayPal", "cc_last4": ""}}
}

func payPalTransaction(instrument string) *braintree.Transaction {
	return &braintree.Transaction{
		ID:                    "tx-1",
		Status:                braintree.StatusAuthorized,
		PaymentInstrumentType: instrument,
		PayPalDetails: &braintree.PayPalDetails{
			PaymentID:  "PAY-1",
			PayerEmail: "a@b.com",
		},
	}
}

func TestPayPalDetailsHandler_Handle(t *testing.T) {
	ctx := context.Background()

	t.Run("paypal account copies details without gateway call", func(t *testing.T) {
		// Arrange
		reverser := mocks.NewReverser(t)
		handler := NewPayPalDetailsHandler(gateway.NewSubjectReader(), reverser)
		payment := newPaymentRecord()
		subject := gateway.BuildSubject(gateway.NewPaymentDataObject(payment))
		response := gateway.BuildResponse(&braintree.Result{
			Success:     true,
			Transaction: payPalTransaction(braintree.InstrumentPayPalAccount),
		})

		// Act
		err := handler.Handle(ctx, subject, response)

		// Assert
		require.NoError(t, err)
		require.Equal(t, "PAY-1", payment.info[PaymentIDKey])
		require.Equal(t, "a@b.com", payment.info[PayerEmailKey])
		reverser.AssertNotCalled(t, "VoidOrRefund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("credit card funded transaction is reversed once with labels", func(t *testing.T) {
		// Arrange
		reverser := mocks.NewReverser(t)
		handler := NewPayPalDetailsHandler(gateway.NewSubjectReader(), reverser)
		payment := newPaymentRecord()
		tx := payPalTransaction(braintree.InstrumentCreditCard)
		reverser.On("VoidOrRefund", ctx, tx, "PayPal", "Credit Card").Return(nil).Once()

		// Act
		err := handler.Handle(ctx,
			gateway.BuildSubject(gateway.NewPaymentDataObject(payment)),
			gateway.BuildResponse(&braintree.Result{Success: true, Transaction: tx}),
		)

		// Assert
		require.NoError(t, err)
		reverser.AssertNumberOfCalls(t, "VoidOrRefund", 1)
		require.Equal(t, "PAY-1", payment.info[PaymentIDKey])
		require.Equal(t, "a@b.com", payment.info[PayerEmailKey])
	})

	t.Run("other instrument types never reach the gateway", func(t *testing.T) {
		for _, instrument := range []string{
			braintree.InstrumentPayPalAccount,
			braintree.InstrumentApplePayCard,
			braintree.InstrumentAndroidPay,
			braintree.InstrumentVenmoAccount,
			braintree.InstrumentUSBankAccount,
			"",
		} {
			t.Run("instrument "+instrument, func(t *testing.T) {
				reverser := mocks.NewReverser(t)
				handler := NewPayPalDetailsHandler(gateway.NewSubjectReader(), reverser)
				payment := newPaymentRecord()

				err := handler.Handle(ctx,
					gateway.BuildSubject(gateway.NewPaymentDataObject(payment)),
					gateway.BuildResponse(payPalTransaction(instrument)),
				)

				require.NoError(t, err)
				reverser.AssertNotCalled(t, "VoidOrRefund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
			})
		}
	})

	t.Run("only paymentId and payerEmail are modified", func(t *testing.T) {
		// Arrange
		handler := NewPayPalDetailsHandler(gateway.NewSubjectReader(), mocks.NewReverser(t))
		payment := newPaymentRecord()
		payment.info[PaymentIDKey] = "PAY-OLD"

		// Act
		err := handler.Handle(ctx,
			gateway.BuildSubject(gateway.NewPaymentDataObject(payment)),
			gateway.BuildResponse(payPalTransaction(braintree.InstrumentPayPalAccount)),
		)

		// Assert
		require.NoError(t, err)
		require.Equal(t, map[string]string{
			"method_title": "PayPal",
			"cc_last4":     "",
			PaymentIDKey:   "PAY-1",
			PayerEmailKey:  "a@b.com",
		}, payment.info)
	})

	t.Run("gateway failure propagates and payment stays untouched", func(t *testing.T) {
		// Arrange
		reverser := mocks.NewReverser(t)
		handler := NewPayPalDetailsHandler(gateway.NewSubjectReader(), reverser)
		payment := newPaymentRecord()
		tx := payPalTransaction(braintree.InstrumentCreditCard)
		gwErr := &gateway.GatewayError{Op: "void", TransactionID: tx.ID, Err: errors.New("already voided")}
		reverser.On("VoidOrRefund", mock.Anything, tx, "PayPal", "Credit Card").Return(gwErr).Once()

		// Act
		err := handler.Handle(ctx,
			gateway.BuildSubject(gateway.NewPaymentDataObject(payment)),
			gateway.BuildResponse(tx),
		)

		// Assert
		require.ErrorIs(t, err, gwErr)
		require.NotContains(t, payment.info, PaymentIDKey)
		require.NotContains(t, payment.info, PayerEmailKey)
	})

	t.Run("missing payment in subject returns MissingDataError", func(t *testing.T) {
		reverser := mocks.NewReverser(t)
		handler := NewPayPalDetailsHandler(gateway.NewSubjectReader(), reverser)

		err := handler.Handle(ctx, map[string]any{}, gateway.BuildResponse(payPalTransaction(braintree.InstrumentCreditCard)))

		require.ErrorIs(t, err, gateway.ErrMissingData)
		reverser.AssertNotCalled(t, "VoidOrRefund", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("missing transaction returns MissingDataError", func(t *testing.T) {
		handler := NewPayPalDetailsHandler(gateway.NewSubjectReader(), mocks.NewReverser(t))

		err := handler.Handle(ctx,
			gateway.BuildSubject(gateway.NewPaymentDataObject(newPaymentRecord())),
			map[string]any{},
		)

		require.ErrorIs(t, err, gateway.ErrMissingData)
	})

	t.Run("missing paypal details returns MissingDataError", func(t *testing.T) {
		// Arrange
		handler := NewPayPalDetailsHandler(gateway.NewSubjectReader(), mocks.NewReverser(t))
		payment := newPaymentRecord()
		tx := payPalTransaction(braintree.InstrumentPayPalAccount)
		tx.PayPalDetails.PayerEmail = ""

		// Act
		err := handler.Handle(ctx,
			gateway.BuildSubject(gateway.NewPaymentDataObject(payment)),
			gateway.BuildResponse(tx),
		)

		// Assert
		var missing *gateway.MissingDataError
		require.ErrorAs(t, err, &missing)
		require.NotContains(t, payment.info, PaymentIDKey)
	})

	t.Run("reader collaborator is consulted in order", func(t *testing.T) {
		// Arrange
		reader := mocks.NewSubjectReader(t)
		reverser := mocks.NewReverser(t)
		handler := NewPayPalDetailsHandler(reader, reverser)
		payment := newPaymentRecord()
		paymentDO := gateway.NewPaymentDataObject(payment)
		tx := payPalTransaction(braintree.InstrumentCreditCard)
		subject := map[string]any{"payment": paymentDO}
		response := map[string]any{"object": tx}

		reader.On("ReadPayment", subject).Return(paymentDO, nil).Once()
		reader.On("ReadTransaction", response).Return(tx, nil).Once()
		reverser.On("VoidOrRefund", ctx, tx, "PayPal", "Credit Card").Return(nil).Once()
		reader.On("ReadPayPal", tx).
			Return(braintree.PayPalDetails{PaymentID: "PAY-2", PayerEmail: "c@d.com"}, nil).Once()

		// Act
		err := handler.Handle(ctx, subject, response)

		// Assert
		require.NoError(t, err)
		require.Equal(t, "PAY-2", payment.info[PaymentIDKey])
		require.Equal(t, "c@d.com", payment.info[PayerEmailKey])
	})
}
