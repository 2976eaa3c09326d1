package event

import (
	"context"

	"go.uber.org/zap"
)

// LogPublisher пишет события в лог; используется, когда Kafka выключена
type LogPublisher struct {
	logger *zap.Logger
}

// NewLogPublisher создаёт publisher поверх logger
func NewLogPublisher(logger *zap.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

// PublishPayPalDetailsAttached записывает событие в лог и никогда не падает
func (p *LogPublisher) PublishPayPalDetailsAttached(_ context.Context, e PayPalDetailsAttached) error {
	p.logger.Info("event published to log",
		zap.String("topic", TopicPayPalDetailsAttached),
		zap.String("payment_id", e.PaymentID),
		zap.String("order_id", e.OrderID),
		zap.String("transaction_id", e.TransactionID),
		zap.String("paypal_payment_id", e.PayPalPaymentID),
		zap.Bool("reversed", e.Reversed),
	)
	return nil
}
