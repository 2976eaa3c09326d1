package kafka

import (
	"context"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/shestoi/GoBigTech/braintree/internal/event"
	"github.com/shestoi/GoBigTech/braintree/platform/observability"
)

// MessageWriter - часть kafka.Writer, которой пользуется publisher
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// PaymentEventPublisher публикует события платежей в Kafka
type PaymentEventPublisher struct {
	logger *zap.Logger
	writer MessageWriter
	topic  string
}

// NewPaymentEventPublisher создаёт publisher поверх готового writer
func NewPaymentEventPublisher(logger *zap.Logger, writer MessageWriter, topic string) *PaymentEventPublisher {
	return &PaymentEventPublisher{
		logger: logger,
		writer: writer,
		topic:  topic,
	}
}

// Close закрывает Kafka writer
func (p *PaymentEventPublisher) Close() error {
	return p.writer.Close()
}

type payPalDetailsAttachedPayload struct {
	EventID         string `json:"event_id"`
	EventType       string `json:"event_type"`
	EventVersion    int    `json:"event_version"`
	OccurredAt      string `json:"occurred_at"`
	PaymentID       string `json:"payment_id"`
	OrderID         string `json:"order_id"`
	TransactionID   string `json:"transaction_id"`
	PayPalPaymentID string `json:"paypal_payment_id"`
	PayerEmail      string `json:"payer_email"`
	Amount          string `json:"amount"`
	Reversed        bool   `json:"reversed"`
}

// PublishPayPalDetailsAttached публикует событие; ключ сообщения - ID платежа
func (p *PaymentEventPublisher) PublishPayPalDetailsAttached(ctx context.Context, e event.PayPalDetailsAttached) error {
	log := observability.L(ctx, p.logger)

	occurredAt := e.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	payload := payPalDetailsAttachedPayload{
		EventID:         uuid.NewString(),
		EventType:       event.TopicPayPalDetailsAttached,
		EventVersion:    1,
		OccurredAt:      occurredAt.UTC().Format(time.RFC3339),
		PaymentID:       e.PaymentID,
		OrderID:         e.OrderID,
		TransactionID:   e.TransactionID,
		PayPalPaymentID: e.PayPalPaymentID,
		PayerEmail:      e.PayerEmail,
		Amount:          e.Amount.StringFixed(2),
		Reversed:        e.Reversed,
	}

	value, err := json.Marshal(payload)
	if err != nil {
		log.Error("failed to marshal paypal details attached event",
			zap.Error(err),
			zap.String("payment_id", e.PaymentID),
		)
		return err
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Topic: p.topic,
		Key:   []byte(e.PaymentID),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event_type", Value: []byte(payload.EventType)},
			{Key: "event_id", Value: []byte(payload.EventID)},
		},
	})
	if err != nil {
		log.Error("failed to publish paypal details attached event",
			zap.Error(err),
			zap.String("topic", p.topic),
			zap.String("payment_id", e.PaymentID),
		)
		return err
	}

	log.Info("paypal details attached event published",
		zap.String("topic", p.topic),
		zap.String("event_id", payload.EventID),
		zap.String("payment_id", e.PaymentID),
		zap.String("transaction_id", e.TransactionID),
	)
	return nil
}
