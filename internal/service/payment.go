package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
	"github.com/shestoi/GoBigTech/braintree/internal/event"
	"github.com/shestoi/GoBigTech/braintree/internal/gateway"
	"github.com/shestoi/GoBigTech/braintree/internal/gateway/response"
	"github.com/shestoi/GoBigTech/braintree/internal/repository"
	"github.com/shestoi/GoBigTech/braintree/platform/observability"
)

var (
	// ErrInvalidInput - не заданы ID платежа или транзакции
	ErrInvalidInput = errors.New("invalid input")
	// ErrPaymentNotFound - платёж не найден в хранилище
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrAttachInProgress - та же пара платёж/транзакция сейчас обрабатывается другим запросом
	ErrAttachInProgress = errors.New("paypal details attach already in progress")
)

// attachClaimTTL ограничивает время, на которое запрос занимает пару платёж/транзакция
const attachClaimTTL = 2 * time.Minute

// PaymentService привязывает данные PayPal-транзакции к платежу заказа
type PaymentService struct {
	logger       *zap.Logger
	repo         repository.PaymentRepository
	finder       TransactionFinder
	handler      ResultHandler
	processed    ProcessedStore
	publisher    EventPublisher
	processedTTL time.Duration
}

// NewPaymentService создаёт сервис платежей
func NewPaymentService(
	logger *zap.Logger,
	repo repository.PaymentRepository,
	finder TransactionFinder,
	handler ResultHandler,
	processed ProcessedStore,
	publisher EventPublisher,
	processedTTL time.Duration,
) *PaymentService {
	return &PaymentService{
		logger:       logger,
		repo:         repo,
		finder:       finder,
		handler:      handler,
		processed:    processed,
		publisher:    publisher,
		processedTTL: processedTTL,
	}
}

// AttachPayPalDetailsInput содержит входные данные привязки
type AttachPayPalDetailsInput struct {
	PaymentID     string
	TransactionID string
}

// AttachPayPalDetailsOutput содержит результат привязки
type AttachPayPalDetailsOutput struct {
	PaymentID        string
	TransactionID    string
	PayPalPaymentID  string
	PayerEmail       string
	Reversed         bool
	AlreadyProcessed bool
}

// AttachPayPalDetails загружает транзакцию, прогоняет её через обработчик ответа
// и сохраняет платёж. Пара платёж/транзакция занимается до обращения к шлюзу:
// повторный вызов после успеха возвращает сохранённые данные, параллельный -
// ErrAttachInProgress. При ошибке захват снимается.
func (s *PaymentService) AttachPayPalDetails(ctx context.Context, in AttachPayPalDetailsInput) (*AttachPayPalDetailsOutput, error) {
	if in.PaymentID == "" || in.TransactionID == "" {
		return nil, fmt.Errorf("%w: payment id and transaction id are required", ErrInvalidInput)
	}

	log := observability.L(ctx, s.logger).With(
		zap.String("payment_id", in.PaymentID),
		zap.String("transaction_id", in.TransactionID),
	)

	payment, err := s.repo.GetByID(ctx, in.PaymentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrPaymentNotFound, in.PaymentID)
		}
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	key := in.PaymentID + ":" + in.TransactionID
	claimed, err := s.processed.Claim(ctx, key, attachClaimTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to claim transaction: %w", err)
	}
	if !claimed {
		return s.alreadyClaimed(ctx, log, key, in)
	}

	result, err := s.finder.Find(ctx, in.TransactionID)
	if err != nil {
		log.Error("failed to load transaction from gateway", zap.Error(err))
		s.release(ctx, log, key)
		return nil, err
	}

	subject := gateway.BuildSubject(gateway.NewPaymentDataObject(&payment))
	if err := s.handler.Handle(ctx, subject, gateway.BuildResponse(result)); err != nil {
		log.Error("failed to handle gateway response", zap.Error(err))
		s.release(ctx, log, key)
		return nil, err
	}

	reversed := result.Transaction != nil &&
		result.Transaction.PaymentInstrumentType == braintree.InstrumentCreditCard
	if payment.TransactionID == "" {
		payment.TransactionID = in.TransactionID
	}
	payment.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, payment); err != nil {
		log.Error("failed to save payment", zap.Error(err))
		s.release(ctx, log, key)
		return nil, fmt.Errorf("failed to save payment: %w", err)
	}

	out := &AttachPayPalDetailsOutput{
		PaymentID:       payment.ID,
		TransactionID:   in.TransactionID,
		PayPalPaymentID: payment.AdditionalInformation[response.PaymentIDKey],
		PayerEmail:      payment.AdditionalInformation[response.PayerEmailKey],
		Reversed:        reversed,
	}

	// Платёж уже сохранён, поэтому ошибки публикации и пометки только логируются
	if err := s.publisher.PublishPayPalDetailsAttached(ctx, event.PayPalDetailsAttached{
		PaymentID:       payment.ID,
		OrderID:         payment.OrderID,
		TransactionID:   in.TransactionID,
		PayPalPaymentID: out.PayPalPaymentID,
		PayerEmail:      out.PayerEmail,
		Amount:          payment.Amount,
		Reversed:        reversed,
		OccurredAt:      payment.UpdatedAt,
	}); err != nil {
		log.Warn("failed to publish paypal details attached event", zap.Error(err))
	}

	if err := s.processed.MarkProcessed(ctx, key, s.processedTTL); err != nil {
		log.Warn("failed to mark transaction processed", zap.Error(err))
	}

	log.Info("paypal details attached", zap.Bool("reversed", reversed))
	return out, nil
}

// alreadyClaimed отвечает на запрос, который не смог занять ключ.
// Платёж перечитывается: победивший запрос мог сохранить его после первой загрузки.
func (s *PaymentService) alreadyClaimed(ctx context.Context, log *zap.Logger, key string, in AttachPayPalDetailsInput) (*AttachPayPalDetailsOutput, error) {
	processed, err := s.processed.IsProcessed(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to check processed transaction: %w", err)
	}
	if !processed {
		log.Info("paypal details attach already in progress")
		return nil, fmt.Errorf("%w: %s", ErrAttachInProgress, key)
	}

	payment, err := s.repo.GetByID(ctx, in.PaymentID)
	if err != nil {
		return nil, fmt.Errorf("failed to load payment: %w", err)
	}

	log.Info("paypal details already attached, skipping gateway call")
	return &AttachPayPalDetailsOutput{
		PaymentID:        payment.ID,
		TransactionID:    in.TransactionID,
		PayPalPaymentID:  payment.AdditionalInformation[response.PaymentIDKey],
		PayerEmail:       payment.AdditionalInformation[response.PayerEmailKey],
		AlreadyProcessed: true,
	}, nil
}

// release снимает захват после неудачи, даже если контекст запроса уже отменён
func (s *PaymentService) release(ctx context.Context, log *zap.Logger, key string) {
	if err := s.processed.Release(context.WithoutCancel(ctx), key); err != nil {
		log.Warn("failed to release transaction claim", zap.Error(err))
	}
}
