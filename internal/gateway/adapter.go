package gateway

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
	"github.com/shestoi/GoBigTech/braintree/platform/observability"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TransactionClient --dir=. --output=./mocks --outpkg=mocks

// TransactionClient - транспорт шлюза, которым пользуется Adapter
type TransactionClient interface {
	Find(ctx context.Context, transactionID string) (*braintree.Result, error)
	Search(ctx context.Context, nodes []braintree.SearchNode) ([]braintree.Transaction, error)
	Void(ctx context.Context, transactionID string) (*braintree.Result, error)
	Refund(ctx context.Context, transactionID string, amount decimal.Decimal) (*braintree.Result, error)
}

// Adapter - единая точка обращения сервиса к шлюзу.
// Переводит ошибки транспорта в GatewayError/SearchFailedError, пишет метрики и спаны.
// Повторов здесь нет: повтор void/refund на уже отменённой транзакции - ошибка шлюза.
type Adapter struct {
	client  TransactionClient
	logger  *zap.Logger
	metrics *Metrics
	tracer  trace.Tracer
}

// NewAdapter создаёт адаптер шлюза; metrics может быть nil
func NewAdapter(client TransactionClient, logger *zap.Logger, metrics *Metrics) *Adapter {
	return &Adapter{
		client:  client,
		logger:  logger,
		metrics: metrics,
		tracer:  otel.Tracer("braintree-gateway"),
	}
}

// Find загружает актуальное состояние транзакции
func (a *Adapter) Find(ctx context.Context, transactionID string) (*braintree.Result, error) {
	ctx, span := a.tracer.Start(ctx, "braintree.Find",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("braintree.transaction_id", transactionID)),
	)
	defer span.End()

	result, err := a.client.Find(ctx, transactionID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, &GatewayError{Op: "find", TransactionID: transactionID, Err: err}
	}
	return result, nil
}

// VoidOrRefund отменяет транзакцию, пока она не рассчитана, иначе делает полный возврат.
// fundingSource и instrument попадают только в лог и описание ошибки.
func (a *Adapter) VoidOrRefund(ctx context.Context, tx *braintree.Transaction, fundingSource, instrument string) error {
	if tx == nil {
		return &GatewayError{Op: "void_or_refund", Err: errors.New("transaction is nil")}
	}

	ctx, span := a.tracer.Start(ctx, "braintree.VoidOrRefund",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("braintree.transaction_id", tx.ID),
			attribute.String("braintree.status", tx.Status),
		),
	)
	defer span.End()

	log := observability.L(ctx, a.logger).With(
		zap.String("transaction_id", tx.ID),
		zap.String("status", tx.Status),
		zap.String("funding_source", fundingSource),
		zap.String("instrument", instrument),
	)

	var (
		op     string
		result *braintree.Result
		err    error
	)
	switch tx.Status {
	case braintree.StatusAuthorized, braintree.StatusSubmittedForSettlement, braintree.StatusSettlementPending:
		op = "void"
		result, err = a.client.Void(ctx, tx.ID)
	case braintree.StatusSettling, braintree.StatusSettled:
		op = "refund"
		result, err = a.client.Refund(ctx, tx.ID, tx.Amount)
	default:
		err = fmt.Errorf("%s transaction funded with %s cannot be reversed in status %q", fundingSource, instrument, tx.Status)
		span.SetStatus(codes.Error, err.Error())
		return &GatewayError{Op: "void_or_refund", TransactionID: tx.ID, Err: err}
	}
	span.SetAttributes(attribute.String("braintree.operation", op))

	if err == nil && (result == nil || !result.Success) {
		msg := "empty result"
		if result != nil && result.Message != "" {
			msg = result.Message
		}
		err = fmt.Errorf("%s of %s transaction funded with %s declined: %s", op, fundingSource, instrument, msg)
	}
	if err != nil {
		a.metrics.observeReversal(op, "failure")
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.Error("failed to reverse transaction", zap.String("operation", op), zap.Error(err))
		return &GatewayError{Op: op, TransactionID: tx.ID, Err: err}
	}

	a.metrics.observeReversal(op, "success")
	log.Info("transaction reversed", zap.String("operation", op))
	return nil
}

// Search выполняет поиск транзакций по накопленным фильтрам.
// Пустой результат - не ошибка.
func (a *Adapter) Search(ctx context.Context, filters []braintree.SearchNode) ([]braintree.Transaction, error) {
	ctx, span := a.tracer.Start(ctx, "braintree.Search",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.Int("braintree.filters", len(filters))),
	)
	defer span.End()

	start := time.Now()
	txs, err := a.client.Search(ctx, filters)
	a.metrics.observeSearch(time.Since(start).Seconds(), len(txs), err)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		observability.L(ctx, a.logger).Error("transaction search failed",
			zap.Int("filters", len(filters)),
			zap.Error(err),
		)
		return nil, &SearchFailedError{Err: err}
	}

	span.SetAttributes(attribute.Int("braintree.results", len(txs)))
	return txs, nil
}
