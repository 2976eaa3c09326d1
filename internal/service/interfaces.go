package service

import (
	"context"
	"time"

	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
	"github.com/shestoi/GoBigTech/braintree/internal/event"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TransactionFinder --dir=. --output=./mocks --outpkg=mocks

// TransactionFinder загружает транзакцию из шлюза
type TransactionFinder interface {
	Find(ctx context.Context, transactionID string) (*braintree.Result, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ResultHandler --dir=. --output=./mocks --outpkg=mocks

// ResultHandler обрабатывает ответ шлюза в контексте платежа
type ResultHandler interface {
	Handle(ctx context.Context, subject, response map[string]any) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=ProcessedStore --dir=. --output=./mocks --outpkg=mocks

// ProcessedStore хранит ключи пар платёж/транзакция.
// Claim атомарно занимает ключ; MarkProcessed переводит его в обработанные;
// Release снимает незавершённый захват.
type ProcessedStore interface {
	Claim(ctx context.Context, key string, ttl time.Duration) (bool, error)
	MarkProcessed(ctx context.Context, key string, ttl time.Duration) error
	IsProcessed(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=EventPublisher --dir=. --output=./mocks --outpkg=mocks

// EventPublisher публикует доменные события платежей
type EventPublisher interface {
	PublishPayPalDetailsAttached(ctx context.Context, e event.PayPalDetailsAttached) error
}
