package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/shestoi/GoBigTech/braintree/internal/report"
	"github.com/shestoi/GoBigTech/braintree/platform/observability"
)

// ReportService строит отчёт по транзакциям шлюза
type ReportService struct {
	logger   *zap.Logger
	searcher report.Searcher
	mapper   report.FilterProvider
	factory  report.EntityFactory
}

// NewReportService создаёт сервис отчётов
func NewReportService(logger *zap.Logger, searcher report.Searcher, mapper report.FilterProvider, factory report.EntityFactory) *ReportService {
	return &ReportService{
		logger:   logger,
		searcher: searcher,
		mapper:   mapper,
		factory:  factory,
	}
}

// Filter - условие по одному полю отчёта
type Filter struct {
	Field     string
	Condition report.Condition
}

// ListTransactionsInput содержит фильтры и пагинацию; PageSize nil - лимит по умолчанию
type ListTransactionsInput struct {
	Filters  []Filter
	PageSize *int
	Page     int
}

// ListTransactionsOutput содержит страницу отчёта и число найденных шлюзом транзакций
type ListTransactionsOutput struct {
	Items []report.Document
	Total int
	Page  int
}

// ListTransactions создаёт коллекцию на каждый запрос и материализует одну страницу
func (s *ReportService) ListTransactions(ctx context.Context, in ListTransactionsInput) (*ListTransactionsOutput, error) {
	collection := report.NewTransactionsCollection(s.factory, s.searcher, s.mapper)
	for _, f := range in.Filters {
		if _, err := collection.AddFieldToFilter(f.Field, f.Condition); err != nil {
			return nil, err
		}
	}

	page := in.Page
	if page < 1 {
		page = 1
	}
	collection.SetPageSize(in.PageSize).SetCurPage(page)

	items, err := collection.Items(ctx)
	if err != nil {
		observability.L(ctx, s.logger).Error("failed to list transactions", zap.Error(err))
		return nil, err
	}
	total, err := collection.Size(ctx)
	if err != nil {
		return nil, err
	}

	observability.L(ctx, s.logger).Debug("transactions listed",
		zap.Int("filters", len(collection.Filters())),
		zap.Int("items", len(items)),
		zap.Int("total", total),
	)
	return &ListTransactionsOutput{
		Items: items,
		Total: total,
		Page:  page,
	}, nil
}
