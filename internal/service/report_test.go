package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
	"github.com/shestoi/GoBigTech/braintree/internal/gateway"
	"github.com/shestoi/GoBigTech/braintree/internal/report"
	reportmocks "github.com/shestoi/GoBigTech/braintree/internal/report/mocks"
)

func transactions(n int) []braintree.Transaction {
	txs := make([]braintree.Transaction, n)
	for i := range txs {
		txs[i] = braintree.Transaction{ID: fmt.Sprintf("tx-%d", i)}
	}
	return txs
}

func TestReportService_ListTransactions(t *testing.T) {
	ctx := context.Background()

	t.Run("filters are mapped and page is materialized", func(t *testing.T) {
		// Arrange
		searcher := reportmocks.NewSearcher(t)
		svc := NewReportService(zap.NewNop(), searcher, report.NewFilterMapper(), report.NewDocumentFactory())
		searcher.On("Search", ctx, mock.MatchedBy(func(nodes []braintree.SearchNode) bool {
			q, err := braintree.Query(nodes)
			return err == nil && len(nodes) == 2 && q["status"] != nil && q["order_id"] != nil
		})).Return(transactions(12), nil).Once()
		pageSize := 5

		// Act
		out, err := svc.ListTransactions(ctx, ListTransactionsInput{
			Filters: []Filter{
				{Field: "status", Condition: report.Condition{"in": []string{"settled", "settling"}}},
				{Field: "orderId", Condition: report.Condition{"eq": "000000001"}},
				{Field: "customerEmail", Condition: report.Condition{"eq": "ignored"}},
			},
			PageSize: &pageSize,
			Page:     2,
		})

		// Assert
		require.NoError(t, err)
		require.Equal(t, 12, out.Total)
		require.Equal(t, 2, out.Page)
		require.Len(t, out.Items, 5)
		require.Equal(t, "tx-5", out.Items[0].ID())
	})

	t.Run("default page is capped", func(t *testing.T) {
		searcher := reportmocks.NewSearcher(t)
		svc := NewReportService(zap.NewNop(), searcher, report.NewFilterMapper(), report.NewDocumentFactory())
		searcher.On("Search", ctx, []braintree.SearchNode(nil)).Return(transactions(1010), nil).Once()

		out, err := svc.ListTransactions(ctx, ListTransactionsInput{})

		require.NoError(t, err)
		require.Equal(t, 1, out.Page)
		require.Equal(t, 1010, out.Total)
		require.Len(t, out.Items, report.TransactionMaximumCount)
	})

	t.Run("unsupported filter stops before search", func(t *testing.T) {
		searcher := reportmocks.NewSearcher(t)
		svc := NewReportService(zap.NewNop(), searcher, report.NewFilterMapper(), report.NewDocumentFactory())

		_, err := svc.ListTransactions(ctx, ListTransactionsInput{
			Filters: []Filter{{Field: "amount", Condition: report.Condition{"like": "%10%"}}},
		})

		var filterErr *report.UnsupportedFilterError
		require.ErrorAs(t, err, &filterErr)
		searcher.AssertNotCalled(t, "Search", mock.Anything, mock.Anything)
	})

	t.Run("search failure is returned", func(t *testing.T) {
		searcher := reportmocks.NewSearcher(t)
		svc := NewReportService(zap.NewNop(), searcher, report.NewFilterMapper(), report.NewDocumentFactory())
		searchErr := &gateway.SearchFailedError{Err: errors.New("timeout")}
		searcher.On("Search", ctx, mock.Anything).Return(nil, searchErr).Once()

		_, err := svc.ListTransactions(ctx, ListTransactionsInput{})

		require.ErrorIs(t, err, searchErr)
	})
}
