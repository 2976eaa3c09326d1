package report_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
	"github.com/shestoi/GoBigTech/braintree/internal/report"
)

func TestFilterMapper_GetFilter(t *testing.T) {
	mapper := report.NewFilterMapper()

	tests := []struct {
		name         string
		field        string
		condition    report.Condition
		wantField    string
		wantCriteria map[string]any
	}{
		{
			name:         "text eq becomes is",
			field:        "orderId",
			condition:    report.Condition{"eq": "000000001"},
			wantField:    "order_id",
			wantCriteria: map[string]any{"is": "000000001"},
		},
		{
			name:         "text like becomes contains without wildcards",
			field:        "paypalDetails_paymentId",
			condition:    report.Condition{"like": "%PAY-1%"},
			wantField:    "paypal_payment_id",
			wantCriteria: map[string]any{"contains": "PAY-1"},
		},
		{
			name:         "range from and to",
			field:        "amount",
			condition:    report.Condition{"from": decimal.RequireFromString("10.00"), "to": "99.99"},
			wantField:    "amount",
			wantCriteria: map[string]any{"min": "10", "max": "99.99"},
		},
		{
			name:         "range dates are formatted in UTC",
			field:        "createdAt",
			condition:    report.Condition{"from": time.Date(2024, 3, 1, 12, 0, 0, 0, time.FixedZone("MSK", 3*3600))},
			wantField:    "created_at",
			wantCriteria: map[string]any{"min": "2024-03-01T09:00:00Z"},
		},
		{
			name:         "multiple value eq",
			field:        "type",
			condition:    report.Condition{"eq": "sale"},
			wantField:    "type",
			wantCriteria: map[string]any{"in": []string{"sale"}},
		},
		{
			name:         "multiple value in",
			field:        "paymentInstrumentType",
			condition:    report.Condition{"in": []any{"credit_card", "paypal_account"}},
			wantField:    "payment_instrument_type",
			wantCriteria: map[string]any{"in": []string{"credit_card", "paypal_account"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Act
			node, err := mapper.GetFilter(tt.field, tt.condition)

			// Assert
			require.NoError(t, err)
			require.NotNil(t, node)
			require.Equal(t, tt.wantField, node.Field())
			require.Equal(t, tt.wantCriteria, node.Criteria())
		})
	}
}

func TestFilterMapper_GetFilter_Errors(t *testing.T) {
	mapper := report.NewFilterMapper()

	t.Run("unknown field returns nil node", func(t *testing.T) {
		node, err := mapper.GetFilter("customerEmail", report.Condition{"eq": "a@b.com"})

		require.NoError(t, err)
		require.Nil(t, node)
	})

	tests := []struct {
		name      string
		field     string
		condition report.Condition
	}{
		{name: "text with range operator", field: "id", condition: report.Condition{"from": "a"}},
		{name: "range with like", field: "amount", condition: report.Condition{"like": "%1%"}},
		{name: "multiple value with like", field: "status", condition: report.Condition{"like": "%settled%"}},
		{name: "value outside of allowed list", field: "type", condition: report.Condition{"eq": "refund"}},
		{name: "empty condition", field: "id", condition: report.Condition{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			node, err := mapper.GetFilter(tt.field, tt.condition)

			var filterErr *report.UnsupportedFilterError
			require.ErrorAs(t, err, &filterErr)
			require.Equal(t, tt.field, filterErr.Field)
			require.Nil(t, node)
		})
	}
}

func TestFilterMapper_WithCollection(t *testing.T) {
	// Arrange
	mapper := report.NewFilterMapper()
	collection := report.NewTransactionsCollection(report.NewDocumentFactory(), nil, mapper)

	// Act
	_, err := collection.AddFieldToFilter("type", braintree.TypeSale)
	require.NoError(t, err)
	_, err = collection.AddFieldToFilter("customerEmail", "a@b.com")
	require.NoError(t, err)
	_, err = collection.AddFieldToFilter("createdAt", report.Condition{"from": "2024-01-01T00:00:00Z"})
	require.NoError(t, err)

	// Assert
	query, err := braintree.Query(collection.Filters())
	require.NoError(t, err)
	require.Equal(t, map[string]map[string]any{
		"type":       {"in": []string{"sale"}},
		"created_at": {"min": "2024-01-01T00:00:00Z"},
	}, query)
}

func TestFilterMapper_Fields(t *testing.T) {
	require.Contains(t, report.NewFilterMapper().Fields(), "paypalDetails_paymentId")
	require.Len(t, report.NewFilterMapper().Fields(), 10)
}
