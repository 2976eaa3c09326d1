package report

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
)

type searchField struct {
	name    string
	kind    braintree.NodeKind
	allowed []string
}

// FilterMapper сопоставляет поля отчёта полям search API шлюза
type FilterMapper struct {
	fields map[string]searchField
}

// NewFilterMapper создаёт маппер со всеми поддерживаемыми полями отчёта
func NewFilterMapper() *FilterMapper {
	return &FilterMapper{fields: map[string]searchField{
		"id":                      {name: "id", kind: braintree.KindText},
		"merchantAccountId":       {name: "merchant_account_id", kind: braintree.KindText},
		"orderId":                 {name: "order_id", kind: braintree.KindText},
		"paypalDetails_paymentId": {name: "paypal_payment_id", kind: braintree.KindText},
		"settlementBatchId":       {name: "settlement_batch_id", kind: braintree.KindText},
		"createdAt":               {name: "created_at", kind: braintree.KindRange},
		"amount":                  {name: "amount", kind: braintree.KindRange},
		"type": {name: "type", kind: braintree.KindMultipleValue, allowed: []string{
			braintree.TypeSale, braintree.TypeCredit,
		}},
		"status": {name: "status", kind: braintree.KindMultipleValue, allowed: []string{
			braintree.StatusAuthorized,
			braintree.StatusAuthorizationExpired,
			braintree.StatusSubmittedForSettlement,
			braintree.StatusSettlementPending,
			braintree.StatusSettling,
			braintree.StatusSettled,
			braintree.StatusVoided,
			braintree.StatusFailed,
			braintree.StatusGatewayRejected,
			braintree.StatusProcessorDeclined,
		}},
		"paymentInstrumentType": {name: "payment_instrument_type", kind: braintree.KindMultipleValue, allowed: []string{
			braintree.InstrumentCreditCard,
			braintree.InstrumentPayPalAccount,
			braintree.InstrumentApplePayCard,
			braintree.InstrumentAndroidPay,
			braintree.InstrumentVenmoAccount,
			braintree.InstrumentUSBankAccount,
		}},
	}}
}

// Fields возвращает имена полей отчёта, по которым можно фильтровать
func (m *FilterMapper) Fields() []string {
	names := make([]string, 0, len(m.fields))
	for name := range m.fields {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// GetFilter строит узел поиска для поля.
// Неизвестное поле даёт nil без ошибки; неизвестный оператор или недопустимое
// значение - *UnsupportedFilterError.
func (m *FilterMapper) GetFilter(field string, condition Condition) (braintree.SearchNode, error) {
	sf, ok := m.fields[field]
	if !ok {
		return nil, nil
	}
	if len(condition) == 0 {
		return nil, &UnsupportedFilterError{Field: field, Reason: "empty condition"}
	}

	operators := make([]string, 0, len(condition))
	for op := range condition {
		operators = append(operators, op)
	}
	sort.Strings(operators)

	switch sf.kind {
	case braintree.KindText:
		node := braintree.NewTextNode(sf.name)
		for _, op := range operators {
			value := fmt.Sprint(condition[op])
			switch op {
			case "eq":
				node.Is(value)
			case "like":
				node.Contains(strings.Trim(value, "%"))
			default:
				return nil, &UnsupportedFilterError{Field: field, Operator: op, Reason: "text field supports eq and like"}
			}
		}
		return node, nil

	case braintree.KindRange:
		node := braintree.NewRangeNode(sf.name)
		for _, op := range operators {
			value := braintree.RangeString(condition[op])
			switch op {
			case "from":
				node.GreaterThanOrEqualTo(value)
			case "to":
				node.LessThanOrEqualTo(value)
			case "eq":
				node.Is(value)
			default:
				return nil, &UnsupportedFilterError{Field: field, Operator: op, Reason: "range field supports from, to and eq"}
			}
		}
		return node, nil

	default:
		node := braintree.NewMultipleValueNode(sf.name, sf.allowed...)
		for _, op := range operators {
			var values []string
			switch op {
			case "eq":
				values = []string{fmt.Sprint(condition[op])}
			case "in":
				values = braintree.StringValues(condition[op])
			default:
				return nil, &UnsupportedFilterError{Field: field, Operator: op, Reason: "multiple value field supports eq and in"}
			}
			for _, v := range values {
				if !slices.Contains(sf.allowed, v) {
					return nil, &UnsupportedFilterError{Field: field, Operator: op, Reason: fmt.Sprintf("value %q is not allowed", v)}
				}
			}
			node.In(values...)
		}
		return node, nil
	}
}
