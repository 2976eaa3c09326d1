package braintree

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	bt "github.com/braintree-go/braintree-go"
	"github.com/shopspring/decimal"
)

// Environment определяет окружение шлюза
type Environment string

const (
	EnvironmentSandbox    Environment = "sandbox"
	EnvironmentProduction Environment = "production"
)

// BaseURL возвращает адрес API для окружения
func (e Environment) BaseURL() string {
	if e == EnvironmentProduction {
		return "https://api.braintreegateway.com"
	}
	return "https://api.sandbox.braintreegateway.com"
}

// Config содержит параметры подключения к шлюзу.
// BaseURL, если задан, перекрывает адрес окружения.
type Config struct {
	Environment Environment
	BaseURL     string
	MerchantID  string
	PublicKey   string
	PrivateKey  string
	Timeout     time.Duration
}

// transactionGateway - часть bt.TransactionGateway, которой пользуется Client
type transactionGateway interface {
	Find(ctx context.Context, id string) (*bt.Transaction, error)
	Void(ctx context.Context, id string) (*bt.Transaction, error)
	Refund(ctx context.Context, id string, amount ...*bt.Decimal) (*bt.Transaction, error)
	Search(ctx context.Context, query *bt.SearchQuery) (*bt.TransactionSearchResult, error)
	SearchNext(ctx context.Context, query *bt.SearchQuery, prev *bt.TransactionSearchResult) (*bt.TransactionSearchResult, error)
}

// Client переводит модель сервиса в вызовы braintree-go и обратно
type Client struct {
	gateway transactionGateway
}

// NewClient создаёт клиент шлюза
func NewClient(cfg Config) (*Client, error) {
	if cfg.MerchantID == "" {
		return nil, fmt.Errorf("braintree: merchant id is required")
	}
	if cfg.PublicKey == "" || cfg.PrivateKey == "" {
		return nil, fmt.Errorf("braintree: public and private keys are required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = cfg.Environment.BaseURL()
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	gw := bt.NewWithHttpClient(
		bt.NewEnvironment(strings.TrimRight(baseURL, "/")),
		cfg.MerchantID,
		cfg.PublicKey,
		cfg.PrivateKey,
		&http.Client{Timeout: timeout},
	)
	return &Client{gateway: gw.Transaction()}, nil
}

// Find загружает транзакцию по ID
func (c *Client) Find(ctx context.Context, transactionID string) (*Result, error) {
	if transactionID == "" {
		return nil, fmt.Errorf("braintree: transaction id is required")
	}

	tx, err := c.gateway.Find(ctx, transactionID)
	if err != nil {
		return nil, translateError(err)
	}
	return &Result{Success: true, Transaction: fromGateway(tx)}, nil
}

// Search выполняет поиск транзакций и проходит по всем страницам выдачи.
// Запрос с пустым пересечением значений in шлюз не вызывает.
func (c *Client) Search(ctx context.Context, nodes []SearchNode) ([]Transaction, error) {
	query, matchesNothing, err := buildSearchQuery(nodes)
	if err != nil {
		return nil, err
	}
	if matchesNothing {
		return nil, nil
	}

	page, err := c.gateway.Search(ctx, query)
	if err != nil {
		return nil, translateError(err)
	}

	var txs []Transaction
	for page != nil {
		for _, tx := range page.Transactions {
			if tx != nil {
				txs = append(txs, *fromGateway(tx))
			}
		}
		page, err = c.gateway.SearchNext(ctx, query, page)
		if err != nil {
			return nil, translateError(err)
		}
	}
	return txs, nil
}

// Void отменяет ещё не рассчитанную транзакцию
func (c *Client) Void(ctx context.Context, transactionID string) (*Result, error) {
	tx, err := c.gateway.Void(ctx, transactionID)
	return operationResult(tx, err)
}

// Refund возвращает средства по рассчитанной транзакции.
// Нулевая сумма означает полный возврат.
func (c *Client) Refund(ctx context.Context, transactionID string, amount decimal.Decimal) (*Result, error) {
	var (
		tx  *bt.Transaction
		err error
	)
	if amount.IsZero() {
		tx, err = c.gateway.Refund(ctx, transactionID)
	} else {
		tx, err = c.gateway.Refund(ctx, transactionID, toGatewayDecimal(amount))
	}
	return operationResult(tx, err)
}

// operationResult превращает отказ по бизнес-правилам (422) в Result без ошибки
func operationResult(tx *bt.Transaction, err error) (*Result, error) {
	if err != nil {
		var declined *bt.BraintreeError
		if errors.As(err, &declined) {
			return &Result{Success: false, Message: declined.Error()}, nil
		}
		return nil, translateError(err)
	}
	return &Result{Success: true, Transaction: fromGateway(tx)}, nil
}

func buildSearchQuery(nodes []SearchNode) (*bt.SearchQuery, bool, error) {
	criteria, err := Query(nodes)
	if err != nil {
		return nil, false, err
	}
	kinds := make(map[string]NodeKind, len(criteria))
	for _, node := range nodes {
		if node != nil {
			kinds[node.Field()] = KindOf(node)
		}
	}

	fields := make([]string, 0, len(criteria))
	for field := range criteria {
		fields = append(fields, field)
	}
	sort.Strings(fields)

	query := new(bt.SearchQuery)
	for _, field := range fields {
		name := strings.ReplaceAll(field, "_", "-")
		crit := criteria[field]

		switch kinds[field] {
		case KindMultipleValue:
			items := StringValues(crit["in"])
			if len(items) == 0 {
				return nil, true, nil
			}
			query.AddMultiField(name).Items = items

		case KindRange:
			if err := addRangeField(query, name, crit); err != nil {
				return nil, false, err
			}

		default:
			f := query.AddTextField(name)
			for op, value := range crit {
				s := RangeString(value)
				switch op {
				case "is":
					f.Is = s
				case "is_not":
					f.IsNot = s
				case "starts_with":
					f.StartsWith = s
				case "ends_with":
					f.EndsWith = s
				case "contains":
					f.Contains = s
				default:
					return nil, false, fmt.Errorf("braintree: unsupported text operator %q on %s", op, field)
				}
			}
		}
	}
	return query, false, nil
}

// addRangeField добавляет поле дат, если все границы в RFC3339, иначе числовое поле
func addRangeField(query *bt.SearchQuery, name string, crit map[string]any) error {
	times := make(map[string]time.Time, len(crit))
	for op, value := range crit {
		t, err := time.Parse(time.RFC3339, RangeString(value))
		if err != nil {
			times = nil
			break
		}
		times[op] = t
	}
	if times != nil {
		f := query.AddTimeField(name)
		for op, t := range times {
			switch op {
			case "is":
				f.Is = t
			case "min":
				f.Min = t
			case "max":
				f.Max = t
			default:
				return fmt.Errorf("braintree: unsupported range operator %q on %s", op, name)
			}
		}
		return nil
	}

	f := query.AddRangeField(name)
	for op, value := range crit {
		d, err := decimal.NewFromString(RangeString(value))
		if err != nil {
			return fmt.Errorf("braintree: range bound %q on %s is neither a number nor a date", RangeString(value), name)
		}
		n, _ := d.Float64()
		switch op {
		case "is":
			f.Is = n
		case "min":
			f.Min = n
		case "max":
			f.Max = n
		default:
			return fmt.Errorf("braintree: unsupported range operator %q on %s", op, name)
		}
	}
	return nil
}

func fromGateway(tx *bt.Transaction) *Transaction {
	if tx == nil {
		return nil
	}
	out := &Transaction{
		ID:                    tx.Id,
		Status:                string(tx.Status),
		Type:                  tx.Type,
		CurrencyISOCode:       tx.CurrencyISOCode,
		OrderID:               tx.OrderId,
		MerchantAccountID:     tx.MerchantAccountId,
		PaymentInstrumentType: string(tx.PaymentInstrumentType),
		SettlementBatchID:     tx.SettlementBatchId,
	}
	if tx.Amount != nil {
		out.Amount = fromGatewayDecimal(tx.Amount)
	}
	if tx.RefundIds != nil {
		out.RefundIDs = append([]string(nil), (*tx.RefundIds)...)
	}
	if tx.RefundedTransactionId != nil {
		out.RefundedTransactionID = *tx.RefundedTransactionId
	}
	if tx.CreatedAt != nil {
		out.CreatedAt = tx.CreatedAt.UTC()
	}
	if tx.UpdatedAt != nil {
		out.UpdatedAt = tx.UpdatedAt.UTC()
	}
	if tx.PayPalDetails != nil {
		out.PayPalDetails = &PayPalDetails{
			PaymentID:       tx.PayPalDetails.PaymentID,
			PayerEmail:      tx.PayPalDetails.PayerEmail,
			PayerID:         tx.PayPalDetails.PayerID,
			PayerFirstName:  tx.PayPalDetails.PayerFirstName,
			PayerLastName:   tx.PayPalDetails.PayerLastName,
			AuthorizationID: tx.PayPalDetails.AuthorizationID,
		}
	}
	return out
}

func fromGatewayDecimal(d *bt.Decimal) decimal.Decimal {
	return decimal.New(d.Unscaled, int32(-d.Scale))
}

func toGatewayDecimal(d decimal.Decimal) *bt.Decimal {
	return bt.NewDecimal(d.Round(2).Shift(2).IntPart(), 2)
}
