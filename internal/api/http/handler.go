package httpapi

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"go.uber.org/zap"

	"github.com/shestoi/GoBigTech/braintree/internal/braintree"
	"github.com/shestoi/GoBigTech/braintree/internal/gateway"
	"github.com/shestoi/GoBigTech/braintree/internal/report"
	"github.com/shestoi/GoBigTech/braintree/internal/service"
	"github.com/shestoi/GoBigTech/braintree/platform/observability"
)

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=PaymentAttacher --dir=. --output=./mocks --outpkg=mocks

// PaymentAttacher привязывает PayPal-транзакцию к платежу
type PaymentAttacher interface {
	AttachPayPalDetails(ctx context.Context, in service.AttachPayPalDetailsInput) (*service.AttachPayPalDetailsOutput, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.53.5 --name=TransactionLister --dir=. --output=./mocks --outpkg=mocks

// TransactionLister строит страницу отчёта по транзакциям
type TransactionLister interface {
	ListTransactions(ctx context.Context, in service.ListTransactionsInput) (*service.ListTransactionsOutput, error)
}

// Handler содержит HTTP-обработчики сервиса
type Handler struct {
	payments PaymentAttacher
	reports  TransactionLister
	validate *validator.Validate
	logger   *zap.Logger
}

// NewHandler создаёт HTTP handler
func NewHandler(payments PaymentAttacher, reports TransactionLister, logger *zap.Logger) *Handler {
	return &Handler{
		payments: payments,
		reports:  reports,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

// AttachPayPalDetailsRequest - тело POST /payments/{id}/paypal-details
type AttachPayPalDetailsRequest struct {
	TransactionID string `json:"transaction_id" validate:"required,max=64,alphanum"`
}

// AttachPayPalDetailsResponse - результат привязки
type AttachPayPalDetailsResponse struct {
	PaymentID        string `json:"payment_id"`
	TransactionID    string `json:"transaction_id"`
	PayPalPaymentID  string `json:"paypal_payment_id"`
	PayerEmail       string `json:"payer_email"`
	Reversed         bool   `json:"reversed"`
	AlreadyProcessed bool   `json:"already_processed"`
}

// TransactionsResponse - страница отчёта
type TransactionsResponse struct {
	Items []map[string]any `json:"items"`
	Total int              `json:"total"`
	Page  int              `json:"page"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// AttachPayPalDetails обрабатывает POST /payments/{id}/paypal-details
func (h *Handler) AttachPayPalDetails(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	paymentID := chi.URLParam(r, "id")

	var req AttachPayPalDetailsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	out, err := h.payments.AttachPayPalDetails(ctx, service.AttachPayPalDetailsInput{
		PaymentID:     paymentID,
		TransactionID: req.TransactionID,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	writeJSON(w, http.StatusOK, AttachPayPalDetailsResponse{
		PaymentID:        out.PaymentID,
		TransactionID:    out.TransactionID,
		PayPalPaymentID:  out.PayPalPaymentID,
		PayerEmail:       out.PayerEmail,
		Reversed:         out.Reversed,
		AlreadyProcessed: out.AlreadyProcessed,
	})
}

// ListTransactions обрабатывает GET /reports/transactions
func (h *Handler) ListTransactions(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	q, err := parseReportQuery(r.URL.Query())
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}
	if err := h.validate.Struct(q); err != nil {
		h.writeError(ctx, w, err)
		return
	}

	out, err := h.reports.ListTransactions(ctx, service.ListTransactionsInput{
		Filters:  q.Filters,
		PageSize: q.PageSize,
		Page:     q.Page,
	})
	if err != nil {
		h.writeError(ctx, w, err)
		return
	}

	items := make([]map[string]any, 0, len(out.Items))
	for _, doc := range out.Items {
		items = append(items, doc.Attributes())
	}
	writeJSON(w, http.StatusOK, TransactionsResponse{
		Items: items,
		Total: out.Total,
		Page:  out.Page,
	})
}

// writeError переводит ошибки сервиса в HTTP статус
func (h *Handler) writeError(ctx context.Context, w http.ResponseWriter, err error) {
	var (
		validationErrs validator.ValidationErrors
		queryErr       *queryError
		filterErr      *report.UnsupportedFilterError
		gatewayErr     *gateway.GatewayError
		searchErr      *gateway.SearchFailedError
	)

	status := http.StatusInternalServerError
	switch {
	case errors.As(err, &validationErrs), errors.As(err, &queryErr), errors.As(err, &filterErr),
		errors.Is(err, service.ErrInvalidInput):
		status = http.StatusBadRequest
	case errors.Is(err, service.ErrPaymentNotFound), errors.Is(err, braintree.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, service.ErrAttachInProgress):
		status = http.StatusConflict
	case errors.Is(err, gateway.ErrMissingData):
		status = http.StatusUnprocessableEntity
	case errors.As(err, &gatewayErr), errors.As(err, &searchErr):
		status = http.StatusBadGateway
	}

	log := observability.L(ctx, h.logger)
	if status >= http.StatusInternalServerError {
		log.Error("request failed", zap.Int("status", status), zap.Error(err))
	} else {
		log.Debug("request rejected", zap.Int("status", status), zap.Error(err))
	}

	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = http.StatusText(status)
	}
	writeJSON(w, status, errorResponse{Error: msg})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
