package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"github.com/shestoi/GoBigTech/braintree/internal/repository"
)

// Repository реализует PaymentRepository поверх PostgreSQL
type Repository struct {
	pool *pgxpool.Pool
}

// NewRepository создаёт PostgreSQL репозиторий платежей
func NewRepository(pool *pgxpool.Pool) *Repository {
	return &Repository{
		pool: pool,
	}
}

// Save создаёт или обновляет платёж.
// additional_information хранится в JSONB и перезаписывается целиком.
func (r *Repository) Save(ctx context.Context, payment repository.Payment) error {
	info := payment.AdditionalInformation
	if info == nil {
		info = map[string]string{}
	}
	updatedAt := payment.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err := r.pool.Exec(ctx,
		`INSERT INTO payments (id, order_id, method, amount, status, transaction_id, additional_information, updated_at)
		 VALUES ($1, $2, $3, $4::numeric, $5, $6, $7, $8)
		 ON CONFLICT (id) DO UPDATE SET
		   order_id = EXCLUDED.order_id,
		   method = EXCLUDED.method,
		   amount = EXCLUDED.amount,
		   status = EXCLUDED.status,
		   transaction_id = EXCLUDED.transaction_id,
		   additional_information = EXCLUDED.additional_information,
		   updated_at = EXCLUDED.updated_at`,
		payment.ID, payment.OrderID, payment.Method, payment.Amount.String(), payment.Status,
		payment.TransactionID, info, updatedAt)
	if err != nil {
		return fmt.Errorf("save payment %s: %w", payment.ID, err)
	}
	return nil
}

// GetByID возвращает платёж по ID
func (r *Repository) GetByID(ctx context.Context, id string) (repository.Payment, error) {
	var (
		payment repository.Payment
		amount  string
	)
	err := r.pool.QueryRow(ctx,
		`SELECT id, order_id, method, amount::text, status, transaction_id, additional_information, updated_at
		 FROM payments
		 WHERE id = $1`,
		id).Scan(&payment.ID, &payment.OrderID, &payment.Method, &amount, &payment.Status,
		&payment.TransactionID, &payment.AdditionalInformation, &payment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return repository.Payment{}, repository.ErrNotFound
		}
		return repository.Payment{}, fmt.Errorf("get payment %s: %w", id, err)
	}

	payment.Amount, err = decimal.NewFromString(amount)
	if err != nil {
		return repository.Payment{}, fmt.Errorf("parse amount of payment %s: %w", id, err)
	}
	return payment, nil
}
