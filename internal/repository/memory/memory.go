package memory

import (
	"context"
	"maps"
	"sync"
	"time"

	"github.com/shestoi/GoBigTech/braintree/internal/repository"
)

// MemoryRepository реализует PaymentRepository в памяти процесса.
// Используется в local-окружении и в тестах.
type MemoryRepository struct {
	mu       sync.RWMutex
	payments map[string]repository.Payment
}

// NewMemoryRepository создаёт пустой in-memory репозиторий
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		payments: make(map[string]repository.Payment),
	}
}

// Save сохраняет копию платежа, чтобы вызывающий код не менял хранилище через общую map
func (r *MemoryRepository) Save(ctx context.Context, payment repository.Payment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if payment.UpdatedAt.IsZero() {
		payment.UpdatedAt = time.Now().UTC()
	}
	payment.AdditionalInformation = maps.Clone(payment.AdditionalInformation)

	r.payments[payment.ID] = payment
	return nil
}

// GetByID возвращает копию платежа
func (r *MemoryRepository) GetByID(ctx context.Context, id string) (repository.Payment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	payment, exists := r.payments[id]
	if !exists {
		return repository.Payment{}, repository.ErrNotFound
	}

	payment.AdditionalInformation = maps.Clone(payment.AdditionalInformation)
	return payment, nil
}
