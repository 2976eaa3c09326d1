// Package idempotency хранит ключи пар платёж/транзакция, которые уже
// обработаны или обрабатываются, чтобы повторная или параллельная доставка
// не привела к повторному void/refund.
package idempotency

import (
	"context"
	"sync"
	"time"
)

type memoryEntry struct {
	expiresAt time.Time
	done      bool
}

// MemoryStore - хранилище ключей в памяти процесса (local/test)
type MemoryStore struct {
	mu   sync.Mutex
	keys map[string]memoryEntry
	now  func() time.Time
}

// NewMemoryStore создаёт пустое in-memory хранилище
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		keys: make(map[string]memoryEntry),
		now:  time.Now,
	}
}

// Claim атомарно занимает ключ на ttl. false - ключ уже занят или обработан.
func (s *MemoryStore) Claim(ctx context.Context, key string, ttl time.Duration) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupExpiredLocked()
	if _, exists := s.keys[key]; exists {
		return false, nil
	}
	s.keys[key] = memoryEntry{expiresAt: s.now().Add(ttl)}
	return true, nil
}

// MarkProcessed помечает ключ обработанным на ttl, заменяя захват
func (s *MemoryStore) MarkProcessed(ctx context.Context, key string, ttl time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupExpiredLocked()
	s.keys[key] = memoryEntry{expiresAt: s.now().Add(ttl), done: true}
	return nil
}

// IsProcessed сообщает, помечен ли ключ обработанным и не истёк ли его ttl
func (s *MemoryStore) IsProcessed(ctx context.Context, key string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cleanupExpiredLocked()
	return s.keys[key].done, nil
}

// Release снимает незавершённый захват; отметку об обработке не трогает
func (s *MemoryStore) Release(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if entry, exists := s.keys[key]; exists && !entry.done {
		delete(s.keys, key)
	}
	return nil
}

// cleanupExpiredLocked вызывается под s.mu
func (s *MemoryStore) cleanupExpiredLocked() {
	now := s.now()
	for key, entry := range s.keys {
		if !now.Before(entry.expiresAt) {
			delete(s.keys, key)
		}
	}
}
