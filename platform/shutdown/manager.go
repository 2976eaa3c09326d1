package shutdown

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"go.uber.org/zap"
)

// Manager выполняет зарегистрированные функции остановки в обратном порядке (LIFO).
// Каждая функция получает свой context.WithTimeout.
type Manager struct {
	timeout time.Duration
	logger  *zap.Logger

	mu    sync.Mutex
	funcs []namedFunc
	once  sync.Once
	err   error
}

type namedFunc struct {
	name string
	fn   func(context.Context) error
}

// New создаёт Manager с таймаутом на каждую функцию
func New(timeout time.Duration, logger *zap.Logger) *Manager {
	return &Manager{
		timeout: timeout,
		logger:  logger,
	}
}

// Add регистрирует функцию остановки; последняя добавленная выполняется первой
func (m *Manager) Add(name string, fn func(context.Context) error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.funcs = append(m.funcs, namedFunc{name: name, fn: fn})
}

// Wait блокируется до SIGINT/SIGTERM или отмены ctx, затем вызывает Shutdown
func (m *Manager) Wait(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	m.logger.Info("Received shutdown signal, starting graceful shutdown")
	return m.Shutdown(context.Background())
}

// Shutdown выполняет функции остановки один раз; повторные вызовы возвращают ту же ошибку
func (m *Manager) Shutdown(ctx context.Context) error {
	m.once.Do(func() {
		m.mu.Lock()
		funcs := make([]namedFunc, len(m.funcs))
		copy(funcs, m.funcs)
		m.mu.Unlock()

		var errs []error
		for i := len(funcs) - 1; i >= 0; i-- {
			if err := m.run(ctx, funcs[i]); err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", funcs[i].name, err))
			}
		}
		m.err = errors.Join(errs...)
		m.logger.Info("Graceful shutdown completed")
	})
	return m.err
}

func (m *Manager) run(ctx context.Context, f namedFunc) error {
	ctx, cancel := context.WithTimeout(ctx, m.timeout)
	defer cancel()

	start := time.Now()
	err := f.fn(ctx)
	if err != nil {
		m.logger.Error("Shutdown function failed",
			zap.String("name", f.name),
			zap.Error(err),
			zap.Duration("duration", time.Since(start)))
		return err
	}
	m.logger.Info("Shutdown function completed",
		zap.String("name", f.name),
		zap.Duration("duration", time.Since(start)))
	return nil
}

// ShutdownHTTPServer возвращает функцию остановки для http.Server
func ShutdownHTTPServer(srv interface {
	Shutdown(context.Context) error
}) func(context.Context) error {
	return srv.Shutdown
}

// ClosePool возвращает функцию остановки для пула соединений (pgxpool)
func ClosePool(pool interface {
	Close()
}) func(context.Context) error {
	return func(context.Context) error {
		pool.Close()
		return nil
	}
}

// Close возвращает функцию остановки для io.Closer (redis client, kafka writer)
func Close(c interface {
	Close() error
}) func(context.Context) error {
	return func(context.Context) error {
		return c.Close()
	}
}
