package http

import (
	"context"
	"net/http"
	"time"

	"github.com/goccy/go-json"
)

// Check - именованная проверка готовности зависимости (postgres, redis, ...)
type Check struct {
	Name string
	Fn   func(ctx context.Context) error
}

type response struct {
	Status string            `json:"status"`
	Checks map[string]string `json:"checks,omitempty"`
}

// Handler возвращает 200 {"status":"ok"}, если все проверки прошли,
// иначе 503 {"status":"not ready"} с ошибкой по каждой упавшей проверке.
func Handler(timeout time.Duration, checks ...Check) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), timeout)
		defer cancel()

		resp := response{Status: "ok"}
		status := http.StatusOK
		if len(checks) > 0 {
			resp.Checks = make(map[string]string, len(checks))
		}
		for _, c := range checks {
			if err := c.Fn(ctx); err != nil {
				resp.Checks[c.Name] = err.Error()
				resp.Status = "not ready"
				status = http.StatusServiceUnavailable
				continue
			}
			resp.Checks[c.Name] = "ok"
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
