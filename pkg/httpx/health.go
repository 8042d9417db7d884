package httpx

import (
	"context"
	"net/http"
	"time"
)

const healthProbeTimeout = 2 * time.Second

// HealthChecker is satisfied by any dependency exposing a Ping method
// (pgxpool.Pool, cache.RedisClient and events.EventBus all qualify).
type HealthChecker interface {
	Ping(ctx context.Context) error
}

// HealthChecks lists the dependencies probed by the health endpoint.
type HealthChecks struct {
	Database HealthChecker
	Redis    HealthChecker
	EventBus HealthChecker
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Redis    string `json:"redis"`
	EventBus string `json:"event_bus"`
}

// HealthHandler probes every registered checker within a shared 2s deadline.
// Any failing probe marks that dependency "unreachable" and degrades the
// overall status to 503.
func HealthHandler(checks HealthChecks) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthProbeTimeout)
		defer cancel()

		resp := healthResponse{Status: "ok", Database: "ok", Redis: "ok", EventBus: "ok"}

		probes := []struct {
			checker HealthChecker
			state   *string
		}{
			{checks.Database, &resp.Database},
			{checks.Redis, &resp.Redis},
			{checks.EventBus, &resp.EventBus},
		}
		for _, p := range probes {
			if err := p.checker.Ping(ctx); err != nil {
				resp.Status = "degraded"
				*p.state = "unreachable"
			}
		}

		status := http.StatusOK
		if resp.Status != "ok" {
			status = http.StatusServiceUnavailable
		}
		JSON(w, status, resp)
	}
}
