// Package health reports dependency health over gRPC and HTTP.
package health

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/sbilibin2017/gw-vacancies/internal/logger"
	"google.golang.org/grpc"
	grpchealth "google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// ServiceName is the gRPC health service name of the API
const ServiceName = "vacancies.v1.VacancyAPI"

// Check probes a single dependency
type Check func(ctx context.Context) error

// Monitor runs the checks periodically and mirrors the result into a gRPC health server
type Monitor struct {
	server   *grpchealth.Server
	checks   map[string]Check
	interval time.Duration
	timeout  time.Duration
	version  string

	mu     sync.RWMutex
	status map[string]string
}

// NewMonitor creates a Monitor. Statuses start as NOT_SERVING until the first probe.
func NewMonitor(version string, interval time.Duration, checks map[string]Check) *Monitor {
	m := &Monitor{
		server:   grpchealth.NewServer(),
		checks:   checks,
		interval: interval,
		timeout:  interval / 2,
		version:  version,
		status:   make(map[string]string, len(checks)),
	}
	m.server.SetServingStatus(ServiceName, healthpb.HealthCheckResponse_NOT_SERVING)
	return m
}

// Register exposes the health service on a gRPC server
func (m *Monitor) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, m.server)
}

// Probe runs every check once and updates the serving status
func (m *Monitor) Probe(ctx context.Context) bool {
	healthy := true
	status := make(map[string]string, len(m.checks))

	for name, check := range m.checks {
		checkCtx, cancel := context.WithTimeout(ctx, m.timeout)
		err := check(checkCtx)
		cancel()

		if err != nil {
			logger.Log.Warnw("health check failed", "check", name, "err", err)
			status[name] = err.Error()
			healthy = false
			continue
		}
		status[name] = "ok"
	}

	m.mu.Lock()
	m.status = status
	m.mu.Unlock()

	serving := healthpb.HealthCheckResponse_SERVING
	if !healthy {
		serving = healthpb.HealthCheckResponse_NOT_SERVING
	}
	m.server.SetServingStatus(ServiceName, serving)
	m.server.SetServingStatus("", serving)
	return healthy
}

// Run probes until ctx is done, then marks the service as shutting down
func (m *Monitor) Run(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.Probe(ctx)
	for {
		select {
		case <-ctx.Done():
			m.server.Shutdown()
			return
		case <-ticker.C:
			m.Probe(ctx)
		}
	}
}

type response struct {
	Status  string            `json:"status"`
	Version string            `json:"version"`
	Checks  map[string]string `json:"checks"`
}

// Handler serves the last probe result as JSON
func (m *Monitor) Handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp := response{Status: "ok", Version: m.version, Checks: make(map[string]string, len(m.checks))}

		m.mu.RLock()
		for name, s := range m.status {
			resp.Checks[name] = s
			if s != "ok" {
				resp.Status = "unavailable"
			}
		}
		m.mu.RUnlock()

		if len(resp.Checks) < len(m.checks) {
			resp.Status = "starting"
		}

		code := http.StatusOK
		if resp.Status != "ok" {
			code = http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		_ = json.NewEncoder(w).Encode(resp)
	}
}
