package health

import (
	"context"
	"encoding/json"
	"errors"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"
)

func startGRPC(t *testing.T, m *Monitor) healthpb.HealthClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	s := grpc.NewServer()
	m.Register(s)
	go func() { _ = s.Serve(lis) }()
	t.Cleanup(s.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return healthpb.NewHealthClient(conn)
}

func TestMonitor_GRPCStatus(t *testing.T) {
	dbErr := errors.New("connection refused")
	var failing bool

	m := NewMonitor("test", time.Second, map[string]Check{
		"postgres": func(ctx context.Context) error {
			if failing {
				return dbErr
			}
			return nil
		},
		"redis": func(ctx context.Context) error { return nil },
	})
	client := startGRPC(t, m)
	ctx := context.Background()

	resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())

	assert.True(t, m.Probe(ctx))
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{Service: ServiceName})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())

	failing = true
	assert.False(t, m.Probe(ctx))
	resp, err = client.Check(ctx, &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestMonitor_Handler(t *testing.T) {
	var failing bool
	m := NewMonitor("1.2.3", time.Second, map[string]Check{
		"postgres": func(ctx context.Context) error {
			if failing {
				return errors.New("timeout")
			}
			return nil
		},
	})

	tests := []struct {
		name       string
		probe      bool
		failing    bool
		wantCode   int
		wantStatus string
	}{
		{name: "before first probe", wantCode: http.StatusServiceUnavailable, wantStatus: "starting"},
		{name: "healthy", probe: true, wantCode: http.StatusOK, wantStatus: "ok"},
		{name: "unhealthy", probe: true, failing: true, wantCode: http.StatusServiceUnavailable, wantStatus: "unavailable"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			failing = tt.failing
			if tt.probe {
				m.Probe(context.Background())
			}

			w := httptest.NewRecorder()
			m.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))

			assert.Equal(t, tt.wantCode, w.Code)

			var body response
			require.NoError(t, json.NewDecoder(w.Body).Decode(&body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, "1.2.3", body.Version)
		})
	}
}

func TestMonitor_RunStopsWithContext(t *testing.T) {
	probes := make(chan struct{}, 10)
	m := NewMonitor("test", 10*time.Millisecond, map[string]Check{
		"noop": func(ctx context.Context) error {
			select {
			case probes <- struct{}{}:
			default:
			}
			return nil
		},
	})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()

	<-probes
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
