package middleware

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	otelcodes "go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/peer"
	"google.golang.org/grpc/status"

	"clinic-crm/internal/auth"
	"clinic-crm/internal/observability/metrics"
	"clinic-crm/internal/rpc"
)

func info(name string) *grpc.UnaryServerInfo {
	return &grpc.UnaryServerInfo{FullMethod: rpc.FullMethod(name)}
}

// echoUser returns the user id the handler saw.
func echoUser(ctx context.Context, _ any) (any, error) {
	uid, _ := UserID(ctx)
	return uid, nil
}

func withAuth(token string) context.Context {
	return metadata.NewIncomingContext(context.Background(), metadata.Pairs("authorization", token))
}

func TestAuth(t *testing.T) {
	tokens := auth.NewTokens("s3cret", time.Minute)
	raw, _, err := tokens.Make("user-1", "")
	require.NoError(t, err)
	intercept := Auth(tokens)

	t.Run("open methods skip auth", func(t *testing.T) {
		got, err := intercept(context.Background(), nil, info("Login"), echoUser)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("valid bearer", func(t *testing.T) {
		got, err := intercept(withAuth("Bearer "+raw), nil, info("ListEmails"), echoUser)
		require.NoError(t, err)
		assert.Equal(t, "user-1", got)
	})

	t.Run("scheme is case-insensitive", func(t *testing.T) {
		got, err := intercept(withAuth("bearer "+raw), nil, info("ListEmails"), echoUser)
		require.NoError(t, err)
		assert.Equal(t, "user-1", got)
	})

	tests := []struct {
		name string
		ctx  context.Context
	}{
		{"no metadata", context.Background()},
		{"no token", withAuth("")},
		{"not bearer", withAuth("Basic abc")},
		{"garbage", withAuth("Bearer nope")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := intercept(tt.ctx, nil, info("CreateAppointment"), echoUser)
			assert.Equal(t, codes.Unauthenticated, status.Code(err))
		})
	}
}

func TestUserID(t *testing.T) {
	_, ok := UserID(context.Background())
	assert.False(t, ok)
	_, ok = UserID(WithUserID(context.Background(), ""))
	assert.False(t, ok)
	uid, ok := UserID(WithUserID(context.Background(), "u"))
	assert.True(t, ok)
	assert.Equal(t, "u", uid)
}

func TestRateLimit(t *testing.T) {
	rl := NewRateLimiter(0.001, 2)
	defer rl.Close()
	intercept := RateLimit(rl)

	addr := &net.TCPAddr{IP: net.IPv4(10, 0, 0, 1), Port: 5000}
	ctx := peer.NewContext(context.Background(), &peer.Peer{Addr: addr})
	ok := func(context.Context, any) (any, error) { return "ok", nil }

	for i := 0; i < 2; i++ {
		_, err := intercept(ctx, nil, info("Login"), ok)
		require.NoError(t, err)
	}
	_, err := intercept(ctx, nil, info("Login"), ok)
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))

	_, err = intercept(ctx, nil, info("ListContacts"), ok)
	assert.NoError(t, err, "only auth methods are limited")

	other := peer.NewContext(context.Background(), &peer.Peer{Addr: &net.TCPAddr{IP: net.IPv4(10, 0, 0, 2)}})
	_, err = intercept(other, nil, info("Register"), ok)
	assert.NoError(t, err, "buckets are per peer")
}

func TestRateLimiterSweep(t *testing.T) {
	rl := NewRateLimiter(1, 1)
	defer rl.Close()
	rl.get("a")
	rl.sweep(time.Now().Add(idleAfter + time.Second))
	rl.mu.Lock()
	defer rl.mu.Unlock()
	assert.Empty(t, rl.clients)
}

func TestMetricsInterceptor(t *testing.T) {
	m := metrics.NewRPCMetrics(prometheus.NewRegistry())
	intercept := Metrics(m)
	_, err := intercept(context.Background(), nil, info("Login"), func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "nope")
	})
	assert.Equal(t, codes.NotFound, status.Code(err))

	_, err = Metrics(nil)(context.Background(), nil, info("Login"), echoUser)
	assert.NoError(t, err, "nil metrics are a no-op")
}

func TestTracingInterceptor(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))
	prev := otel.GetTracerProvider()
	otel.SetTracerProvider(tp)
	t.Cleanup(func() { otel.SetTracerProvider(prev) })

	intercept := Tracing()
	_, err := intercept(context.Background(), nil, info("CheckConflict"), func(context.Context, any) (any, error) {
		return nil, status.Error(codes.AlreadyExists, "conflict")
	})
	require.Error(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	assert.Equal(t, "/crm.v1.CRMService/CheckConflict", spans[0].Name())
	assert.Equal(t, otelcodes.Error, spans[0].Status().Code)
}
