package grpcweb

import (
	"bytes"
	"context"
	"encoding/binary"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"clinic-crm/internal/auth"
	"clinic-crm/internal/handler"
	"clinic-crm/internal/middleware"
	"clinic-crm/internal/rpc"
	"clinic-crm/internal/store"
	"clinic-crm/pkg/logging"
)

func newBridge(t *testing.T, origins ...string) *Bridge {
	t.Helper()
	tokens := auth.NewTokens("test-secret", time.Hour)
	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(
		grpc.ForceServerCodec(rpc.Codec{}),
		grpc.ChainUnaryInterceptor(middleware.Auth(tokens)),
	)
	rpc.RegisterCRMServer(srv, handler.New(store.New(), tokens))
	go srv.Serve(lis)
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return New(conn, origins, logging.Discard())
}

func post(b *Bridge, method string, msg rpc.Message, hdr map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, rpc.FullMethod(method), bytes.NewReader(frame(frameData, msg.AppendWire(nil))))
	req.Header.Set("Content-Type", "application/grpc-web+proto")
	for k, v := range hdr {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	b.ServeHTTP(rec, req)
	return rec
}

// frames splits a grpc-web response body into data payload and trailer text.
func frames(t *testing.T, body []byte) (data []byte, trailer string) {
	t.Helper()
	for len(body) > 0 {
		require.GreaterOrEqual(t, len(body), 5)
		n := binary.BigEndian.Uint32(body[1:5])
		payload := body[5 : 5+n]
		if body[0]&frameTrailer != 0 {
			trailer = string(payload)
		} else {
			data = payload
		}
		body = body[5+n:]
	}
	return data, trailer
}

func TestBridgeForwards(t *testing.T) {
	b := newBridge(t)

	rec := post(b, "Register", &rpc.RegisterRequest{Email: "web@clinic.test", Password: "testpass123", Name: "Web"}, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	data, trailer := frames(t, rec.Body.Bytes())
	assert.Equal(t, "grpc-status:0\r\n", trailer)

	var ar rpc.AuthResponse
	require.NoError(t, ar.ConsumeWire(data))
	require.NotEmpty(t, ar.Token)

	// the Authorization header travels as grpc metadata
	rec = post(b, "ListAppointments", &rpc.AppointmentQuery{}, map[string]string{"Authorization": "Bearer " + ar.Token})
	_, trailer = frames(t, rec.Body.Bytes())
	assert.Equal(t, "grpc-status:0\r\n", trailer)
}

func TestBridgeErrors(t *testing.T) {
	b := newBridge(t)

	rec := post(b, "ListAppointments", &rpc.AppointmentQuery{}, nil)
	_, trailer := frames(t, rec.Body.Bytes())
	assert.Contains(t, trailer, "grpc-status:16")

	req := httptest.NewRequest(http.MethodPost, rpc.FullMethod("Login"), strings.NewReader("\x00\x00"))
	req.Header.Set("Content-Type", "application/grpc-web+proto")
	rec = httptest.NewRecorder()
	b.ServeHTTP(rec, req)
	_, trailer = frames(t, rec.Body.Bytes())
	assert.Contains(t, trailer, "grpc-status:3")

	req = httptest.NewRequest(http.MethodPost, rpc.FullMethod("Login"), nil)
	req.Header.Set("Content-Type", "application/json")
	rec = httptest.NewRecorder()
	b.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnsupportedMediaType, rec.Code)

	rec = httptest.NewRecorder()
	b.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, rpc.FullMethod("Login"), nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestBridgeCORS(t *testing.T) {
	b := newBridge(t, "https://app.clinic.test")

	req := httptest.NewRequest(http.MethodOptions, rpc.FullMethod("Login"), nil)
	req.Header.Set("Origin", "https://app.clinic.test")
	rec := httptest.NewRecorder()
	b.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "https://app.clinic.test", rec.Header().Get("Access-Control-Allow-Origin"))

	req.Header.Set("Origin", "https://evil.test")
	rec = httptest.NewRecorder()
	b.ServeHTTP(rec, req)
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	open := New(nil, []string{"*"}, logging.Discard())
	assert.True(t, open.originAllowed("https://whatever.test"))
	assert.False(t, open.originAllowed(""))
}

func TestWriteErrorStripsNewlines(t *testing.T) {
	rec := httptest.NewRecorder()
	writeError(rec, 13, "bad\r\nthing")
	body, _ := io.ReadAll(rec.Body)
	_, trailer := frames(t, body)
	assert.Equal(t, "grpc-status:13\r\ngrpc-message:bad  thing\r\n", trailer)
}
