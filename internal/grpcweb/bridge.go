// Package grpcweb lets browsers speak to the gRPC server. Requests arrive as
// gRPC-Web over HTTP/1.1 and are replayed byte-for-byte on a native gRPC
// connection, so the bridge never decodes message bodies.
package grpcweb

import (
	"encoding/binary"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

const (
	maxBody      = 4 << 20
	frameData    = 0x00
	frameTrailer = 0x80
)

type Bridge struct {
	conn     grpc.ClientConnInterface
	allowAny bool
	allow    map[string]struct{}
	log      logrus.FieldLogger
}

// New bridges onto conn. Origins listed in allowedOrigins (or any origin when
// the list holds "*") get CORS headers; an empty list allows none.
func New(conn grpc.ClientConnInterface, allowedOrigins []string, log logrus.FieldLogger) *Bridge {
	b := &Bridge{conn: conn, allow: map[string]struct{}{}, log: log}
	for _, o := range allowedOrigins {
		o = strings.TrimSpace(o)
		switch o {
		case "":
		case "*":
			b.allowAny = true
		default:
			b.allow[o] = struct{}{}
		}
	}
	return b
}

func (b *Bridge) originAllowed(origin string) bool {
	if origin == "" {
		return false
	}
	_, ok := b.allow[origin]
	return ok || b.allowAny
}

// ServeHTTP handles POST /{service}/{method}.
func (b *Bridge) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if origin := r.Header.Get("Origin"); b.originAllowed(origin) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", origin)
		h.Add("Vary", "Origin")
		h.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		h.Set("Access-Control-Allow-Headers",
			"Content-Type, X-Grpc-Web, X-User-Agent, Authorization, x-grpc-web")
		h.Set("Access-Control-Expose-Headers",
			"Grpc-Status, Grpc-Message, Grpc-Status-Details-Bin, grpc-status, grpc-message")
		h.Set("Access-Control-Max-Age", "86400")
	}

	if r.Method == http.MethodOptions {
		w.WriteHeader(http.StatusOK)
		return
	}
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	ct := r.Header.Get("Content-Type")
	// grpc-web-text (base64) is not supported
	if !strings.HasPrefix(ct, "application/grpc-web") || strings.HasPrefix(ct, "application/grpc-web-text") {
		http.Error(w, "not grpc-web", http.StatusUnsupportedMediaType)
		return
	}
	b.forward(w, r)
}

func (b *Bridge) forward(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBody))
	if err != nil {
		writeError(w, codes.ResourceExhausted, "request body too large")
		return
	}
	payload, err := unframe(body)
	if err != nil {
		writeError(w, codes.InvalidArgument, err.Error())
		return
	}

	md := metadata.MD{}
	if vals := r.Header.Values("Authorization"); len(vals) > 0 {
		md.Set("authorization", vals...)
	}
	if id := middleware.GetReqID(r.Context()); id != "" {
		md.Set("x-request-id", id)
	}
	ctx := metadata.NewOutgoingContext(r.Context(), md)

	resp := &rawMsg{}
	if err := b.conn.Invoke(ctx, r.URL.Path, &rawMsg{data: payload}, resp, grpc.ForceCodec(rawCodec{})); err != nil {
		st := status.Convert(err)
		b.log.WithFields(logrus.Fields{"method": r.URL.Path, "code": st.Code().String()}).Debug("grpc-web call failed")
		writeError(w, st.Code(), st.Message())
		return
	}
	writeSuccess(w, resp.data)
}

// unframe extracts the single message of a unary request:
// 1-byte flag + 4-byte big-endian length + payload.
func unframe(body []byte) ([]byte, error) {
	if len(body) < 5 {
		return nil, fmt.Errorf("body too short")
	}
	n := binary.BigEndian.Uint32(body[1:5])
	if uint64(n)+5 > uint64(len(body)) {
		return nil, fmt.Errorf("incomplete frame")
	}
	return body[5 : 5+n], nil
}

// rawMsg wraps raw protobuf bytes.
type rawMsg struct{ data []byte }

// rawCodec passes bytes through without marshal/unmarshal.
type rawCodec struct{}

func (rawCodec) Marshal(v any) ([]byte, error) {
	return v.(*rawMsg).data, nil
}

func (rawCodec) Unmarshal(data []byte, v any) error {
	m := v.(*rawMsg)
	m.data = append([]byte(nil), data...)
	return nil
}

func (rawCodec) Name() string { return "raw" }

func frame(flag byte, data []byte) []byte {
	f := make([]byte, 5+len(data))
	f[0] = flag
	binary.BigEndian.PutUint32(f[1:5], uint32(len(data)))
	copy(f[5:], data)
	return f
}

var msgEscaper = strings.NewReplacer("\r", " ", "\n", " ")

func writeError(w http.ResponseWriter, code codes.Code, msg string) {
	w.Header().Set("Content-Type", "application/grpc-web+proto")
	w.WriteHeader(http.StatusOK)
	trailer := fmt.Sprintf("grpc-status:%d\r\ngrpc-message:%s\r\n", code, msgEscaper.Replace(msg))
	w.Write(frame(frameTrailer, []byte(trailer)))
}

func writeSuccess(w http.ResponseWriter, data []byte) {
	w.Header().Set("Content-Type", "application/grpc-web+proto")
	w.WriteHeader(http.StatusOK)
	w.Write(frame(frameData, data))
	w.Write(frame(frameTrailer, []byte("grpc-status:0\r\n")))
}
