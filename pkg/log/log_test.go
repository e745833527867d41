package log

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/weiawesome/wes-io-live/ulid-service/pkg/ulid"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"":        zerolog.InfoLevel,
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"warning": zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"bogus":   zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Errorf("parse level %q: got %v, want %v", in, got, want)
		}
	}
}

func TestNewWritesServiceField(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Level: "info", ServiceName: "ulid-service", Output: &buf})
	logger.Info().Msg("hello")
	logger.Debug().Msg("dropped")

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry[FieldService] != "ulid-service" {
		t.Fatalf("service field: got %v", entry[FieldService])
	}
	if entry["message"] != "hello" {
		t.Fatalf("message: got %v", entry["message"])
	}
}

func TestCtxFallsBackToGlobal(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Config{Output: &buf})
	ctx := WithLogger(context.Background(), logger)

	l := Ctx(ctx)
	l.Info().Msg("from ctx")
	if buf.Len() == 0 {
		t.Fatal("expected context logger to be used")
	}

	if got := RequestID(context.Background()); got != "" {
		t.Fatalf("request id: got %q, want empty", got)
	}
}

func TestNewRequestIDIsULID(t *testing.T) {
	id := NewRequestID()
	if _, err := ulid.Parse(id); err != nil {
		t.Fatalf("request id %q: %v", id, err)
	}
}

func TestGinMiddlewareRequestID(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var buf bytes.Buffer
	r := gin.New()
	r.Use(GinMiddleware(New(Config{Output: &buf})))
	var seen string
	r.GET("/ping", func(c *gin.Context) {
		seen = RequestID(c.Request.Context())
		c.Set(FieldIDFormat, "ulid")
		c.Status(http.StatusNoContent)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))

	got := w.Header().Get(headerRequestID)
	if _, err := ulid.Parse(got); err != nil {
		t.Fatalf("generated request id %q: %v", got, err)
	}
	if seen != got {
		t.Fatalf("context request id %q, header %q", seen, got)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry[FieldIDFormat] != "ulid" || entry[FieldStatus] != float64(http.StatusNoContent) {
		t.Fatalf("log entry: %v", entry)
	}

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.Header.Set(headerRequestID, "caller-id")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	if got := w.Header().Get(headerRequestID); got != "caller-id" {
		t.Fatalf("expected caller request id to be kept, got %q", got)
	}
}

func TestUnaryServerInterceptorRequestID(t *testing.T) {
	var buf bytes.Buffer
	intercept := UnaryServerInterceptor(New(Config{Output: &buf}))
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	ctx := metadata.NewIncomingContext(context.Background(), metadata.Pairs(metadataKeyRequestID, "abc"))
	_, err := intercept(ctx, nil, info, func(ctx context.Context, req any) (any, error) {
		if got := RequestID(ctx); got != "abc" {
			t.Errorf("request id: got %q, want abc", got)
		}
		return "ok", nil
	})
	if err != nil {
		t.Fatalf("intercept: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode log line %q: %v", buf.String(), err)
	}
	if entry[FieldGRPCMethod] != info.FullMethod || entry[FieldGRPCCode] != "OK" {
		t.Fatalf("log entry: %v", entry)
	}
}
