package logger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

func TestBuildAddsComponentAndLevel(t *testing.T) {
	var buf bytes.Buffer
	l := Build(Config{Level: "warn", Component: "api"}, &buf)
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.InfoLevel) })

	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	if len(lines) != 1 {
		t.Fatalf("lines=%d want 1: %s", len(lines), buf.String())
	}
	var entry map[string]any
	if err := json.Unmarshal(lines[0], &entry); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if entry["component"] != "api" {
		t.Fatalf("component=%v want api", entry["component"])
	}
	if entry["msg"] != "kept" {
		t.Fatalf("msg=%v want kept", entry["msg"])
	}
	if _, ok := entry["timestamp"]; !ok {
		t.Fatal("timestamp missing")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"debug":   zerolog.DebugLevel,
		" WARN ":  zerolog.WarnLevel,
		"error":   zerolog.ErrorLevel,
		"off":     zerolog.Disabled,
		"":        zerolog.InfoLevel,
		"verbose": zerolog.InfoLevel,
	}
	for in, want := range cases {
		if got := ParseLevel(in); got != want {
			t.Fatalf("ParseLevel(%q)=%v want %v", in, got, want)
		}
	}
}

func TestAccessLogRecordsStatus(t *testing.T) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	var buf bytes.Buffer
	l := zerolog.New(&buf)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(AccessLog(l))
	r.Get("/teapot", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
		_, _ = w.Write([]byte("short and stout"))
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/teapot", nil))
	if rec.Code != http.StatusTeapot {
		t.Fatalf("status=%d want 418", rec.Code)
	}

	var entry map[string]any
	if err := json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry); err != nil {
		t.Fatalf("decode %q: %v", buf.String(), err)
	}
	if entry["status"] != float64(http.StatusTeapot) {
		t.Fatalf("status field=%v", entry["status"])
	}
	if entry["bytes"] != float64(len("short and stout")) {
		t.Fatalf("bytes field=%v", entry["bytes"])
	}
	if entry["path"] != "/teapot" {
		t.Fatalf("path field=%v", entry["path"])
	}
	if id, _ := entry["request_id"].(string); id == "" {
		t.Fatal("request_id missing")
	}
}
