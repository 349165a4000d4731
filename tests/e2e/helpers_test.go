//go:build e2e

package e2e_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/sthacker-ai/NexusLog/internal/adapter/postgres/testhelper"
	"github.com/sthacker-ai/NexusLog/internal/app"
	"github.com/sthacker-ai/NexusLog/internal/config"
	"github.com/sthacker-ai/NexusLog/internal/telemetry"
)

const (
	botToken      = "123456:test-token"
	webhookSecret = "e2e-secret"
	maxTopLevel   = 3
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL      string
	Client   *http.Client
	Pool     *pgxpool.Pool
	LLM      *fakeLLM
	Telegram *fakeTelegram
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer bootstraps the application against a real PostgreSQL
// container and fake LLM and Telegram APIs. Tables are emptied first, so
// tests in this package must not run in parallel. opts adjust the config
// before the handler is built.
func setupTestServer(t *testing.T, opts ...func(*config.Config)) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	resetTables(t, pool)

	llm := newFakeLLM(t)
	tg := newFakeTelegram(t)

	cfg := &config.Config{
		Log:       config.LogConfig{Level: "debug", Format: "text"},
		CORS:      config.CORSConfig{AllowedOrigins: "*", AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS", AllowedHeaders: "Content-Type"},
		RateLimit: config.RateLimitConfig{},
		Category:  config.CategoryConfig{MaxTopLevel: maxTopLevel, DefaultName: "General Notes"},
		LLM: config.LLMConfig{
			APIKey:    "test-key",
			BaseURL:   llm.srv.URL,
			Model:     "claude-test",
			MaxTokens: 512,
			Timeout:   5 * time.Second,
		},
		Telegram: config.TelegramConfig{
			BotToken:      botToken,
			WebhookSecret: webhookSecret,
			APIBaseURL:    tg.srv.URL,
			Timeout:       5 * time.Second,
			MaxFileSize:   1 << 20,
		},
		FileStore: config.FileStoreConfig{Root: t.TempDir()},
	}

	for _, o := range opts {
		o(cfg)
	}

	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, &slog.HandlerOptions{Level: slog.LevelDebug}))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	handler, cleanup, err := app.NewHandler(ctx, cfg, logger, pool, telemetry.New())
	require.NoError(t, err)
	t.Cleanup(cleanup)

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return &testServer{
		URL:      srv.URL,
		Client:   srv.Client(),
		Pool:     pool,
		LLM:      llm,
		Telegram: tg,
	}
}

func resetTables(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE content_ideas, entries, projects, settings, usage_logs, categories RESTART IDENTITY CASCADE`)
	require.NoError(t, err)
}

// do sends a JSON request and decodes a JSON object response.
func (ts *testServer) do(t *testing.T, method, path string, body any) (int, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, out
}

// webhook posts a Telegram update with the configured secret.
func (ts *testServer) webhook(t *testing.T, update string) int {
	t.Helper()

	req, err := http.NewRequest(http.MethodPost, ts.URL+"/api/telegram/webhook", strings.NewReader(update))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Telegram-Bot-Api-Secret-Token", webhookSecret)

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()
	return resp.StatusCode
}

// ---------------------------------------------------------------------------
// Fake Messages API
// ---------------------------------------------------------------------------

type fakeLLM struct {
	srv *httptest.Server

	mu    sync.Mutex
	reply string
	fail  bool
}

func newFakeLLM(t *testing.T) *fakeLLM {
	t.Helper()

	f := &fakeLLM{}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.mu.Lock()
		reply, fail := f.reply, f.fail
		f.mu.Unlock()

		w.Header().Set("Content-Type", "application/json")
		if fail {
			w.WriteHeader(http.StatusInternalServerError)
			_, _ = w.Write([]byte(`{"type":"error","error":{"type":"api_error","message":"boom"}}`))
			return
		}

		_ = json.NewEncoder(w).Encode(map[string]any{
			"id":            "msg_e2e",
			"type":          "message",
			"role":          "assistant",
			"model":         "claude-test",
			"stop_reason":   "end_turn",
			"stop_sequence": nil,
			"content":       []map[string]any{{"type": "text", "text": reply}},
			"usage":         map[string]any{"input_tokens": 50, "output_tokens": 10},
		})
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeLLM) Reply(reply string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reply, f.fail = reply, false
}

func (f *fakeLLM) Fail() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.fail = true
}

// ---------------------------------------------------------------------------
// Fake Bot API
// ---------------------------------------------------------------------------

type sentMessage struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type fakeTelegram struct {
	srv *httptest.Server

	mu   sync.Mutex
	sent []sentMessage
}

func newFakeTelegram(t *testing.T) *fakeTelegram {
	t.Helper()

	f := &fakeTelegram{}
	mux := http.NewServeMux()
	mux.HandleFunc("POST /bot"+botToken+"/sendMessage", func(w http.ResponseWriter, r *http.Request) {
		var msg sentMessage
		_ = json.NewDecoder(r.Body).Decode(&msg)
		f.mu.Lock()
		f.sent = append(f.sent, msg)
		f.mu.Unlock()
		_, _ = w.Write([]byte(`{"ok":true,"result":{"message_id":1}}`))
	})
	mux.HandleFunc("POST /bot"+botToken+"/getFile", func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			FileID string `json:"file_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&req)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"ok":     true,
			"result": map[string]any{"file_id": req.FileID, "file_unique_id": "u-" + req.FileID, "file_path": "photos/" + req.FileID + ".jpg"},
		})
	})
	mux.HandleFunc("GET /file/bot"+botToken+"/photos/{name}", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("\xff\xd8\xff\xe0fake-jpeg"))
	})

	f.srv = httptest.NewServer(mux)
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeTelegram) Sent() []sentMessage {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentMessage(nil), f.sent...)
}
