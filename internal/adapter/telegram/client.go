// Package telegram is a minimal Telegram Bot API client: sending replies,
// downloading attachments and registering the webhook.
package telegram

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/sthacker-ai/NexusLog/internal/config"
)

// MaxMessageLength is the longest reply sent before truncation. Telegram's
// hard limit is 4096.
const MaxMessageLength = 4000

// ErrFileTooLarge is returned when an attachment exceeds the size cap.
var ErrFileTooLarge = errors.New("telegram: file too large")

// APIError is an ok=false reply from the Bot API.
type APIError struct {
	Method      string
	Code        int
	Description string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("telegram %s: %d %s", e.Method, e.Code, e.Description)
}

// Client calls the Bot API for one bot token.
type Client struct {
	baseURL     string
	token       string
	maxFileSize int64
	httpClient  *http.Client
	log         *slog.Logger
}

// NewClient creates a Client from cfg.
func NewClient(cfg config.TelegramConfig, logger *slog.Logger) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &Client{
		baseURL:     strings.TrimRight(cfg.APIBaseURL, "/"),
		token:       cfg.BotToken,
		maxFileSize: cfg.MaxFileSize,
		httpClient:  &http.Client{Timeout: timeout},
		log:         logger.With("adapter", "telegram"),
	}
}

// SendMessage posts text to chatID. Text longer than MaxMessageLength is cut
// and suffixed with "...".
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string) error {
	payload := map[string]any{
		"chat_id": chatID,
		"text":    TruncateMessage(text),
	}

	var sent struct {
		MessageID int64 `json:"message_id"`
	}
	if err := c.call(ctx, "sendMessage", payload, &sent); err != nil {
		c.log.ErrorContext(ctx, "send message failed",
			slog.Int64("chat_id", chatID),
			slog.String("error", err.Error()),
		)
		return err
	}

	return nil
}

// GetFile resolves fileID to a downloadable file path.
func (c *Client) GetFile(ctx context.Context, fileID string) (*File, error) {
	var f File
	if err := c.call(ctx, "getFile", map[string]any{"file_id": fileID}, &f); err != nil {
		return nil, err
	}
	if f.FilePath == "" {
		return nil, fmt.Errorf("telegram getFile %s: empty file_path", fileID)
	}
	return &f, nil
}

// Download fetches the content at a file path returned by GetFile.
// Returns ErrFileTooLarge when the body exceeds the configured cap.
func (c *Client) Download(ctx context.Context, filePath string) ([]byte, error) {
	reqURL := fmt.Sprintf("%s/file/bot%s/%s", c.baseURL, c.token, strings.TrimLeft(filePath, "/"))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("telegram download: create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("telegram download: %w", redactToken(err, c.token))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("telegram download: unexpected status %d", resp.StatusCode)
	}

	limit := c.maxFileSize
	if limit <= 0 {
		limit = 20 << 20
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, limit+1))
	if err != nil {
		return nil, fmt.Errorf("telegram download: read body: %w", err)
	}
	if int64(len(data)) > limit {
		return nil, ErrFileTooLarge
	}

	return data, nil
}

// DownloadFile resolves fileID and downloads it. It returns the content and
// Telegram's file path, whose extension callers may reuse.
func (c *Client) DownloadFile(ctx context.Context, fileID string) ([]byte, string, error) {
	f, err := c.GetFile(ctx, fileID)
	if err != nil {
		return nil, "", err
	}

	data, err := c.Download(ctx, f.FilePath)
	if err != nil {
		return nil, "", err
	}

	return data, f.FilePath, nil
}

// SetWebhook registers url as the bot's webhook. A non-empty secret is sent
// back by Telegram in the X-Telegram-Bot-Api-Secret-Token header.
func (c *Client) SetWebhook(ctx context.Context, url, secret string) error {
	payload := map[string]any{
		"url":             url,
		"allowed_updates": []string{"message", "edited_message", "channel_post"},
	}
	if secret != "" {
		payload["secret_token"] = secret
	}

	var ok bool
	return c.call(ctx, "setWebhook", payload, &ok)
}

// DeleteWebhook removes the webhook so the bot can be polled instead.
func (c *Client) DeleteWebhook(ctx context.Context) error {
	var ok bool
	return c.call(ctx, "deleteWebhook", map[string]any{}, &ok)
}

// call posts payload as JSON to a Bot API method and decodes the result.
func (c *Client) call(ctx context.Context, method string, payload any, result any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("telegram %s: encode request: %w", method, err)
	}

	reqURL := fmt.Sprintf("%s/bot%s/%s", c.baseURL, c.token, method)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("telegram %s: create request: %w", method, err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.log.DebugContext(ctx, "telegram request", slog.String("method", method))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("telegram %s: %w", method, redactToken(err, c.token))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("telegram %s: read body: %w", method, err)
	}

	var envelope apiResponse[json.RawMessage]
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return fmt.Errorf("telegram %s: decode response (status %d): %w", method, resp.StatusCode, err)
	}

	if !envelope.OK {
		code := envelope.ErrorCode
		if code == 0 {
			code = resp.StatusCode
		}
		return &APIError{Method: method, Code: code, Description: envelope.Description}
	}

	if result != nil && len(envelope.Result) > 0 {
		if err := json.Unmarshal(envelope.Result, result); err != nil {
			return fmt.Errorf("telegram %s: decode result: %w", method, err)
		}
	}

	return nil
}

// TruncateMessage cuts text to MaxMessageLength runes plus "...".
func TruncateMessage(text string) string {
	if utf8.RuneCountInString(text) <= MaxMessageLength {
		return text
	}
	return string([]rune(text)[:MaxMessageLength]) + "..."
}

// redactToken keeps the bot token out of logged transport errors, which
// include the request URL.
func redactToken(err error, token string) error {
	if token == "" || !strings.Contains(err.Error(), token) {
		return err
	}
	return errors.New(strings.ReplaceAll(err.Error(), token, "<token>"))
}
