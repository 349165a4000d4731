// Package telegram turns Telegram webhook updates into intake runs and
// replies to the sender with the outcome.
package telegram

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/sthacker-ai/NexusLog/internal/adapter/linkmeta"
	tgapi "github.com/sthacker-ai/NexusLog/internal/adapter/telegram"
	"github.com/sthacker-ai/NexusLog/internal/domain"
	"github.com/sthacker-ai/NexusLog/internal/service/intake"
	"github.com/sthacker-ai/NexusLog/internal/telemetry"
	"github.com/sthacker-ai/NexusLog/pkg/ctxutil"
)

// SecretHeader carries the webhook secret registered with setWebhook.
const SecretHeader = "X-Telegram-Bot-Api-Secret-Token"

const maxUpdateBytes = 1 << 20

type bot interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	DownloadFile(ctx context.Context, fileID string) ([]byte, string, error)
}

type ingester interface {
	Ingest(ctx context.Context, input intake.IngestInput) (*domain.IngestResult, error)
}

type categoryLister interface {
	List(ctx context.Context) ([]domain.Category, error)
}

type audioFinder interface {
	FindByFileUniqueID(ctx context.Context, fileUniqueID string) (*domain.Entry, error)
}

type linkReader interface {
	Extract(ctx context.Context, pageURL string) (*linkmeta.Metadata, error)
}

type fileSaver interface {
	Save(ctx context.Context, dir, name string, data []byte) (string, error)
}

type deduper interface {
	FirstSeen(ctx context.Context, updateID int64) (bool, error)
	Forget(ctx context.Context, updateID int64) error
}

// Deps are the collaborators of a Handler. Links and Dedup are optional.
type Deps struct {
	Bot        bot
	Intake     ingester
	Categories categoryLister
	Entries    audioFinder
	Files      fileSaver
	Links      linkReader
	Dedup      deduper
	Metrics    *telemetry.Metrics
}

// Handler serves POST /api/telegram/webhook.
type Handler struct {
	deps   Deps
	secret string
	log    *slog.Logger
}

// NewHandler creates a Handler. An empty secret skips the header check.
func NewHandler(logger *slog.Logger, secret string, deps Deps) *Handler {
	return &Handler{
		deps:   deps,
		secret: secret,
		log:    logger.With("handler", "telegram"),
	}
}

// ServeHTTP accepts one update. Once the secret and body check out the reply
// is always 200: Telegram redelivers on anything else, and processing
// failures are reported to the chat instead.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if h.secret != "" {
		got := r.Header.Get(SecretHeader)
		if subtle.ConstantTimeCompare([]byte(got), []byte(h.secret)) != 1 {
			h.log.WarnContext(r.Context(), "webhook secret mismatch")
			writeJSON(w, http.StatusUnauthorized, map[string]any{"ok": false, "error": "unauthorized"})
			return
		}
	}

	var upd tgapi.Update
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxUpdateBytes)).Decode(&upd); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"ok": false, "error": "invalid update"})
		return
	}

	// Processing outlives a dropped webhook connection.
	ctx := context.WithoutCancel(r.Context())

	if h.deps.Dedup != nil {
		first, err := h.deps.Dedup.FirstSeen(ctx, upd.UpdateID)
		switch {
		case err != nil:
			h.log.WarnContext(ctx, "update dedup unavailable", slog.String("error", err.Error()))
		case !first:
			h.deps.Metrics.TelegramUpdate("duplicate")
			h.log.InfoContext(ctx, "duplicate update skipped", slog.Int64("update_id", upd.UpdateID))
			writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
			return
		}
	}

	if failed := h.process(ctx, upd); failed && h.deps.Dedup != nil {
		if err := h.deps.Dedup.Forget(ctx, upd.UpdateID); err != nil {
			h.log.WarnContext(ctx, "forget failed update", slog.String("error", err.Error()))
		}
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// process routes the update and sends the reply. It reports whether
// processing failed.
func (h *Handler) process(ctx context.Context, upd tgapi.Update) bool {
	msg := upd.EffectiveMessage()
	if msg == nil {
		h.deps.Metrics.TelegramUpdate(kindIgnored)
		h.log.DebugContext(ctx, "update without message", slog.Int64("update_id", upd.UpdateID))
		return false
	}

	ctx = ctxutil.WithChatID(ctx, msg.Chat.ID)
	kind := messageKind(msg)
	h.deps.Metrics.TelegramUpdate(kind)

	h.log.InfoContext(ctx, "telegram update",
		slog.Int64("update_id", upd.UpdateID),
		slog.Int64("chat_id", msg.Chat.ID),
		slog.String("kind", kind),
	)

	reply, err := h.route(ctx, kind, msg)
	if err != nil {
		h.log.ErrorContext(ctx, "process update",
			slog.Int64("update_id", upd.UpdateID),
			slog.String("kind", kind),
			slog.String("error", err.Error()),
		)
		reply = errorReply(err)
	}

	if reply != "" {
		if sendErr := h.deps.Bot.SendMessage(ctx, msg.Chat.ID, reply); sendErr != nil {
			h.log.ErrorContext(ctx, "send reply", slog.String("error", sendErr.Error()))
		}
	}
	return err != nil
}

func (h *Handler) route(ctx context.Context, kind string, msg *tgapi.Message) (string, error) {
	switch kind {
	case kindCommand:
		return h.handleCommand(ctx, msg.Text)
	case kindText:
		return h.handleText(ctx, msg)
	case kindPhoto:
		return h.handlePhoto(ctx, msg)
	case kindAudio:
		return h.handleAudio(ctx, msg)
	case kindVideo:
		return h.handleVideo(ctx, msg)
	case kindDocument:
		return h.handleDocument(ctx, msg)
	default:
		return replyUnsupported, nil
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}
