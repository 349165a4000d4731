package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/sthacker-ai/NexusLog/internal/adapter/filestore"
	"github.com/sthacker-ai/NexusLog/internal/adapter/linkmeta"
	"github.com/sthacker-ai/NexusLog/internal/adapter/llm"
	"github.com/sthacker-ai/NexusLog/internal/adapter/postgres"
	categoryrepo "github.com/sthacker-ai/NexusLog/internal/adapter/postgres/category"
	entryrepo "github.com/sthacker-ai/NexusLog/internal/adapter/postgres/entry"
	idearepo "github.com/sthacker-ai/NexusLog/internal/adapter/postgres/idea"
	projectrepo "github.com/sthacker-ai/NexusLog/internal/adapter/postgres/project"
	settingrepo "github.com/sthacker-ai/NexusLog/internal/adapter/postgres/setting"
	usagerepo "github.com/sthacker-ai/NexusLog/internal/adapter/postgres/usage"
	redisadapter "github.com/sthacker-ai/NexusLog/internal/adapter/redis"
	tgapi "github.com/sthacker-ai/NexusLog/internal/adapter/telegram"
	"github.com/sthacker-ai/NexusLog/internal/config"
	"github.com/sthacker-ai/NexusLog/internal/service/category"
	"github.com/sthacker-ai/NexusLog/internal/service/entry"
	"github.com/sthacker-ai/NexusLog/internal/service/idea"
	"github.com/sthacker-ai/NexusLog/internal/service/intake"
	"github.com/sthacker-ai/NexusLog/internal/service/project"
	"github.com/sthacker-ai/NexusLog/internal/service/setting"
	"github.com/sthacker-ai/NexusLog/internal/telemetry"
	"github.com/sthacker-ai/NexusLog/internal/transport/middleware"
	"github.com/sthacker-ai/NexusLog/internal/transport/rest"
	"github.com/sthacker-ai/NexusLog/internal/transport/telegram"
)

const rateLimitCleanup = 5 * time.Minute

// Run is the application entry point. It loads configuration, connects to
// PostgreSQL, wires adapters, services and transports, and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.InfoContext(ctx, "starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	metrics := telemetry.New()

	handler, cleanup, err := NewHandler(ctx, cfg, logger, pool, metrics)
	if err != nil {
		return err
	}
	defer cleanup()

	return serve(ctx, cfg.Server, handler, logger)
}

// NewHandler wires adapters, services and transports behind the middleware
// chain. The returned cleanup releases background resources.
func NewHandler(
	ctx context.Context,
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	metrics *telemetry.Metrics,
) (http.Handler, func(), error) {
	txm := postgres.NewTxManager(pool)
	categories := categoryrepo.New(pool)
	entries := entryrepo.New(pool)
	ideas := idearepo.New(pool)
	projects := projectrepo.New(pool)
	settings := settingrepo.New(pool)
	usage := usagerepo.New(pool)

	classifier := llm.NewClient(cfg.LLM, usage, logger)
	if !cfg.LLM.Enabled() {
		logger.WarnContext(ctx, "llm api key not set, messages will be stored unclassified")
	}

	categorySvc := category.NewService(logger, categories, cfg.Category)
	if _, err := categorySvc.EnsureDefault(ctx); err != nil {
		return nil, nil, fmt.Errorf("ensure default category: %w", err)
	}

	intakeSvc := intake.NewService(logger, classifier, categorySvc, entries, ideas, txm, metrics, intake.Options{
		DefaultCategory: cfg.Category.DefaultName,
		ClassifyTimeout: cfg.LLM.Timeout,
		IdeaPrompts:     cfg.LLM.IdeaPrompts,
	})

	// A nil prompter gives manual ideas the plain fallback brief.
	var prompter interface {
		GenerateIdeaPrompt(ctx context.Context, idea string) (string, error)
	}
	if cfg.LLM.Enabled() && cfg.LLM.IdeaPrompts {
		prompter = classifier
	}
	entrySvc := entry.NewService(logger, entries, ideas, categories, intakeSvc, prompter, txm)

	files := filestore.NewLocal(cfg.FileStore.Root)

	rl := middleware.NewRateLimiter(cfg.RateLimit, rateLimitCleanup)
	closers := []func(){rl.Stop}
	cleanup := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			closers[i]()
		}
	}

	health := rest.NewHealthHandler(pool, BuildVersion())
	handlers := rest.Handlers{
		Health:     health,
		Entries:    rest.NewEntryHandler(entrySvc, logger),
		Categories: rest.NewCategoryHandler(categorySvc, logger),
		Ideas:      rest.NewIdeaHandler(idea.NewService(logger, ideas), logger),
		Projects:   rest.NewProjectHandler(project.NewService(logger, projects), logger),
		Settings:   rest.NewSettingHandler(setting.NewService(logger, settings), logger),
		Media:      rest.NewMediaHandler(files, logger),
		Metrics:    metrics.Handler(),
	}

	if cfg.Telegram.Enabled() {
		deps := telegram.Deps{
			Bot:        tgapi.NewClient(cfg.Telegram, logger),
			Intake:     intakeSvc,
			Categories: categorySvc,
			Entries:    entries,
			Files:      files,
			Metrics:    metrics,
		}
		if cfg.LinkMeta.Enabled {
			deps.Links = linkmeta.NewExtractor(cfg.LinkMeta, logger)
		}
		if cfg.Redis.Addr != "" {
			client := redisadapter.NewClient(cfg.Redis)
			closers = append(closers, func() { _ = client.Close() })
			dedup := redisadapter.NewDeduper(client, cfg.Redis.DedupTTL)
			if err := dedup.Ping(ctx); err != nil {
				logger.WarnContext(ctx, "redis unreachable, dedup calls will fail open", slog.String("error", err.Error()))
			}
			deps.Dedup = dedup
			health.WithOptional("redis", dedup)
		}
		if cfg.Telegram.WebhookSecret == "" {
			logger.WarnContext(ctx, "telegram webhook secret not set, requests are not authenticated")
		}
		handlers.Telegram = telegram.NewHandler(logger, cfg.Telegram.WebhookSecret, deps)
	} else {
		logger.WarnContext(ctx, "telegram bot token not set, webhook route disabled")
	}

	mux := rest.NewRouter(handlers)

	// Metrics sits innermost: the mux sets r.Pattern on the request it is given.
	chain := middleware.Chain(
		middleware.Recovery(logger),
		middleware.RequestID(),
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
		rl.Limit(),
		middleware.Metrics(metrics),
	)

	return chain(mux), cleanup, nil
}
