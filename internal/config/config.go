package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Server    ServerConfig    `yaml:"server"`
	Database  DatabaseConfig  `yaml:"database"`
	Log       LogConfig       `yaml:"log"`
	CORS      CORSConfig      `yaml:"cors"`
	RateLimit RateLimitConfig `yaml:"rate_limit"`
	Category  CategoryConfig  `yaml:"category"`
	LLM       LLMConfig       `yaml:"llm"`
	Telegram  TelegramConfig  `yaml:"telegram"`
	Redis     RedisConfig     `yaml:"redis"`
	FileStore FileStoreConfig `yaml:"file_store"`
	LinkMeta  LinkMetaConfig  `yaml:"link_meta"`
}

// CORSConfig holds CORS settings.
type CORSConfig struct {
	AllowedOrigins   string `yaml:"allowed_origins"   env:"CORS_ALLOWED_ORIGINS"   env-default:"*"`
	AllowedMethods   string `yaml:"allowed_methods"   env:"CORS_ALLOWED_METHODS"   env-default:"GET,POST,PUT,DELETE,OPTIONS"`
	AllowedHeaders   string `yaml:"allowed_headers"   env:"CORS_ALLOWED_HEADERS"   env-default:"Content-Type,X-Request-Id"`
	AllowCredentials bool   `yaml:"allow_credentials" env:"CORS_ALLOW_CREDENTIALS" env-default:"false"`
	MaxAge           int    `yaml:"max_age"           env:"CORS_MAX_AGE"           env-default:"86400"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host            string        `yaml:"host"             env:"SERVER_HOST"             env-default:"0.0.0.0"`
	Port            int           `yaml:"port"             env:"SERVER_PORT"             env-default:"8080"`
	ReadTimeout     time.Duration `yaml:"read_timeout"     env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `yaml:"write_timeout"    env:"SERVER_WRITE_TIMEOUT"    env-default:"60s"`
	IdleTimeout     time.Duration `yaml:"idle_timeout"     env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"10"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"2"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
	AutoMigrate     bool          `yaml:"auto_migrate"       env:"DATABASE_AUTO_MIGRATE"       env-default:"true"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// RateLimitConfig bounds request rates per client IP.
// A zero RPS disables limiting.
type RateLimitConfig struct {
	RPS   float64 `yaml:"rps"   env:"RATE_LIMIT_RPS"   env-default:"20"`
	Burst int     `yaml:"burst" env:"RATE_LIMIT_BURST" env-default:"40"`
}

// CategoryConfig holds category store settings.
type CategoryConfig struct {
	MaxTopLevel int    `yaml:"max_top_level" env:"CATEGORY_MAX_TOP_LEVEL" env-default:"10"`
	DefaultName string `yaml:"default_name"  env:"CATEGORY_DEFAULT_NAME"  env-default:"General Notes"`
}

// LLMConfig holds settings for the text-generation provider.
// An empty APIKey disables classification; every message then takes the
// fallback path.
type LLMConfig struct {
	APIKey             string        `yaml:"api_key"               env:"LLM_API_KEY"`
	BaseURL            string        `yaml:"base_url"              env:"LLM_BASE_URL"`
	Model              string        `yaml:"model"                 env:"LLM_MODEL"                 env-default:"claude-sonnet-4-5"`
	MaxTokens          int64         `yaml:"max_tokens"            env:"LLM_MAX_TOKENS"            env-default:"2048"`
	Timeout            time.Duration `yaml:"timeout"               env:"LLM_TIMEOUT"               env-default:"20s"`
	MaxRetries         int           `yaml:"max_retries"           env:"LLM_MAX_RETRIES"           env-default:"1"`
	InputCostPerToken  float64       `yaml:"input_cost_per_token"  env:"LLM_INPUT_COST_PER_TOKEN"  env-default:"0.000003"`
	OutputCostPerToken float64       `yaml:"output_cost_per_token" env:"LLM_OUTPUT_COST_PER_TOKEN" env-default:"0.000015"`
	IdeaPrompts        bool          `yaml:"idea_prompts"          env:"LLM_IDEA_PROMPTS"          env-default:"true"`
}

// Enabled reports whether an API key is configured.
func (c LLMConfig) Enabled() bool {
	return c.APIKey != ""
}

// TelegramConfig holds Telegram Bot API settings. An empty BotToken disables
// the webhook route.
type TelegramConfig struct {
	BotToken      string        `yaml:"bot_token"      env:"TELEGRAM_BOT_TOKEN"`
	WebhookSecret string        `yaml:"webhook_secret" env:"TELEGRAM_WEBHOOK_SECRET"`
	WebhookURL    string        `yaml:"webhook_url"    env:"TELEGRAM_WEBHOOK_URL"`
	APIBaseURL    string        `yaml:"api_base_url"   env:"TELEGRAM_API_BASE_URL"   env-default:"https://api.telegram.org"`
	Timeout       time.Duration `yaml:"timeout"        env:"TELEGRAM_TIMEOUT"        env-default:"30s"`
	MaxFileSize   int64         `yaml:"max_file_size"  env:"TELEGRAM_MAX_FILE_SIZE"  env-default:"20971520"`
}

// Enabled reports whether a bot token is configured.
func (c TelegramConfig) Enabled() bool {
	return c.BotToken != ""
}

// RedisConfig holds Redis settings for webhook update de-duplication.
// An empty Addr disables de-duplication.
type RedisConfig struct {
	Addr     string        `yaml:"addr"      env:"REDIS_ADDR"`
	Password string        `yaml:"password"  env:"REDIS_PASSWORD"`
	DB       int           `yaml:"db"        env:"REDIS_DB"        env-default:"0"`
	DedupTTL time.Duration `yaml:"dedup_ttl" env:"REDIS_DEDUP_TTL" env-default:"24h"`
}

// FileStoreConfig holds local media storage settings.
type FileStoreConfig struct {
	Root string `yaml:"root" env:"FILE_STORE_ROOT" env-default:"static/uploads"`
}

// LinkMetaConfig holds settings for fetching metadata of shared links.
type LinkMetaConfig struct {
	Enabled   bool          `yaml:"enabled"    env:"LINK_META_ENABLED"    env-default:"true"`
	Timeout   time.Duration `yaml:"timeout"    env:"LINK_META_TIMEOUT"    env-default:"10s"`
	MaxBytes  int64         `yaml:"max_bytes"  env:"LINK_META_MAX_BYTES"  env-default:"2097152"`
	UserAgent string        `yaml:"user_agent" env:"LINK_META_USER_AGENT" env-default:"Mozilla/5.0 (compatible; NexusLog/1.0)"`
}
