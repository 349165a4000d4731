package config

import (
	"fmt"
	"net/url"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if err := c.Category.validate(); err != nil {
		return fmt.Errorf("category: %w", err)
	}
	if err := c.LLM.validate(); err != nil {
		return fmt.Errorf("llm: %w", err)
	}
	if err := c.Telegram.validate(); err != nil {
		return fmt.Errorf("telegram: %w", err)
	}
	if c.RateLimit.RPS < 0 || c.RateLimit.Burst < 0 {
		return fmt.Errorf("rate_limit: rps and burst must be >= 0")
	}
	if strings.TrimSpace(c.FileStore.Root) == "" {
		return fmt.Errorf("file_store.root is required")
	}

	switch strings.ToLower(c.Log.Format) {
	case "json", "text":
	default:
		return fmt.Errorf("log.format must be json or text (got %q)", c.Log.Format)
	}

	return nil
}

func (c *CategoryConfig) validate() error {
	if c.MaxTopLevel < 1 {
		return fmt.Errorf("max_top_level must be >= 1 (got %d)", c.MaxTopLevel)
	}
	c.DefaultName = strings.TrimSpace(c.DefaultName)
	if c.DefaultName == "" {
		return fmt.Errorf("default_name is required")
	}
	if len(c.DefaultName) > 100 {
		return fmt.Errorf("default_name must be at most 100 characters")
	}
	return nil
}

func (c *LLMConfig) validate() error {
	if c.MaxTokens <= 0 {
		return fmt.Errorf("max_tokens must be > 0 (got %d)", c.MaxTokens)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", c.Timeout)
	}
	if c.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", c.MaxRetries)
	}
	if c.InputCostPerToken < 0 || c.OutputCostPerToken < 0 {
		return fmt.Errorf("token costs must be >= 0")
	}
	if c.BaseURL != "" {
		if _, err := url.ParseRequestURI(c.BaseURL); err != nil {
			return fmt.Errorf("base_url: %w", err)
		}
	}
	return nil
}

func (c *TelegramConfig) validate() error {
	if _, err := url.ParseRequestURI(c.APIBaseURL); err != nil {
		return fmt.Errorf("api_base_url: %w", err)
	}
	if c.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %v)", c.Timeout)
	}
	if c.MaxFileSize <= 0 {
		return fmt.Errorf("max_file_size must be > 0 (got %d)", c.MaxFileSize)
	}
	return nil
}
