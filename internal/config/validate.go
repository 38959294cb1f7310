package config

import (
	"fmt"
	"net/url"
	"strings"
)

func Validate(cfg Config) error {
	if strings.TrimSpace(cfg.API.BaseURL) == "" {
		return fmt.Errorf("api.base_url is required")
	}
	if u, err := url.Parse(cfg.API.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("api.base_url %q is not an absolute URL", cfg.API.BaseURL)
	}
	if cfg.API.PageSize <= 0 {
		return fmt.Errorf("api.page_size must be positive")
	}
	if cfg.API.MaxPages <= 0 {
		return fmt.Errorf("api.max_pages must be positive")
	}
	if cfg.API.TimeoutSeconds <= 0 {
		return fmt.Errorf("api.timeout_seconds must be positive")
	}
	if cfg.API.RequestsPerSec <= 0 {
		return fmt.Errorf("api.requests_per_sec must be positive")
	}
	if cfg.API.Burst <= 0 {
		return fmt.Errorf("api.burst must be positive")
	}

	if cfg.Retry.Attempts < 1 {
		return fmt.Errorf("retry.attempts must be at least 1")
	}
	if cfg.Retry.BaseDelayMS < 0 {
		return fmt.Errorf("retry.base_delay_ms cannot be negative")
	}
	if cfg.Retry.RateLimitWaitMS < 0 {
		return fmt.Errorf("retry.rate_limit_wait_ms cannot be negative")
	}

	if len(cfg.Filters.TitleRules) == 0 {
		return fmt.Errorf("filters.title_rules must contain at least one rule")
	}
	for _, r := range cfg.Filters.TitleRules {
		hasNeedle := false
		for _, n := range r.Any {
			if strings.TrimSpace(n) != "" {
				hasNeedle = true
				break
			}
		}
		if !hasNeedle {
			return fmt.Errorf("filters.title_rules: rule %q has no keywords", r.Tag)
		}
	}
	return nil
}
