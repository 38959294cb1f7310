package config

import (
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Rule groups title keywords under a tag ("executive", "management").
// A title matching any needle in any rule marks a decision maker.
type Rule struct {
	Tag string   `yaml:"tag"`
	Any []string `yaml:"any"`
}

type Config struct {
	API struct {
		BaseURL        string  `yaml:"base_url"`
		PageSize       int     `yaml:"page_size"`
		MaxPages       int     `yaml:"max_pages"`
		TimeoutSeconds int     `yaml:"timeout_seconds"`
		RequestsPerSec float64 `yaml:"requests_per_sec"`
		Burst          int     `yaml:"burst"`
	} `yaml:"api"`

	Retry struct {
		Attempts        int `yaml:"attempts"`
		BaseDelayMS     int `yaml:"base_delay_ms"`
		RateLimitWaitMS int `yaml:"rate_limit_wait_ms"`
	} `yaml:"retry"`

	Filters struct {
		Dedupe     bool   `yaml:"dedupe"`
		TitleRules []Rule `yaml:"title_rules"`
	} `yaml:"filters"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}

// Default returns the configuration written on first run.
func Default() Config {
	var cfg Config

	cfg.API.BaseURL = "https://api.linkedin.com/v2"
	cfg.API.PageSize = 100
	cfg.API.MaxPages = 50
	cfg.API.TimeoutSeconds = 30
	cfg.API.RequestsPerSec = 1
	cfg.API.Burst = 1

	cfg.Retry.Attempts = 3
	cfg.Retry.BaseDelayMS = 2000
	cfg.Retry.RateLimitWaitMS = 5000

	cfg.Filters.Dedupe = true
	cfg.Filters.TitleRules = []Rule{
		{
			Tag: "executive",
			Any: []string{"ceo", "chief", "president", "founder", "owner", "partner", "executive"},
		},
		{
			Tag: "management",
			Any: []string{"director", "vp", "vice president", "head of", "manager"},
		},
	}

	return cfg
}

func (c Config) Timeout() time.Duration {
	return time.Duration(c.API.TimeoutSeconds) * time.Second
}

func (c Config) BaseDelay() time.Duration {
	return time.Duration(c.Retry.BaseDelayMS) * time.Millisecond
}

func (c Config) RateLimitWait() time.Duration {
	return time.Duration(c.Retry.RateLimitWaitMS) * time.Millisecond
}
