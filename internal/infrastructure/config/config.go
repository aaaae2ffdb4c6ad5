package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config 儲存推送任務及外部相依的執行設定。
type Config struct {
	WeCom    WeComConfig    `yaml:"wecom"`
	DB       DBConfig       `yaml:"db"`
	Ledger   LedgerConfig   `yaml:"ledger"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Fetch    FetchConfig    `yaml:"fetch"`
	Push     PushConfig     `yaml:"push"`
}

type WeComConfig struct {
	Webhook string `yaml:"webhook"`
	Footer  string `yaml:"footer"`
}

type DBConfig struct {
	DSN          string        `yaml:"dsn"`
	MaxOpenConns int           `yaml:"max_open_conns"`
	MaxIdleConns int           `yaml:"max_idle_conns"`
	MaxIdleTime  time.Duration `yaml:"max_idle_time"`
}

type LedgerConfig struct {
	Dir string `yaml:"dir"`
}

type UpstreamConfig struct {
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

type FetchConfig struct {
	RetryAttempts int           `yaml:"retry_attempts"`
	RetryDelay    time.Duration `yaml:"retry_delay"`
	LookbackDays  int           `yaml:"lookback_days"`
}

type PushConfig struct {
	// 非交易日是否照常執行；預設遇非交易日直接跳過
	SkipTradingDayCheck bool `yaml:"skip_trading_day_check"`
}

// LoadFromFile 從 YAML 組態檔載入設定。
func LoadFromFile(path string) (Config, error) {
	// 嘗試載入 .env 檔案（如果存在）
	_ = godotenv.Load()

	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse config yaml: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return Config{}, fmt.Errorf("read config file: %w", err)
	}

	cfg = applyDefaults(cfg)
	cfg = applyEnv(cfg)
	return cfg, nil
}

func applyDefaults(cfg Config) Config {
	if cfg.DB.MaxOpenConns == 0 {
		cfg.DB.MaxOpenConns = 5
	}
	if cfg.DB.MaxIdleConns == 0 {
		cfg.DB.MaxIdleConns = 2
	}
	if cfg.DB.MaxIdleTime == 0 {
		cfg.DB.MaxIdleTime = 15 * time.Minute
	}
	if cfg.Ledger.Dir == "" {
		cfg.Ledger.Dir = "data/flags"
	}
	if cfg.Upstream.BaseURL == "" {
		cfg.Upstream.BaseURL = "https://datacenter-web.eastmoney.com"
	}
	if cfg.Upstream.Timeout == 0 {
		cfg.Upstream.Timeout = 10 * time.Second
	}
	if cfg.Fetch.RetryAttempts == 0 {
		cfg.Fetch.RetryAttempts = 3
	}
	if cfg.Fetch.RetryDelay == 0 {
		cfg.Fetch.RetryDelay = 2 * time.Second
	}
	if cfg.Fetch.LookbackDays == 0 {
		cfg.Fetch.LookbackDays = 21
	}
	return cfg
}

func applyEnv(cfg Config) Config {
	if val := os.Getenv("WECOM_WEBHOOK"); val != "" {
		cfg.WeCom.Webhook = val
	}
	if val := os.Getenv("WECOM_FOOTER"); val != "" {
		cfg.WeCom.Footer = val
	}
	if val := os.Getenv("DB_DSN"); val != "" {
		cfg.DB.DSN = val
	}
	if val := os.Getenv("FLAG_DIR"); val != "" {
		cfg.Ledger.Dir = val
	}
	if val := os.Getenv("UPSTREAM_BASE_URL"); val != "" {
		cfg.Upstream.BaseURL = val
	}
	if val := os.Getenv("RETRY_ATTEMPTS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Fetch.RetryAttempts = n
		}
	}
	if val := os.Getenv("RETRY_DELAY"); val != "" {
		if d, err := time.ParseDuration(val); err == nil {
			cfg.Fetch.RetryDelay = d
		}
	}
	if val := os.Getenv("LOOKBACK_DAYS"); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			cfg.Fetch.LookbackDays = n
		}
	}
	if val := os.Getenv("SKIP_TRADING_DAY_CHECK"); val != "" {
		cfg.Push.SkipTradingDayCheck = (val == "true")
	}
	return cfg
}
