package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"newstock-notify/internal/application/feed"
	"newstock-notify/internal/application/push"
	"newstock-notify/internal/infrastructure/config"
	"newstock-notify/internal/infrastructure/db"
	"newstock-notify/internal/infrastructure/external/eastmoney"
	"newstock-notify/internal/infrastructure/notify"
	"newstock-notify/internal/infrastructure/persistence/fsflag"
	"newstock-notify/internal/infrastructure/persistence/postgres"
)

func main() {
	cfg, err := config.LoadFromFile("config.yaml")
	if err != nil {
		log.Fatalf("CRITICAL: load config failed: %v", err)
	}

	task := os.Getenv("TASK")
	if task == "" {
		task = "push_new_stock"
	}
	if task != "push_new_stock" {
		log.Fatalf("CRITICAL: unknown task %q", task)
	}
	testMode := os.Getenv("TEST_MODE") == "true"
	force := os.Getenv("FORCE") == "true"

	clock := feed.NewClock()
	now := clock.Now()
	log.Printf("===== 任務開始 =====")
	log.Printf("當前時間: %s（北京時間）", now.Format("2006-01-02 15:04:05"))
	log.Printf("任務類型: %s | 測試模式: %v | 強制執行: %v", task, testMode, force)
	log.Printf("交易時段: %v | 14:30 檢查點: %v", clock.InTradingHours(), clock.AtDeadline())
	log.Printf("====================")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	var ledger push.Ledger
	pool, err := db.Connect(ctx, cfg.DB)
	if err != nil {
		log.Printf("warning: database connection failed, falling back to file ledger: %v", err)
		ledger = fsflag.NewStore(cfg.Ledger.Dir)
	} else if pool == nil {
		log.Printf("no DB_DSN provided; using file ledger at %s", cfg.Ledger.Dir)
		ledger = fsflag.NewStore(cfg.Ledger.Dir)
	} else {
		defer pool.Close()
		log.Printf("database connected; using postgres ledger")
		ledger = postgres.NewLedgerRepo(pool)
	}

	client := eastmoney.NewClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout)
	source := eastmoney.NewSourceAdapter(client)
	resolver := feed.NewResolver(source, feed.Policy{
		Attempts: cfg.Fetch.RetryAttempts,
		Delay:    cfg.Fetch.RetryDelay,
	}, cfg.Fetch.LookbackDays)
	calendar := feed.NewCalendar(source)
	notifier := notify.NewWeComClient(cfg.WeCom.Webhook, cfg.WeCom.Footer)

	orch := push.NewOrchestrator(
		calendar,
		resolver,
		ledger,
		push.MessageFormatter{},
		notifier,
		clock,
		!cfg.Push.SkipTradingDayCheck,
	)

	report := orch.RunWith(ctx, push.Input{TestMode: testMode, Force: force})

	out, _ := json.MarshalIndent(report, "", "  ")
	fmt.Println(string(out))
	if report.Status == push.StatusError {
		os.Exit(1)
	}
}
