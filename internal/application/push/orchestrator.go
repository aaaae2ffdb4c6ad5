package push

import (
	"context"
	"log"
	"time"

	"newstock-notify/internal/application/feed"
	"newstock-notify/internal/domain/newstock"
)

// Status 是整次任務的彙總結果。
type Status string

const (
	StatusSuccess        Status = "success"
	StatusPartialSuccess Status = "partial_success"
	StatusSkipped        Status = "skipped"
	StatusError          Status = "error"
)

// FeedStatus 是單一資料類別的處理結果。
type FeedStatus string

const (
	FeedSuccess FeedStatus = "success"
	FeedFailed  FeedStatus = "failed"
)

// Report 是回報給呼叫端的結構化結果。
type Report struct {
	Status    Status            `json:"status"`
	Details   map[string]string `json:"details,omitempty"`
	Timestamp string            `json:"timestamp"`
	Message   string            `json:"message,omitempty"`
}

// Input 控制一次任務的執行模式。
type Input struct {
	TestMode bool // 測試：診斷回溯、訊息加前綴、不寫台帳、略過各項檢查
	Force    bool // 強制：略過檢查並回溯抓資料，但成功後照常寫台帳
}

// Orchestrator 串接日曆、回溯解析器、推送台帳、文案與通知渠道，
// 完成「當日是否要抓、要送、要標記、要警報」的完整決策。
type Orchestrator struct {
	calendar  Calendar
	resolver  Resolver
	ledger    Ledger
	formatter Formatter
	notifier  Notifier
	clock     Clock

	// 非交易日是否直接略過整次任務；各版本行為不一，以組態決定
	requireTradingDay bool
}

// NewOrchestrator 建立推送協調器。
func NewOrchestrator(calendar Calendar, resolver Resolver, ledger Ledger, formatter Formatter, notifier Notifier, clock Clock, requireTradingDay bool) *Orchestrator {
	return &Orchestrator{
		calendar:          calendar,
		resolver:          resolver,
		ledger:            ledger,
		formatter:         formatter,
		notifier:          notifier,
		clock:             clock,
		requireTradingDay: requireTradingDay,
	}
}

// Run 執行一次完整任務：兩類資料各走一遍推送流程，再做 14:30 最終檢查。
// 不論個別步驟成敗，一定回傳結構化結果。
func (o *Orchestrator) Run(ctx context.Context) Report {
	return o.run(ctx, Input{})
}

// RunWith 以指定模式執行一次完整任務。
func (o *Orchestrator) RunWith(ctx context.Context, input Input) Report {
	return o.run(ctx, input)
}

func (o *Orchestrator) run(ctx context.Context, input Input) Report {
	now := o.clock.Now()
	report := Report{Timestamp: now.Format("2006-01-02 15:04:05")}

	if o.requireTradingDay && !input.TestMode && !input.Force {
		if !o.calendar.IsTradingDay(ctx, now) {
			log.Printf("[Orchestrator] 今日非交易日，跳過本次任務")
			report.Status = StatusSkipped
			report.Message = "skipped: non-trading day"
			return report
		}
	}

	details := map[string]string{}
	okCount := 0
	for _, kind := range newstock.Feeds() {
		st := o.runFeed(ctx, kind, now, input)
		details[string(kind)] = string(st)
		if st == FeedSuccess {
			okCount++
		}
	}
	report.Details = details

	if !input.TestMode {
		o.maybeEscalate(ctx, now)
	}

	switch okCount {
	case len(newstock.Feeds()):
		report.Status = StatusSuccess
	case 0:
		report.Status = StatusError
	default:
		report.Status = StatusPartialSuccess
	}
	return report
}

// runFeed 處理單一資料類別：查台帳、抓資料、送訊息、寫台帳。
// 任何失敗都收斂成 FeedFailed，不影響另一類別。
func (o *Orchestrator) runFeed(ctx context.Context, kind newstock.FeedKind, now time.Time, input Input) FeedStatus {
	if !input.TestMode && !input.Force {
		pushed, err := o.ledger.IsPushed(ctx, kind, now)
		if err != nil {
			// 台帳讀不到時寧可重送一次，也不要漏送
			log.Printf("[Orchestrator] %s 台帳讀取失敗，視為未推送: %v", kind, err)
		} else if pushed {
			log.Printf("[Orchestrator] %s 今日已推送，跳過", kind)
			return FeedSuccess
		}
	}

	mode := feed.ModeProduction
	if input.TestMode || input.Force {
		mode = feed.ModeDiagnostic
	}

	log.Printf("[Orchestrator] 開始抓取 %s 資料 (mode=%s)", kind, mode)
	res, err := o.resolver.Resolve(ctx, kind, now, mode)
	if err != nil {
		log.Printf("[Orchestrator] %s 抓取流程失敗: %v", kind, err)
		return FeedFailed
	}

	text := o.formatter.Format(kind, res.Rows)
	if input.TestMode {
		text = TestPrefix + text
	}
	if err := o.notifier.Send(ctx, text); err != nil {
		log.Printf("[Orchestrator] %s 訊息發送失敗: %v", kind, err)
		return FeedFailed
	}

	if !input.TestMode {
		note := "Pushed at " + o.clock.Now().Format("2006-01-02 15:04:05")
		if err := o.ledger.MarkPushed(ctx, kind, now, note); err != nil {
			// 訊息已送出，標記失敗只記錄；重複推送比漏送安全
			log.Printf("[Orchestrator] %s 台帳寫入失敗: %v", kind, err)
		} else {
			log.Printf("[Orchestrator] %s 推送成功並已標記", kind)
		}
	}
	return FeedSuccess
}

// maybeEscalate 在 14:30 最終檢查點確認兩類訊息皆已推送；
// 任一類仍未標記時發出強制提醒。提醒不受台帳閘門限制，
// 檢查點視窗內重複進入會重複發送。
func (o *Orchestrator) maybeEscalate(ctx context.Context, now time.Time) {
	if !o.clock.AtDeadline() {
		return
	}

	for _, kind := range newstock.Feeds() {
		pushed, err := o.ledger.IsPushed(ctx, kind, now)
		if err != nil {
			log.Printf("[Orchestrator] 14:30 最終檢查：%s 台帳讀取失敗，視為未推送: %v", kind, err)
		}
		if err != nil || !pushed {
			log.Printf("[Orchestrator] 14:30 最終檢查：%s 仍未推送成功，發送強制提醒", kind)
			if sendErr := o.notifier.Send(ctx, EscalationText); sendErr != nil {
				log.Printf("[Orchestrator] 強制提醒發送失敗: %v", sendErr)
			}
			return
		}
	}
}
