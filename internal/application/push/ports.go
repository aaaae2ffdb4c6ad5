package push

import (
	"context"
	"time"

	"newstock-notify/internal/application/feed"
	"newstock-notify/internal/domain/newstock"
)

// Notifier 將文字訊息送往通知渠道。
type Notifier interface {
	Send(ctx context.Context, text string) error
}

// Formatter 將整理後的結果集轉成可讀文字；空集合也要能產生「查無資料」文案。
type Formatter interface {
	Format(kind newstock.FeedKind, rows []newstock.Offering) string
}

// Ledger 記錄某日某類訊息是否已成功推送，是系統唯一的持久狀態。
type Ledger interface {
	IsPushed(ctx context.Context, kind newstock.FeedKind, date time.Time) (bool, error)
	MarkPushed(ctx context.Context, kind newstock.FeedKind, date time.Time, note string) error
}

// Calendar 回答某日是否為交易日。
type Calendar interface {
	IsTradingDay(ctx context.Context, date time.Time) bool
}

// Clock 提供北京時間與 14:30 檢查點判斷。
type Clock interface {
	Now() time.Time
	AtDeadline() bool
}

// Resolver 取得指定類別最近一個有資料日期的結果。
type Resolver interface {
	Resolve(ctx context.Context, kind newstock.FeedKind, today time.Time, mode feed.Mode) (feed.Result, error)
}
