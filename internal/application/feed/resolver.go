package feed

import (
	"context"
	"log"
	"time"

	"newstock-notify/internal/domain/newstock"
)

// TableSource 抽象化上游新股表格的取得。
type TableSource interface {
	FetchNewShareTable(ctx context.Context, kind newstock.FeedKind) (newstock.RawTable, error)
}

// Mode 控制候選日期的掃描範圍。
type Mode string

const (
	ModeProduction Mode = "production" // 只看今天
	ModeDiagnostic Mode = "diagnostic" // 往回掃描最近的資料，供測試/驗證使用
)

// DefaultLookbackDays 為診斷模式往回掃描的天數。
const DefaultLookbackDays = 21

// Resolver 依序掃描候選日期，回傳第一個有完整資料的日期及其結果。
type Resolver struct {
	source       TableSource
	retry        Policy
	lookbackDays int
}

// NewResolver 建立回溯解析器；retry 或 lookbackDays 為零值時採用預設。
func NewResolver(source TableSource, retry Policy, lookbackDays int) *Resolver {
	if retry.Attempts <= 0 {
		retry = DefaultPolicy()
	}
	if lookbackDays <= 0 {
		lookbackDays = DefaultLookbackDays
	}
	return &Resolver{source: source, retry: retry, lookbackDays: lookbackDays}
}

// Result 是一次掃描的結果；Rows 為空代表「查無資料」，不是錯誤。
type Result struct {
	Date string
	Rows []newstock.Offering
}

// Resolve 由最近的候選日期開始掃描。單一候選日的抓取或整理失敗
// 只記錄並續掃下一個；全部掃完仍無資料時回傳空結果。
func (r *Resolver) Resolve(ctx context.Context, kind newstock.FeedKind, today time.Time, mode Mode) (Result, error) {
	for _, day := range r.candidates(today, mode) {
		table, err := WithRetry(ctx, r.retry, func(ctx context.Context) (newstock.RawTable, error) {
			return r.source.FetchNewShareTable(ctx, kind)
		})
		if err != nil {
			if ctx.Err() != nil {
				return Result{}, ctx.Err()
			}
			log.Printf("[Resolver] %s %s 取得上游表格失敗，跳過此候選日: %v", kind, day, err)
			continue
		}

		rows, err := Normalize(table, day, kind)
		if err != nil {
			log.Printf("[Resolver] %s %s 表格整理失敗，跳過此候選日: %v", kind, day, err)
			continue
		}
		if len(rows) > 0 {
			log.Printf("[Resolver] %s 於 %s 取得 %d 筆資料", kind, day, len(rows))
			return Result{Date: day, Rows: rows}, nil
		}
	}
	return Result{}, nil
}

// candidates 產生候選日期字串，由近而遠。
func (r *Resolver) candidates(today time.Time, mode Mode) []string {
	days := 1
	if mode == ModeDiagnostic {
		days = r.lookbackDays + 1
	}
	out := make([]string, 0, days)
	for i := 0; i < days; i++ {
		out = append(out, today.AddDate(0, 0, -i).Format("2006-01-02"))
	}
	return out
}
