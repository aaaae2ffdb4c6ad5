package feed

import (
	"context"
	"log"
	"time"
)

// TradeDay 是交易日曆的一筆紀錄。
type TradeDay struct {
	Date   string // YYYY-MM-DD
	IsOpen bool
}

// TradeCalendarSource 讀取外部交易日曆。
type TradeCalendarSource interface {
	FetchTradeCalendar(ctx context.Context) ([]TradeDay, error)
}

// Calendar 回答某日是否為交易日。日曆來源故障時退回平日判斷，
// 寧可多跑一次流程也不讓整條管線被日曆服務卡住。
type Calendar struct {
	source TradeCalendarSource
}

// NewCalendar 建立交易日曆。
func NewCalendar(source TradeCalendarSource) *Calendar {
	return &Calendar{source: source}
}

// IsTradingDay 查詢 date 是否為交易日；日曆中查不到該日視為休市。
func (c *Calendar) IsTradingDay(ctx context.Context, date time.Time) bool {
	days, err := c.source.FetchTradeCalendar(ctx)
	if err != nil {
		log.Printf("[Calendar] 取得交易日曆失敗，改用平日判斷: %v", err)
		wd := date.Weekday()
		return wd >= time.Monday && wd <= time.Friday
	}

	key := date.Format("2006-01-02")
	for _, d := range days {
		if d.Date == key {
			return d.IsOpen
		}
	}
	return false
}
