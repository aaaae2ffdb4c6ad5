package eastmoney

import (
	"context"
	"strings"

	"newstock-notify/internal/application/feed"
	"newstock-notify/internal/domain/newstock"
)

// 上游報表名稱。新股申購與上市共用同一張表，靠哪個日期欄有值區分。
const (
	reportNewShare      = "RPTA_APP_IPOAPPLY"
	reportTradeCalendar = "RPT_EXCHANGE_TRADEDATE"
)

// SourceAdapter 以 Client 實作 feed.TableSource 與 feed.TradeCalendarSource。
type SourceAdapter struct {
	client *Client
}

// NewSourceAdapter 建立上游資料轉接器。
func NewSourceAdapter(client *Client) *SourceAdapter {
	return &SourceAdapter{client: client}
}

// FetchNewShareTable 取回新股合併表；不在此解讀欄位，只轉成 RawTable。
func (a *SourceAdapter) FetchNewShareTable(ctx context.Context, kind newstock.FeedKind) (newstock.RawTable, error) {
	sortColumns := "APPLY_DATE"
	if kind == newstock.FeedListing {
		sortColumns = "LISTING_DATE"
	}
	rows, err := a.client.getReport(ctx, reportNewShare, sortColumns)
	if err != nil {
		return nil, err
	}

	table := make(newstock.RawTable, 0, len(rows))
	for _, row := range rows {
		table = append(table, newstock.RawRecord(row))
	}
	return table, nil
}

// FetchTradeCalendar 取回交易日曆。日曆表的欄名同樣不保證穩定，
// 這裡沿用關鍵字比對找日期欄與開市旗標欄。
func (a *SourceAdapter) FetchTradeCalendar(ctx context.Context) ([]feed.TradeDay, error) {
	rows, err := a.client.getReport(ctx, reportTradeCalendar, "")
	if err != nil {
		return nil, err
	}

	out := make([]feed.TradeDay, 0, len(rows))
	for _, row := range rows {
		day := feed.TradeDay{}
		for col, v := range row {
			lower := strings.ToLower(col)
			switch {
			case strings.Contains(lower, "date"):
				if d, err := newstock.CanonicalDate(v); err == nil {
					day.Date = d
				}
			case strings.Contains(lower, "open"):
				day.IsOpen = isTruthy(v)
			}
		}
		if day.Date != "" {
			out = append(out, day)
		}
	}
	return out, nil
}

func isTruthy(v any) bool {
	switch s := newstock.ScalarString(v); s {
	case "1", "true":
		return true
	default:
		return false
	}
}
