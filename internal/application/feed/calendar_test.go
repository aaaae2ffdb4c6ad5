package feed

import (
	"context"
	"errors"
	"testing"
	"time"
)

type fakeCalendarSource struct {
	days []TradeDay
	err  error
}

func (f fakeCalendarSource) FetchTradeCalendar(_ context.Context) ([]TradeDay, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.days, nil
}

func TestCalendar_IsTradingDay(t *testing.T) {
	cal := NewCalendar(fakeCalendarSource{days: []TradeDay{
		{Date: "2024-03-01", IsOpen: true},
		{Date: "2024-03-02", IsOpen: false},
	}})

	open := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	closed := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	absent := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	if !cal.IsTradingDay(context.Background(), open) {
		t.Error("expected 2024-03-01 to be a trading day")
	}
	if cal.IsTradingDay(context.Background(), closed) {
		t.Error("expected 2024-03-02 to be closed")
	}
	// 日曆中查不到的日期視為休市
	if cal.IsTradingDay(context.Background(), absent) {
		t.Error("expected absent date to be closed")
	}
}

func TestCalendar_FallbackOnSourceError(t *testing.T) {
	cal := NewCalendar(fakeCalendarSource{err: errors.New("calendar down")})

	// 2024-03-01 週五、2024-03-02 週六、2024-03-03 週日
	friday := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	saturday := time.Date(2024, 3, 2, 0, 0, 0, 0, time.UTC)
	sunday := time.Date(2024, 3, 3, 0, 0, 0, 0, time.UTC)
	monday := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)

	if !cal.IsTradingDay(context.Background(), friday) {
		t.Error("fallback: Friday should count as trading day")
	}
	if cal.IsTradingDay(context.Background(), saturday) {
		t.Error("fallback: Saturday should not count as trading day")
	}
	if cal.IsTradingDay(context.Background(), sunday) {
		t.Error("fallback: Sunday should not count as trading day")
	}
	if !cal.IsTradingDay(context.Background(), monday) {
		t.Error("fallback: Monday should count as trading day")
	}
}
