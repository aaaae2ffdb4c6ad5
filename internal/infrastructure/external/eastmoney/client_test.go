package eastmoney

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"newstock-notify/internal/domain/newstock"
)

func TestSourceAdapter_FetchNewShareTable(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("reportName"); got != reportNewShare {
			t.Errorf("unexpected reportName: %s", got)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"result": {
				"pages": 1,
				"count": 2,
				"data": [
					{"SECURITY_CODE": "688001", "SECURITY_NAME": "华兴源创", "APPLY_DATE": "2024-03-01 00:00:00", "ISSUE_PRICE": 24.26},
					{"SECURITY_CODE": "301001", "SECURITY_NAME": "久祺股份", "LISTING_DATE": "2024-03-01 00:00:00"}
				]
			}
		}`))
	}))
	defer ts.Close()

	adapter := NewSourceAdapter(NewClient(ts.URL, time.Second))
	table, err := adapter.FetchNewShareTable(context.Background(), newstock.FeedSubscription)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(table) != 2 {
		t.Fatalf("expected 2 raw rows, got %d", len(table))
	}
	if newstock.ScalarString(table[0]["SECURITY_CODE"]) != "688001" {
		t.Errorf("unexpected first row: %v", table[0])
	}
}

func TestSourceAdapter_UpstreamRejection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"success": false, "message": "report not found"}`))
	}))
	defer ts.Close()

	adapter := NewSourceAdapter(NewClient(ts.URL, time.Second))
	if _, err := adapter.FetchNewShareTable(context.Background(), newstock.FeedListing); err == nil {
		t.Error("expected error when upstream reports failure")
	}
}

func TestSourceAdapter_HTTPError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer ts.Close()

	adapter := NewSourceAdapter(NewClient(ts.URL, time.Second))
	if _, err := adapter.FetchNewShareTable(context.Background(), newstock.FeedSubscription); err == nil {
		t.Error("expected error for 502 status")
	}
}

func TestSourceAdapter_FetchTradeCalendar(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("reportName"); got != reportTradeCalendar {
			t.Errorf("unexpected reportName: %s", got)
		}
		_, _ = w.Write([]byte(`{
			"success": true,
			"result": {
				"pages": 1,
				"count": 2,
				"data": [
					{"TRADE_DATE": "2024-03-01 00:00:00", "IS_OPEN": 1},
					{"TRADE_DATE": "2024-03-02 00:00:00", "IS_OPEN": 0}
				]
			}
		}`))
	}))
	defer ts.Close()

	adapter := NewSourceAdapter(NewClient(ts.URL, time.Second))
	days, err := adapter.FetchTradeCalendar(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("expected 2 days, got %d", len(days))
	}
	if days[0].Date != "2024-03-01" || !days[0].IsOpen {
		t.Errorf("unexpected first day: %+v", days[0])
	}
	if days[1].Date != "2024-03-02" || days[1].IsOpen {
		t.Errorf("unexpected second day: %+v", days[1])
	}
}
