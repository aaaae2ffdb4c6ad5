package notify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestWeComClient_Send(t *testing.T) {
	t.Run("nil_client", func(t *testing.T) {
		var c *WeComClient
		err := c.Send(context.Background(), "msg")
		if err == nil || err.Error() != "wecom client is nil" {
			t.Errorf("expected nil client error, got %v", err)
		}
	})

	t.Run("missing_webhook", func(t *testing.T) {
		c := NewWeComClient("", "")
		err := c.Send(context.Background(), "msg")
		if err == nil || err.Error() != "wecom webhook url missing" {
			t.Error("expected missing webhook error")
		}
	})

	t.Run("success_with_footer", func(t *testing.T) {
		var got map[string]any
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_ = json.NewDecoder(r.Body).Decode(&got)
			_, _ = w.Write([]byte(`{"errcode":0,"errmsg":"ok"}`))
		}))
		defer ts.Close()

		c := NewWeComClient(ts.URL, "温馨提示")
		if err := c.Send(context.Background(), "hello"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if got["msgtype"] != "text" {
			t.Errorf("unexpected payload: %v", got)
		}
		content := got["text"].(map[string]any)["content"].(string)
		if !strings.HasPrefix(content, "hello") || !strings.Contains(content, "温馨提示") {
			t.Errorf("unexpected content: %q", content)
		}
	})

	t.Run("errcode_nonzero", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, _ = w.Write([]byte(`{"errcode":93000,"errmsg":"invalid webhook url"}`))
		}))
		defer ts.Close()

		c := NewWeComClient(ts.URL, "")
		err := c.Send(context.Background(), "hello")
		if err == nil || !strings.Contains(err.Error(), "93000") {
			t.Errorf("expected errcode error, got %v", err)
		}
	})

	t.Run("server_error", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer ts.Close()

		c := NewWeComClient(ts.URL, "")
		if err := c.Send(context.Background(), "hello"); err == nil {
			t.Error("expected error for 500 status")
		}
	})
}
