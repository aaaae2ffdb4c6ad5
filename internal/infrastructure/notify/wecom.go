package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// WeComClient 提供企業微信群機器人 webhook 的簡單封裝。
type WeComClient struct {
	webhookURL string
	footer     string
	httpClient *http.Client
}

// NewWeComClient 建立 webhook 用戶端；footer 不為空時附加在每則訊息末尾。
func NewWeComClient(webhookURL, footer string) *WeComClient {
	return &WeComClient{
		webhookURL: webhookURL,
		footer:     footer,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Send 將文字訊息推送到群機器人。webhook 未設定屬於組態錯誤，直接回報不重試。
func (c *WeComClient) Send(ctx context.Context, text string) error {
	if c == nil {
		return fmt.Errorf("wecom client is nil")
	}
	if c.webhookURL == "" {
		return fmt.Errorf("wecom webhook url missing")
	}

	content := text
	if c.footer != "" {
		content = fmt.Sprintf("%s\n\n%s", text, c.footer)
	}

	payload := map[string]interface{}{
		"msgtype": "text",
		"text":    map[string]interface{}{"content": content},
	}
	body, _ := json.Marshal(payload)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.webhookURL, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("wecom send failed status=%d body=%s", resp.StatusCode, string(raw))
	}

	// 企業微信以 HTTP 200 搭配 errcode 回報應用層錯誤
	var out struct {
		ErrCode int    `json:"errcode"`
		ErrMsg  string `json:"errmsg"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return fmt.Errorf("decode wecom response: %w", err)
	}
	if out.ErrCode != 0 {
		return fmt.Errorf("wecom send rejected errcode=%d errmsg=%s", out.ErrCode, out.ErrMsg)
	}
	return nil
}
