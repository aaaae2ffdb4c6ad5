package eastmoney

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Client 呼叫東方財富 datacenter 介面。回傳的表格不做任何欄位假設，
// 由上層以關鍵字比對解讀。
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient 建立上游資料用戶端；baseURL 為空時使用正式站。
func NewClient(baseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = "https://datacenter-web.eastmoney.com"
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// envelope 是 datacenter 介面的固定外層結構。
type envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Result  struct {
		Pages int              `json:"pages"`
		Count int              `json:"count"`
		Data  []map[string]any `json:"data"`
	} `json:"result"`
}

// getReport 取單一報表的第一頁資料。
func (c *Client) getReport(ctx context.Context, reportName, sortColumns string) ([]map[string]any, error) {
	params := url.Values{}
	params.Set("reportName", reportName)
	params.Set("columns", "ALL")
	params.Set("pageNumber", "1")
	params.Set("pageSize", "500")
	params.Set("source", "WEB")
	params.Set("client", "WEB")
	if sortColumns != "" {
		params.Set("sortColumns", sortColumns)
		params.Set("sortTypes", "-1")
	}

	fullURL := fmt.Sprintf("%s/api/data/v1/get?%s", c.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("upstream request failed status=%d body=%s", resp.StatusCode, string(raw))
	}

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("decode upstream response: %w", err)
	}
	if !env.Success {
		return nil, fmt.Errorf("upstream rejected request: %s", env.Message)
	}
	return env.Result.Data, nil
}
