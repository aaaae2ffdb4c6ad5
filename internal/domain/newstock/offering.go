package newstock

import (
	"fmt"
	"time"
)

// FeedKind 列舉兩類獨立推送的新股資訊。
type FeedKind string

const (
	FeedSubscription FeedKind = "new_stock" // 新股申購
	FeedListing      FeedKind = "listing"   // 新股上市
)

// Unknown 為上游缺漏選填欄位時的替代值。
const Unknown = "unknown"

// Feeds 回傳一次任務要處理的全部資料類別，順序固定。
func Feeds() []FeedKind {
	return []FeedKind{FeedSubscription, FeedListing}
}

// Valid 檢查是否為已知的資料類別。
func (k FeedKind) Valid() bool {
	return k == FeedSubscription || k == FeedListing
}

// Offering 描述整理後的單檔新股資料。申購類別帶申購上限，上市類別該欄位為空。
type Offering struct {
	Code            string
	ShortName       string
	IssuePrice      string
	SubscriptionCap string
	Date            string // YYYY-MM-DD，申購日或上市日
	Kind            FeedKind
}

// Validate 檢查必填欄位；選填欄位缺漏以 Unknown 取代，不在此驗證。
func (o Offering) Validate() error {
	var reasons []string

	if o.Code == "" {
		reasons = append(reasons, "code is required")
	}
	if o.ShortName == "" {
		reasons = append(reasons, "short_name is required")
	}
	if o.Date == "" {
		reasons = append(reasons, "date is required")
	}
	if !o.Kind.Valid() {
		reasons = append(reasons, "unsupported feed kind")
	}

	if len(reasons) > 0 {
		return fmt.Errorf("offering validation failed: %v", reasons)
	}
	return nil
}

// FlagKey 產生推送旗標的唯一鍵，例如 new_stock_pushed_20240301。
func FlagKey(kind FeedKind, date time.Time) string {
	return fmt.Sprintf("%s_pushed_%s", kind, date.Format("20060102"))
}
