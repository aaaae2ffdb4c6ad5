package feed

import (
	"strings"

	"newstock-notify/internal/domain/newstock"
)

// 各邏輯欄位對應的關鍵字樣式，依優先順序排列。
// 上游更名時只需在此補上別名，不需改動比對邏輯。
var (
	codePatterns  = []string{"股票代码", "证券代码", "代码", "security_code", "code"}
	namePatterns  = []string{"股票简称", "证券简称", "简称", "security_name", "short_name", "shortname", "name"}
	pricePatterns = []string{"发行价格", "发行价", "issue_price", "price"}
	capPatterns   = []string{"申购上限", "上限", "apply_limit", "limit", "cap"}

	datePatterns = map[newstock.FeedKind][]string{
		newstock.FeedSubscription: {"申购日期", "apply_date", "ipo_date", "issue_date", "subscription_date"},
		newstock.FeedListing:      {"上市日期", "listing_date", "list_date"},
	}
)

// resolveColumn 以不分大小寫的子字串比對，在欄位名稱中尋找第一個符合樣式的欄位。
func resolveColumn(columns []string, patterns []string) (string, bool) {
	for _, pat := range patterns {
		pat = strings.ToLower(pat)
		for _, col := range columns {
			if strings.Contains(strings.ToLower(col), pat) {
				return col, true
			}
		}
	}
	return "", false
}

// Normalize 把結構不穩定的上游表格整理成固定欄位的結果集。
//
// 篩不到目標日期的資料不是錯誤，回傳空集合；表格缺少日期或代碼/簡稱欄位、
// 日期無法解讀、或必填值整批缺漏時回傳對應錯誤，該批資料一律不採用。
func Normalize(table newstock.RawTable, targetDate string, kind newstock.FeedKind) ([]newstock.Offering, error) {
	if len(table) == 0 {
		return nil, nil
	}
	columns := table.Columns()

	dateCol, ok := resolveColumn(columns, datePatterns[kind])
	if !ok {
		return nil, &newstock.SchemaError{Feed: kind, Reason: newstock.ReasonMissingDateColumn}
	}

	var matched newstock.RawTable
	for _, row := range table {
		raw, present := row[dateCol]
		if !present || newstock.ScalarString(raw) == "" {
			// 合併表中另一類別的列常缺這欄，略過即可
			continue
		}
		day, err := newstock.CanonicalDate(raw)
		if err != nil {
			return nil, &newstock.SchemaError{Feed: kind, Reason: newstock.ReasonDateParseFailed, Detail: err.Error()}
		}
		if day == targetDate {
			matched = append(matched, row)
		}
	}
	if len(matched) == 0 {
		return nil, nil
	}

	codeCol, ok := resolveColumn(columns, codePatterns)
	if !ok {
		return nil, &newstock.SchemaError{Feed: kind, Reason: newstock.ReasonMissingIdentityColumn, Detail: "code column not found"}
	}
	nameCol, ok := resolveColumn(columns, namePatterns)
	if !ok {
		return nil, &newstock.SchemaError{Feed: kind, Reason: newstock.ReasonMissingIdentityColumn, Detail: "name column not found"}
	}
	priceCol, hasPrice := resolveColumn(columns, pricePatterns)
	capCol, hasCap := resolveColumn(columns, capPatterns)

	rows := make([]newstock.Offering, 0, len(matched))
	for _, row := range matched {
		o := newstock.Offering{
			Code:       newstock.ScalarString(row[codeCol]),
			ShortName:  newstock.ScalarString(row[nameCol]),
			IssuePrice: newstock.Unknown,
			Date:       targetDate,
			Kind:       kind,
		}
		if hasPrice {
			if v := newstock.ScalarString(row[priceCol]); v != "" {
				o.IssuePrice = v
			}
		}
		if kind == newstock.FeedSubscription {
			o.SubscriptionCap = newstock.Unknown
			if hasCap {
				if v := newstock.ScalarString(row[capCol]); v != "" {
					o.SubscriptionCap = v
				}
			}
		}
		rows = append(rows, o)
	}

	// 完整性檢查：必填值缺漏代表上游回了殘缺結構，整批丟棄以免推送誤導訊息
	for _, o := range rows {
		if o.Code == "" {
			return nil, &newstock.IncompleteDataError{Feed: kind, Field: "code"}
		}
		if o.ShortName == "" {
			return nil, &newstock.IncompleteDataError{Feed: kind, Field: "short_name"}
		}
	}
	return rows, nil
}
