package newstock

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// RawRecord 是上游表格的一列；欄位名稱不受本系統版本控制，可能隨時更名。
type RawRecord map[string]any

// RawTable 是上游回傳的整張表格。
type RawTable []RawRecord

// Columns 回傳表格中出現過的所有欄位名稱（聯集、排序後），供欄位比對使用。
func (t RawTable) Columns() []string {
	seen := map[string]struct{}{}
	for _, row := range t {
		for col := range row {
			seen[col] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen))
	for col := range seen {
		cols = append(cols, col)
	}
	sort.Strings(cols)
	return cols
}

// ScalarString 將上游的任意純量值轉為字串；nil 與空白視為空字串。
func ScalarString(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case bool:
		return strconv.FormatBool(val)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", val))
	}
}

// 上游日期欄位出現過的格式。
var dateLayouts = []string{
	"2006-01-02",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"20060102",
	time.RFC3339,
}

// CanonicalDate 將上游的日期值轉為 YYYY-MM-DD 字串。
func CanonicalDate(v any) (string, error) {
	if t, ok := v.(time.Time); ok {
		return t.Format("2006-01-02"), nil
	}

	s := ScalarString(v)
	if s == "" {
		return "", fmt.Errorf("empty date value")
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("2006-01-02"), nil
		}
	}
	return "", fmt.Errorf("unrecognized date value %q", s)
}
