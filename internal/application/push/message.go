package push

import (
	"fmt"
	"strings"

	"newstock-notify/internal/domain/newstock"
)

// TestPrefix 為測試模式訊息的開頭標記。
const TestPrefix = "[测试消息] "

// EscalationText 是 14:30 最終檢查仍未推送成功時的強制提醒文案。
const EscalationText = "【紧急提醒】\n" +
	"今天获取新股消息失败，可能存在未抓取到的新股申购信息！\n" +
	"请尽快手动查看，避免错失申购机会！"

// MessageFormatter 依資料類別產生中文推送文案。
type MessageFormatter struct{}

// Format 產生推送文字；rows 為空時輸出「查無資料」文案。
func (MessageFormatter) Format(kind newstock.FeedKind, rows []newstock.Offering) string {
	switch kind {
	case newstock.FeedListing:
		return formatListings(rows)
	default:
		return formatSubscriptions(rows)
	}
}

func formatSubscriptions(rows []newstock.Offering) string {
	if len(rows) == 0 {
		return "【今日新股申购信息】\n今天没有可申购的新股哦～"
	}

	var b strings.Builder
	b.WriteString("【今日新股申购信息】\n")
	for i, o := range rows {
		fmt.Fprintf(&b, "\n%d. %s（代码：%s）\n", i+1, o.ShortName, o.Code)
		fmt.Fprintf(&b, "   • 发行价格：%s元\n", o.IssuePrice)
		fmt.Fprintf(&b, "   • 申购上限：%s\n", o.SubscriptionCap)
		fmt.Fprintf(&b, "   • 申购日期：%s\n", o.Date)
	}
	b.WriteString("\n温馨提示：请确认申购资格后操作，投资有风险～")
	return b.String()
}

func formatListings(rows []newstock.Offering) string {
	if len(rows) == 0 {
		return "【今日新上市股票信息】\n今天没有新上市的股票哦～"
	}

	var b strings.Builder
	b.WriteString("【今日新上市股票信息】\n")
	for i, o := range rows {
		fmt.Fprintf(&b, "\n%d. %s（代码：%s）\n", i+1, o.ShortName, o.Code)
		fmt.Fprintf(&b, "   • 发行价格：%s元\n", o.IssuePrice)
		fmt.Fprintf(&b, "   • 上市日期：%s\n", o.Date)
	}
	b.WriteString("\n温馨提示：新上市股票波动较大，请注意风险～")
	return b.String()
}
