package feed

import "time"

// Clock 提供北京時間（Asia/Shanghai）的目前時刻與任務時點判斷。
type Clock struct {
	now func() time.Time
	loc *time.Location
}

// NewClock 建立固定時區的時鐘；時區資料缺失時退回 UTC+8。
func NewClock() *Clock {
	loc, err := time.LoadLocation("Asia/Shanghai")
	if err != nil {
		loc = time.FixedZone("CST", 8*60*60)
	}
	return &Clock{now: time.Now, loc: loc}
}

// Now 回傳北京時間的目前時刻。
func (c *Clock) Now() time.Time {
	return c.now().In(c.loc)
}

// InTradingHours 判斷目前是否在交易時段（9:30–15:00）。
func (c *Clock) InTradingHours() bool {
	m := minuteOfDay(c.Now())
	return m >= 9*60+30 && m <= 15*60
}

// AtDeadline 判斷目前是否落在 14:30 最終檢查點，容許排程抖動 ±1 分鐘。
func (c *Clock) AtDeadline() bool {
	m := minuteOfDay(c.Now())
	return m >= 14*60+29 && m <= 14*60+31
}

func minuteOfDay(t time.Time) int {
	return t.Hour()*60 + t.Minute()
}
