package feed

import (
	"testing"
	"time"
)

func clockAt(hour, min int) *Clock {
	c := NewClock()
	fixed := time.Date(2024, 3, 1, hour, min, 0, 0, c.loc)
	c.now = func() time.Time { return fixed }
	return c
}

func TestClock_InTradingHours(t *testing.T) {
	cases := []struct {
		hour, min int
		want      bool
	}{
		{9, 29, false},
		{9, 30, true},
		{12, 0, true},
		{15, 0, true},
		{15, 1, false},
	}
	for _, tc := range cases {
		if got := clockAt(tc.hour, tc.min).InTradingHours(); got != tc.want {
			t.Errorf("%02d:%02d: got %v, want %v", tc.hour, tc.min, got, tc.want)
		}
	}
}

func TestClock_AtDeadline(t *testing.T) {
	cases := []struct {
		hour, min int
		want      bool
	}{
		{14, 28, false},
		{14, 29, true},
		{14, 30, true},
		{14, 31, true},
		{14, 32, false},
	}
	for _, tc := range cases {
		if got := clockAt(tc.hour, tc.min).AtDeadline(); got != tc.want {
			t.Errorf("%02d:%02d: got %v, want %v", tc.hour, tc.min, got, tc.want)
		}
	}
}

func TestClock_NowUsesBeijingTime(t *testing.T) {
	c := NewClock()
	utc := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	c.now = func() time.Time { return utc }

	if got := c.Now().Hour(); got != 8 {
		t.Errorf("expected UTC midnight to be 08:00 Beijing, got hour %d", got)
	}
}
