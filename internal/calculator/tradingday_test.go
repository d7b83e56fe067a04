package calculator

import (
	"testing"
	"time"
)

func TestNextTradingDay_AllWeekdays(t *testing.T) {
	// 2026-01-05 is a Monday.
	monday := time.Date(2026, time.January, 5, 10, 0, 0, 0, time.Local)

	tests := []struct {
		today    time.Weekday
		offset   int // days from monday
		wantDay  time.Weekday
		wantDate int
	}{
		{time.Monday, 0, time.Tuesday, 6},
		{time.Tuesday, 1, time.Wednesday, 7},
		{time.Wednesday, 2, time.Thursday, 8},
		{time.Thursday, 3, time.Friday, 9},
		{time.Friday, 4, time.Monday, 12},
		{time.Saturday, 5, time.Monday, 12},
		{time.Sunday, 6, time.Monday, 12},
	}
	for _, tt := range tests {
		now := monday.AddDate(0, 0, tt.offset)
		if now.Weekday() != tt.today {
			t.Fatalf("test setup: expected %s, got %s", tt.today, now.Weekday())
		}
		next := NextTradingDay(now)
		if next.Weekday() != tt.wantDay {
			t.Errorf("%s: expected next trading day %s, got %s", tt.today, tt.wantDay, next.Weekday())
		}
		if next.Day() != tt.wantDate {
			t.Errorf("%s: expected date %d, got %d", tt.today, tt.wantDate, next.Day())
		}
	}
}
