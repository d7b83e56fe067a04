package calculator

import (
	"log"
	"time"
)

// NextTradingDay returns the next weekday after now, skipping weekends.
// Mon-Thu roll to the next calendar day; Fri, Sat and Sun all roll to Monday.
// No holiday calendar awareness.
func NextTradingDay(now time.Time) time.Time {
	daysAhead := 1
	switch now.Weekday() {
	case time.Friday:
		daysAhead = 3
	case time.Saturday:
		daysAhead = 2
	case time.Sunday:
		daysAhead = 1
	}

	next := now.AddDate(0, 0, daysAhead)
	log.Printf("[INFO] today is %s - next trading day: %s", now.Weekday(), next.Format("Monday, Jan 2"))
	return next
}
