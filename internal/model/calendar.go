package model

import "time"

// CalendarRequest holds everything needed to build one calendar prompt.
type CalendarRequest struct {
	ReferenceNow time.Time
	TargetDate   time.Time
	WatchlistUS  []string
	WatchlistCAD []string
}

// CacheRecord is the single persisted last-good calendar result.
type CacheRecord struct {
	Date     string    `json:"date"`
	Content  string    `json:"content"`
	CachedAt time.Time `json:"cached_at"`
}

// ValidationResult is the outcome of the calendar acceptance gate.
type ValidationResult struct {
	OK     bool
	Reason string
}

// RunMode indicates how an invocation obtained its calendar text.
type RunMode string

const (
	RunModeFresh    RunMode = "FRESH"
	RunModeCache    RunMode = "CACHE"
	RunModeFallback RunMode = "FALLBACK"
)

// RunEvent records the outcome of one bot invocation.
type RunEvent struct {
	Mode       RunMode
	TargetDate string
	Outcome    string // "POSTED", "DRY_RUN", "FAILED"
	Chars      int
	Note       string
}
