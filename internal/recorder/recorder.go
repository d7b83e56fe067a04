package recorder

import "CalendarBot/internal/model"

// Recorder persists run outcomes for operational history. It never stores
// calendar content; the single-slot cache is the only place results live.
type Recorder interface {
	RecordRun(evt *model.RunEvent) error
	Close() error
}
