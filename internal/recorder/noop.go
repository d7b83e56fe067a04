package recorder

import "CalendarBot/internal/model"

// NoopRecorder discards all events. Used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordRun(_ *model.RunEvent) error { return nil }

func (n *NoopRecorder) Close() error { return nil }
