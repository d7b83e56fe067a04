// Package cache persists the last successful calendar as a single-slot JSON
// file. Caching is best-effort: every failure is logged and treated as
// cache-absent, never surfaced to the caller.
package cache

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"CalendarBot/internal/model"
)

// Store is a single-slot file-backed cache.
type Store struct {
	Path string
}

// NewStore creates a Store at the given file path.
func NewStore(path string) *Store {
	return &Store{Path: path}
}

// Save overwrites the slot with a validated calendar. Write failures are
// logged and swallowed.
func (s *Store) Save(content, dateLabel string) {
	rec := model.CacheRecord{
		Date:     dateLabel,
		Content:  content,
		CachedAt: time.Now(),
	}
	data, err := json.Marshal(rec)
	if err != nil {
		log.Printf("[WARN] failed to cache calendar: %v", err)
		return
	}
	if err := os.WriteFile(s.Path, data, 0644); err != nil {
		log.Printf("[WARN] failed to cache calendar: %v", err)
		return
	}
	log.Println("[INFO] calendar cached successfully")
}

// Load reads the slot if present. A missing, unreadable or corrupt file is
// reported as "no cache available".
func (s *Store) Load() (*model.CacheRecord, bool) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("[WARN] failed to load cache: %v", err)
		}
		return nil, false
	}
	var rec model.CacheRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		log.Printf("[WARN] failed to load cache: %v", err)
		return nil, false
	}
	return &rec, true
}
