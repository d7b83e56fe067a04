package prompt

import (
	"strings"
	"testing"
	"time"

	"CalendarBot/internal/model"
)

func testRequest() model.CalendarRequest {
	return model.CalendarRequest{
		ReferenceNow: time.Date(2026, time.January, 5, 9, 0, 0, 0, time.Local),
		TargetDate:   time.Date(2026, time.January, 6, 9, 0, 0, 0, time.Local),
	}
}

func TestBuild_ResolvesAllPlaceholders(t *testing.T) {
	b := NewBuilder(Options{
		SectionCap:    15,
		BoldWatchlist: true,
		WatchlistUS:   []string{"AAPL", "MSFT"},
		WatchlistCAD:  []string{"SHOP"},
	})
	p := b.Build(testRequest())

	for _, ph := range []string{"{today_date}", "{target_date}", "{target_short}", "{target_query}", "{section_cap}", "{watchlist_block}", "{us_symbols}", "{cad_symbols}"} {
		if strings.Contains(p, ph) {
			t.Errorf("unresolved placeholder %s", ph)
		}
	}

	wants := []string{
		"Today is Monday, January 5, 2026",
		"Search for Tuesday, January 6, 2026's",
		"📊 US & Canada Market Calendar - Tuesday, Jan 6, 2026",
		`"US economic calendar Jan 6 2026"`,
		"Max 15 earnings per section",
		"AAPL, MSFT",
		"Canada (use .TO suffix): SHOP",
	}
	for _, w := range wants {
		if !strings.Contains(p, w) {
			t.Errorf("prompt missing %q", w)
		}
	}
}

func TestBuild_WithoutWatchlist(t *testing.T) {
	b := NewBuilder(Options{SectionCap: 8})
	p := b.Build(testRequest())

	if strings.Contains(p, "PRIORITY WATCHLIST") {
		t.Error("watchlist block rendered without BoldWatchlist")
	}
	if !strings.Contains(p, "Max 8 earnings per section") {
		t.Error("section cap not substituted")
	}
}

func TestNewBuilder_DefaultSectionCap(t *testing.T) {
	b := NewBuilder(Options{})
	if b.Opts.SectionCap != 15 {
		t.Errorf("expected default cap 15, got %d", b.Opts.SectionCap)
	}
}
