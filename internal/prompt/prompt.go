// Package prompt renders the calendar search prompt. The downstream system is a
// free-text generator, so output determinism lives in the prompt wording itself:
// explicit sort order, explicit "no preamble", flag requirements and a worked
// example, rather than structural parsing after the fact.
package prompt

import (
	"fmt"
	"strings"

	"CalendarBot/internal/model"
)

const template = `Today is {today_date}. Search for {target_date}'s US and Canada economic calendar and earnings.

SEARCH STRATEGY (do all 3 searches):
1. Search: "US economic calendar {target_query}"
2. Search: "Canada economic calendar {target_query}" OR "StatCan releases {target_query}"
3. Search: "earnings calendar {target_query}" - use Nasdaq.com/market-activity/earnings

EARNINGS VERIFICATION:
- Use Nasdaq.com/market-activity/earnings as authority for timing
- "BMO" = Before Market, "AMC" = After Market
- Tech giants (AAPL, AMZN, META, GOOGL, MSFT) almost always report AFTER close
- ONLY include companies with market cap > $1 Billion
- If a company's market cap is unknown or unclear, exclude it
- Sort earnings by market cap (largest first within each section)
{watchlist_block}
OUTPUT THIS EXACT FORMAT:

📊 US & Canada Market Calendar - {target_short}

*Economic Data:*
• [Time] ET: 🇺🇸 [US Event]
• [Time] ET: 🇺🇸 [US Event]
• [Time] ET: 🇨🇦 [Canada Event]

*Earnings:*
• Before Market: Company (TICKER), Company (TICKER)
• After Market: Company (TICKER), Company (TICKER)

STRICT RULES:
1. EVERY economic event gets its own bullet point - never combine multiple events on one line
2. EVERY economic event MUST have a country flag: 🇺🇸 for US, 🇨🇦 for Canada
3. Output ONLY the formatted calendar - no preamble, notes, explanations, sources
4. Search for Canada data (StatCan, BoC) - if none scheduled, don't include any
5. If no economic data: • No major releases scheduled
6. If no earnings: • No major earnings scheduled
7. Use abbreviations: CPI, PPI, GDP, PCE, PMI, BoC, FOMC
8. EARNINGS FILTER: Only companies with market cap > $1 Billion - exclude smaller companies
9. Max {section_cap} earnings per section (Before/After Market), sorted by market cap (largest first)
10. Sort economic events by time
11. Canadian earnings get a 🇨🇦 flag and a .TO ticker suffix
12. Start with 📊 - no text before it

EXAMPLE OUTPUT:
📊 US & Canada Market Calendar - Thursday, Jan 29, 2026

*Economic Data:*
• 08:30 ET: 🇺🇸 GDP Q4 Advance
• 08:30 ET: 🇺🇸 Initial Jobless Claims
• 08:30 ET: 🇺🇸 PCE Price Index (Dec)
• 08:30 ET: 🇨🇦 GDP (Nov)
• 10:00 ET: 🇺🇸 Pending Home Sales (Dec)

*Earnings:*
• Before Market: Mastercard (MA), Caterpillar (CAT)
• After Market: Apple (AAPL), Visa (V), Intel (INTC)`

const watchlistTemplate = `
PRIORITY WATCHLIST (always include these if they report, regardless of ranking):
- US: {us_symbols}
- Canada (use .TO suffix): {cad_symbols}
`

// Options collapses the two historical prompt variants into one template.
type Options struct {
	SectionCap    int
	BoldWatchlist bool
	WatchlistUS   []string
	WatchlistCAD  []string
}

// Builder renders the calendar prompt for a request.
type Builder struct {
	Opts Options
}

// NewBuilder creates a Builder. A non-positive section cap defaults to 15.
func NewBuilder(opts Options) *Builder {
	if opts.SectionCap <= 0 {
		opts.SectionCap = 15
	}
	return &Builder{Opts: opts}
}

// Build renders the prompt with all placeholders substituted.
func (b *Builder) Build(req model.CalendarRequest) string {
	watchlistBlock := ""
	if b.Opts.BoldWatchlist {
		watchlistBlock = strings.NewReplacer(
			"{us_symbols}", strings.Join(b.Opts.WatchlistUS, ", "),
			"{cad_symbols}", strings.Join(b.Opts.WatchlistCAD, ", "),
		).Replace(watchlistTemplate)
	}

	return strings.NewReplacer(
		"{today_date}", req.ReferenceNow.Format("Monday, January 2, 2006"),
		"{target_date}", req.TargetDate.Format("Monday, January 2, 2006"),
		"{target_short}", req.TargetDate.Format("Monday, Jan 2, 2006"),
		"{target_query}", req.TargetDate.Format("Jan 2 2006"),
		"{section_cap}", fmt.Sprintf("%d", b.Opts.SectionCap),
		"{watchlist_block}", watchlistBlock,
	).Replace(template)
}
