// Package normalize cleans up the raw generator response before validation:
// preamble stripping, Slack bold syntax, and watchlist ticker emphasis.
package normalize

import "strings"

const (
	headerEmoji    = "📊"
	fallbackHeader = "US & Canada Market Calendar"
)

// Options controls the normalization pass.
type Options struct {
	// BoldWatchlist enables parenthesized ticker emphasis for watchlist symbols.
	BoldWatchlist bool
	WatchlistUS   []string
	WatchlistCAD  []string
}

// Normalize applies preamble strip, bold-marker rewrite and optional ticker
// bolding, in that order. Text with neither header marker passes through
// unchanged and is left for the validator to reject.
func Normalize(text string, opts Options) string {
	text = stripPreamble(text)
	// Generator markdown bold (**) to Slack bold (*).
	text = strings.ReplaceAll(text, "**", "*")
	if opts.BoldWatchlist {
		text = boldTickers(text, watchlistSet(opts.WatchlistUS, opts.WatchlistCAD))
	}
	return text
}

// stripPreamble discards everything before the calendar header. When only the
// textual fallback marker matches, the leading emoji is prepended so output
// always begins with it.
func stripPreamble(text string) string {
	for _, marker := range []string{headerEmoji, fallbackHeader} {
		idx := strings.Index(text, marker)
		if idx < 0 {
			continue
		}
		text = text[idx:]
		if !strings.HasPrefix(text, headerEmoji) {
			text = headerEmoji + " " + text
		}
		return text
	}
	return text
}

// watchlistSet builds the upper-cased membership set: US symbols, Canadian
// symbols, and Canadian symbols with the .TO suffix.
func watchlistSet(us, cad []string) map[string]struct{} {
	set := make(map[string]struct{}, len(us)+2*len(cad))
	for _, s := range us {
		set[strings.ToUpper(s)] = struct{}{}
	}
	for _, s := range cad {
		set[strings.ToUpper(s)] = struct{}{}
		set[strings.ToUpper(s)+".TO"] = struct{}{}
	}
	return set
}

// boldTickers rewrites "(SYMBOL)" as "(*SYMBOL*)" for watchlist symbols. The
// scan matches exact parenthesized tokens case-insensitively and never wraps a
// token that already carries emphasis markers, so the pass is idempotent.
func boldTickers(text string, symbols map[string]struct{}) string {
	if len(symbols) == 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for i := 0; i < len(text); {
		if text[i] != '(' {
			b.WriteByte(text[i])
			i++
			continue
		}
		end := strings.IndexByte(text[i:], ')')
		if end < 0 {
			b.WriteString(text[i:])
			break
		}
		token := text[i+1 : i+end]
		if strings.HasPrefix(token, "*") || strings.HasSuffix(token, "*") {
			// Already bolded, keep as-is.
			b.WriteString(text[i : i+end+1])
		} else if _, ok := symbols[strings.ToUpper(token)]; ok {
			b.WriteString("(*")
			b.WriteString(token)
			b.WriteString("*)")
		} else {
			b.WriteString(text[i : i+end+1])
		}
		i += end + 1
	}
	return b.String()
}
