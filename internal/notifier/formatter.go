package notifier

import (
	"fmt"
	"strings"
)

// FormatStaleFallback prefixes previously cached content with a warning banner
// naming the day it was cached for.
func FormatStaleFallback(dateLabel, content string) string {
	if dateLabel == "" {
		dateLabel = "unknown"
	}
	return fmt.Sprintf("⚠️ _Using cached data from %s_\n\n%s", dateLabel, content)
}

// FormatDryRun wraps the calendar text in a console banner for dry-run output.
func FormatDryRun(content string) string {
	rule := strings.Repeat("=", 50)
	return fmt.Sprintf("\n%s\nDRY RUN - would post to Slack:\n%s\n\n%s\n\n%s\n", rule, rule, content, rule)
}
