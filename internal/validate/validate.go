// Package validate is the acceptance gate for normalized calendar text. It
// checks structure markers and rejects generator commentary; per-line format,
// sort order and flag placement are the prompt's responsibility.
package validate

import (
	"fmt"
	"strings"

	"CalendarBot/internal/model"
)

// Phrases that indicate the generator broke format and added commentary.
var denylist = []string{
	"Important Note",
	"Note:",
	"disclaimer",
	"not available",
	"shutdown",
	"beyond current",
}

// Calendar checks that the text looks like a well-formed calendar post.
func Calendar(text string) model.ValidationResult {
	if text == "" {
		return reject("empty response")
	}
	if len(text) < 50 {
		return reject(fmt.Sprintf("response too short (%d chars)", len(text)))
	}
	if !strings.HasPrefix(strings.TrimSpace(text), "📊") {
		return reject("response doesn't start with 📊 (has preamble)")
	}
	if !strings.Contains(text, "*Economic Data:*") && !strings.Contains(text, "Economic Data:") {
		return reject("missing Economic Data section")
	}
	if !strings.Contains(text, "*Earnings:*") && !strings.Contains(text, "Earnings:") {
		return reject("missing Earnings section")
	}

	lower := strings.ToLower(text)
	for _, phrase := range denylist {
		if strings.Contains(lower, strings.ToLower(phrase)) {
			return reject(fmt.Sprintf("contains unwanted explanatory text: %q", phrase))
		}
	}

	return model.ValidationResult{OK: true}
}

func reject(reason string) model.ValidationResult {
	return model.ValidationResult{OK: false, Reason: reason}
}
