package gemini

import (
	"regexp"
	"strings"
)

var enumPrefixPattern = regexp.MustCompile(`^\d+\.\s*`)

// SanitizeTips splits freeform model output into one tip per line and strips
// the formatting the model tends to emit anyway: "1. " enumeration prefixes,
// bold markers, then any remaining asterisks, then surrounding whitespace.
// Lines that are empty before cleanup are skipped; a line that becomes empty
// only after cleanup is kept as-is.
func SanitizeTips(raw string) []string {
	lines := strings.Split(raw, "\n")

	tips := make([]string, 0, len(lines))
	for _, line := range lines {
		if line == "" {
			continue
		}

		tip := enumPrefixPattern.ReplaceAllString(line, "")
		tip = strings.ReplaceAll(tip, "**", "")
		tip = strings.ReplaceAll(tip, "*", "")
		tips = append(tips, strings.TrimSpace(tip))
	}

	return tips
}
