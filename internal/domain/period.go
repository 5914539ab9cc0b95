package domain

import (
	"fmt"
	"strings"
	"time"
)

// periodLayouts are the date formats seen in pre-2025 agency exports, tried
// in order. Full dates come from daily-resolution exports later aggregated to
// months; the day component is ignored.
var periodLayouts = []string{
	"2006-01-02",
	"2006-01",
	"02/01/2006",
	"01/2006",
}

// ParsePeriod parses a period label into its year and month. The label must
// match one of the agency layouts exactly; anything else is malformed input,
// reported rather than skipped so a bad export cannot silently lose rows.
func ParsePeriod(label string) (int, time.Month, error) {
	label = strings.TrimSpace(label)
	if label == "" {
		return 0, 0, fmt.Errorf("empty period label: %w", ErrMalformedInput)
	}
	for _, layout := range periodLayouts {
		t, err := time.Parse(layout, label)
		if err == nil {
			return t.Year(), t.Month(), nil
		}
	}
	return 0, 0, fmt.Errorf("period label %q matches no known layout: %w", label, ErrMalformedInput)
}
