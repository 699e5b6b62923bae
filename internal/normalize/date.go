package normalize

import (
	"strings"
	"time"
)

// DateLayout is how normalized dates are rendered
const DateLayout = "2006-01-02T15:04:05Z"

// ParseDate converts a source date string into a UTC date.
// Empty or unparseable input yields nil.
func ParseDate(s string) *time.Time {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// Try different date formats, first match wins
	formats := []string{
		"2006-1-2",
		"1/2/2006",
		"2006",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, s); err == nil {
			return &t
		}
	}

	return nil
}

// FormatDate renders d with DateLayout, or "" for nil
func FormatDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return d.UTC().Format(DateLayout)
}

// joinName builds a display name. First and last are always present;
// middle and suffix are skipped when blank.
func joinName(first, middle, last, suffix string) string {
	parts := []string{strings.TrimSpace(first)}
	if m := strings.TrimSpace(middle); m != "" {
		parts = append(parts, m)
	}
	parts = append(parts, strings.TrimSpace(last))
	if s := strings.TrimSpace(suffix); s != "" {
		parts = append(parts, s)
	}
	return strings.Join(parts, " ")
}
