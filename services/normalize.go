package services

import (
	"strconv"
	"strings"
)

// routeDelimiters are tried in order when splitting an "A -> B" header label
var routeDelimiters = []string{" -> ", " → ", " - ", " — "}

// TextOrDefault returns the trimmed value, or fallback when the value is
// empty or whitespace-only
func TextOrDefault(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}

// CleanLabel collapses internal whitespace runs into single spaces
func CleanLabel(value string) string {
	return strings.Join(strings.Fields(value), " ")
}

// SplitClassLabel splits a combined "class - subclass" label on the first
// hyphen. A label without a hyphen is all class, no subclass.
func SplitClassLabel(raw string) (major, minor *string) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, nil
	}
	if idx := strings.Index(trimmed, "-"); idx >= 0 {
		left := strings.TrimSpace(trimmed[:idx])
		right := strings.TrimSpace(trimmed[idx+1:])
		return &left, &right
	}
	return &trimmed, nil
}

// SplitTimeRange splits "08:00-12:30 (4j 30m)" into its two time labels,
// dropping any parenthesized duration suffix first
func SplitTimeRange(raw string) (depart, arrive string) {
	if raw == "" {
		return "", ""
	}
	cleaned := raw
	if idx := strings.Index(cleaned, "("); idx >= 0 {
		cleaned = cleaned[:idx]
	}
	parts := strings.SplitN(cleaned, "-", 2)
	depart = strings.TrimSpace(parts[0])
	if len(parts) > 1 {
		arrive = strings.TrimSpace(parts[1])
	}
	return depart, arrive
}

// SplitRouteText splits a header label like "PASAR SENEN -> LEMPUYANGAN",
// trying each known delimiter in order. Without a delimiter the whole
// cleaned label becomes the origin.
func SplitRouteText(raw string) (origin, destination *string) {
	if strings.TrimSpace(raw) == "" {
		return nil, nil
	}
	for _, delimiter := range routeDelimiters {
		if idx := strings.Index(raw, delimiter); idx >= 0 {
			left := CleanLabel(raw[:idx])
			right := CleanLabel(raw[idx+len(delimiter):])
			return &left, &right
		}
	}
	cleaned := CleanLabel(raw)
	return &cleaned, nil
}

// NormalizeDuration trims a duration label and strips surrounding parentheses
func NormalizeDuration(raw string) *string {
	trimmed := strings.Trim(strings.TrimSpace(raw), "()")
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ExtractFirstInt returns the first contiguous run of digits in raw, or nil
// when the string holds no digits. "0 kursi" yields 0, not nil.
func ExtractFirstInt(raw string) *int {
	start, end := -1, -1
	for i, ch := range raw {
		if ch >= '0' && ch <= '9' {
			if start < 0 {
				start = i
			}
			end = i + 1
			continue
		}
		if start >= 0 {
			break
		}
	}
	if start < 0 {
		return nil
	}
	n, err := strconv.Atoi(raw[start:end])
	if err != nil {
		return nil
	}
	return &n
}

// ParsePrice strips every non-digit character and parses the remainder, so
// "Rp 350.000" becomes 350000. No digits at all means no price, not zero.
func ParsePrice(raw string) *int {
	var digits strings.Builder
	for _, ch := range raw {
		if ch >= '0' && ch <= '9' {
			digits.WriteRune(ch)
		}
	}
	if digits.Len() == 0 {
		return nil
	}
	n, err := strconv.Atoi(digits.String())
	if err != nil {
		return nil
	}
	return &n
}
