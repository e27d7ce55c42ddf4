package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
)

// dateLayouts are tried in order against free-form date text. Day-first
// layouts use non-padded tokens: time.Parse then accepts one or two
// digits, where a padded token demands exactly two.
var dateLayouts = []string{
	"2006-01-02",
	"2/1/2006",
	"2-1-2006",
	"2/1/06",
	"2-Jan-2006",
	"2 Jan 2006",
}

// fallbackLayouts cover day-first exports that carry a time component
// or unusual separators.
var fallbackLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2/1/2006 15:04:05",
	"2/1/2006 15:04",
	"2-1-2006 15:04:05",
	"2-1-2006 15:04",
	"2006/01/02",
	"2.1.2006",
	"2 January 2006",
	"2-Jan-06",
}

// absentTokens mark cells that carry no value at all.
var absentTokens = map[string]bool{
	"":     true,
	"-":    true,
	"nan":  true,
	"NaT":  true,
	"None": true,
}

// ParseDateAny parses free-form date text. Absent or unparseable input
// reports ok=false; no input ever produces an error.
func ParseDateAny(v string) (time.Time, bool) {
	s := strings.TrimSpace(v)
	if absentTokens[s] {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	for _, layout := range fallbackLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// ParseISODate parses a range-filter boundary: strict YYYY-MM-DD first,
// then the lenient day-first fallback. Empty input means no bound.
func ParseISODate(v string) (time.Time, bool) {
	s := strings.TrimSpace(v)
	if s == "" {
		return time.Time{}, false
	}
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, true
	}
	return ParseDateAny(s)
}

var (
	rsPrefixRe  = regexp.MustCompile(`(?i)rs\.?`)
	nonAmountRe = regexp.MustCompile(`[^0-9.\-]`)
)

// CleanMoney turns currency-formatted text ("Rs 12,345.00", "₹12,345")
// into a float. Blank or unparseable input is 0.
func CleanMoney(v string) float64 {
	s := strings.TrimSpace(v)
	if absentTokens[s] {
		return 0
	}

	s = strings.ReplaceAll(s, "₹", "")
	s = rsPrefixRe.ReplaceAllString(s, "")
	s = strings.ReplaceAll(s, ",", "")
	s = nonAmountRe.ReplaceAllString(strings.TrimSpace(s), "")

	switch s {
	case "", "-", ".", "-.":
		return 0
	}

	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// AgeBucketOrder is the canonical bucket order used by filter options.
var AgeBucketOrder = []string{
	"0-3 days",
	"4-10 days",
	"11-15 days",
	"16-30 days",
	"31-60 days",
	"Above 60",
}

// AgeBucket maps days-open onto its reporting bucket. Upper boundaries
// are inclusive.
func AgeBucket(days int) string {
	switch {
	case days <= 3:
		return "0-3 days"
	case days <= 10:
		return "4-10 days"
	case days <= 15:
		return "11-15 days"
	case days <= 30:
		return "16-30 days"
	case days <= 60:
		return "31-60 days"
	default:
		return "Above 60"
	}
}

// SafeStr trims v and substitutes def for blank input.
func SafeStr(v, def string) string {
	s := strings.TrimSpace(v)
	if s == "" {
		return def
	}
	return s
}

// ToIntSafe converts numeric text to an int, tolerating thousands
// separators and a decimal fraction; blank or garbage yields def.
func ToIntSafe(v string, def int) int {
	s := strings.ReplaceAll(strings.TrimSpace(v), ",", "")
	if s == "" {
		return def
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return def
	}
	return int(f)
}

// ProperCase normalizes a person name: single spaces between tokens,
// first letter upper, the rest lower.
func ProperCase(s string) string {
	fields := strings.Fields(s)
	for i, f := range fields {
		runes := []rune(strings.ToLower(f))
		runes[0] = unicode.ToUpper(runes[0])
		fields[i] = string(runes)
	}
	return strings.Join(fields, " ")
}

// DaysOpen is the whole-day age of an open date relative to today,
// clamped at zero. Absent dates count as zero days.
func DaysOpen(openDate time.Time, ok bool, today time.Time) int {
	if !ok {
		return 0
	}
	d := int(today.Sub(openDate).Hours() / 24)
	if d < 0 {
		return 0
	}
	return d
}
