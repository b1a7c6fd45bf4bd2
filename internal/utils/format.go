package utils

import (
	"math"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

// CurrencySymbol is prefixed to every money amount
const CurrencySymbol = "₹"

var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FormatCount formats an integer with thousands separators
func FormatCount(n int) string {
	return humanize.Comma(int64(n))
}

// FormatMoney formats a decimal amount with the currency symbol and thousands separators
func FormatMoney(d decimal.Decimal) string {
	fixed := d.StringFixed(2)
	sign := ""
	if strings.HasPrefix(fixed, "-") {
		sign, fixed = "-", fixed[1:]
	}
	whole, frac, _ := strings.Cut(fixed, ".")
	out := CurrencySymbol + sign + groupDigits(whole)
	if frac = strings.TrimRight(frac, "0"); frac != "" {
		out += "." + frac
	}
	return out
}

func groupDigits(digits string) string {
	if len(digits) <= 3 {
		return digits
	}
	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// FormatSignedAmount formats a transaction amount as +₹x for credits and ₹x for debits, using the absolute value
func FormatSignedAmount(d decimal.Decimal) string {
	sign := ""
	if !d.IsNegative() {
		sign = "+"
	}
	return sign + FormatMoney(d.Abs())
}

// Stars renders a 0-5 rating as five star glyphs
func Stars(rating float64) string {
	rating = math.Max(0, math.Min(5, rating))
	full := int(math.Floor(rating))
	half := 0
	if rating-math.Floor(rating) >= 0.5 {
		half = 1
	}
	empty := 5 - full - half
	return strings.Repeat("★", full) + strings.Repeat("☆", half) + strings.Repeat("☆", empty)
}

// ScoreWidth clamps a score to a 0-100 bar width
func ScoreWidth(score float64) float64 {
	return math.Max(0, math.Min(100, score))
}

// ParseTimestamp parses the timestamp formats the backend emits
func ParseTimestamp(raw string) (time.Time, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// FormatDate returns the date part of a backend timestamp, or "" when it cannot be parsed
func FormatDate(raw string) string {
	t, ok := ParseTimestamp(raw)
	if !ok {
		return ""
	}
	return t.Format("02/01/2006")
}

// FormatClock returns the time part of a backend timestamp, or "" when it cannot be parsed
func FormatClock(raw string) string {
	t, ok := ParseTimestamp(raw)
	if !ok {
		return ""
	}
	return t.Format("15:04:05")
}

// DateTimeLocal converts a backend timestamp into the value format of an <input type="datetime-local">
func DateTimeLocal(raw string) string {
	t, ok := ParseTimestamp(raw)
	if !ok {
		return ""
	}
	return t.Format("2006-01-02T15:04")
}

// Truncate cuts s to n runes and appends "..." when something was cut off
func Truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n]) + "..."
}

// Percent formats a 0..1 ratio as a percentage with one decimal
func Percent(ratio float64) string {
	return PercentPoints(ratio * 100)
}

// PercentPoints formats a value already on the 0..100 scale
func PercentPoints(p float64) string {
	return humanize.FtoaWithDigits(math.Round(p*10)/10, 1) + "%"
}
