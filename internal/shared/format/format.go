// Package format converts raw numeric and date values into the display
// strings used across every dashboard view. All functions are total: nil,
// NaN and ±Inf inputs degrade to a documented zero-value string instead of
// panicking, so a missing database column can never corrupt a rendered page.
//
// Nullable storage columns map to pointer fields, which is why every
// formatter takes a pointer.
package format

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// printer groups digits the en-US way ("1,234,567.89").
var printer = message.NewPrinter(language.AmericanEnglish)

// value unwraps a nullable numeric. NaN and ±Inf count as missing.
func value(v *float64) (float64, bool) {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return 0, false
	}
	return *v, true
}

// Currency formats a US-dollar amount with two decimals and digit grouping,
// e.g. "$1,234.56". Missing input yields "$0.00".
func Currency(v *float64) string {
	f, ok := value(v)
	if !ok {
		return "$0.00"
	}
	return printer.Sprintf("$%.2f", f)
}

// Number formats an integer count with digit grouping, e.g. "1,234,567".
// Missing input yields "0".
func Number(v *int64) string {
	if v == nil {
		return "0"
	}
	return printer.Sprintf("%d", *v)
}

// Percent formats with two decimals and a trailing percent sign, without a
// leading sign, e.g. "12.34%". Missing input yields "0.00%".
//
// Callers wanting a signed display use ChangePercent instead; the two exist
// side by side on purpose so each call site chooses deliberately.
func Percent(v *float64) string {
	f, ok := value(v)
	if !ok {
		return "0.00%"
	}
	return fmt.Sprintf("%.2f%%", f)
}

// ChangePercent is the signed sibling of Percent: non-negative values get a
// leading "+", e.g. "+12.34%" / "-5.67%". Missing input yields "0.00%".
func ChangePercent(v *float64) string {
	f, ok := value(v)
	if !ok {
		return "0.00%"
	}
	return fmt.Sprintf("%+.2f%%", f)
}

// Change formats a signed price delta with two decimals, e.g. "+1.23".
// Missing input yields "0.00".
func Change(v *float64) string {
	f, ok := value(v)
	if !ok {
		return "0.00"
	}
	return fmt.Sprintf("%+.2f", f)
}

// MarketCap scales to the largest fitting unit among T/B/M/K with two
// decimals and a dollar prefix, e.g. "$1.50T". Values under 1000 render as
// plain currency. Missing input yields "$0".
func MarketCap(v *float64) string {
	f, ok := value(v)
	if !ok {
		return "$0"
	}
	switch {
	case f >= 1e12:
		return fmt.Sprintf("$%.2fT", f/1e12)
	case f >= 1e9:
		return fmt.Sprintf("$%.2fB", f/1e9)
	case f >= 1e6:
		return fmt.Sprintf("$%.2fM", f/1e6)
	case f >= 1e3:
		return fmt.Sprintf("$%.2fK", f/1e3)
	default:
		return fmt.Sprintf("$%.2f", f)
	}
}

// Volume truncates to an integer, then applies the same T/B/M/K ladder as
// MarketCap without the currency prefix, e.g. "45.60M". Values under 1000
// render as plain digits. Missing input yields "0".
func Volume(v *float64) string {
	f, ok := value(v)
	if !ok {
		return "0"
	}
	n := int64(f)
	switch {
	case n >= 1e12:
		return fmt.Sprintf("%.2fT", float64(n)/1e12)
	case n >= 1e9:
		return fmt.Sprintf("%.2fB", float64(n)/1e9)
	case n >= 1e6:
		return fmt.Sprintf("%.2fM", float64(n)/1e6)
	case n >= 1e3:
		return fmt.Sprintf("%.2fK", float64(n)/1e3)
	default:
		return strconv.FormatInt(n, 10)
	}
}

// ShortenNumber scales by absolute value to one decimal, e.g. "1.2M",
// "-345.0K". Missing input yields "0".
func ShortenNumber(v *float64) string {
	f, ok := value(v)
	if !ok {
		return "0"
	}
	abs := math.Abs(f)
	switch {
	case abs >= 1e9:
		return fmt.Sprintf("%.1fB", f/1e9)
	case abs >= 1e6:
		return fmt.Sprintf("%.1fM", f/1e6)
	case abs >= 1e3:
		return fmt.Sprintf("%.1fK", f/1e3)
	default:
		return fmt.Sprintf("%.0f", f)
	}
}

// DateLong renders "Nov 18, 2025". Missing (nil or zero) input yields "N/A".
func DateLong(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2, 2006")
}

// DateShort renders "Nov 18". Missing input yields "N/A".
func DateShort(t *time.Time) string {
	if t == nil || t.IsZero() {
		return "N/A"
	}
	return t.Format("Jan 2")
}

// Timestamp renders the wire form of a stored timestamp: second precision,
// UTC, trailing Z. The stored value is timezone-naive, so the conversion to
// UTC happens before formatting and the Z marks how clients must read it.
func Timestamp(t time.Time) string {
	return t.UTC().Format("2006-01-02T15:04:05") + "Z"
}

// DateKey renders the wire form of a trading or fiscal date.
func DateKey(t time.Time) string {
	return t.UTC().Format("2006-01-02")
}
