// Package format renders calculator figures for display: whole-dollar
// currency, whole numbers and percentages with at most one decimal, grouped
// the en-US way.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func printer() *message.Printer {
	return message.NewPrinter(language.AmericanEnglish)
}

// Currency formats v as whole US dollars, e.g. -$1,234
func Currency(v float64) string {
	sign, abs := split(math.Round(v))
	return printer().Sprintf("%s$%d", sign, int64(abs))
}

// Number formats v as a whole number, e.g. 12,000
func Number(v float64) string {
	sign, abs := split(math.Round(v))
	return printer().Sprintf("%s%d", sign, int64(abs))
}

// Percent formats a percentage value, e.g. 66.875 → 66.9%
func Percent(v float64) string {
	sign, abs := split(math.Round(v*10) / 10)
	whole := int64(abs)
	tenths := int64(math.Round((abs - float64(whole)) * 10))
	if tenths == 10 {
		whole, tenths = whole+1, 0
	}
	if tenths == 0 {
		return printer().Sprintf("%s%d%%", sign, whole)
	}
	return printer().Sprintf("%s%d.%d%%", sign, whole, tenths)
}

func split(v float64) (string, float64) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "", 0
	}
	if v < 0 {
		return "-", -v
	}
	return "", math.Abs(v)
}
