package formats

import (
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DateLayout is the day-first date format used in user-facing text.
const DateLayout = "02/01/2006"

// Count renders n with thousands separators, e.g. 83469 -> "83,469".
func Count(n int64) string {
	return message.NewPrinter(language.English).Sprintf("%d", n)
}

// Percent renders p with one decimal and a percent sign.
func Percent(p float64) string {
	return message.NewPrinter(language.English).Sprintf("%.1f%%", p)
}

// Date renders t in DateLayout, or "N/A" when t is nil.
func Date(t *time.Time) string {
	if t == nil {
		return "N/A"
	}
	return t.Format(DateLayout)
}

// Round rounds half toward positive infinity, so -2.5 becomes -2 and 2.5 becomes 3.
func Round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// RoundTenth rounds v to one decimal with the same tie rule as Round.
func RoundTenth(v float64) float64 {
	return Round(v*10) / 10
}
