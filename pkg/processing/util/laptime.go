package util

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

var (
	thousand = decimal.NewFromInt(1000)
	sixty    = decimal.NewFromInt(60)
)

// Seconds converts d to seconds with millisecond precision
func Seconds(d time.Duration) decimal.Decimal {
	return decimal.NewFromInt(d.Milliseconds()).Div(thousand)
}

// FormatLapTime formats d as m:ss.SSS. Zero durations yield "-".
func FormatLapTime(d time.Duration) string {
	if d <= 0 {
		return "-"
	}
	secs := Seconds(d)
	minutes := secs.Div(sixty).Floor()
	rest := secs.Sub(minutes.Mul(sixty))
	if minutes.IsZero() {
		return rest.StringFixed(3)
	}
	pad := ""
	if rest.LessThan(decimal.NewFromInt(10)) {
		pad = "0"
	}
	return fmt.Sprintf("%s:%s%s", minutes.String(), pad, rest.StringFixed(3))
}

// FormatDelta formats d as signed seconds, e.g. "+1.250" or "-0.004"
func FormatDelta(d time.Duration) string {
	secs := Seconds(d)
	if secs.IsNegative() {
		return secs.StringFixed(3)
	}
	return "+" + secs.StringFixed(3)
}

// FormatSessionTime formats d as h:mm:ss, used for elapsed and remaining time
func FormatSessionTime(d time.Duration) string {
	d = d.Truncate(time.Second)
	h := d / time.Hour
	m := (d % time.Hour) / time.Minute
	s := (d % time.Minute) / time.Second
	return fmt.Sprintf("%d:%02d:%02d", h, m, s)
}
