package clock

import (
	"fmt"
	"strings"
	"time"
)

// Format renders a measured duration in the most appropriate unit. Measured
// durations have microsecond granularity, so the smallest unit is µs.
func Format(d time.Duration) string {
	if d <= 0 {
		return "0µs"
	}

	us := d.Microseconds()

	if us < 1000 {
		return fmt.Sprintf("%dµs", us)
	}

	if us < 1_000_000 {
		ms := float64(us) / 1000.0
		if ms == float64(int64(ms)) {
			return fmt.Sprintf("%dms", int64(ms))
		}
		return fmt.Sprintf("%.2fms", ms)
	}

	s := float64(us) / 1_000_000.0
	if s == float64(int64(s)) {
		return fmt.Sprintf("%ds", int64(s))
	}
	return fmt.Sprintf("%.2fs", s)
}

// FormatNumber formats an integer with comma separators.
func FormatNumber(n int) string {
	s := fmt.Sprintf("%d", n)
	neg := strings.HasPrefix(s, "-")
	if neg {
		s = s[1:]
	}

	var result strings.Builder
	if neg {
		result.WriteByte('-')
	}
	for i, c := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			result.WriteByte(',')
		}
		result.WriteRune(c)
	}
	return result.String()
}
