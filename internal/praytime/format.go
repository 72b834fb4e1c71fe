package praytime

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// InvalidTime is shown for events that could not be computed.
const InvalidTime = "-----"

// Format renders every event in the given format.
func Format(times Times, f TimeFormat) Formatted {
	var out Formatted
	for i, t := range times {
		out[i] = FormatTime(t, f)
	}
	return out
}

// FormatTime renders a single fractional hour.
func FormatTime(t float64, f TimeFormat) string {
	switch f {
	case Float:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case Time12:
		return FloatToTime12(t, false)
	case Time12NoSuffix:
		return FloatToTime12NS(t)
	default:
		return FloatToTime24(t)
	}
}

// FloatToTime24 renders t as "HH:MM".
func FloatToTime24(t float64) string {
	h, m, ok := splitTime(t)
	if !ok {
		return InvalidTime
	}
	return fmt.Sprintf("%02d:%02d", h, m)
}

// FloatToTime12 renders t as "H:MM am" or, with noSuffix, "H:MM".
func FloatToTime12(t float64, noSuffix bool) string {
	h, m, ok := splitTime(t)
	if !ok {
		return InvalidTime
	}
	suffix := " am"
	if h >= 12 {
		suffix = " pm"
	}
	s := fmt.Sprintf("%d:%02d", (h+11)%12+1, m)
	if noSuffix {
		return s
	}
	return s + suffix
}

// FloatToTime12NS renders t as "H:MM" on a 12-hour clock.
func FloatToTime12NS(t float64) string {
	return FloatToTime12(t, true)
}

// splitTime rounds t to the nearest minute and splits it into hours and
// minutes. ok is false for NaN and negative values.
func splitTime(t float64) (hours, minutes int, ok bool) {
	if math.IsNaN(t) || math.IsInf(t, 0) || t < 0 {
		return 0, 0, false
	}
	t = FixHour(t + 0.5/60)
	h := math.Floor(t)
	m := math.Floor((t - h) * 60)
	return int(h), int(m), true
}

// ParseTime24 parses "HH:MM" into fractional hours.
func ParseTime24(s string) (float64, error) {
	s = strings.TrimSpace(s)
	hs, ms, found := strings.Cut(s, ":")
	if !found {
		return 0, fmt.Errorf("invalid time format: %q", s)
	}
	h, err := strconv.Atoi(hs)
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid hour in %q", s)
	}
	m, err := strconv.Atoi(ms)
	if err != nil || m < 0 || m > 59 || len(ms) != 2 {
		return 0, fmt.Errorf("invalid minute in %q", s)
	}
	return float64(h) + float64(m)/60, nil
}
