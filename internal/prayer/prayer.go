package prayer

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/smokyabdulrahman/praytime/internal/praytime"
)

// Prayer represents a single prayer with its name and time.
// A zero Time means the engine could not compute the event for that day.
type Prayer struct {
	Name string
	Time time.Time
}

// Valid reports whether the prayer has a computed time.
func (p Prayer) Valid() bool {
	return !p.Time.IsZero()
}

// AllPrayerNames lists every event the engine computes, in chronological order.
var AllPrayerNames = praytime.EventNames()

// DefaultPrayerNames are the prayers tracked by default.
var DefaultPrayerNames = []string{
	"Fajr", "Sunrise", "Dhuhr", "Asr", "Maghrib", "Isha",
}

// ShortNames maps full prayer names to abbreviations.
var ShortNames = map[string]string{
	"Fajr":    "F",
	"Sunrise": "S",
	"Dhuhr":   "D",
	"Asr":     "A",
	"Sunset":  "St",
	"Maghrib": "M",
	"Isha":    "I",
}

// ParseNames splits a comma-separated prayer list and validates each name.
// Names are normalised to their canonical capitalisation.
func ParseNames(list string) ([]string, error) {
	var names []string
	for _, n := range strings.Split(list, ",") {
		e, err := praytime.ParseEvent(n)
		if err != nil {
			return nil, err
		}
		names = append(names, e.String())
	}
	return names, nil
}

// ParseTimings converts computed times for date into Prayer values in loc,
// keeping only the selected names, in the order given.
//
// Times past 24h roll over to the next day. Fajr or Sunrise later than
// Dhuhr belong to the previous evening, and evening events earlier than
// Dhuhr to the following night. NaN and negative times yield a Prayer with
// a zero Time.
func ParseTimings(times praytime.Times, date time.Time, loc *time.Location, selected []string) ([]Prayer, error) {
	var prayers []Prayer
	for _, name := range selected {
		e, err := praytime.ParseEvent(name)
		if err != nil {
			return nil, err
		}
		prayers = append(prayers, Prayer{
			Name: e.String(),
			Time: hoursToTime(times[e], date.AddDate(0, 0, dayShift(e, times)), loc),
		})
	}
	return prayers, nil
}

// dayShift returns -1, 0 or 1 for an event that wrapped around midnight.
func dayShift(e praytime.Event, times praytime.Times) int {
	h, dhuhr := times[e], times[praytime.Dhuhr]
	if math.IsNaN(h) || math.IsNaN(dhuhr) {
		return 0
	}
	switch {
	case e < praytime.Dhuhr && h > dhuhr:
		return -1
	case e > praytime.Dhuhr && h < dhuhr:
		return 1
	}
	return 0
}

// hoursToTime places fractional hours h on date's calendar day in loc,
// rounded to the minute the same way the engine formats times.
func hoursToTime(h float64, date time.Time, loc *time.Location) time.Time {
	if math.IsNaN(h) || math.IsInf(h, 0) || h < 0 {
		return time.Time{}
	}
	minutes := math.Floor(h*60 + 0.5)
	y, m, d := date.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc).Add(time.Duration(minutes) * time.Minute)
}

// NextPrayer finds the next upcoming prayer from the given slice, relative to now.
// If all prayers for today have passed, it returns nil (caller should compute tomorrow's).
func NextPrayer(prayers []Prayer, now time.Time) *Prayer {
	for i := range prayers {
		if prayers[i].Valid() && prayers[i].Time.After(now) {
			return &prayers[i]
		}
	}
	return nil
}

// CurrentPrayer returns the latest prayer whose time has arrived, or nil
// before the first one.
func CurrentPrayer(prayers []Prayer, now time.Time) *Prayer {
	var current *Prayer
	for i := range prayers {
		if prayers[i].Valid() && !prayers[i].Time.After(now) {
			current = &prayers[i]
		}
	}
	return current
}

// TimeRemaining returns the duration until the given prayer time.
func TimeRemaining(prayer Prayer, now time.Time) time.Duration {
	return prayer.Time.Sub(now)
}

// FormatRemaining formats a duration as "Xh Ym" or "Ym" if less than an hour.
func FormatRemaining(d time.Duration) string {
	if d < 0 {
		return "0m"
	}
	h := int(d.Hours())
	m := int(d.Minutes()) % 60

	if h > 0 {
		return fmt.Sprintf("%dh %dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}

// FormatClock renders the prayer's clock time with the engine formatter.
// Invalid prayers render as praytime.InvalidTime.
func FormatClock(p Prayer, f praytime.TimeFormat) string {
	if !p.Valid() {
		return praytime.InvalidTime
	}
	t := p.Time
	h := float64(t.Hour()) + float64(t.Minute())/60 + float64(t.Second())/3600
	return praytime.FormatTime(h, f)
}
