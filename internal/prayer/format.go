package prayer

import (
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/smokyabdulrahman/praytime/internal/praytime"
)

// Status line modes for the next prayer.
const (
	FormatTimeRemaining      = "time-remaining"
	FormatNextPrayerTime     = "next-prayer-time"
	FormatNameAndTime        = "name-and-time"
	FormatNameAndRemaining   = "name-and-remaining"
	FormatShortNameAndTime   = "short-name-and-time"
	FormatShortNameAndRemain = "short-name-and-remaining"
	FormatFull               = "full"
)

// Formats lists the built-in modes.
var Formats = []string{
	FormatTimeRemaining,
	FormatNextPrayerTime,
	FormatNameAndTime,
	FormatNameAndRemaining,
	FormatShortNameAndTime,
	FormatShortNameAndRemain,
	FormatFull,
}

// FormatData is the data passed to custom Go templates.
type FormatData struct {
	Name      string // Full prayer name, e.g. "Asr"
	ShortName string // Abbreviated name, e.g. "A"
	Time      string // Clock time in the configured format, e.g. "15:02" or "3:02 pm"
	Date      string // Calendar date of the prayer, e.g. "2024-03-15"
	Tomorrow  bool   // The prayer falls on a later day than now
	Remaining string // Time remaining, e.g. "2h 15m"
	Hours     int    // Whole hours remaining
	Minutes   int    // Remaining minutes after hours
}

// Formatter renders one prayer as a single line, for status bars.
type Formatter struct {
	mode  string
	tmpl  *template.Template
	clock praytime.TimeFormat
}

// NewFormatter accepts one of Formats, or a Go template when mode contains
// "{{". Clock times use the engine formatter in clock.
func NewFormatter(mode string, clock praytime.TimeFormat) (*Formatter, error) {
	f := &Formatter{mode: mode, clock: clock}
	if strings.Contains(mode, "{{") {
		tmpl, err := template.New("format").Parse(mode)
		if err != nil {
			return nil, fmt.Errorf("invalid format template: %w", err)
		}
		f.tmpl = tmpl
		return f, nil
	}
	for _, known := range Formats {
		if mode == known {
			return f, nil
		}
	}
	return nil, fmt.Errorf("unknown format %q; valid formats: %s, or a Go template",
		mode, strings.Join(Formats, ", "))
}

// Data collects the template fields for p as seen at now.
func (f *Formatter) Data(p Prayer, now time.Time) FormatData {
	d := TimeRemaining(p, now)
	if d < 0 {
		d = 0
	}
	data := FormatData{
		Name:      p.Name,
		ShortName: ShortNames[p.Name],
		Time:      FormatClock(p, f.clock),
		Remaining: FormatRemaining(d),
		Hours:     int(d.Hours()),
		Minutes:   int(d.Minutes()) % 60,
	}
	if p.Valid() {
		data.Date = p.Time.Format(time.DateOnly)
		data.Tomorrow = p.Time.Format(time.DateOnly) > now.In(p.Time.Location()).Format(time.DateOnly)
	}
	return data
}

// Format renders p. Only templates can fail, when they reference a field
// FormatData does not have.
func (f *Formatter) Format(p Prayer, now time.Time) (string, error) {
	data := f.Data(p, now)

	if f.tmpl != nil {
		var sb strings.Builder
		if err := f.tmpl.Execute(&sb, data); err != nil {
			return "", fmt.Errorf("format template: %w", err)
		}
		return sb.String(), nil
	}

	switch f.mode {
	case FormatTimeRemaining:
		return data.Remaining, nil
	case FormatNextPrayerTime:
		return data.Time, nil
	case FormatNameAndRemaining:
		return data.Name + " " + data.Remaining, nil
	case FormatShortNameAndTime:
		return data.ShortName + " " + data.Time, nil
	case FormatShortNameAndRemain:
		return data.ShortName + " " + data.Remaining, nil
	case FormatFull:
		return fmt.Sprintf("%s %s (%s)", data.Name, data.Time, data.Remaining), nil
	default:
		return data.Name + " " + data.Time, nil
	}
}
