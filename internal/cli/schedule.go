package cli

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/smokyabdulrahman/praytime/internal/config"
	"github.com/smokyabdulrahman/praytime/internal/prayer"
	"github.com/smokyabdulrahman/praytime/internal/praytime"
)

// nowFunc is the clock used for "today" and countdowns.
var nowFunc = time.Now

var errNoLocation = errors.New("no location configured: pass --latitude and --longitude, " +
	"or run 'prayer-times config set latitude <deg>' and 'prayer-times config set longitude <deg>'")

// session is the resolved configuration for one command invocation.
type session struct {
	engine   praytime.Config
	lat, lng float64
	tz       *float64 // nil uses the system offset of each date
	prayers  []string
}

// newSession merges flags, environment and config file and builds the
// engine configuration.
func newSession(cmd *cobra.Command) (*session, error) {
	cfg, err := effectiveConfig(cmd)
	if err != nil {
		return nil, err
	}
	return sessionFromConfig(cfg)
}

func sessionFromConfig(cfg *config.Config) (*session, error) {
	if !cfg.HasLocation() {
		return nil, errNoLocation
	}
	engine, err := cfg.Engine()
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	s := &session{
		engine:  engine,
		lat:     *cfg.Latitude,
		lng:     *cfg.Longitude,
		tz:      cfg.TimeZone,
		prayers: cfg.PrayerList(prayer.DefaultPrayerNames),
	}
	log.Debug().
		Float64("latitude", s.lat).
		Float64("longitude", s.lng).
		Str("method", engine.Method.String()).
		Str("params", engine.Params().String()).
		Str("asr", engine.Asr.String()).
		Str("high_lat", engine.HighLat.String()).
		Msg("session")
	return s, nil
}

// zone returns the fixed zone used for the calendar day of t, and its
// offset in hours.
func (s *session) zone(t time.Time) (*time.Location, float64) {
	if s.tz != nil {
		return fixedZone(*s.tz), *s.tz
	}
	y, m, d := t.Date()
	_, off := time.Date(y, m, d, 12, 0, 0, 0, time.Local).Zone()
	tz := float64(off) / 3600
	return fixedZone(tz), tz
}

// now returns the current time in today's zone.
func (s *session) now() time.Time {
	t := nowFunc()
	zone, _ := s.zone(t)
	return t.In(zone)
}

// daySchedule is the computed schedule for one calendar day.
type daySchedule struct {
	Date    time.Time // midnight in Zone
	Zone    *time.Location
	Times   praytime.Times
	Prayers []prayer.Prayer
}

// cell renders one event in the session's time format.
func (s *session) cell(d daySchedule, name string) string {
	e, err := praytime.ParseEvent(name)
	if err != nil {
		return ""
	}
	return praytime.FormatTime(d.Times[e], s.engine.Format)
}

// day computes the selected prayers for the calendar day of t.
func (s *session) day(t time.Time, names []string) (daySchedule, error) {
	zone, tz := s.zone(t)
	y, m, d := t.Date()
	times := praytime.Compute(s.engine,
		praytime.NewDate(y, m, d),
		praytime.Location{Latitude: s.lat, Longitude: s.lng, TimeZone: tz})

	date := time.Date(y, m, d, 0, 0, 0, 0, zone)
	prayers, err := prayer.ParseTimings(times, date, zone, names)
	if err != nil {
		return daySchedule{}, err
	}

	ev := log.Debug().Str("date", date.Format(time.DateOnly)).Float64("tz", tz)
	for i, name := range praytime.EventNames() {
		ev = ev.Str(name, praytime.FloatToTime24(times[i]))
	}
	ev.Msg("computed")

	for _, p := range prayers {
		if !p.Valid() {
			log.Warn().Str("date", date.Format(time.DateOnly)).Str("prayer", p.Name).
				Msg(s.invalidHint())
		}
	}
	return daySchedule{Date: date, Zone: zone, Times: times, Prayers: prayers}, nil
}

// invalidHint explains an event without a time. The high latitude
// adjustment only helps while it is off.
func (s *session) invalidHint() string {
	if s.engine.HighLat == praytime.None {
		return "time could not be computed; try --high-lat angle-based"
	}
	return "time could not be computed; check latitude and timezone"
}

// days computes n consecutive days starting with the day of start.
func (s *session) days(start time.Time, n int, names []string) ([]daySchedule, error) {
	out := make([]daySchedule, 0, n)
	y, m, d := start.Date()
	for i := 0; i < n; i++ {
		// Noon avoids DST transitions moving the date.
		t := time.Date(y, m, d+i, 12, 0, 0, 0, time.UTC)
		ds, err := s.day(t, names)
		if err != nil {
			return nil, err
		}
		out = append(out, ds)
	}
	return out, nil
}

// fixedZone names a UTC offset the way it is displayed, e.g. "UTC+5:30".
func fixedZone(tz float64) *time.Location {
	secs := int(math.Round(tz * 3600))
	return time.FixedZone(utcLabel(secs), secs)
}

func utcLabel(secs int) string {
	if secs == 0 {
		return "UTC"
	}
	sign := "+"
	if secs < 0 {
		sign = "-"
		secs = -secs
	}
	h, m := secs/3600, (secs%3600)/60
	if m == 0 {
		return fmt.Sprintf("UTC%s%d", sign, h)
	}
	return fmt.Sprintf("UTC%s%d:%02d", sign, h, m)
}

// locationLabel renders the coordinates for display.
func (s *session) locationLabel() string {
	return fmt.Sprintf("%.4f, %.4f", s.lat, s.lng)
}

// methodLabel renders the active method and its parameters.
func (s *session) methodLabel() string {
	return fmt.Sprintf("%s (%s), Asr %s", s.engine.Method, s.engine.Params(), s.engine.Asr)
}

// jsonLocation is the location block shared by all JSON outputs.
type jsonLocation struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone"`
}

func (s *session) jsonLocation(zone *time.Location) jsonLocation {
	return jsonLocation{
		Latitude:  s.lat,
		Longitude: s.lng,
		Timezone:  zone.String(),
	}
}
