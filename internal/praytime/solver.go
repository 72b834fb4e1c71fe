// Package praytime computes Islamic prayer times from the position of the
// sun.
//
// All computation is a pure function of a Config value, a Date and a
// Location:
//
//	cfg := praytime.DefaultConfig().WithMethod(praytime.MWL)
//	times := praytime.Compute(cfg, praytime.NewDate(2024, time.March, 1),
//		praytime.Location{Latitude: -7.8, Longitude: 110.3667, TimeZone: 7})
//	fmt.Println(praytime.Format(times, cfg.Format)[praytime.Dhuhr])
//
// Times are fractional hours of the local clock. Events the sun never
// reaches (twilight angles near the poles) come back as NaN and are
// rendered as InvalidTime by Format.
package praytime

import (
	"math"
	"time"
)

// Sun altitude at sunrise and sunset: refraction plus the solar radius.
const riseSetAngle = 0.833

// Governing angles for the high latitude rule when Isha or Maghrib is
// minutes based.
const (
	defaultIshaAngle    = 18
	defaultMaghribAngle = 4
)

// Date is a proleptic Gregorian calendar date.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate returns the date year-month-day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

// DateOf returns the calendar date of t in t's location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

func (d Date) String() string {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).Format("2006-01-02")
}

// Location is the observer's position and clock offset.
type Location struct {
	Latitude  float64 // degrees, north positive
	Longitude float64 // degrees, east positive
	TimeZone  float64 // hours east of UTC
}

// seed is the initial estimate for each event, in hours.
var seed = Times{5, 6, 12, 13, 18, 18, 18}

type solver struct {
	loc    Location
	params Params
	asr    AsrMethod
	jdate  float64
}

// Compute returns the local clock time of each event on the given date.
func Compute(cfg Config, date Date, loc Location) Times {
	s := solver{
		loc:    loc,
		params: cfg.Params(),
		asr:    cfg.Asr,
		jdate:  JulianDate(date.Year, int(date.Month), date.Day) - loc.Longitude/(15*24),
	}

	n := cfg.Iterations
	if n < 1 {
		n = 1
	}
	times := seed
	for i := 0; i < n; i++ {
		times = s.computeTimes(times)
	}

	s.adjustTimes(&times, cfg.DhuhrMinutes)
	if cfg.HighLat != None {
		s.adjustHighLats(&times, cfg.HighLat)
	}
	return times
}

// PrayerTimes computes and formats the times in cfg.Format.
func PrayerTimes(cfg Config, date Date, loc Location) Formatted {
	return Format(Compute(cfg, date, loc), cfg.Format)
}

// computeTimes refines every event from the previous estimate.
func (s *solver) computeTimes(prev Times) Times {
	var t Times
	for i, h := range prev {
		t[i] = h / 24
	}
	p := s.params
	return Times{
		Fajr:    s.computeTime(180-p.FajrAngle, t[Fajr]),
		Sunrise: s.computeTime(180-riseSetAngle, t[Sunrise]),
		Dhuhr:   s.computeMidday(t[Dhuhr]),
		Asr:     s.computeAsr(s.asr.shadowFactor(), t[Asr]),
		Sunset:  s.computeTime(riseSetAngle, t[Sunset]),
		Maghrib: s.computeTime(p.MaghribValue, t[Maghrib]),
		Isha:    s.computeTime(p.IshaValue, t[Isha]),
	}
}

// computeMidday returns solar noon for the day fraction t.
func (s *solver) computeMidday(t float64) float64 {
	return FixHour(12 - EquationOfTime(s.jdate+t))
}

// computeTime returns when the sun reaches angle g. Angles above 90 are
// measured from the eastern horizon and give morning times.
func (s *solver) computeTime(g, t float64) float64 {
	d := SunDeclination(s.jdate + t)
	z := s.computeMidday(t)
	lat := s.loc.Latitude
	v := darccos((-dsin(g)-dsin(d)*dsin(lat))/(dcos(d)*dcos(lat))) / 15
	if g > 90 {
		return z - v
	}
	return z + v
}

// computeAsr returns the time an object's shadow is step times its length
// plus the noon shadow.
func (s *solver) computeAsr(step, t float64) float64 {
	d := SunDeclination(s.jdate + t)
	g := -darccot(step + dtan(math.Abs(s.loc.Latitude-d)))
	return s.computeTime(g, t)
}

// adjustTimes moves solar times to the local clock and applies the minute
// based parameters.
func (s *solver) adjustTimes(times *Times, dhuhrMinutes float64) {
	offset := s.loc.TimeZone - s.loc.Longitude/15
	for i := range times {
		times[i] += offset
	}

	times[Dhuhr] += dhuhrMinutes / 60
	if s.params.MaghribSelector == Minutes {
		times[Maghrib] = times[Sunset] + s.params.MaghribValue/60
	}
	if s.params.IshaSelector == Minutes {
		times[Isha] = times[Maghrib] + s.params.IshaValue/60
	}
}

// adjustHighLats limits Fajr, Isha and Maghrib to a portion of the night.
// An event the sun never reaches (NaN) is always limited. Limited values are
// wrapped into [0, 24), so a Fajr on the previous evening reads as its clock
// time.
func (s *solver) adjustHighLats(times *Times, method HighLatMethod) {
	p := s.params
	night := timeDiff(times[Sunset], times[Sunrise])

	fajrDiff := nightPortion(method, p.FajrAngle) * night
	if math.IsNaN(times[Fajr]) || timeDiff(times[Fajr], times[Sunrise]) > fajrDiff {
		times[Fajr] = FixHour(times[Sunrise] - fajrDiff)
	}

	ishaAngle := float64(defaultIshaAngle)
	if p.IshaSelector == Angle {
		ishaAngle = p.IshaValue
	}
	ishaDiff := nightPortion(method, ishaAngle) * night
	if math.IsNaN(times[Isha]) || timeDiff(times[Sunset], times[Isha]) > ishaDiff {
		times[Isha] = FixHour(times[Sunset] + ishaDiff)
	}

	maghribAngle := float64(defaultMaghribAngle)
	if p.MaghribSelector == Angle {
		maghribAngle = p.MaghribValue
	}
	maghribDiff := nightPortion(method, maghribAngle) * night
	if math.IsNaN(times[Maghrib]) || timeDiff(times[Sunset], times[Maghrib]) > maghribDiff {
		times[Maghrib] = FixHour(times[Sunset] + maghribDiff)
	}
}

// nightPortion is the fraction of the night allowed between an event and
// its anchor.
func nightPortion(method HighLatMethod, angle float64) float64 {
	switch method {
	case AngleBased:
		return angle / 60
	case MidNight:
		return 1.0 / 2
	case OneSeventh:
		return 1.0 / 7
	default:
		return 0
	}
}

// timeDiff is the forward distance in hours from c1 to c2 on a 24-hour
// clock.
func timeDiff(c1, c2 float64) float64 {
	return FixHour(c2 - c1)
}
