package praytime

import (
	"fmt"
	"strconv"
	"strings"
)

// Method identifies a calculation method.
type Method int

// Calculation methods. The numeric values are stable and are what the
// config file stores.
const (
	Jafari  Method = iota // Ithna Ashari
	Karachi               // University of Islamic Sciences, Karachi
	ISNA                  // Islamic Society of North America
	MWL                   // Muslim World League
	Makkah                // Umm al-Qura, Makkah
	Egypt                 // Egyptian General Authority of Survey
	Custom                // User-defined parameters
	Tehran                // Institute of Geophysics, University of Tehran
)

// NumMethods is the number of calculation methods.
const NumMethods = 8

// Selector says how a Maghrib or Isha parameter value is interpreted.
type Selector int

const (
	// Angle means the value is a sun depression angle below the horizon.
	Angle Selector = iota
	// Minutes means the value is minutes after the anchor event
	// (Sunset for Maghrib, Maghrib for Isha).
	Minutes
)

func (s Selector) String() string {
	if s == Minutes {
		return "minutes"
	}
	return "angle"
}

// Params are the parameters of a calculation method.
type Params struct {
	FajrAngle       float64
	MaghribSelector Selector
	MaghribValue    float64
	IshaSelector    Selector
	IshaValue       float64
}

// String renders the parameters the way the methods table shows them,
// e.g. "fajr 18° maghrib +0min isha 17°".
func (p Params) String() string {
	return fmt.Sprintf("fajr %s° maghrib %s isha %s",
		trimFloat(p.FajrAngle),
		p.MaghribSelector.Format(p.MaghribValue),
		p.IshaSelector.Format(p.IshaValue))
}

// Format renders v as "17°" for angles or "+90min" for minutes.
func (s Selector) Format(v float64) string {
	if s == Minutes {
		return "+" + trimFloat(v) + "min"
	}
	return trimFloat(v) + "°"
}

func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// methodParams is the immutable base table, indexed by Method. The Custom
// entry is only the starting point; overrides live in Config.Custom.
var methodParams = [NumMethods]Params{
	Jafari:  {16, Angle, 4, Angle, 14},
	Karachi: {18, Minutes, 0, Angle, 18},
	ISNA:    {15, Minutes, 0, Angle, 15},
	MWL:     {18, Minutes, 0, Angle, 17},
	Makkah:  {18.5, Minutes, 0, Minutes, 90},
	Egypt:   {19.5, Minutes, 0, Angle, 17.5},
	Custom:  {18, Minutes, 0, Angle, 17},
	Tehran:  {17.7, Angle, 4.5, Angle, 14},
}

var methodNames = [NumMethods]string{
	Jafari:  "Jafari",
	Karachi: "Karachi",
	ISNA:    "ISNA",
	MWL:     "MWL",
	Makkah:  "Makkah",
	Egypt:   "Egypt",
	Custom:  "Custom",
	Tehran:  "Tehran",
}

var methodDescriptions = [NumMethods]string{
	Jafari:  "Ithna Ashari (Jafari)",
	Karachi: "University of Islamic Sciences, Karachi",
	ISNA:    "Islamic Society of North America (ISNA)",
	MWL:     "Muslim World League (MWL)",
	Makkah:  "Umm Al-Qura University, Makkah",
	Egypt:   "Egyptian General Authority of Survey",
	Custom:  "Custom parameters",
	Tehran:  "Institute of Geophysics, University of Tehran",
}

// Valid reports whether m is one of the known methods.
func (m Method) Valid() bool {
	return m >= 0 && m < NumMethods
}

func (m Method) String() string {
	if !m.Valid() {
		return fmt.Sprintf("Method(%d)", int(m))
	}
	return methodNames[m]
}

// Description returns the long name of the method.
func (m Method) Description() string {
	if !m.Valid() {
		return m.String()
	}
	return methodDescriptions[m]
}

// BaseParams returns the base table entry for m. Unknown methods yield the
// zero Params.
func (m Method) BaseParams() Params {
	if !m.Valid() {
		return Params{}
	}
	return methodParams[m]
}

// Methods returns all methods in numeric order.
func Methods() []Method {
	ms := make([]Method, NumMethods)
	for i := range ms {
		ms[i] = Method(i)
	}
	return ms
}

// ParseMethod accepts either the numeric id or the short name
// (case-insensitive).
func ParseMethod(s string) (Method, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		m := Method(n)
		if !m.Valid() {
			return 0, fmt.Errorf("%w: method %d out of range 0-%d", ErrInvalidConfig, n, NumMethods-1)
		}
		return m, nil
	}
	for i, name := range methodNames {
		if strings.EqualFold(s, name) {
			return Method(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown method %q", ErrInvalidConfig, s)
}

// AsrMethod selects the shadow length used for Asr.
type AsrMethod int

const (
	Shafii AsrMethod = iota // shadow factor 1
	Hanafi                  // shadow factor 2
)

// Valid reports whether a is Shafii or Hanafi.
func (a AsrMethod) Valid() bool {
	return a == Shafii || a == Hanafi
}

func (a AsrMethod) String() string {
	switch a {
	case Shafii:
		return "Shafii"
	case Hanafi:
		return "Hanafi"
	default:
		return fmt.Sprintf("AsrMethod(%d)", int(a))
	}
}

// shadowFactor is the object-to-shadow ratio that defines Asr.
func (a AsrMethod) shadowFactor() float64 {
	return 1 + float64(a)
}

// ParseAsrMethod accepts 0/1 or shafii/hanafi.
func ParseAsrMethod(s string) (AsrMethod, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "0", "shafii", "shafi":
		return Shafii, nil
	case "1", "hanafi":
		return Hanafi, nil
	}
	return 0, fmt.Errorf("%w: asr method %q must be 0 (Shafii) or 1 (Hanafi)", ErrInvalidConfig, s)
}

// HighLatMethod controls how Fajr, Maghrib and Isha are limited when the
// night is abnormally short.
type HighLatMethod int

const (
	None       HighLatMethod = iota // no adjustment
	MidNight                        // middle of the night
	OneSeventh                      // 1/7th of the night
	AngleBased                      // angle/60th of the night
)

var highLatNames = [...]string{
	None:       "none",
	MidNight:   "midnight",
	OneSeventh: "one-seventh",
	AngleBased: "angle-based",
}

// Valid reports whether h is a known adjustment.
func (h HighLatMethod) Valid() bool {
	return h >= None && h <= AngleBased
}

func (h HighLatMethod) String() string {
	if !h.Valid() {
		return fmt.Sprintf("HighLatMethod(%d)", int(h))
	}
	return highLatNames[h]
}

// ParseHighLatMethod accepts the numeric id or the name.
func ParseHighLatMethod(s string) (HighLatMethod, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if n, err := strconv.Atoi(s); err == nil {
		h := HighLatMethod(n)
		if !h.Valid() {
			return 0, fmt.Errorf("%w: high latitude method %d out of range 0-3", ErrInvalidConfig, n)
		}
		return h, nil
	}
	for i, name := range highLatNames {
		if s == name {
			return HighLatMethod(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown high latitude method %q", ErrInvalidConfig, s)
}

// TimeFormat selects the string representation produced by Format.
type TimeFormat int

const (
	Time24         TimeFormat = iota // 24-hour, "17:05"
	Time12                           // 12-hour with suffix, "5:05 pm"
	Time12NoSuffix                   // 12-hour without suffix, "5:05"
	Float                            // raw fractional hours
)

var timeFormatNames = [...]string{
	Time24:         "24h",
	Time12:         "12h",
	Time12NoSuffix: "12hNS",
	Float:          "float",
}

// Valid reports whether f is a known format.
func (f TimeFormat) Valid() bool {
	return f >= Time24 && f <= Float
}

func (f TimeFormat) String() string {
	if !f.Valid() {
		return fmt.Sprintf("TimeFormat(%d)", int(f))
	}
	return timeFormatNames[f]
}

// ParseTimeFormat accepts "24h", "12h", "12hNS" or "float".
func ParseTimeFormat(s string) (TimeFormat, error) {
	s = strings.TrimSpace(s)
	for i, name := range timeFormatNames {
		if strings.EqualFold(s, name) {
			return TimeFormat(i), nil
		}
	}
	return 0, fmt.Errorf("%w: time format %q must be one of %s",
		ErrInvalidConfig, s, strings.Join(timeFormatNames[:], ", "))
}
