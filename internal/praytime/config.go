package praytime

import (
	"fmt"

	"cloudeng.io/errors"
)

// ErrInvalidConfig is wrapped by every configuration error this package
// reports.
var ErrInvalidConfig = errors.New("invalid configuration")

// DefaultIterations is the number of refinement passes the solver makes.
// One pass is enough for minute precision.
const DefaultIterations = 1

// Config is an immutable calculation configuration. The With* methods
// return modified copies, so a Config can be shared freely between
// goroutines.
type Config struct {
	Method  Method
	Custom  Params // parameters used when Method is Custom
	Asr     AsrMethod
	HighLat HighLatMethod
	Format  TimeFormat

	// DhuhrMinutes is added to solar noon.
	DhuhrMinutes float64

	// Iterations is the number of refinement passes; values below one
	// are treated as one.
	Iterations int
}

// DefaultConfig returns Jafari, Shafii, MidNight, 24-hour output.
func DefaultConfig() Config {
	return Config{
		Method:     Jafari,
		Custom:     methodParams[Custom],
		Asr:        Shafii,
		HighLat:    MidNight,
		Format:     Time24,
		Iterations: DefaultIterations,
	}
}

// Params returns the parameters of the active method.
func (c Config) Params() Params {
	if c.Method == Custom {
		return c.Custom
	}
	return c.Method.BaseParams()
}

// WithMethod selects a calculation method.
func (c Config) WithMethod(m Method) Config {
	c.Method = m
	return c
}

// WithAsrMethod selects the Asr method. Values other than Shafii and
// Hanafi are ignored and the previous setting is kept.
func (c Config) WithAsrMethod(a AsrMethod) Config {
	if !a.Valid() {
		return c
	}
	c.Asr = a
	return c
}

// WithHighLatMethod selects the high latitude adjustment.
func (c Config) WithHighLatMethod(h HighLatMethod) Config {
	c.HighLat = h
	return c
}

// WithTimeFormat selects the output format.
func (c Config) WithTimeFormat(f TimeFormat) Config {
	c.Format = f
	return c
}

// WithDhuhrMinutes sets the offset added to solar noon.
func (c Config) WithDhuhrMinutes(minutes float64) Config {
	c.DhuhrMinutes = minutes
	return c
}

// WithIterations sets the number of refinement passes.
func (c Config) WithIterations(n int) Config {
	c.Iterations = n
	return c
}

// Override replaces selected method parameters. Nil fields inherit from
// the method that is active when the override is applied.
type Override struct {
	FajrAngle       *float64
	MaghribSelector *Selector
	MaghribValue    *float64
	IshaSelector    *Selector
	IshaValue       *float64
}

// IsZero reports whether o overrides nothing.
func (o Override) IsZero() bool {
	return o.FajrAngle == nil && o.MaghribSelector == nil && o.MaghribValue == nil &&
		o.IshaSelector == nil && o.IshaValue == nil
}

// Apply layers o over base.
func (o Override) Apply(base Params) Params {
	p := base
	if o.FajrAngle != nil {
		p.FajrAngle = *o.FajrAngle
	}
	if o.MaghribSelector != nil {
		p.MaghribSelector = *o.MaghribSelector
	}
	if o.MaghribValue != nil {
		p.MaghribValue = *o.MaghribValue
	}
	if o.IshaSelector != nil {
		p.IshaSelector = *o.IshaSelector
	}
	if o.IshaValue != nil {
		p.IshaValue = *o.IshaValue
	}
	return p
}

// WithCustom layers o over the active method's parameters and makes the
// result the active Custom method.
func (c Config) WithCustom(o Override) Config {
	c.Custom = o.Apply(c.Params())
	c.Method = Custom
	return c
}

// WithFajrAngle switches to Custom with the given Fajr angle.
func (c Config) WithFajrAngle(angle float64) Config {
	return c.WithCustom(Override{FajrAngle: &angle})
}

// WithMaghribAngle switches to Custom with an angle-based Maghrib.
func (c Config) WithMaghribAngle(angle float64) Config {
	s := Angle
	return c.WithCustom(Override{MaghribSelector: &s, MaghribValue: &angle})
}

// WithMaghribMinutes switches to Custom with Maghrib the given minutes
// after Sunset.
func (c Config) WithMaghribMinutes(minutes float64) Config {
	s := Minutes
	return c.WithCustom(Override{MaghribSelector: &s, MaghribValue: &minutes})
}

// WithIshaAngle switches to Custom with an angle-based Isha.
func (c Config) WithIshaAngle(angle float64) Config {
	s := Angle
	return c.WithCustom(Override{IshaSelector: &s, IshaValue: &angle})
}

// WithIshaMinutes switches to Custom with Isha the given minutes after
// Maghrib.
func (c Config) WithIshaMinutes(minutes float64) Config {
	s := Minutes
	return c.WithCustom(Override{IshaSelector: &s, IshaValue: &minutes})
}

// Validate reports every out of range field. The solver never needs it;
// it is for callers that build a Config from user input.
func (c Config) Validate() error {
	errs := &errors.M{}
	if !c.Method.Valid() {
		errs.Append(fmt.Errorf("%w: method %d out of range 0-%d", ErrInvalidConfig, int(c.Method), NumMethods-1))
	}
	if !c.Asr.Valid() {
		errs.Append(fmt.Errorf("%w: asr method %d must be 0 or 1", ErrInvalidConfig, int(c.Asr)))
	}
	if !c.HighLat.Valid() {
		errs.Append(fmt.Errorf("%w: high latitude method %d out of range 0-3", ErrInvalidConfig, int(c.HighLat)))
	}
	if !c.Format.Valid() {
		errs.Append(fmt.Errorf("%w: time format %d out of range 0-3", ErrInvalidConfig, int(c.Format)))
	}
	p := c.Params()
	if p.MaghribSelector != Angle && p.MaghribSelector != Minutes {
		errs.Append(fmt.Errorf("%w: maghrib selector %d must be 0 or 1", ErrInvalidConfig, int(p.MaghribSelector)))
	}
	if p.IshaSelector != Angle && p.IshaSelector != Minutes {
		errs.Append(fmt.Errorf("%w: isha selector %d must be 0 or 1", ErrInvalidConfig, int(p.IshaSelector)))
	}
	return errs.Err()
}
