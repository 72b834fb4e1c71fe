package praytime

import "math"

// Degree-based trigonometry. Every angle in this package is in degrees.

func dsin(d float64) float64 { return math.Sin(degToRad(d)) }
func dcos(d float64) float64 { return math.Cos(degToRad(d)) }
func dtan(d float64) float64 { return math.Tan(degToRad(d)) }

func darcsin(x float64) float64 { return radToDeg(math.Asin(x)) }
func darccos(x float64) float64 { return radToDeg(math.Acos(x)) }
func darctan(x float64) float64 { return radToDeg(math.Atan(x)) }

// darctan2 returns atan2(y, x) in degrees.
func darctan2(y, x float64) float64 { return radToDeg(math.Atan2(y, x)) }

// darccot returns the arc cotangent of x. x must not be zero.
func darccot(x float64) float64 { return darctan(1 / x) }

func degToRad(d float64) float64 { return d * math.Pi / 180.0 }
func radToDeg(r float64) float64 { return r * 180.0 / math.Pi }

// FixAngle reduces a to the range [0, 360).
func FixAngle(a float64) float64 {
	return wrap(a, 360)
}

// FixHour reduces h to the range [0, 24).
func FixHour(h float64) float64 {
	return wrap(h, 24)
}

// wrap uses floored modulo so that negative values wrap around instead of
// being truncated toward zero.
func wrap(v, n float64) float64 {
	v -= n * math.Floor(v/n)
	if v < 0 {
		v += n
	}
	// Floating point can land exactly on n for tiny negative inputs.
	if v >= n {
		v -= n
	}
	return v
}
