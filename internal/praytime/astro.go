package praytime

import "math"

// j2000 is the Julian day of 2000-01-01 12:00 TT.
const j2000 = 2451545.0

// JulianDate returns the Julian day number at 0h UT of the given proleptic
// Gregorian date. month is 1-based.
func JulianDate(year, month, day int) float64 {
	if month <= 2 {
		year--
		month += 12
	}
	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)
	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + b - 1524.5
}

// SunPosition returns the sun's declination in degrees and the equation of
// time in hours for the given Julian day.
func SunPosition(jd float64) (declination, eqt float64) {
	d := jd - j2000
	g := FixAngle(357.529 + 0.98560028*d)
	q := FixAngle(280.459 + 0.98564736*d)
	l := FixAngle(q + 1.915*dsin(g) + 0.020*dsin(2*g))

	// Distance to the sun in AU; nothing downstream needs it yet.
	_ = 1.00014 - 0.01671*dcos(g) - 0.00014*dcos(2*g)

	e := 23.439 - 0.00000036*d

	declination = darcsin(dsin(e) * dsin(l))
	ra := FixHour(darctan2(dcos(e)*dsin(l), dcos(l)) / 15)
	eqt = q/15 - ra
	return declination, eqt
}

// SunDeclination returns the sun's declination in degrees.
func SunDeclination(jd float64) float64 {
	d, _ := SunPosition(jd)
	return d
}

// EquationOfTime returns the equation of time in hours.
func EquationOfTime(jd float64) float64 {
	_, eqt := SunPosition(jd)
	return eqt
}
