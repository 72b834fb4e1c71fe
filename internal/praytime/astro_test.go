package praytime

import (
	"testing"
	"time"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solar"
)

func TestJulianDate(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		want             float64
	}{
		{"J2000 day", 2000, 1, 1, 2451544.5},
		{"sputnik", 1957, 10, 4, 2436115.5},
		{"january shifts year", 1987, 1, 27, 2446822.5},
		{"leap day", 2024, 2, 29, 2460369.5},
		{"after february", 1988, 6, 19, 2447331.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := JulianDate(tt.year, tt.month, tt.day)
			if got != tt.want {
				t.Errorf("JulianDate(%d, %d, %d) = %v, want %v", tt.year, tt.month, tt.day, got, tt.want)
			}
		})
	}
}

func TestJulianDateMatchesMeeus(t *testing.T) {
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	for d := start; d.Year() < 2100; d = d.AddDate(0, 0, 97) {
		want := julian.TimeToJD(d)
		got := JulianDate(d.Year(), int(d.Month()), d.Day())
		if !almostEqual(got, want, 1e-6) {
			t.Fatalf("JulianDate(%s) = %v, meeus = %v", d.Format("2006-01-02"), got, want)
		}
	}
}

func TestSunDeclinationMatchesMeeus(t *testing.T) {
	start := time.Date(2020, 1, 1, 12, 0, 0, 0, time.UTC)
	for d := start; d.Year() < 2030; d = d.AddDate(0, 0, 23) {
		jd := julian.TimeToJD(d)
		_, dec := solar.ApparentEquatorial(jd)
		got := SunDeclination(jd)
		if !almostEqual(got, dec.Deg(), 0.05) {
			t.Errorf("SunDeclination(%s) = %.4f, meeus = %.4f", d.Format("2006-01-02"), got, dec.Deg())
		}
	}
}

func TestSunDeclinationSolstices(t *testing.T) {
	june := SunDeclination(JulianDate(2024, 6, 21))
	if june < 23.3 || june > 23.5 {
		t.Errorf("June solstice declination = %v, want ~23.44", june)
	}
	december := SunDeclination(JulianDate(2024, 12, 21))
	if december > -23.3 || december < -23.5 {
		t.Errorf("December solstice declination = %v, want ~-23.44", december)
	}
}

func TestEquationOfTime(t *testing.T) {
	tests := []struct {
		name             string
		year, month, day int
		minMin, maxMin   float64
	}{
		// The sun runs ahead of the clock by ~16.4 minutes in early November
		// and behind by ~14.2 minutes in mid February.
		{"november maximum", 2024, 11, 3, 15.5, 17.2},
		{"february minimum", 2024, 2, 11, -15.0, -13.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EquationOfTime(JulianDate(tt.year, tt.month, tt.day)) * 60
			if got < tt.minMin || got > tt.maxMin {
				t.Errorf("equation of time = %.2f min, want in [%v, %v]", got, tt.minMin, tt.maxMin)
			}
		})
	}
}

func TestSunPositionProjections(t *testing.T) {
	jd := JulianDate(2013, 1, 6)
	d, e := SunPosition(jd)
	if SunDeclination(jd) != d {
		t.Errorf("SunDeclination disagrees with SunPosition")
	}
	if EquationOfTime(jd) != e {
		t.Errorf("EquationOfTime disagrees with SunPosition")
	}
}
