package vsop87

import (
	"math"
	"time"
)

const (
	// J2000 is the Julian Day of the J2000.0 reference epoch (2000-01-01 12:00 TT).
	J2000 = 2451545.0
	// DaysPerMillennium is the length of a Julian millennium in days.
	DaysPerMillennium = 365250.0
	// DaysPerCentury is the length of a Julian century in days.
	DaysPerCentury = 36525.0
	// GregorianReform is the Julian Day at which the Gregorian calendar took over (1582-10-15 00:00).
	GregorianReform = 2299160.5
)

// Now returns the current time. It is a variable so tests can pin the clock.
var Now = func() time.Time {
	return time.Now().UTC()
}

// JulianDay returns the Julian Day of the provided time, which is first moved to UTC.
func JulianDay(dt time.Time) float64 {
	dt = dt.UTC()
	sec := float64(dt.Second()) + float64(dt.Nanosecond())/1e9
	return CalendarToJD(dt.Year(), int(dt.Month()), dt.Day(), dt.Hour(), dt.Minute(), sec)
}

// CalendarToJD converts a calendar date and time of day to a Julian Day.
// Dates from the Gregorian reform onwards are corrected with the century rule.
// The correction is computed from the calendar year as given, not from the
// year shifted for January and February.
func CalendarToJD(year, month, day, hour, minute int, second float64) float64 {
	y, m := year, month
	if m <= 2 {
		y--
		m += 12
	}
	jd := math.Floor(365.25*float64(y+4716)) + math.Floor(30.6001*float64(m+1)) + float64(day) - 1524.5
	jd += float64(hour)/24 + float64(minute)/1440 + second/86400
	return jd + gregorianOffset(year, jd)
}

// gregorianOffset returns the number of days to add to a Julian calendar day count.
func gregorianOffset(year int, jd float64) float64 {
	if jd < GregorianReform {
		return 0
	}
	a := math.Floor(float64(year) / 100)
	return 2 - a + math.Floor(a/4)
}

// Millennia returns the number of Julian millennia elapsed since J2000.0.
func Millennia(jd float64) float64 {
	return (jd - J2000) / DaysPerMillennium
}

// Centuries returns the number of Julian centuries elapsed since J2000.0.
func Centuries(jd float64) float64 {
	return (jd - J2000) / DaysPerCentury
}
