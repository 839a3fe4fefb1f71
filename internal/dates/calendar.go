package dates

import "time"

// StartOfDay returns 00:00:00.000 on t's calendar date in t's location.
func StartOfDay(t time.Time) time.Time {
	return atClock(t, 0, 0, 0, 0)
}

// EndOfDay returns the last representable instant of t's calendar date, whose
// millisecond field reads 23:59:59.999.
func EndOfDay(t time.Time) time.Time {
	return atClock(t, 23, 59, 59, 999_999_999)
}

// Midnight is the start of t's day.
func Midnight(t time.Time) time.Time {
	return StartOfDay(t)
}

// atClock keeps t's date fields and replaces its clock fields.
func atClock(t time.Time, hour, min, sec, nsec int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, hour, min, sec, nsec, t.Location())
}

// DaysInYear returns 366 for proleptic Gregorian leap years and 365 otherwise.
func DaysInYear(year int) int {
	return time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC).YearDay()
}

// DayDifference returns the number of calendar-date boundaries between two
// instants. The result is order independent and never negative; 23:59 on one
// day and 00:01 on the next are one day apart.
//
// Both instants are decomposed in the location of the earlier one.
func DayDifference(date1, date2 time.Time) int {
	early, late := date1, date2
	if late.Before(early) {
		early, late = late, early
	}
	late = late.In(early.Location())

	earlyYear, lateYear := early.Year(), late.Year()
	if earlyYear == lateYear {
		diff := late.YearDay() - early.YearDay()
		if diff < 0 {
			diff = -diff
		}
		return diff
	}

	days := DaysInYear(earlyYear) - early.YearDay() + late.YearDay()
	for y := earlyYear + 1; y < lateYear; y++ {
		days += DaysInYear(y)
	}
	return days
}
