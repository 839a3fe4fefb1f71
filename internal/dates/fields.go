package dates

import "time"

// Fields is the calendar decomposition of an instant in its own location.
type Fields struct {
	Year        int `json:"year" yaml:"year"`
	MonthOfYear int `json:"month_of_year" yaml:"month_of_year"`
	DayOfMonth  int `json:"day_of_month" yaml:"day_of_month"`
	DayOfYear   int `json:"day_of_year" yaml:"day_of_year"`
	Hour        int `json:"hour" yaml:"hour"`
	Minute      int `json:"minute" yaml:"minute"`
	Second      int `json:"second" yaml:"second"`
	Millisecond int `json:"millisecond" yaml:"millisecond"`
}

// Decompose splits t into its calendar fields.
func Decompose(t time.Time) Fields {
	return Fields{
		Year:        Year(t),
		MonthOfYear: MonthOfYear(t),
		DayOfMonth:  DayOfMonth(t),
		DayOfYear:   DayOfYear(t),
		Hour:        HourOf(t),
		Minute:      MinuteOf(t),
		Second:      SecondOf(t),
		Millisecond: MillisecondOf(t),
	}
}

// MillisecondOf returns the millisecond within the second, 0-999.
func MillisecondOf(t time.Time) int { return t.Nanosecond() / int(time.Millisecond) }

// SecondOf returns the second within the minute.
func SecondOf(t time.Time) int { return t.Second() }

// MinuteOf returns the minute within the hour.
func MinuteOf(t time.Time) int { return t.Minute() }

// HourOf returns the hour of day, 0-23.
func HourOf(t time.Time) int { return t.Hour() }

// DayOfMonth returns the 1-based day of the month.
func DayOfMonth(t time.Time) int { return t.Day() }

// MonthOfYear returns the 0-based month: January is 0, December is 11.
func MonthOfYear(t time.Time) int { return int(t.Month()) - 1 }

// Year returns the calendar year.
func Year(t time.Time) int { return t.Year() }

// DayOfYear returns the 1-based ordinal of t within its year.
func DayOfYear(t time.Time) int { return t.YearDay() }
