package dateutil

import (
	"fmt"
	"time"
)

const (
	// BirthdayLayout is the input format for birthdays: DD.MM.YYYY
	BirthdayLayout = "02.01.2006"
	// GreetingLayout is the output format for greeting dates: YYYY.MM.DD
	GreetingLayout = "2006.01.02"
)

// LeapDayPolicy decides where Feb 29 lands in a non-leap year
type LeapDayPolicy int

const (
	// LeapDayFeb28 observes Feb 29 on Feb 28
	LeapDayFeb28 LeapDayPolicy = iota
	// LeapDayMar1 observes Feb 29 on Mar 1
	LeapDayMar1
)

// String returns the config name of the policy
func (p LeapDayPolicy) String() string {
	switch p {
	case LeapDayMar1:
		return "mar1"
	default:
		return "feb28"
	}
}

// ParseLeapDayPolicy parses "feb28" or "mar1"
func ParseLeapDayPolicy(s string) (LeapDayPolicy, error) {
	switch s {
	case "", "feb28":
		return LeapDayFeb28, nil
	case "mar1":
		return LeapDayMar1, nil
	}
	return LeapDayFeb28, fmt.Errorf("unknown leap day policy %q (want feb28 or mar1)", s)
}

// CivilDate drops time-of-day and zone: the same calendar day at UTC midnight.
// All date comparisons in this package are done on civil dates.
func CivilDate(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)
}

// IsWeekend returns true if the date is Saturday or Sunday
func IsWeekend(date time.Time) bool {
	weekday := date.Weekday()
	return weekday == time.Saturday || weekday == time.Sunday
}

// NextWeekday rolls a weekend date forward to the following Monday.
// Weekdays are returned unchanged.
func NextWeekday(date time.Time) time.Time {
	if !IsWeekend(date) {
		return date
	}
	if date.Weekday() == time.Saturday {
		return date.AddDate(0, 0, 2)
	}
	return date.AddDate(0, 0, 1)
}

// IsLeapYear reports whether year has a Feb 29
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// ProjectOntoYear returns the civil date with date's month and day in the given year.
// Feb 29 in a non-leap year is resolved by policy.
func ProjectOntoYear(date time.Time, year int, policy LeapDayPolicy) time.Time {
	month, day := date.Month(), date.Day()
	if month == time.February && day == 29 && !IsLeapYear(year) {
		if policy == LeapDayMar1 {
			return time.Date(year, time.March, 1, 0, 0, 0, 0, time.UTC)
		}
		return time.Date(year, time.February, 28, 0, 0, 0, 0, time.UTC)
	}
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// InWindow reports whether date lies in [start, start+days], both ends inclusive
func InWindow(date, start time.Time, days int) bool {
	date, start = CivilDate(date), CivilDate(start)
	end := start.AddDate(0, 0, days)
	return !date.Before(start) && !date.After(end)
}

// ParseBirthday parses a DD.MM.YYYY birthday into a civil date
func ParseBirthday(s string) (time.Time, error) {
	t, err := time.Parse(BirthdayLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q, use DD.MM.YYYY", s)
	}
	return t, nil
}

// FormatGreeting formats a greeting date as YYYY.MM.DD
func FormatGreeting(date time.Time) string {
	return date.Format(GreetingLayout)
}

// ParseDate parses date string in various formats
func ParseDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02.01.2006",
		"2006.01.02",
		"2006-01-02T15:04:05",
		"2006-01-02T15:04:05Z",
		"2006-01-02T15:04:05-0700",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unrecognized date %q", dateStr)
}
