package screens

import (
	"strings"
	"time"
)

// Badge returns the text shown in a status, type or role badge
func Badge(value string) string {
	return strings.ToUpper(value)
}

// DayBounds returns local midnight of now's day and the following midnight
func DayBounds(now time.Time) (start, end time.Time) {
	y, m, d := now.Date()
	start = time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 0, 1)
}

// IsUpcoming reports date >= now
func IsUpcoming(date, now time.Time) bool {
	return !date.Before(now)
}

// IsPast reports date < now
func IsPast(date, now time.Time) bool {
	return date.Before(now)
}

// IsToday reports date within [midnight, next midnight) of now's day
func IsToday(date, now time.Time) bool {
	start, end := DayBounds(now)
	return !date.Before(start) && date.Before(end)
}

// exactly builds a filter matching one value of a field
func exactly[T any](value, label string, field func(T) string) Filter[T] {
	return Filter[T]{
		Value: value,
		Label: label,
		Match: func(r T, _ time.Time) bool { return field(r) == value },
	}
}

func titleCase(s string) string {
	return capitalize(strings.ReplaceAll(s, "_", " "))
}
