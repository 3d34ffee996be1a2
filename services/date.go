package services

import (
	"fmt"
	"time"
)

// dateTimeLayouts are tried in order by ParseDateTime
var dateTimeLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04", // HTML5 datetime-local
	"2006-01-02",       // HTML5 date
}

// ParseDateTime parses a court date timestamp. Values without a zone are
// read in loc.
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	for _, layout := range dateTimeLayouts {
		if t, err := time.ParseInLocation(layout, value, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date format: %q", value)
}
