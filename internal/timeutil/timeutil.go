package timeutil

import (
	"strconv"
	"time"
)

// TimestampLayout defines the canonical checkpoint format. All
// checkpoint times are UTC.
const TimestampLayout = "2006-01-02T15:04:05"

// ListingLayout matches tournament times on archive listing pages,
// which omit the year ("Thu Jul 20 1:00 PM").
const ListingLayout = "Mon Jan 2 3:04 PM 2006"

// ParseTimestamp parses a checkpoint timestamp as UTC.
func ParseTimestamp(value string) (time.Time, error) {
	return time.ParseInLocation(TimestampLayout, value, time.UTC)
}

// FormatTimestamp formats a time as a UTC checkpoint timestamp.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// ParseListing parses an archive listing time, supplying the year the
// page omits.
func ParseListing(value string, year int) (time.Time, error) {
	return time.ParseInLocation(ListingLayout, value+" "+strconv.Itoa(year), time.UTC)
}
