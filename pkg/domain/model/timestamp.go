package model

import "time"

// TimestampLayout is ISO-8601 in UTC with millisecond precision, e.g. 2024-05-01T12:34:56.789Z
const TimestampLayout = "2006-01-02T15:04:05.000Z"

// FormatTimestamp renders t in TimestampLayout
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
