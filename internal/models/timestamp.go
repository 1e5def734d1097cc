package models

import "time"

// ISOMillis is the wire layout for timestamps: UTC with exactly three fractional digits.
const ISOMillis = "2006-01-02T15:04:05.000Z"

// FormatISO renders t in UTC using ISOMillis.
func FormatISO(t time.Time) string {
	return t.UTC().Format(ISOMillis)
}
