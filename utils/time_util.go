package utils

import "time"

const timestampLayout = "2006-01-02 15:04:05"

// The storefront renders all timestamps in Thai local time regardless of
// where the server runs, so QA fixtures compare exact strings.
var bangkok = func() *time.Location {
	loc, err := time.LoadLocation("Asia/Bangkok")
	if err != nil {
		return time.FixedZone("ICT", 7*60*60)
	}

	return loc
}()

// FormatTimestamp renders t as "YYYY-MM-DD HH:MM:SS" in the fixed zone.
func FormatTimestamp(t time.Time) string {
	return t.In(bangkok).Format(timestampLayout)
}

// NowTimestamp returns the current time formatted for persistence.
func NowTimestamp() string {
	return FormatTimestamp(time.Now())
}
