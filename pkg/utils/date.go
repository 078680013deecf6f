package utils

import "time"

// TimeNowUTC returns the current time in UTC.
func TimeNowUTC() time.Time {
	return time.Now().UTC()
}

// DaysAgo returns the instant `days` whole days before now.
func DaysAgo(now time.Time, days int) time.Time {
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

// NormalizeUTC converts a parsed feed timestamp to UTC. Feed parsers yield UTC
// for timestamps that carry no zone, so only the conversion is needed here.
func NormalizeUTC(t *time.Time) (time.Time, bool) {
	if t == nil || t.IsZero() {
		return time.Time{}, false
	}
	return t.UTC(), true
}
