// Package biztime centralizes time handling. All storage and transport use
// UTC; implicit local timezones are prohibited.
package biztime

import "time"

// NowUTC returns the current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// FromUnixMilli converts a unix millisecond timestamp to a UTC time.
func FromUnixMilli(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// FromUnixMilliPtr converts an optional unix millisecond timestamp to an
// optional UTC time.
func FromUnixMilliPtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms).UTC()
	return &t
}

// ToUnixMilliPtr converts an optional time to an optional unix millisecond
// timestamp.
func ToUnixMilliPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
