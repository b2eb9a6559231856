package models

import "time"

// Millis is a point in time expressed as milliseconds since the Unix epoch.
// All timestamps inside the governance core use it; conversion to storage
// types happens in the repositories.
type Millis int64

// MillisFromTime converts t to Millis.
func MillisFromTime(t time.Time) Millis {
	return Millis(t.UnixMilli())
}

// Time converts m back to a UTC time.Time.
func (m Millis) Time() time.Time {
	return time.UnixMilli(int64(m)).UTC()
}

// Add returns m shifted by d.
func (m Millis) Add(d time.Duration) Millis {
	return m + Millis(d.Milliseconds())
}

// Seconds returns m truncated to whole seconds.
func (m Millis) Seconds() int64 {
	return int64(m) / 1000
}

// MillisFromSeconds converts a Unix timestamp in seconds to Millis.
func MillisFromSeconds(s int64) Millis {
	return Millis(s * 1000)
}
