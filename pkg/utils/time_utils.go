package utils

import (
	"math"
	"time"
)

// NowEpochSeconds returns the current time as fractional seconds since the
// Unix epoch, the unit saved trips use for generated_at.
func NowEpochSeconds() float64 {
	return float64(time.Now().UnixNano()) / float64(time.Second)
}

// FromEpochSeconds converts fractional epoch seconds back to a UTC time.
// Returns zero time if t<=0 to let callers decide how to render.
func FromEpochSeconds(t float64) time.Time {
	if t <= 0 {
		return time.Time{}
	}
	sec, frac := math.Modf(t)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).UTC()
}

func FormatRFC3339(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(time.RFC3339)
}
