package utils

import (
	"errors"
	"math"
	"time"
)

// ErrOutOfRange is returned when an instant has no epoch-millisecond representation.
var ErrOutOfRange = errors.New("timestamp out of range")

// Bounds of the instants whose millisecond count fits in an int64, split into seconds and the
// millisecond part within that second.
const (
	maxSec   = math.MaxInt64 / 1000
	maxMilli = math.MaxInt64 % 1000
	minSec   = math.MinInt64/1000 - 1
	minMilli = math.MinInt64%1000 + 1000
)

// EpochMilli converts the provided time into milliseconds since the Unix epoch.
//
// The zero [time.Time] stands for an unbounded instant (a punishment without an end)
// and is reported as out of range, as is any instant whose millisecond count would overflow an int64.
//
// Args:
//   - t: The time to convert.
//
// Returns:
//   - int64: The milliseconds since the Unix epoch.
//   - error: [ErrOutOfRange] if the time cannot be represented.
func EpochMilli(t time.Time) (int64, error) {
	if t.IsZero() {
		return 0, ErrOutOfRange
	}

	sec, ms := t.Unix(), int64(t.Nanosecond())/1e6
	if sec > maxSec || sec == maxSec && ms > maxMilli || sec < minSec || sec == minSec && ms < minMilli {
		return 0, ErrOutOfRange
	}

	return t.UnixMilli(), nil
}
