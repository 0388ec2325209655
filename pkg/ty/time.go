package ty

import (
	"errors"
	"regexp"
	"time"
)

// absoluteFormats are the timestamp layouts accepted for --start/--end values.
var absoluteFormats = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// durationRegex matches Go duration strings like "1h", "30m", "1h30m"
var durationRegex = regexp.MustCompile(`^-?(\d+(\.\d+)?(ns|us|µs|ms|s|m|h))+$`)

// EpochMillis converts a user supplied time value to epoch milliseconds.
// Durations are interpreted as an offset back in time from now ("1h" means
// one hour ago). Absolute values without a timezone are taken in local time.
func EpochMillis(value string, now time.Time) (int64, error) {
	if value == "" {
		return 0, errors.New("empty time value")
	}

	if durationRegex.MatchString(value) {
		d, err := time.ParseDuration(value)
		if err != nil {
			return 0, err
		}
		if d < 0 {
			d = -d
		}
		return now.Add(-d).UnixMilli(), nil
	}

	var lastErr error
	for _, layout := range absoluteFormats {
		if t, err := time.ParseInLocation(layout, value, time.Local); err == nil {
			return t.UnixMilli(), nil
		} else {
			lastErr = err
		}
	}
	return 0, lastErr
}
