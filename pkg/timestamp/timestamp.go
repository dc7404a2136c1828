package timestamp

import (
	"fmt"
	"regexp"
	"strconv"
)

// pattern matches the MovieContentFilter timestamp form HH:MM:SS.mmm.
// Hours may exceed two digits for runtimes beyond 99 hours.
var pattern = regexp.MustCompile(`^(\d{2,}):(\d{2}):(\d{2})\.(\d{3})$`)

// ParseMillis converts a timestamp of the form HH:MM:SS.mmm into integer
// milliseconds. It returns 0 when the input does not match the pattern,
// mirroring the behavior existing MCF tooling relies on; callers that need
// to distinguish a failed parse from a literal 00:00:00.000 must validate
// the input themselves.
func ParseMillis(s string) int64 {
	m := pattern.FindStringSubmatch(s)
	if m == nil {
		return 0
	}

	hours, _ := strconv.ParseInt(m[1], 10, 64)
	minutes, _ := strconv.ParseInt(m[2], 10, 64)
	seconds, _ := strconv.ParseInt(m[3], 10, 64)
	millis, _ := strconv.ParseInt(m[4], 10, 64)

	return ((hours*60+minutes)*60+seconds)*1000 + millis
}

// FormatMillis converts a non-negative millisecond count into HH:MM:SS.mmm.
// All fields are zero-padded and hours are not capped at 24, so durations
// beyond a day format cleanly. Negative input is clamped to zero.
func FormatMillis(ms int64) string {
	if ms < 0 {
		ms = 0
	}

	hours := ms / 3600000
	minutes := (ms % 3600000) / 60000
	seconds := (ms % 60000) / 1000
	millis := ms % 1000

	return fmt.Sprintf("%02d:%02d:%02d.%03d", hours, minutes, seconds, millis)
}
