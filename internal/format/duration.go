package format

import (
	"strconv"
	"time"
)

// FormatElapsed renders the wall time of a fetch batch or a computation.
// Sub-millisecond values are shown in whole microseconds and sub-second
// values in whole milliseconds. Longer values keep millisecond precision,
// so a slow network call reads "2.314s" rather than "2.314159265s".
func FormatElapsed(d time.Duration) string {
	switch {
	case d < 0:
		return "0µs"
	case d < time.Millisecond:
		return strconv.FormatInt(d.Microseconds(), 10) + "µs"
	case d < time.Second:
		return strconv.FormatInt(d.Milliseconds(), 10) + "ms"
	default:
		return d.Round(time.Millisecond).String()
	}
}
