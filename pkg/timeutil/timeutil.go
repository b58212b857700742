package timeutil

import (
	"fmt"
	"strings"
	"time"
)

// FormatClock formats a duration as M:SS.t (e.g. 0:01.5, 2:03.0).
func FormatClock(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	tenths := int(d / (100 * time.Millisecond))
	mins := tenths / 600
	secs := (tenths % 600) / 10
	return fmt.Sprintf("%d:%02d.%d", mins, secs, tenths%10)
}

// PlaybackClock returns the position in the whole animation and its total
// length for a transition index and progress.
func PlaybackClock(index int, progress float64, transition time.Duration, frames int) (pos, total time.Duration) {
	if frames < 2 {
		return 0, 0
	}
	total = time.Duration(frames-1) * transition
	pos = time.Duration(index)*transition + time.Duration(progress*float64(transition))
	if pos > total {
		pos = total
	}
	return pos, total
}

// ParseDuration parses a Go duration (750ms, 1.5s), MM:SS, or raw seconds.
// Uses colon count: 1 colon = M:S, 0 colons = Go duration or raw seconds.
func ParseDuration(s string) (time.Duration, error) {
	s = strings.TrimSpace(s)
	switch strings.Count(s, ":") {
	case 1:
		var minutes, seconds int
		if n, err := fmt.Sscanf(s, "%d:%d", &minutes, &seconds); n == 2 && err == nil {
			return time.Duration(minutes*60+seconds) * time.Second, nil
		}
	case 0:
		if d, err := time.ParseDuration(s); err == nil {
			return d, nil
		}
		var secs float64
		if n, err := fmt.Sscanf(s, "%f", &secs); n == 1 && err == nil {
			return time.Duration(secs * float64(time.Second)), nil
		}
	}
	return 0, fmt.Errorf("expected a duration like 750ms, 1.5, or MM:SS, got '%s'", s)
}
