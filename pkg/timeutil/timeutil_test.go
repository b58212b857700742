package timeutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "0:00.0", FormatClock(0))
	assert.Equal(t, "0:00.0", FormatClock(-time.Second))
	assert.Equal(t, "0:01.5", FormatClock(1500*time.Millisecond))
	assert.Equal(t, "2:03.0", FormatClock(123*time.Second))
}

func TestPlaybackClock(t *testing.T) {
	pos, total := PlaybackClock(1, 0.5, time.Second, 4)
	assert.Equal(t, 1500*time.Millisecond, pos)
	assert.Equal(t, 3*time.Second, total)

	pos, total = PlaybackClock(0, 0, time.Second, 1)
	assert.Zero(t, pos)
	assert.Zero(t, total)

	pos, _ = PlaybackClock(5, 1, time.Second, 3)
	assert.Equal(t, 2*time.Second, pos)
}

func TestParseDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"750ms", 750 * time.Millisecond},
		{"1.5s", 1500 * time.Millisecond},
		{"2", 2 * time.Second},
		{"0.25", 250 * time.Millisecond},
		{"1:05", 65 * time.Second},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseDuration(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseDuration("soon")
	assert.Error(t, err)
}
