package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatLapTime(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{"zero", 0, "-"},
		{"below minute", 28500 * time.Millisecond, "28.500"},
		{"lap", 89750 * time.Millisecond, "1:29.750"},
		{"leading zero", 61005 * time.Millisecond, "1:01.005"},
		{"long", 10*time.Minute + 3*time.Second, "10:03.000"},
		{"sub millisecond truncated", 90500*time.Millisecond + 999*time.Microsecond, "1:30.500"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatLapTime(tt.d))
		})
	}
}

func TestFormatDelta(t *testing.T) {
	assert.Equal(t, "+1.250", FormatDelta(1250*time.Millisecond))
	assert.Equal(t, "-0.004", FormatDelta(-4*time.Millisecond))
	assert.Equal(t, "+0.000", FormatDelta(0))
}

func TestFormatSessionTime(t *testing.T) {
	assert.Equal(t, "0:00:12", FormatSessionTime(12500*time.Millisecond))
	assert.Equal(t, "1:02:03", FormatSessionTime(time.Hour+2*time.Minute+3*time.Second))
}

func TestSeconds(t *testing.T) {
	assert.Equal(t, "83.5", Seconds(83500*time.Millisecond).String())
}
