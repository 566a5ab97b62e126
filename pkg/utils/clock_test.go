package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{in: "00:00", want: 0},
		{in: "09:30", want: 570},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "-1:30", wantErr: true},
		{in: "930", wantErr: true},
		{in: "ab:cd", wantErr: true},
	}

	for _, tc := range tests {
		got, err := ParseClock(tc.in)
		if tc.wantErr {
			assert.Error(t, err, tc.in)
			continue
		}
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}
}

func TestFormatClock(t *testing.T) {
	assert.Equal(t, "00:00", FormatClock(0))
	assert.Equal(t, "09:05", FormatClock(545))
	assert.Equal(t, "00:00", FormatClock(1440))
	assert.Equal(t, "23:30", FormatClock(-30)) // wraps to the previous day
	assert.Equal(t, "01:00", FormatClock(1500))
}

func TestClockRoundTrip(t *testing.T) {
	for m := -2000; m <= 4000; m += 7 {
		parsed, err := ParseClock(FormatClock(m))
		require.NoError(t, err)
		assert.Equal(t, NormalizeMinutes(m), parsed, "m=%d", m)
	}
}
