package timeutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseClock(t *testing.T) {
	min, err := ParseClock("09:15")
	assert.NoError(t, err)
	assert.Equal(t, 555, min)

	min, err = ParseClock("00:00")
	assert.NoError(t, err)
	assert.Equal(t, 0, min)

	min, err = ParseClock("23:59")
	assert.NoError(t, err)
	assert.Equal(t, 1439, min)
}

func TestParseClock_Invalid(t *testing.T) {
	for _, s := range []string{"", "25:00", "09:60", "0915", "nine"} {
		_, err := ParseClock(s)
		assert.ErrorIs(t, err, ErrBadClock, "input %q", s)
	}
}

func TestFormatClock_RoundTrip(t *testing.T) {
	for _, s := range []string{"00:00", "09:05", "10:30", "23:45"} {
		min, err := ParseClock(s)
		assert.NoError(t, err)
		assert.Equal(t, s, FormatClock(min))
	}
}

func TestValidateDate(t *testing.T) {
	assert.NoError(t, ValidateDate("2026-01-05"))
	assert.ErrorIs(t, ValidateDate("2026-13-05"), ErrBadDate)
	assert.ErrorIs(t, ValidateDate("05.01.2026"), ErrBadDate)
	assert.ErrorIs(t, ValidateDate(""), ErrBadDate)
}
