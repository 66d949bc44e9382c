package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDate(t *testing.T) {
	colombo := time.FixedZone("IST", 5*3600+1800)
	in := time.Date(2024, 3, 10, 23, 45, 0, 0, colombo)
	assert.Equal(t, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC), Date(in))
}

func TestDaysBetween(t *testing.T) {
	a := time.Date(2024, 2, 27, 18, 0, 0, 0, time.UTC)
	b := time.Date(2024, 3, 1, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, 3, DaysBetween(a, b))
	assert.Equal(t, -3, DaysBetween(b, a))
	assert.Equal(t, 0, DaysBetween(a, a))
}

func TestAddDays(t *testing.T) {
	start := time.Date(2024, 1, 31, 10, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), AddDays(start, 29))
	assert.Equal(t, time.Date(2024, 1, 30, 0, 0, 0, 0, time.UTC), AddDays(start, -1))
}

func TestDaysBetweenLongSpan(t *testing.T) {
	from := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 2913173, DaysBetween(from, to))
	assert.Equal(t, -2913173, DaysBetween(to, from))
}
