package countdown

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDecomposeIdentity(t *testing.T) {
	samples := []time.Duration{
		0,
		999 * time.Millisecond,
		time.Second,
		59*time.Second + 999*time.Millisecond,
		time.Hour - time.Millisecond,
		23*time.Hour + 59*time.Minute + 59*time.Second,
		24 * time.Hour,
		7 * 24 * time.Hour,
		7*24*time.Hour - time.Millisecond,
		400*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 6*time.Millisecond,
	}
	for value := time.Duration(0); value < 3*24*time.Hour; value += 7*time.Hour + 13*time.Minute + 17*time.Second + 431*time.Millisecond {
		samples = append(samples, value)
	}

	for _, remaining := range samples {
		breakdown := Decompose(remaining)
		assert.Equal(t, remaining.Milliseconds()/1000, breakdown.TotalSeconds(), remaining.String())
		assert.GreaterOrEqual(t, breakdown.Days, int64(0))
		assert.True(t, breakdown.Hours >= 0 && breakdown.Hours <= 23, remaining.String())
		assert.True(t, breakdown.Minutes >= 0 && breakdown.Minutes <= 59, remaining.String())
		assert.True(t, breakdown.Seconds >= 0 && breakdown.Seconds <= 59, remaining.String())
	}
}

func TestDecomposeFloors(t *testing.T) {
	breakdown := Decompose(2*24*time.Hour + 3*time.Hour + 4*time.Minute + 5*time.Second + 999*time.Millisecond)
	assert.Equal(t, Breakdown{Days: 2, Hours: 3, Minutes: 4, Seconds: 5}, breakdown)
}

func TestDecomposeNegativeIsZero(t *testing.T) {
	assert.Equal(t, Breakdown{}, Decompose(-time.Minute))
}

func TestBreakdownPadded(t *testing.T) {
	breakdown := Breakdown{Days: 123, Hours: 4, Minutes: 0, Seconds: 59}
	assert.Equal(t, [4]string{"123", "04", "00", "59"}, breakdown.Padded())
	assert.Equal(t, "123:04:00:59", breakdown.String())
}
