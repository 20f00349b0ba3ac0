package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	ts, err := NewTimeStringFromString("14:30")
	require.NoError(t, err)
	assert.Equal(t, "14:30", ts.String())

	_, err = NewTimeStringFromString("25:00")
	assert.ErrorIs(t, err, ErrInvalidTimeString)

	_, err = NewTimeStringFromString("not a time")
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Minutes(t *testing.T) {
	ts := TimeString("14:30")
	minutes, err := ts.Minutes()
	require.NoError(t, err)
	assert.Equal(t, 870, minutes)
}

func TestTimeString_FractionalHours(t *testing.T) {
	tests := []struct {
		value    string
		expected float64
	}{
		{"14:00", 14.0},
		{"14:30", 14.5},
		{"09:00", 9.0},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			fractional, err := TimeString(tt.value).FractionalHours()
			require.NoError(t, err)
			assert.Equal(t, tt.expected, fractional)
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("14:30")
	result, err := ts.AddMinutes(30)
	require.NoError(t, err)
	assert.Equal(t, TimeString("15:00"), result)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("10:00"))
	assert.False(t, TimeString("10:00").IsBefore("10:00"))
	assert.True(t, TimeString("15:30").IsAfter("15:00"))
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:30"))
	assert.Equal(t, TimeString("14:30"), ts)

	// Колонка TIME возвращает значение с секундами
	require.NoError(t, ts.Scan("09:00:00"))
	assert.Equal(t, TimeString("09:00"), ts)

	require.NoError(t, ts.Scan([]byte("11:30")))
	assert.Equal(t, TimeString("11:30"), ts)

	require.NoError(t, ts.Scan(time.Date(2025, 6, 1, 16, 30, 0, 0, time.UTC)))
	assert.Equal(t, TimeString("16:30"), ts)

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_Value(t *testing.T) {
	value, err := TimeString("14:30").Value()
	require.NoError(t, err)
	assert.Equal(t, "14:30", value)

	_, err = TimeString("bad").Value()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}
