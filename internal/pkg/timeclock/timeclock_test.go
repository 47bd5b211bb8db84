package timeclock

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToMinutes_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want int
	}{
		{"00:00", 0},
		{"09:00", 540},
		{"9:00", 540},
		{"9:05", 545},
		{"18:30", 1110},
		{"23:59", 1439},
	}

	for _, c := range cases {
		got, err := ToMinutes(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
	}
}

func TestToMinutes_Invalid(t *testing.T) {
	for _, in := range []string{"9am", "09-00", "09:00:00", "", "nine:thirty", ":30"} {
		_, err := ToMinutes(in)
		require.Error(t, err, in)

		var pe *ParseError
		assert.True(t, errors.As(err, &pe), in)
		assert.Equal(t, in, pe.Value)
	}
}

func TestWorkedMinutes_NoBreakExcess(t *testing.T) {
	// Break within the allowance costs nothing: worked = out - in.
	got, err := WorkedMinutes("09:00", "18:00", "13:00", "14:00", 60)
	require.NoError(t, err)
	assert.Equal(t, 540, got)

	// No break at all.
	got, err = WorkedMinutes("09:00", "17:00", "12:00", "12:00", 0)
	require.NoError(t, err)
	assert.Equal(t, 480, got)
}

func TestWorkedMinutes_ExcessDeductedExactly(t *testing.T) {
	// 90 min break against a 60 min allowance deducts exactly 30.
	got, err := WorkedMinutes("09:00", "18:00", "13:00", "14:30", 60)
	require.NoError(t, err)
	assert.Equal(t, 510, got)

	// Growing the break past the allowance shrinks worked time minute
	// for minute.
	prev := got
	for _, lunchOut := range []string{"14:45", "15:00", "15:15"} {
		got, err = WorkedMinutes("09:00", "18:00", "13:00", lunchOut, 60)
		require.NoError(t, err)
		assert.Equal(t, prev-15, got)
		prev = got
	}
}

func TestWorkedMinutes_NegativeNotClamped(t *testing.T) {
	// Out before in flows through as a negative value.
	got, err := WorkedMinutes("18:00", "09:00", "13:00", "13:00", 0)
	require.NoError(t, err)
	assert.Equal(t, -540, got)
}

func TestWorkedMinutes_ParseErrorNamesField(t *testing.T) {
	_, err := WorkedMinutes("09:00", "6pm", "13:00", "14:00", 60)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, "6pm", pe.Value)
	assert.Equal(t, "out_time", pe.Field)
}
