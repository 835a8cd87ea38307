package reminder

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDate(t *testing.T) {
	cases := []struct {
		value   string
		isError bool
	}{
		{value: "2025-03-01"},
		{value: "1999-12-31"},
		{value: "2024-02-29"},
		{value: "13/25/2024", isError: true},
		{value: "2024-13-25", isError: true},
		{value: "2025-02-30", isError: true},
		{value: "2025-3-1", isError: true},
		{value: "01-03-2025", isError: true},
		{value: "", isError: true},
	}

	for _, testcase := range cases {
		date, err := ParseDate(testcase.value)

		if testcase.isError {
			assert.ErrorIs(t, err, ErrParseDate, testcase.value)
			assert.False(t, date.IsValid(), testcase.value)
		} else {
			assert.Nil(t, err, testcase.value)
			assert.True(t, date.IsValid(), testcase.value)
			assert.Equal(t, testcase.value, date.String(), testcase.value)
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	cases := []struct {
		value    string
		expected string
		isError  bool
	}{
		{value: "09:30:00", expected: "09:30:00"},
		{value: "00:00:00", expected: "00:00:00"},
		{value: "23:59:59", expected: "23:59:59"},
		// Sub-second precision is accepted and truncated.
		{value: "09:30:00.125", expected: "09:30:00"},
		{value: "09:30:00.999999999", expected: "09:30:00"},
		{value: "9:30", isError: true},
		{value: "9am", isError: true},
		{value: "25:00:00", isError: true},
		{value: "09:61:00", isError: true},
		{value: "", isError: true},
	}

	for _, testcase := range cases {
		timeOfDay, err := ParseTimeOfDay(testcase.value)

		if testcase.isError {
			assert.ErrorIs(t, err, ErrParseTimeOfDay, testcase.value)
			assert.False(t, timeOfDay.IsValid(), testcase.value)
		} else {
			assert.Nil(t, err, testcase.value)
			assert.True(t, timeOfDay.IsValid(), testcase.value)
			assert.Equal(t, testcase.expected, timeOfDay.String(), testcase.value)
		}
	}
}

func TestDateZeroValueIsNotValid(t *testing.T) {
	assert.False(t, Date{}.IsValid())
	assert.False(t, TimeOfDay{}.IsValid())
}
