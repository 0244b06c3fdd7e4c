package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSleepDurationOvernight(t *testing.T) {
	assert.Equal(t, 8.5, SleepDuration("22:30", "07:00"))
	assert.Equal(t, 7.5, SleepDuration("23:00", "06:30"))
}

func TestSleepDurationSameDay(t *testing.T) {
	assert.Equal(t, 16.0, SleepDuration("07:00", "23:00"))
	assert.Equal(t, 8.3, SleepDuration("23:00", "07:15"))
}

func TestSleepDurationEqualTimesIsFullDay(t *testing.T) {
	assert.Equal(t, 24.0, SleepDuration("08:00", "08:00"))
}

func TestSleepDurationEmptyOrMalformed(t *testing.T) {
	assert.Equal(t, 0.0, SleepDuration("", ""))
	assert.Equal(t, 0.0, SleepDuration("22:30", ""))
	assert.Equal(t, 0.0, SleepDuration("", "07:00"))
	assert.Equal(t, 0.0, SleepDuration("late", "07:00"))
	assert.Equal(t, 0.0, SleepDuration("25:00", "07:00"))
	assert.Equal(t, 0.0, SleepDuration("22:30", "07:75"))
}
