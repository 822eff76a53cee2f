package store

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// at builds a local time on a date known to fall on the given weekday.
// 2026-08-31 is a Monday.
func at(t *testing.T, weekday time.Weekday, hour, min int) time.Time {
	t.Helper()
	base := time.Date(2026, 8, 31, hour, min, 0, 0, time.Local)
	for base.Weekday() != weekday {
		base = base.AddDate(0, 0, 1)
	}
	return base
}

func TestStatusAt_OpenHours(t *testing.T) {
	status := StatusAt(at(t, time.Monday, 15, 30))
	assert.True(t, status.IsOpen)
	assert.Equal(t, "Open until 11:45 PM", status.Message)
}

func TestStatusAt_MidnightClose(t *testing.T) {
	// Thursday runs until midnight, so 23:50 is still open
	status := StatusAt(at(t, time.Thursday, 23, 50))
	assert.True(t, status.IsOpen)
	assert.Equal(t, "Open until 12:00 AM", status.Message)

	// Monday closes 23:45, so 23:50 is closed
	status = StatusAt(at(t, time.Monday, 23, 50))
	assert.False(t, status.IsOpen)
	assert.Equal(t, "Opens Tuesday at 12:00 PM", status.NextOpenTime)
}

func TestStatusAt_BeforeOpening(t *testing.T) {
	status := StatusAt(at(t, time.Wednesday, 9, 0))
	assert.False(t, status.IsOpen)
	assert.Equal(t, "Opens today at 12:00 PM", status.NextOpenTime)
	assert.Equal(t, "We are currently closed. Opens today at 12:00 PM", status.Message)
}

func TestStatusAt_Boundaries(t *testing.T) {
	// opening minute is inclusive
	assert.True(t, StatusAt(at(t, time.Friday, 12, 0)).IsOpen)
	// closing minute is exclusive
	assert.False(t, StatusAt(at(t, time.Friday, 23, 45)).IsOpen)
	// midnight on a Friday is before Friday's window, not after Thursday's
	status := StatusAt(at(t, time.Friday, 0, 0))
	assert.False(t, status.IsOpen)
	assert.Equal(t, "Opens today at 12:00 PM", status.NextOpenTime)
}

func TestFormatMinute(t *testing.T) {
	assert.Equal(t, "12:00 PM", formatMinute(12*60))
	assert.Equal(t, "11:45 PM", formatMinute(23*60+45))
	assert.Equal(t, "12:00 AM", formatMinute(24*60))
	assert.Equal(t, "9:05 AM", formatMinute(9*60+5))
}
