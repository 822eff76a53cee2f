package store

import (
	"fmt"
	"time"
)

// daySchedule is one day's opening window in minutes since midnight.
// closeMinute of 24*60 means the store stays open until midnight.
type daySchedule struct {
	openMinute  int
	closeMinute int
}

const (
	minutesPerDay = 24 * 60
	noonMinute    = 12 * 60
)

// weeklySchedule is the fixed shop timetable, keyed by time.Weekday.
// Thursday and Saturday run until midnight; every other day closes at
// 23:45.
var weeklySchedule = map[time.Weekday]daySchedule{
	time.Sunday:    {openMinute: noonMinute, closeMinute: 23*60 + 45},
	time.Monday:    {openMinute: noonMinute, closeMinute: 23*60 + 45},
	time.Tuesday:   {openMinute: noonMinute, closeMinute: 23*60 + 45},
	time.Wednesday: {openMinute: noonMinute, closeMinute: 23*60 + 45},
	time.Thursday:  {openMinute: noonMinute, closeMinute: minutesPerDay},
	time.Friday:    {openMinute: noonMinute, closeMinute: 23*60 + 45},
	time.Saturday:  {openMinute: noonMinute, closeMinute: minutesPerDay},
}

// Status reports whether the shop is open and what to tell the customer
type Status struct {
	IsOpen       bool   `json:"is_open"`
	Message      string `json:"message"`
	NextOpenTime string `json:"next_open_time,omitempty"`
}

// StatusAt evaluates the schedule at the given instant. The instant's
// own location decides which day and minute apply.
func StatusAt(t time.Time) Status {
	day := t.Weekday()
	minute := t.Hour()*60 + t.Minute()
	today := weeklySchedule[day]

	if minute >= today.openMinute && minute < today.closeMinute {
		return Status{
			IsOpen:  true,
			Message: fmt.Sprintf("Open until %s", formatMinute(today.closeMinute)),
		}
	}

	var next string
	if minute < today.openMinute {
		next = fmt.Sprintf("Opens today at %s", formatMinute(today.openMinute))
	} else {
		nextDay := (day + 1) % 7
		next = fmt.Sprintf("Opens %s at %s", nextDay, formatMinute(weeklySchedule[nextDay].openMinute))
	}
	return Status{
		IsOpen:       false,
		Message:      fmt.Sprintf("We are currently closed. %s", next),
		NextOpenTime: next,
	}
}

// formatMinute renders minutes since midnight as a 12-hour clock time.
// Midnight (minute 1440) displays as 12:00 AM.
func formatMinute(minute int) string {
	if minute == minutesPerDay {
		return "12:00 AM"
	}
	hour := minute / 60
	min := minute % 60
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	displayHour := hour % 12
	if displayHour == 0 {
		displayHour = 12
	}
	return fmt.Sprintf("%d:%02d %s", displayHour, min, period)
}
