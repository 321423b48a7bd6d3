// internal/schedule/daykey.go
package schedule

import "time"

// DayKeyLayout is the time-stripped ISO form used to group activities by
// calendar day.
const DayKeyLayout = "2006-01-02"

// Midnight truncates t to local midnight. Every day comparison in this
// package goes through Midnight on both sides, so an activity whose stored
// date carries a time-of-day still buckets with its calendar day.
func Midnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func DayKey(t time.Time) string {
	return Midnight(t).Format(DayKeyLayout)
}

// ParseDayKey parses a day key in local time. Callers treat a parse error
// as a no-op, never a crash.
func ParseDayKey(key string) (time.Time, error) {
	return time.ParseInLocation(DayKeyLayout, key, time.Local)
}

func SameDay(a, b time.Time) bool {
	return Midnight(a).Equal(Midnight(b))
}

// WeekStart returns the Monday of the week containing t, at midnight.
func WeekStart(t time.Time) time.Time {
	t = Midnight(t)
	offset := (int(t.Weekday()) + 6) % 7 // Monday=0 .. Sunday=6
	return t.AddDate(0, 0, -offset)
}
