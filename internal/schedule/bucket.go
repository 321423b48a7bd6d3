// internal/schedule/bucket.go
package schedule

import (
	"sort"
	"time"

	"github.com/heartielabs/heartie-backend/internal/model"
)

// Cell is one square of a calendar grid. Month grids pad with adjacent-month
// days, flagged IsCurrentMonth=false.
type Cell struct {
	Date           time.Time `json:"date"`
	IsCurrentMonth bool      `json:"is_current_month"`
}

// BucketByDay groups activities under their day key. Each bucket is ordered
// by the explicit Position ordinal, with ID as the tiebreak so the result is
// deterministic even for legacy rows sharing a position.
func BucketByDay(activities []model.Activity) map[string][]model.Activity {
	buckets := make(map[string][]model.Activity)
	for _, a := range activities {
		k := DayKey(a.Date)
		buckets[k] = append(buckets[k], a)
	}
	for k := range buckets {
		sortDay(buckets[k])
	}
	return buckets
}

func sortDay(day []model.Activity) {
	sort.SliceStable(day, func(i, j int) bool {
		if day[i].Position != day[j].Position {
			return day[i].Position < day[j].Position
		}
		return day[i].ID < day[j].ID
	})
}

// WeekOf returns the 7 days of the Monday-start week containing t.
func WeekOf(t time.Time) [7]time.Time {
	var days [7]time.Time
	start := WeekStart(t)
	for i := range days {
		days[i] = start.AddDate(0, 0, i)
	}
	return days
}

// MonthGrid returns the 42-cell (6x7) Monday-aligned grid for the month
// containing t. The grid always has exactly 42 cells regardless of how many
// days the month has.
func MonthGrid(t time.Time) [42]Cell {
	var cells [42]Cell
	t = Midnight(t)
	first := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	start := WeekStart(first)
	for i := range cells {
		d := start.AddDate(0, 0, i)
		cells[i] = Cell{Date: d, IsCurrentMonth: d.Month() == t.Month() && d.Year() == t.Year()}
	}
	return cells
}

// ActivitiesForDay returns the ordered activities falling on t's calendar day.
func ActivitiesForDay(activities []model.Activity, t time.Time) []model.Activity {
	var day []model.Activity
	for _, a := range activities {
		if SameDay(a.Date, t) {
			day = append(day, a)
		}
	}
	sortDay(day)
	return day
}

// ActivitiesInRange returns activities whose day falls within [start, end]
// inclusive, ordered by day then position.
func ActivitiesInRange(activities []model.Activity, start, end time.Time) []model.Activity {
	start, end = Midnight(start), Midnight(end)
	var out []model.Activity
	for _, a := range activities {
		d := Midnight(a.Date)
		if !d.Before(start) && !d.After(end) {
			out = append(out, a)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		di, dj := Midnight(out[i].Date), Midnight(out[j].Date)
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		if out[i].Position != out[j].Position {
			return out[i].Position < out[j].Position
		}
		return out[i].ID < out[j].ID
	})
	return out
}
