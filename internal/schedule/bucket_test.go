package schedule_test

import (
	"testing"
	"time"

	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/schedule"
)

func TestWeekOfStartsMonday(t *testing.T) {
	// 2025-06-11 is a Wednesday.
	week := schedule.WeekOf(day("2025-06-11"))
	if schedule.DayKey(week[0]) != "2025-06-09" {
		t.Errorf("expected week to start 2025-06-09, got %s", schedule.DayKey(week[0]))
	}
	if schedule.DayKey(week[6]) != "2025-06-15" {
		t.Errorf("expected week to end 2025-06-15, got %s", schedule.DayKey(week[6]))
	}
	if week[0].Weekday() != time.Monday {
		t.Errorf("expected Monday, got %s", week[0].Weekday())
	}
}

func TestWeekOfOnMonday(t *testing.T) {
	week := schedule.WeekOf(day("2025-06-09"))
	if schedule.DayKey(week[0]) != "2025-06-09" {
		t.Errorf("a Monday starts its own week, got %s", schedule.DayKey(week[0]))
	}
}

func TestWeekOfOnSunday(t *testing.T) {
	week := schedule.WeekOf(day("2025-06-15"))
	if schedule.DayKey(week[0]) != "2025-06-09" {
		t.Errorf("Sunday belongs to the preceding Monday's week, got %s", schedule.DayKey(week[0]))
	}
}

func TestMonthGridAlways42Cells(t *testing.T) {
	// February 2026 (28 days, starts on a Sunday) and June 2025 both get
	// the full 6x7 grid.
	for _, dk := range []string{"2026-02-10", "2025-06-01", "2025-12-31"} {
		grid := schedule.MonthGrid(day(dk))
		if len(grid) != 42 {
			t.Fatalf("%s: expected 42 cells, got %d", dk, len(grid))
		}
		for i := 1; i < len(grid); i++ {
			if !grid[i].Date.Equal(grid[i-1].Date.AddDate(0, 0, 1)) {
				t.Fatalf("%s: cells not consecutive at %d", dk, i)
			}
		}
		if grid[0].Date.Weekday() != time.Monday {
			t.Errorf("%s: grid must align to Monday, got %s", dk, grid[0].Date.Weekday())
		}
	}
}

func TestMonthGridFlagsAdjacentMonths(t *testing.T) {
	grid := schedule.MonthGrid(day("2025-06-15"))
	// June 2025 starts on a Sunday, so the first row holds 6 May days.
	if grid[0].IsCurrentMonth {
		t.Error("leading May padding flagged as current month")
	}
	current := 0
	for _, c := range grid {
		if c.IsCurrentMonth {
			current++
		}
	}
	if current != 30 {
		t.Errorf("June has 30 days, got %d current-month cells", current)
	}
}

func TestBucketingConservesActivities(t *testing.T) {
	// Every activity inside the visible grid range lands in exactly one
	// cell; none are lost or duplicated.
	grid := schedule.MonthGrid(day("2025-06-15"))
	activities := []model.Activity{
		act(1, "2025-06-01", 0),
		act(2, "2025-06-10", 0),
		act(3, "2025-06-10", 1),
		act(4, "2025-06-30", 0),
		act(5, "2025-05-26", 0), // leading padding cell
		act(6, "2025-04-01", 0), // outside the grid entirely
	}

	total := 0
	seen := map[int]int{}
	for _, cell := range grid {
		for _, a := range schedule.ActivitiesForDay(activities, cell.Date) {
			total++
			seen[a.ID]++
		}
	}

	inRange := schedule.ActivitiesInRange(activities, grid[0].Date, grid[41].Date)
	if total != len(inRange) {
		t.Errorf("cells hold %d activities, range holds %d", total, len(inRange))
	}
	for id, n := range seen {
		if n != 1 {
			t.Errorf("activity %d appeared in %d cells", id, n)
		}
	}
	if _, ok := seen[6]; ok {
		t.Error("activity outside the grid should not appear")
	}
}

func TestActivitiesForDayOrdersByPosition(t *testing.T) {
	activities := []model.Activity{
		act(2, "2025-06-10", 1),
		act(3, "2025-06-10", 2),
		act(1, "2025-06-10", 0),
	}
	got := schedule.ActivitiesForDay(activities, day("2025-06-10"))
	if !sameIDs([]int{got[0].ID, got[1].ID, got[2].ID}, []int{1, 2, 3}) {
		t.Errorf("expected position order [1 2 3], got %v", got)
	}
}

func TestActivitiesInRangeInclusive(t *testing.T) {
	activities := []model.Activity{
		act(1, "2025-06-09", 0),
		act(2, "2025-06-15", 0),
		act(3, "2025-06-16", 0),
	}
	got := schedule.ActivitiesInRange(activities, day("2025-06-09"), day("2025-06-15"))
	if len(got) != 2 {
		t.Fatalf("expected 2 activities, got %d", len(got))
	}
	if got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("range must include both endpoints, got %v", got)
	}
}

func TestBucketByDayUsesDayKeys(t *testing.T) {
	a := act(1, "2025-06-10", 0)
	a.Date = a.Date.Add(23 * time.Hour)
	buckets := schedule.BucketByDay([]model.Activity{a, act(2, "2025-06-10", 1)})
	if len(buckets["2025-06-10"]) != 2 {
		t.Errorf("time-of-day must be stripped when bucketing, got %v", buckets)
	}
}
