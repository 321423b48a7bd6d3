// internal/schedule/move.go
package schedule

import (
	"time"

	"github.com/heartielabs/heartie-backend/internal/model"
)

// MoveResult carries the outcome of a move or reorder. When Moved is false
// the input collection is returned untouched and Changed is empty, so
// callers can skip the write entirely.
type MoveResult struct {
	Activities []model.Activity
	Changed    []model.Activity
	Moved      bool
}

func noOp(activities []model.Activity) MoveResult {
	return MoveResult{Activities: activities}
}

// Move applies a drag-end to the collection.
//
// A nil targetID means the drop landed on a day column or month cell: the
// activity's date becomes the target day and it goes to the end of that
// day's list. A non-nil targetID means the drop landed on another activity:
// within the same day this is a stable move-to-index; across days the date
// changes first and the activity is then inserted at the target's index.
//
// Drop on self, unknown ids and malformed day keys are strict no-ops.
func Move(activities []model.Activity, id int, targetDayKey string, targetID *int) MoveResult {
	targetDay, err := ParseDayKey(targetDayKey)
	if err != nil {
		return noOp(activities)
	}
	if targetID != nil && *targetID == id {
		return noOp(activities)
	}

	dragged, ok := findActivity(activities, id)
	if !ok {
		return noOp(activities)
	}
	sourceDay := Midnight(dragged.Date)
	sameDay := sourceDay.Equal(targetDay)

	targetList := ActivitiesForDay(activities, targetDay)

	// Index the drop resolves to within the target day.
	var insertAt int
	if targetID == nil {
		if sameDay {
			insertAt = len(targetList) - 1 // already a member, append = last slot
		} else {
			insertAt = len(targetList)
		}
	} else {
		target, ok := findActivity(activities, *targetID)
		if !ok || !SameDay(target.Date, targetDay) {
			return noOp(activities)
		}
		insertAt = indexOf(targetList, *targetID)
		if insertAt < 0 {
			return noOp(activities)
		}
	}

	if sameDay {
		from := indexOf(targetList, id)
		if from < 0 || from == insertAt {
			return noOp(activities)
		}
		reordered := arrayMove(targetList, from, insertAt)
		return commit(activities, map[string][]model.Activity{DayKey(targetDay): reordered}, nil)
	}

	// Cross-day: pull out of the source day, change the date, then insert.
	sourceList := ActivitiesForDay(activities, sourceDay)
	sourceList = removeID(sourceList, id)

	moved := dragged
	moved.Date = targetDay
	inserted := make([]model.Activity, 0, len(targetList)+1)
	inserted = append(inserted, targetList[:insertAt]...)
	inserted = append(inserted, moved)
	inserted = append(inserted, targetList[insertAt:]...)

	days := map[string][]model.Activity{
		DayKey(sourceDay): sourceList,
		DayKey(targetDay): inserted,
	}
	return commit(activities, days, map[int]time.Time{id: targetDay})
}

// ReorderWithinDay moves the activity at index from to index to inside one
// day. The day's multiset of ids is unchanged; only positions move.
func ReorderWithinDay(activities []model.Activity, dayKey string, from, to int) MoveResult {
	day, err := ParseDayKey(dayKey)
	if err != nil {
		return noOp(activities)
	}
	list := ActivitiesForDay(activities, day)
	if from < 0 || from >= len(list) || to < 0 || to >= len(list) || from == to {
		return noOp(activities)
	}
	reordered := arrayMove(list, from, to)
	return commit(activities, map[string][]model.Activity{DayKey(day): reordered}, nil)
}

// commit renumbers the rewritten days to 0..n-1, applies date overrides and
// folds the result back into a fresh copy of the full collection.
func commit(activities []model.Activity, days map[string][]model.Activity, dates map[int]time.Time) MoveResult {
	updated := make(map[int]model.Activity)
	for _, list := range days {
		for i, a := range list {
			a.Position = i
			if d, ok := dates[a.ID]; ok {
				a.Date = d
			}
			updated[a.ID] = a
		}
	}

	out := make([]model.Activity, len(activities))
	var changed []model.Activity
	anyChange := false
	for i, a := range activities {
		if u, ok := updated[a.ID]; ok {
			if u.Position != a.Position || !u.Date.Equal(a.Date) {
				changed = append(changed, u)
				anyChange = true
			}
			out[i] = u
		} else {
			out[i] = a
		}
	}
	if !anyChange {
		return noOp(activities)
	}
	return MoveResult{Activities: out, Changed: changed, Moved: true}
}

func arrayMove(list []model.Activity, from, to int) []model.Activity {
	out := make([]model.Activity, 0, len(list))
	out = append(out, list[:from]...)
	out = append(out, list[from+1:]...)
	tail := append([]model.Activity{list[from]}, out[to:]...)
	return append(out[:to:to], tail...)
}

func findActivity(activities []model.Activity, id int) (model.Activity, bool) {
	for _, a := range activities {
		if a.ID == id {
			return a, true
		}
	}
	return model.Activity{}, false
}

func indexOf(list []model.Activity, id int) int {
	for i, a := range list {
		if a.ID == id {
			return i
		}
	}
	return -1
}

func removeID(list []model.Activity, id int) []model.Activity {
	out := make([]model.Activity, 0, len(list))
	for _, a := range list {
		if a.ID != id {
			out = append(out, a)
		}
	}
	return out
}
