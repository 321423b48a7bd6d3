// internal/schedule/overlay.go
package schedule

import (
	"time"

	"github.com/heartielabs/heartie-backend/internal/model"
)

// Segment is the horizontal span of a campaign within one visible 7-day row.
// StartCol and EndCol are 0-based column indices into the row. IsStart and
// IsEnd report whether the campaign's true boundary falls inside this row,
// as opposed to the band continuing from or into an adjacent row. ShowName
// is set only when the segment is at least two columns wide; a one-day
// segment renders as a bare color band.
type Segment struct {
	Campaign model.Campaign `json:"campaign"`
	StartCol int            `json:"start_col"`
	EndCol   int            `json:"end_col"`
	IsStart  bool           `json:"is_start"`
	IsEnd    bool           `json:"is_end"`
	ShowName bool           `json:"show_name"`
}

// RowSegments computes the campaign bands crossing one row of 7 consecutive
// day cells. It is a pure function of the row dates and the campaign list;
// rows never share state, so each row of a month grid is evaluated
// independently.
func RowSegments(rowDates [7]time.Time, campaigns []model.Campaign) []Segment {
	rowStart := Midnight(rowDates[0])
	rowEnd := Midnight(rowDates[6])

	var segments []Segment
	for _, c := range campaigns {
		cs := Midnight(c.StartDate)
		ce := Midnight(c.EndDate)
		if ce.Before(rowStart) || cs.After(rowEnd) {
			continue
		}

		startCol := 0
		isStart := false
		if !cs.Before(rowStart) {
			startCol = columnOf(rowDates, cs)
			isStart = true
		}
		endCol := 6
		isEnd := false
		if !ce.After(rowEnd) {
			endCol = columnOf(rowDates, ce)
			isEnd = true
		}

		segments = append(segments, Segment{
			Campaign: c,
			StartCol: startCol,
			EndCol:   endCol,
			IsStart:  isStart,
			IsEnd:    isEnd,
			ShowName: endCol-startCol+1 >= 2,
		})
	}
	return segments
}

// columnOf locates d among the 7 row dates.
func columnOf(rowDates [7]time.Time, d time.Time) int {
	for i, rd := range rowDates {
		if Midnight(rd).Equal(d) {
			return i
		}
	}
	return 0
}
