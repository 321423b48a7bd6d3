// internal/service/calendar_service.go
package service

import (
	"time"

	"github.com/heartielabs/heartie-backend/internal/model"
	"github.com/heartielabs/heartie-backend/internal/schedule"
)

// DayCell is one rendered calendar cell: the day, its ordered activities and
// whether it belongs to the viewed month (always true in week view).
type DayCell struct {
	DayKey         string           `json:"day_key"`
	Date           time.Time        `json:"date"`
	IsCurrentMonth bool             `json:"is_current_month"`
	Activities     []model.Activity `json:"activities"`
}

// WeekView is one Monday-start week with its campaign bands.
type WeekView struct {
	Days     [7]DayCell         `json:"days"`
	Segments []schedule.Segment `json:"segments"`
	Options  schedule.Options   `json:"options"`
}

// MonthView is the 6x7 grid. Campaign segments are computed per row, each
// row independently.
type MonthView struct {
	Cells   [42]DayCell           `json:"cells"`
	Rows    [6][]schedule.Segment `json:"rows"`
	Options schedule.Options      `json:"options"`
}

// Week assembles the week containing t for the user.
func (s *ActivityService) Week(userID int, t time.Time, f schedule.Filters) (*WeekView, error) {
	days := schedule.WeekOf(t)
	period := s.boardFor(userID).ActivitiesInRange(days[0], days[6])
	visible := schedule.ApplyFilters(period, f)

	view := &WeekView{Options: schedule.VisibleOptions(period)}
	for i, d := range days {
		view.Days[i] = DayCell{
			DayKey:         schedule.DayKey(d),
			Date:           d,
			IsCurrentMonth: true,
			Activities:     schedule.ActivitiesForDay(visible, d),
		}
	}

	campaigns, err := s.CampaignRepo.ListOverlapping(userID, days[0], days[6])
	if err != nil {
		return nil, err
	}
	view.Segments = schedule.RowSegments(days, campaigns)
	return view, nil
}

// Month assembles the 42-cell grid containing t for the user.
func (s *ActivityService) Month(userID int, t time.Time, f schedule.Filters) (*MonthView, error) {
	grid := schedule.MonthGrid(t)
	period := s.boardFor(userID).ActivitiesInRange(grid[0].Date, grid[41].Date)
	visible := schedule.ApplyFilters(period, f)

	view := &MonthView{Options: schedule.VisibleOptions(period)}
	for i, cell := range grid {
		view.Cells[i] = DayCell{
			DayKey:         schedule.DayKey(cell.Date),
			Date:           cell.Date,
			IsCurrentMonth: cell.IsCurrentMonth,
			Activities:     schedule.ActivitiesForDay(visible, cell.Date),
		}
	}

	campaigns, err := s.CampaignRepo.ListOverlapping(userID, grid[0].Date, grid[41].Date)
	if err != nil {
		return nil, err
	}
	for row := 0; row < 6; row++ {
		var rowDates [7]time.Time
		for col := 0; col < 7; col++ {
			rowDates[col] = grid[row*7+col].Date
		}
		view.Rows[row] = schedule.RowSegments(rowDates, campaigns)
	}
	return view, nil
}
