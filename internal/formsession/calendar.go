package formsession

import (
	"errors"
	"time"
)

// ErrPastDate is returned when a selection targets a day before today.
// The UI disables past cells, but the engine still refuses the mutation
// rather than trusting the caller.
var ErrPastDate = errors.New("formsession: cannot select a past date")

// Direction of month navigation.
type Direction string

const (
	Prev Direction = "prev"
	Next Direction = "next"
)

// Cell is one unit of the rendered month grid. A placeholder cell has
// Day == 0 and all flags false.
type Cell struct {
	Day      int  `json:"day"`
	Disabled bool `json:"disabled"`
	Today    bool `json:"today"`
	Selected bool `json:"selected"`
}

// DaysInMonth returns the number of days in the given month, using the
// "day 0 of the next month" normalization so leap years come out right.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// FirstWeekday returns the weekday index of the 1st of the month,
// 0 = Sunday. Used to left-pad the grid so day 1 lands under the
// correct weekday column.
func FirstWeekday(year int, month time.Month) int {
	return int(time.Date(year, month, 1, 0, 0, 0, 0, time.UTC).Weekday())
}

// midnight truncates t to the start of its calendar day.
func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsPast reports whether date is strictly earlier than today at midnight.
// Today itself is never past, even at exactly 00:00.
func (s *Session) IsPast(date time.Time) bool {
	return midnight(date).Before(midnight(s.now()))
}

// IsToday reports whether date falls on the current calendar day.
// Visual emphasis only; it does not affect selectability.
func (s *Session) IsToday(date time.Time) bool {
	now := s.now()
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

// Select records date as the appointment day. Past dates are rejected with
// no state change. On success the canonical YYYY-MM-DD string is written
// into the form and any pending appointmentDate error is cleared.
// Re-selecting the same date is idempotent.
func (s *Session) Select(date time.Time) error {
	if s.IsPast(date) {
		return ErrPastDate
	}
	d := midnight(date)
	s.selected = &d
	s.form[FieldAppointmentDate] = d.Format(dateLayout)
	delete(s.errors, FieldAppointmentDate)
	return nil
}

// SelectedDate returns the current selection, or false when no date has
// been chosen yet.
func (s *Session) SelectedDate() (time.Time, bool) {
	if s.selected == nil {
		return time.Time{}, false
	}
	return *s.selected, true
}

// Navigate shifts the viewed month by one in the requested direction,
// wrapping year boundaries. Browsing months never clears the selection.
func (s *Session) Navigate(dir Direction) {
	if dir == Prev {
		s.viewMonth--
	} else {
		s.viewMonth++
	}
	switch {
	case s.viewMonth < time.January:
		s.viewMonth = time.December
		s.viewYear--
	case s.viewMonth > time.December:
		s.viewMonth = time.January
		s.viewYear++
	}
}

// ViewedMonth returns the year and month currently displayed.
func (s *Session) ViewedMonth() (int, time.Month) {
	return s.viewYear, s.viewMonth
}

// Grid produces the viewed month's cells in row-major order: leading
// placeholders so day 1 aligns under its weekday, one cell per day, and
// trailing placeholders padding the total to a multiple of 7.
func (s *Session) Grid() []Cell {
	days := DaysInMonth(s.viewYear, s.viewMonth)
	offset := FirstWeekday(s.viewYear, s.viewMonth)

	cells := make([]Cell, 0, offset+days)
	for i := 0; i < offset; i++ {
		cells = append(cells, Cell{})
	}
	for day := 1; day <= days; day++ {
		date := time.Date(s.viewYear, s.viewMonth, day, 0, 0, 0, 0, time.Local)
		cells = append(cells, Cell{
			Day:      day,
			Disabled: s.IsPast(date),
			Today:    s.IsToday(date),
			Selected: s.isSelected(date),
		})
	}
	for len(cells)%7 != 0 {
		cells = append(cells, Cell{})
	}
	return cells
}

func (s *Session) isSelected(date time.Time) bool {
	if s.selected == nil {
		return false
	}
	y1, m1, d1 := date.Date()
	y2, m2, d2 := s.selected.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
