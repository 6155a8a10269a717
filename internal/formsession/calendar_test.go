package formsession_test

import (
	"context"
	"testing"
	"time"

	"go-publishing-backend/internal/formsession"

	"github.com/stretchr/testify/assert"
)

// fixedClock pins "now" to 2026-03-15 10:30 local time for deterministic
// past/today boundaries.
func fixedClock() func() time.Time {
	return func() time.Time {
		return time.Date(2026, time.March, 15, 10, 30, 0, 0, time.Local)
	}
}

func newSession(t *testing.T) *formsession.Session {
	t.Helper()
	return formsession.New(formsession.DefaultConfig(), nil, formsession.WithClock(fixedClock()))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, formsession.DaysInMonth(2024, time.February))
	assert.Equal(t, 28, formsession.DaysInMonth(2025, time.February))
	assert.Equal(t, 28, formsession.DaysInMonth(2100, time.February)) // century, not leap
	assert.Equal(t, 29, formsession.DaysInMonth(2000, time.February)) // 400-year rule
	assert.Equal(t, 31, formsession.DaysInMonth(2026, time.January))
	assert.Equal(t, 30, formsession.DaysInMonth(2026, time.April))
	assert.Equal(t, 31, formsession.DaysInMonth(2026, time.December))
}

func TestFirstWeekday(t *testing.T) {
	// 2026-03-01 is a Sunday, 2026-04-01 a Wednesday.
	assert.Equal(t, 0, formsession.FirstWeekday(2026, time.March))
	assert.Equal(t, 3, formsession.FirstWeekday(2026, time.April))
	// 2024-09-01 is a Sunday.
	assert.Equal(t, 0, formsession.FirstWeekday(2024, time.September))
}

func TestGridShape(t *testing.T) {
	s := newSession(t)

	t.Run("Should pad leading placeholders and align day 1", func(t *testing.T) {
		year, month := s.ViewedMonth()
		offset := formsession.FirstWeekday(year, month)
		cells := s.Grid()

		for i := 0; i < offset; i++ {
			assert.Equal(t, 0, cells[i].Day)
		}
		assert.Equal(t, 1, cells[offset].Day)
	})

	t.Run("Should pad total length to a multiple of seven", func(t *testing.T) {
		cells := s.Grid()
		assert.Equal(t, 0, len(cells)%7)

		year, month := s.ViewedMonth()
		minLen := formsession.FirstWeekday(year, month) + formsession.DaysInMonth(year, month)
		assert.GreaterOrEqual(t, len(cells), minLen)
		assert.Less(t, len(cells)-minLen, 7)
	})

	t.Run("Should disable past days and mark today", func(t *testing.T) {
		cells := s.Grid()
		year, month := s.ViewedMonth()
		offset := formsession.FirstWeekday(year, month)

		// clock is pinned to the 15th
		assert.True(t, cells[offset+13].Disabled) // the 14th
		assert.False(t, cells[offset+14].Disabled)
		assert.True(t, cells[offset+14].Today)
		assert.False(t, cells[offset+15].Today)
	})
}

func TestIsPastBoundary(t *testing.T) {
	s := newSession(t)

	today := time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local)
	yesterday := today.AddDate(0, 0, -1)
	tomorrow := today.AddDate(0, 0, 1)

	assert.False(t, s.IsPast(today), "today at midnight is not past")
	assert.True(t, s.IsPast(yesterday))
	assert.False(t, s.IsPast(tomorrow))
	// late in the day today still counts as today
	assert.False(t, s.IsPast(time.Date(2026, time.March, 15, 23, 59, 0, 0, time.Local)))
}

func TestSelect(t *testing.T) {
	t.Run("Should reject a past date with no state change", func(t *testing.T) {
		s := newSession(t)
		err := s.Select(time.Date(2026, time.March, 10, 0, 0, 0, 0, time.Local))
		assert.ErrorIs(t, err, formsession.ErrPastDate)
		_, ok := s.SelectedDate()
		assert.False(t, ok)
		assert.Empty(t, s.Field(formsession.FieldAppointmentDate))
	})

	t.Run("Should record a future date and write the canonical string", func(t *testing.T) {
		s := newSession(t)
		err := s.Select(time.Date(2026, time.March, 20, 15, 45, 0, 0, time.Local))
		assert.NoError(t, err)
		sel, ok := s.SelectedDate()
		assert.True(t, ok)
		assert.Equal(t, 20, sel.Day())
		assert.Equal(t, "2026-03-20", s.Field(formsession.FieldAppointmentDate))
	})

	t.Run("Should allow selecting today", func(t *testing.T) {
		s := newSession(t)
		err := s.Select(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.Local))
		assert.NoError(t, err)
		assert.Equal(t, "2026-03-15", s.Field(formsession.FieldAppointmentDate))
	})

	t.Run("Should clear a pending date error on selection", func(t *testing.T) {
		s := newSession(t)
		s.Submit(context.Background())
		assert.Equal(t, formsession.MsgDateRequired, s.Errors()[formsession.FieldAppointmentDate])

		err := s.Select(time.Date(2026, time.March, 21, 0, 0, 0, 0, time.Local))
		assert.NoError(t, err)
		_, present := s.Errors()[formsession.FieldAppointmentDate]
		assert.False(t, present)
	})

	t.Run("Should be idempotent for the same date", func(t *testing.T) {
		s := newSession(t)
		day := time.Date(2026, time.March, 22, 0, 0, 0, 0, time.Local)
		assert.NoError(t, s.Select(day))
		assert.NoError(t, s.Select(day))
		sel, ok := s.SelectedDate()
		assert.True(t, ok)
		assert.Equal(t, "2026-03-22", sel.Format("2006-01-02"))
	})

	t.Run("Should replace a previous selection", func(t *testing.T) {
		s := newSession(t)
		assert.NoError(t, s.Select(time.Date(2026, time.March, 20, 0, 0, 0, 0, time.Local)))
		assert.NoError(t, s.Select(time.Date(2026, time.April, 2, 0, 0, 0, 0, time.Local)))
		assert.Equal(t, "2026-04-02", s.Field(formsession.FieldAppointmentDate))
	})
}

func TestNavigate(t *testing.T) {
	t.Run("Should wrap December to January going forward", func(t *testing.T) {
		s := newSession(t)
		// March -> December is nine steps
		for i := 0; i < 9; i++ {
			s.Navigate(formsession.Next)
		}
		year, month := s.ViewedMonth()
		assert.Equal(t, 2026, year)
		assert.Equal(t, time.December, month)

		s.Navigate(formsession.Next)
		year, month = s.ViewedMonth()
		assert.Equal(t, 2027, year)
		assert.Equal(t, time.January, month)
	})

	t.Run("Should wrap January to December going backward", func(t *testing.T) {
		s := newSession(t)
		for i := 0; i < 2; i++ {
			s.Navigate(formsession.Prev)
		}
		year, month := s.ViewedMonth()
		assert.Equal(t, 2026, year)
		assert.Equal(t, time.January, month)

		s.Navigate(formsession.Prev)
		year, month = s.ViewedMonth()
		assert.Equal(t, 2025, year)
		assert.Equal(t, time.December, month)
	})

	t.Run("Should keep the selection while browsing months", func(t *testing.T) {
		s := newSession(t)
		assert.NoError(t, s.Select(time.Date(2026, time.March, 20, 0, 0, 0, 0, time.Local)))
		s.Navigate(formsession.Next)
		s.Navigate(formsession.Next)
		sel, ok := s.SelectedDate()
		assert.True(t, ok)
		assert.Equal(t, time.March, sel.Month())

		// the selected day renders as selected only in its own month
		s.Navigate(formsession.Prev)
		s.Navigate(formsession.Prev)
		year, month := s.ViewedMonth()
		offset := formsession.FirstWeekday(year, month)
		assert.True(t, s.Grid()[offset+19].Selected)
	})
}
