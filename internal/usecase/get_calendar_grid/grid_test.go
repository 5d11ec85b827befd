package get_calendar_grid

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

func newSlot(id, date, start, end string) *domain.TimeSlot {
	return &domain.TimeSlot{
		ID:           id,
		PropertyID:   "property-1",
		AgentID:      "agent-1",
		Date:         types.MustDate(date),
		StartTime:    types.MustTimeString(start),
		EndTime:      types.MustTimeString(end),
		MaxAttendees: 1,
	}
}

func countPadding(cells []domain.DayCell) (leading, inMonth, trailing int) {
	seenMonth := false
	for _, c := range cells {
		switch {
		case !c.IsPadding:
			inMonth++
			seenMonth = true
		case seenMonth:
			trailing++
		default:
			leading++
		}
	}
	return leading, inMonth, trailing
}

func TestBuildGrid_April2024(t *testing.T) {
	slots := []*domain.TimeSlot{
		newSlot("s1", "2024-04-10", "10:00", "11:00"),
	}

	cells := BuildGrid(types.MustDate("2024-04-15"), slots)

	require.Len(t, cells, domain.CalendarGridCells)

	leading, inMonth, trailing := countPadding(cells)
	assert.Equal(t, 1, leading)
	assert.Equal(t, 30, inMonth)
	assert.Equal(t, 11, trailing)

	assert.Equal(t, types.MustDate("2024-03-31"), cells[0].Date)
	assert.True(t, cells[0].IsPadding)
	assert.Equal(t, types.MustDate("2024-04-01"), cells[1].Date)
	assert.Equal(t, types.MustDate("2024-05-11"), cells[41].Date)

	// 10 апреля: индекс 1 + 9
	april10 := cells[10]
	assert.Equal(t, types.MustDate("2024-04-10"), april10.Date)
	require.Len(t, april10.Slots, 1)
	assert.Equal(t, "s1", april10.Slots[0].ID)

	for i, c := range cells {
		if i != 10 {
			assert.Empty(t, c.Slots, "cell %s", c.Date)
		}
	}
}

func TestBuildGrid_MonthStartingOnSunday(t *testing.T) {
	// 1 сентября 2024 - воскресенье
	cells := BuildGrid(types.MustDate("2024-09-01"), nil)

	require.Len(t, cells, domain.CalendarGridCells)
	assert.Equal(t, types.MustDate("2024-09-01"), cells[0].Date)
	assert.False(t, cells[0].IsPadding)

	leading, inMonth, trailing := countPadding(cells)
	assert.Equal(t, 0, leading)
	assert.Equal(t, 30, inMonth)
	assert.Equal(t, 12, trailing)
}

func TestBuildGrid_EveryMonth(t *testing.T) {
	for year := 2023; year <= 2028; year++ {
		for month := time.January; month <= time.December; month++ {
			ref := types.DateOf(year, month, 1)
			cells := BuildGrid(ref, nil)

			require.Len(t, cells, domain.CalendarGridCells, "%s", ref)
			assert.Equal(t, time.Sunday, cells[0].Date.Weekday(), "%s", ref)

			_, inMonth, _ := countPadding(cells)
			assert.Equal(t, ref.DaysInMonth(), inMonth, "%s", ref)

			for i := 1; i < len(cells); i++ {
				assert.Equal(t, cells[i-1].Date.AddDays(1), cells[i].Date, "%s", ref)
			}

			for _, c := range cells {
				inRef := c.Date.Year == ref.Year && c.Date.Month == ref.Month
				assert.Equal(t, !inRef, c.IsPadding, "%s", c.Date)
			}
		}
	}
}

func TestBuildGrid_PaddingNeverCarriesSlots(t *testing.T) {
	// Даты попадают в видимые padding-ячейки апрельской сетки
	slots := []*domain.TimeSlot{
		newSlot("march", "2024-03-31", "10:00", "11:00"),
		newSlot("may", "2024-05-02", "10:00", "11:00"),
		newSlot("april", "2024-04-30", "10:00", "11:00"),
	}

	cells := BuildGrid(types.MustDate("2024-04-01"), slots)

	total := 0
	for _, c := range cells {
		if c.IsPadding {
			assert.Empty(t, c.Slots, "padding cell %s", c.Date)
		}
		total += len(c.Slots)
	}
	assert.Equal(t, 1, total)
}

func TestBuildGrid_SlotsPerDate(t *testing.T) {
	booked := newSlot("booked", "2024-04-10", "09:00", "10:00")
	booked.IsBooked = true
	booked.CurrentAttendees = 1

	slots := []*domain.TimeSlot{
		newSlot("late", "2024-04-10", "15:00", "16:00"),
		newSlot("other-day", "2024-04-11", "10:00", "11:00"),
		booked,
		newSlot("early", "2024-04-10", "08:00", "09:00"),
		nil,
	}

	cells := BuildGrid(types.MustDate("2024-04-20"), slots)

	var ids []string
	for _, s := range cells[10].Slots {
		ids = append(ids, s.ID)
	}
	// Порядок входного среза, забронированные слоты не отбрасываются
	assert.Equal(t, []string{"late", "booked", "early"}, ids)

	require.Len(t, cells[11].Slots, 1)
	assert.Equal(t, "other-day", cells[11].Slots[0].ID)

	placed := 0
	for _, c := range cells {
		placed += len(c.Slots)
	}
	assert.Equal(t, 4, placed)
}

func TestBuildGrid_DoesNotMutateInput(t *testing.T) {
	original := newSlot("s1", "2024-04-10", "10:00", "11:00")
	slots := []*domain.TimeSlot{original}

	cells := BuildGrid(types.MustDate("2024-04-10"), slots)
	cells[10].Slots[0].IsBooked = true

	assert.False(t, original.IsBooked)
	assert.Same(t, original, slots[0])
}

func TestBuildGrid_Deterministic(t *testing.T) {
	slots := []*domain.TimeSlot{
		newSlot("a", "2024-02-29", "10:00", "11:00"),
		newSlot("b", "2024-02-01", "10:00", "11:00"),
	}

	first := BuildGrid(types.MustDate("2024-02-10"), slots)
	second := BuildGrid(types.MustDate("2024-02-10"), slots)

	assert.Equal(t, first, second)
}

func TestGridRange(t *testing.T) {
	first, last := GridRange(types.MustDate("2024-04-15"))

	assert.Equal(t, types.MustDate("2024-03-31"), first)
	assert.Equal(t, types.MustDate("2024-05-11"), last)
}
