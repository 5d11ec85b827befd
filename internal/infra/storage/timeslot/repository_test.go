package timeslot

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-RealtyService/internal/domain"
	"github.com/m04kA/SMC-RealtyService/pkg/types"
)

func TestBuildFilterQuery(t *testing.T) {
	start := types.MustDate("2024-04-01")
	end := types.MustDate("2024-04-30")
	day := types.MustDate("2024-04-10")

	cases := []struct {
		name      string
		filter    domain.TimeSlotsFilter
		wantWhere string
		wantOrder string
		wantArgs  int
	}{
		{
			name:      "all slots of property",
			filter:    domain.TimeSlotsFilter{PropertyID: "p1"},
			wantWhere: "WHERE property_id = $1",
			wantOrder: "ORDER BY slot_date ASC, start_time ASC",
			wantArgs:  1,
		},
		{
			name:      "month range",
			filter:    domain.TimeSlotsFilter{PropertyID: "p1", StartDate: &start, EndDate: &end},
			wantWhere: "WHERE property_id = $1 AND slot_date >= $2 AND slot_date <= $3",
			wantOrder: "ORDER BY slot_date ASC, start_time ASC",
			wantArgs:  3,
		},
		{
			name:      "available on a single day",
			filter:    domain.TimeSlotsFilter{PropertyID: "p1", StartDate: &day, EndDate: &day, OnlyAvailable: true},
			wantWhere: "WHERE property_id = $1 AND slot_date >= $2 AND slot_date <= $3 AND is_booked = $4 AND current_attendees < max_attendees",
			wantOrder: "ORDER BY start_time ASC",
			wantArgs:  4,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			query, args, err := buildFilterQuery(tc.filter).ToSql()
			require.NoError(t, err)

			assert.Contains(t, query, "FROM showing_time_slots")
			assert.Contains(t, query, tc.wantWhere)
			assert.Contains(t, query, tc.wantOrder)
			require.Len(t, args, tc.wantArgs)
			assert.Equal(t, "p1", args[0])
		})
	}
}

type rowStub struct {
	values []interface{}
	err    error
}

func (r rowStub) Scan(dest ...interface{}) error {
	if r.err != nil {
		return r.err
	}
	for i, d := range dest {
		switch p := d.(type) {
		case *string:
			*p = r.values[i].(string)
		case *bool:
			*p = r.values[i].(bool)
		case *int:
			*p = r.values[i].(int)
		case interface{ Scan(interface{}) error }:
			if err := p.Scan(r.values[i]); err != nil {
				return err
			}
		}
	}
	return nil
}

func TestScanTimeSlot(t *testing.T) {
	row := rowStub{values: []interface{}{
		"slot-1", "p1", "agent-1", "2024-04-10", "10:00:00", "11:30:00", true, 2, 2, nil, nil,
	}}

	slot, err := scanTimeSlot(row)

	require.NoError(t, err)
	assert.Equal(t, "slot-1", slot.ID)
	assert.Equal(t, types.MustDate("2024-04-10"), slot.Date)
	assert.Equal(t, "10:00", slot.StartTime.String())
	assert.Equal(t, 90, slot.DurationMinutes())
	assert.True(t, slot.IsBooked)
	assert.Equal(t, 2, slot.CurrentAttendees)
	assert.True(t, slot.CreatedAt.IsZero())
}
