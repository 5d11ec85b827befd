package types

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	cases := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{input: "09:00", want: "09:00"},
		{input: "17:45:00", want: "17:45"},
		{input: " 08:30 ", want: "08:30"},
		{input: "25:00", wantErr: true},
		{input: "nine", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range cases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := NewTimeStringFromString(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.String())
		})
	}
}

func TestTimeString_Compare(t *testing.T) {
	nine := MustTimeString("09:00")
	ten := MustTimeString("10:00")

	assert.True(t, nine.IsBefore(ten))
	assert.False(t, ten.IsBefore(nine))
	assert.True(t, ten.IsAfter(nine))
	assert.True(t, nine.Equal(MustTimeString("09:00:00")))
	assert.Equal(t, 60, nine.MinutesUntil(ten))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := MustTimeString("11:30").AddMinutes(45)
	require.NoError(t, err)
	assert.Equal(t, "12:15", got.String())

	_, err = MustTimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrTimeOverflow)

	_, err = MustTimeString("00:10").AddMinutes(-20)
	assert.ErrorIs(t, err, ErrTimeOverflow)
}

func TestTimeString_Scan(t *testing.T) {
	var ts TimeString

	require.NoError(t, ts.Scan("14:05:00"))
	assert.Equal(t, "14:05", ts.String())

	require.NoError(t, ts.Scan([]byte("07:15:00")))
	assert.Equal(t, "07:15", ts.String())

	require.NoError(t, ts.Scan(time.Date(0, 1, 1, 18, 20, 0, 0, time.UTC)))
	assert.Equal(t, "18:20", ts.String())

	assert.Error(t, ts.Scan(42))
}

func TestTimeString_JSON(t *testing.T) {
	data, err := json.Marshal(MustTimeString("09:05"))
	require.NoError(t, err)
	assert.JSONEq(t, `"09:05"`, string(data))

	var ts TimeString
	require.NoError(t, json.Unmarshal([]byte(`"16:40"`), &ts))
	assert.Equal(t, 16*60+40, ts.Minutes())

	assert.Error(t, json.Unmarshal([]byte(`"later"`), &ts))
}
