package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    TimeString
		wantErr bool
	}{
		{name: "valid morning", input: "09:00", want: "09:00"},
		{name: "valid midnight", input: "00:00", want: "00:00"},
		{name: "valid last minute", input: "23:59", want: "23:59"},
		{name: "missing leading zero", input: "9:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "garbage", input: "abc", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTimeString)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeString_Minutes(t *testing.T) {
	m, err := TimeString("10:30").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 630, m)

	m, err = TimeString("00:00").Minutes()
	require.NoError(t, err)
	assert.Equal(t, 0, m)

	_, err = TimeString("bad").Minutes()
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Comparisons(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("18:00"))
	assert.False(t, TimeString("18:00").IsBefore("09:00"))
	assert.False(t, TimeString("09:00").IsBefore("09:00"))

	assert.True(t, TimeString("18:00").IsAfter("09:00"))
	assert.False(t, TimeString("09:00").IsAfter("09:00"))

	// malformed values compare as neither before nor after
	assert.False(t, TimeString("bad").IsBefore("09:00"))
	assert.False(t, TimeString("bad").IsAfter("09:00"))
}

func TestTimeString_AddMinutes(t *testing.T) {
	got, err := TimeString("10:00").AddMinutes(50)
	require.NoError(t, err)
	assert.Equal(t, TimeString("10:50"), got)

	// wraps around midnight
	got, err = TimeString("23:30").AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("00:30"), got)
}

func TestTimeString_OnDate(t *testing.T) {
	date := time.Date(2026, 3, 12, 0, 0, 0, 0, time.Local)

	instant, err := TimeString("14:30").OnDate(date)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 12, 14, 30, 0, 0, time.Local), instant)

	// time-of-day part of the date argument is ignored
	noon := time.Date(2026, 3, 12, 12, 45, 11, 0, time.Local)
	instant, err = TimeString("09:00").OnDate(noon)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 12, 9, 0, 0, 0, time.Local), instant)

	_, err = TimeString("").OnDate(date)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_NewTimeString(t *testing.T) {
	ts := NewTimeString(time.Date(2026, 3, 12, 8, 5, 59, 0, time.Local))
	assert.Equal(t, TimeString("08:05"), ts)
}
