package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "09:00", want: NewTimeOfDay(9, 0, 0)},
		{in: "9:05", want: NewTimeOfDay(9, 5, 0)},
		{in: "23:59:59", want: NewTimeOfDay(23, 59, 59)},
		{in: "00:00:00", want: 0},
		{in: "24:00", wantErr: true},
		{in: "12:60", wantErr: true},
		{in: "12", wantErr: true},
		{in: "12:00:00:00", wantErr: true},
		{in: "ab:cd", wantErr: true},
		{in: "-1:00", wantErr: true},
		{in: "+9:00", wantErr: true},
		{in: "09:+5", wantErr: true},
		{in: "09: 5", wantErr: true},
		{in: "09::00", wantErr: true},
		{in: "٠٩:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTimeOfDayFormatting(t *testing.T) {
	tod := NewTimeOfDay(8, 45, 7)
	assert.Equal(t, "08:45:07", tod.String())
	assert.Equal(t, "08:45", tod.HHMM())

	text, err := tod.MarshalText()
	require.NoError(t, err)

	var back TimeOfDay
	require.NoError(t, back.UnmarshalText(text))
	assert.Equal(t, tod, back)
}

func TestTimeOfDayAddDoesNotWrap(t *testing.T) {
	late := NewTimeOfDay(23, 50, 0)
	shifted := late.Add(15)

	assert.False(t, shifted.IsValid())
	assert.Greater(t, int(shifted), int(NewTimeOfDay(23, 59, 59)))
}

func TestInstantOf(t *testing.T) {
	loc := time.FixedZone("PHT", 8*3600)
	// 2026-10-18 23:30 UTC = 2026-10-19 07:30 PHT (понедельник)
	at := time.Date(2026, 10, 18, 23, 30, 0, 0, time.UTC)

	inst := InstantOf(at, loc)

	assert.Equal(t, Monday, inst.Day)
	assert.Equal(t, NewTimeOfDay(7, 30, 0), inst.Time)
	assert.Equal(t, "2026-10-19", inst.Date())
}
