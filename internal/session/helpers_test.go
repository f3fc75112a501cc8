package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/Ardenhero/classtrack/internal/model"
)

// monday 2026-10-19
func at(hour, minute, second int) model.Instant {
	return model.InstantOf(time.Date(2026, 10, 19, hour, minute, second, 0, time.UTC), time.UTC)
}

func tod(s string) model.TimeOfDay {
	t, err := model.ParseTimeOfDay(s)
	if err != nil {
		panic(err)
	}
	return t
}

func entry(id int64, day model.Weekday, start, end string) model.ScheduleEntry {
	return model.ScheduleEntry{
		ID:        id,
		SubjectID: uuid.MustParse("11111111-1111-1111-1111-111111111111"),
		Day:       day,
		Start:     tod(start),
		End:       tod(end),
	}
}

func withRoom(e model.ScheduleEntry, room uuid.UUID) model.ScheduleEntry {
	e.ResourceID = &room
	return e
}
